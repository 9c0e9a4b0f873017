package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when the manifest file does not exist.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrManifestReadFailed is returned when the manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestUnmarshalFailed is returned when the manifest is not valid YAML.
	ErrManifestUnmarshalFailed = zerr.New("failed to unmarshal manifest")

	// ErrAmbiguousRoots is returned when a manifest sets both 'root' and
	// explicit src_root/include_root directories.
	ErrAmbiguousRoots = zerr.New("manifest sets both 'root' and explicit src/include roots")

	// ErrMissingRoots is returned when a manifest sets neither 'root' nor a
	// complete src_root/include_root pair.
	ErrMissingRoots = zerr.New("manifest must set 'root' or both 'src_root' and 'include_root'")

	// ErrNoSources is returned when a manifest lists no shader sources.
	ErrNoSources = zerr.New("manifest lists no sources")

	// ErrInvalidCacheMode is returned when a cache mode string is not recognized.
	ErrInvalidCacheMode = zerr.New("invalid cache mode, expected 'none', 'forever' or 'smart'")

	// ErrProcessFailed is returned when a shader could not be resolved.
	// The underlying cause has already been reported through the diagnostic sink.
	ErrProcessFailed = zerr.New("shader processing failed")

	// ErrOutputWriteFailed is returned when a flattened shader cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start file watcher")
)
