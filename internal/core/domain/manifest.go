package domain

import (
	"io/fs"

	"go.trai.ch/zerr"
)

// ManifestFileName is the default name of the preprocessor manifest.
const ManifestFileName = "glslpp.yaml"

// File permissions for generated artifacts.
const (
	// OutputFilePerm is the permission for written shader outputs.
	OutputFilePerm fs.FileMode = 0o644
	// OutputDirPerm is the permission for created output directories.
	OutputDirPerm fs.FileMode = 0o755
)

// Manifest is the validated preprocessor configuration.
type Manifest struct {
	// Version is the pragma line injected at the top of every resolved source.
	Version string
	// SrcRoot is the directory holding entry-point shaders.
	SrcRoot string
	// IncludeRoot is the directory holding reusable fragments.
	IncludeRoot string
	// OutDir is the directory flattened shaders are written to.
	OutDir string
	// Defines are macro definitions injected after the version pragma.
	// An empty value registers a flag-only macro.
	Defines map[string]string
	// Sources are the entry-point shader names to process.
	Sources []string
}

// CacheMode selects the source retrieval caching strategy.
type CacheMode uint8

const (
	// CacheNone reads every file from disk on each request.
	CacheNone CacheMode = iota
	// CacheForever caches the first read of each path for the process lifetime.
	CacheForever
	// CacheSmart caches reads keyed by path, modification time and size, so a
	// changed file misses the cache naturally.
	CacheSmart
)

// ParseCacheMode converts a CLI/manifest string into a CacheMode.
func ParseCacheMode(s string) (CacheMode, error) {
	switch s {
	case "none":
		return CacheNone, nil
	case "forever":
		return CacheForever, nil
	case "", "smart":
		return CacheSmart, nil
	default:
		return CacheNone, zerr.With(ErrInvalidCacheMode, "mode", s)
	}
}
