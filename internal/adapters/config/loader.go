// Package config provides the manifest loader for glslpp.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"glslpp/internal/core/domain"
	"glslpp/internal/core/ports"
	"glslpp/internal/engine/processor"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads and validates the manifest at the given path.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, zerr.With(errors.Join(domain.ErrManifestReadFailed, err), "path", path)
	}

	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrManifestUnmarshalFailed, err), "path", path)
	}

	return l.validate(path, &file)
}

func (l *Loader) validate(path string, file *manifestFile) (*domain.Manifest, error) {
	srcRoot, includeRoot, err := resolveRoots(path, file)
	if err != nil {
		return nil, err
	}

	if len(file.Sources) == 0 {
		return nil, zerr.With(domain.ErrNoSources, "path", path)
	}

	version := file.Version
	if version == "" {
		version = processor.DefaultVersion
		l.Logger.Warn(fmt.Sprintf("no 'version' in %s, defaulting to %q", path, version))
	}

	out := filepath.Join(filepath.Dir(path), "out")
	if file.Out != "" {
		out = anchor(path, file.Out)
	}

	return &domain.Manifest{
		Version:     version,
		SrcRoot:     srcRoot,
		IncludeRoot: includeRoot,
		OutDir:      out,
		Defines:     file.Defines,
		Sources:     file.Sources,
	}, nil
}

// resolveRoots derives the two shader directories. Relative directories are
// anchored at the manifest's own directory, so a manifest behaves the same
// regardless of the process working directory.
func resolveRoots(path string, file *manifestFile) (string, string, error) {
	explicit := file.SrcRoot != "" || file.IncludeRoot != ""

	switch {
	case file.Root != "" && explicit:
		return "", "", zerr.With(domain.ErrAmbiguousRoots, "path", path)
	case file.Root != "":
		root := anchor(path, file.Root)
		return filepath.Join(root, "src"), filepath.Join(root, "include"), nil
	case file.SrcRoot != "" && file.IncludeRoot != "":
		return anchor(path, file.SrcRoot), anchor(path, file.IncludeRoot), nil
	default:
		return "", "", zerr.With(domain.ErrMissingRoots, "path", path)
	}
}

func anchor(manifestPath, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(filepath.Dir(manifestPath), dir)
}
