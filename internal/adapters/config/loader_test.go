package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glslpp/internal/adapters/config"
	"glslpp/internal/core/domain"
	"glslpp/internal/engine/processor"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeManifest(t, `
version: "#version 330 core"
root: shaders
out: build
defines:
  MAX_LIGHTS: "4"
  USE_FOG: ""
sources:
  - main.vert
  - main.frag
`)
	l := config.NewLoader(nopLogger{})

	man, err := l.Load(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, "#version 330 core", man.Version)
	assert.Equal(t, filepath.Join(dir, "shaders", "src"), man.SrcRoot)
	assert.Equal(t, filepath.Join(dir, "shaders", "include"), man.IncludeRoot)
	assert.Equal(t, filepath.Join(dir, "build"), man.OutDir)
	assert.Equal(t, map[string]string{"MAX_LIGHTS": "4", "USE_FOG": ""}, man.Defines)
	assert.Equal(t, []string{"main.vert", "main.frag"}, man.Sources)
}

func TestLoader_Load_ExplicitRoots(t *testing.T) {
	path := writeManifest(t, `
version: "V"
src_root: entry
include_root: fragments
sources: [a.vert]
`)
	l := config.NewLoader(nopLogger{})

	man, err := l.Load(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "entry"), man.SrcRoot)
	assert.Equal(t, filepath.Join(dir, "fragments"), man.IncludeRoot)
}

func TestLoader_Load_DefaultsVersion(t *testing.T) {
	path := writeManifest(t, `
root: shaders
sources: [a.vert]
`)
	l := config.NewLoader(nopLogger{})

	man, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, processor.DefaultVersion, man.Version)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "ambiguous roots",
			content: "version: V\nroot: a\nsrc_root: b\ninclude_root: c\nsources: [x]\n",
			wantErr: domain.ErrAmbiguousRoots,
		},
		{
			name:    "missing roots",
			content: "version: V\nsources: [x]\n",
			wantErr: domain.ErrMissingRoots,
		},
		{
			name:    "incomplete explicit roots",
			content: "version: V\nsrc_root: a\nsources: [x]\n",
			wantErr: domain.ErrMissingRoots,
		},
		{
			name:    "no sources",
			content: "version: V\nroot: shaders\n",
			wantErr: domain.ErrNoSources,
		},
		{
			name:    "invalid yaml",
			content: "version: [unclosed\n",
			wantErr: domain.ErrManifestUnmarshalFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			l := config.NewLoader(nopLogger{})

			_, err := l.Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestLoader_Load_NotFound(t *testing.T) {
	l := config.NewLoader(nopLogger{})

	_, err := l.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestNotFound))
}
