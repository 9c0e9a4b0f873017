package source_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glslpp/internal/adapters/source"
	"glslpp/internal/core/domain"
	"glslpp/internal/core/ports"
)

func TestSplitDirs_Filepath(t *testing.T) {
	p := source.NewSplitDirs("proj")

	assert.Equal(t, filepath.Join("proj", "src", "a.vert"), p.Filepath(domain.RoleSource, "a.vert"))
	assert.Equal(t, filepath.Join("proj", "include", "lib.glsl"), p.Filepath(domain.RoleInclude, "lib.glsl"))
}

func TestSplitDirsAt_Filepath(t *testing.T) {
	p := source.NewSplitDirsAt("entry", "frags")

	assert.Equal(t, filepath.Join("entry", "a.vert"), p.Filepath(domain.RoleSource, "a.vert"))
	assert.Equal(t, filepath.Join("frags", "lib.glsl"), p.Filepath(domain.RoleInclude, "lib.glsl"))
}

func TestSingleDir_Filepath(t *testing.T) {
	p := source.NewSingleDir("shaders")

	assert.Equal(t, filepath.Join("shaders", "a.vert"), p.Filepath(domain.RoleSource, "a.vert"))
	assert.Equal(t, filepath.Join("shaders", "lib.glsl"), p.Filepath(domain.RoleInclude, "lib.glsl"))
}

func TestRetriever_RoutesByRole(t *testing.T) {
	mapfs := fstest.MapFS{
		"src/main.vert":      {Data: []byte("entry")},
		"include/light.glsl": {Data: []byte("fragment")},
	}
	provider := source.NewDirectProvider(source.NewMapFSAdapter("/", mapfs), ports.NopSink)
	r := source.NewRetriever(provider, source.NewSplitDirs(""))

	text, ok := r.GetSource(domain.RoleSource, "main.vert")
	require.True(t, ok)
	assert.Equal(t, "entry", text)

	text, ok = r.GetSource(domain.RoleInclude, "light.glsl")
	require.True(t, ok)
	assert.Equal(t, "fragment", text)

	// A fragment name does not resolve under the source root.
	_, ok = r.GetSource(domain.RoleSource, "light.glsl")
	assert.False(t, ok)
}
