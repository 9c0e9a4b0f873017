package source_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glslpp/internal/adapters/source"
	"glslpp/internal/core/ports"
)

type recordingSink struct {
	msgs []string
}

func (s *recordingSink) Report(msg string) { s.msgs = append(s.msgs, msg) }

func TestDirectProvider_ReadsEveryCall(t *testing.T) {
	mapfs := fstest.MapFS{
		"shaders/src/a.vert": {Data: []byte("first")},
	}
	fsys := source.NewMapFSAdapter("/proj", mapfs)
	p := source.NewDirectProvider(fsys, ports.NopSink)

	text, ok := p.ReadString("/proj/shaders/src/a.vert")
	require.True(t, ok)
	assert.Equal(t, "first", text)

	// An uncached provider sees the change immediately.
	mapfs["shaders/src/a.vert"] = &fstest.MapFile{Data: []byte("second")}
	text, ok = p.ReadString("/proj/shaders/src/a.vert")
	require.True(t, ok)
	assert.Equal(t, "second", text)
}

func TestDirectProvider_MissingFileReportsDiagnostic(t *testing.T) {
	sink := &recordingSink{}
	fsys := source.NewMapFSAdapter("/proj", fstest.MapFS{})
	p := source.NewDirectProvider(fsys, sink)

	_, ok := p.ReadString("/proj/shaders/src/missing.vert")
	assert.False(t, ok)
	require.Len(t, sink.msgs, 1)
	assert.Contains(t, sink.msgs[0], "missing.vert")
}

func TestCachedProvider_ServesStaleTextAfterChange(t *testing.T) {
	mapfs := fstest.MapFS{
		"a.glsl": {Data: []byte("original")},
	}
	p := source.NewCachedProvider(source.NewMapFSAdapter("/", mapfs), ports.NopSink)

	text, ok := p.ReadString("a.glsl")
	require.True(t, ok)
	assert.Equal(t, "original", text)

	// Cache-forever never revalidates: the stale text keeps being served.
	mapfs["a.glsl"] = &fstest.MapFile{Data: []byte("changed")}
	text, ok = p.ReadString("a.glsl")
	require.True(t, ok)
	assert.Equal(t, "original", text)
}

func TestCachedProvider_FailedReadIsNotCached(t *testing.T) {
	mapfs := fstest.MapFS{}
	p := source.NewCachedProvider(source.NewMapFSAdapter("/", mapfs), ports.NopSink)

	_, ok := p.ReadString("late.glsl")
	assert.False(t, ok)

	// The file appearing later is picked up; only successful reads populate
	// the cache.
	mapfs["late.glsl"] = &fstest.MapFile{Data: []byte("now present")}
	text, ok := p.ReadString("late.glsl")
	require.True(t, ok)
	assert.Equal(t, "now present", text)
}

func TestSmartProvider_HitsOnUnchangedFile(t *testing.T) {
	mtime := time.Unix(1000, 0)
	mapfs := fstest.MapFS{
		"a.glsl": {Data: []byte("content"), ModTime: mtime},
	}
	p := source.NewSmartProvider(source.NewMapFSAdapter("/", mapfs), ports.NopSink)

	text, ok := p.ReadString("a.glsl")
	require.True(t, ok)
	assert.Equal(t, "content", text)

	text, ok = p.ReadString("a.glsl")
	require.True(t, ok)
	assert.Equal(t, "content", text)
}

func TestSmartProvider_MtimeChangeInvalidates(t *testing.T) {
	mapfs := fstest.MapFS{
		"a.glsl": {Data: []byte("old text"), ModTime: time.Unix(1000, 0)},
	}
	p := source.NewSmartProvider(source.NewMapFSAdapter("/", mapfs), ports.NopSink)

	text, ok := p.ReadString("a.glsl")
	require.True(t, ok)
	assert.Equal(t, "old text", text)

	// Same size, newer mtime: the composite key changes and the cache misses.
	mapfs["a.glsl"] = &fstest.MapFile{Data: []byte("new text"), ModTime: time.Unix(2000, 0)}
	text, ok = p.ReadString("a.glsl")
	require.True(t, ok)
	assert.Equal(t, "new text", text)
}

func TestSmartProvider_SizeChangeInvalidates(t *testing.T) {
	mtime := time.Unix(1000, 0)
	mapfs := fstest.MapFS{
		"a.glsl": {Data: []byte("short"), ModTime: mtime},
	}
	p := source.NewSmartProvider(source.NewMapFSAdapter("/", mapfs), ports.NopSink)

	_, ok := p.ReadString("a.glsl")
	require.True(t, ok)

	// Same mtime, different size: still a miss.
	mapfs["a.glsl"] = &fstest.MapFile{Data: []byte("considerably longer"), ModTime: mtime}
	text, ok := p.ReadString("a.glsl")
	require.True(t, ok)
	assert.Equal(t, "considerably longer", text)
}

func TestSmartProvider_VanishedFileFailsSafely(t *testing.T) {
	sink := &recordingSink{}
	mapfs := fstest.MapFS{
		"a.glsl": {Data: []byte("content")},
	}
	p := source.NewSmartProvider(source.NewMapFSAdapter("/", mapfs), sink)

	_, ok := p.ReadString("a.glsl")
	require.True(t, ok)

	delete(mapfs, "a.glsl")
	_, ok = p.ReadString("a.glsl")
	assert.False(t, ok)
	require.Len(t, sink.msgs, 1)
	assert.Contains(t, sink.msgs[0], "a.glsl")
}
