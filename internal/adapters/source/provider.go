// Package source implements the shader retrieval layer: path policies that
// map logical names to files, and file providers with three caching
// strategies (uncached, cache-forever, staleness-checked).
package source

import (
	"fmt"

	"glslpp/internal/core/domain"
	"glslpp/internal/core/ports"
)

// FileProvider reads the raw text of a file. Implementations decide whether
// and how reads are cached. A provider reports its own failures through its
// diagnostic sink and signals them to the caller as ok=false.
type FileProvider interface {
	ReadString(path string) (text string, ok bool)
}

var (
	_ FileProvider = (*DirectProvider)(nil)
	_ FileProvider = (*CachedProvider)(nil)
	_ FileProvider = (*SmartProvider)(nil)
)

// NewProvider returns the provider implementing the given cache mode.
func NewProvider(mode domain.CacheMode, fsys FileSystem, sink ports.DiagnosticSink) FileProvider {
	switch mode {
	case domain.CacheNone:
		return NewDirectProvider(fsys, sink)
	case domain.CacheForever:
		return NewCachedProvider(fsys, sink)
	default:
		return NewSmartProvider(fsys, sink)
	}
}

// readString is the shared read primitive of all providers.
func readString(fsys FileSystem, sink ports.DiagnosticSink, path string) (string, bool) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		sink.Report(fmt.Sprintf("failed to read shader file %q: %v", path, err))
		return "", false
	}
	return string(data), true
}

// DirectProvider reads the file from the filesystem on every call.
type DirectProvider struct {
	fsys FileSystem
	sink ports.DiagnosticSink
}

// NewDirectProvider creates an uncached provider.
func NewDirectProvider(fsys FileSystem, sink ports.DiagnosticSink) *DirectProvider {
	if sink == nil {
		sink = ports.NopSink
	}
	return &DirectProvider{fsys: fsys, sink: sink}
}

// ReadString reads the file at path.
func (p *DirectProvider) ReadString(path string) (string, bool) {
	return readString(p.fsys, p.sink, path)
}
