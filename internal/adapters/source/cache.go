package source

import (
	"fmt"

	"glslpp/internal/core/ports"
)

// CachedProvider caches the first successful read of each path for the
// process lifetime. Cached entries are never revalidated: if the underlying
// file changes, stale text keeps being served. Use SmartProvider when files
// may change at runtime.
//
// Entries are never evicted; the cache grows with the set of distinct paths,
// which is bounded for a known shader set. Not safe for concurrent use
// without external locking.
type CachedProvider struct {
	fsys  FileSystem
	sink  ports.DiagnosticSink
	cache map[string]string
}

// NewCachedProvider creates a cache-forever provider.
func NewCachedProvider(fsys FileSystem, sink ports.DiagnosticSink) *CachedProvider {
	if sink == nil {
		sink = ports.NopSink
	}
	return &CachedProvider{
		fsys:  fsys,
		sink:  sink,
		cache: make(map[string]string),
	}
}

// ReadString returns the cached text for path, reading it on first request.
func (p *CachedProvider) ReadString(path string) (string, bool) {
	if text, ok := p.cache[path]; ok {
		return text, true
	}
	text, ok := readString(p.fsys, p.sink, path)
	if !ok {
		return "", false
	}
	p.cache[path] = text
	return text, true
}

// smartKey identifies one version of a file. A change to the modification
// time or size produces a new key, so the stale entry simply stops matching.
type smartKey struct {
	path  string
	mtime int64
	size  int64
}

// SmartProvider caches reads keyed by (path, modification time, size). The
// file's metadata is probed before every lookup; a changed file therefore
// misses the cache naturally, while an unchanged file hits it. A metadata
// probe failure (e.g. the file vanished) fails the call safely with ok=false.
//
// Entries are never evicted. Not safe for concurrent use without external
// locking.
type SmartProvider struct {
	fsys  FileSystem
	sink  ports.DiagnosticSink
	cache map[smartKey]string
}

// NewSmartProvider creates a staleness-checked caching provider.
func NewSmartProvider(fsys FileSystem, sink ports.DiagnosticSink) *SmartProvider {
	if sink == nil {
		sink = ports.NopSink
	}
	return &SmartProvider{
		fsys:  fsys,
		sink:  sink,
		cache: make(map[smartKey]string),
	}
}

// ReadString returns the text for the current version of the file at path.
func (p *SmartProvider) ReadString(path string) (string, bool) {
	info, err := p.fsys.Stat(path)
	if err != nil {
		p.sink.Report(fmt.Sprintf("failed to probe shader file %q: %v", path, err))
		return "", false
	}

	key := smartKey{
		path:  path,
		mtime: info.ModTime().UnixNano(),
		size:  info.Size(),
	}
	if text, ok := p.cache[key]; ok {
		return text, true
	}

	text, ok := readString(p.fsys, p.sink, path)
	if !ok {
		return "", false
	}
	p.cache[key] = text
	return text, true
}
