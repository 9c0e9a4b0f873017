// Package glslpp flattens GLSL shader sources: it resolves #include
// directives recursively and injects a version pragma and caller-defined
// macros at the top of every entry-point shader.
//
// The package re-exports the engine and retrieval types so library users do
// not need to reach into internal packages:
//
//	retriever := glslpp.NewFileRetriever("shaders/src", "shaders/include", glslpp.CacheSmart, nil)
//	proc := glslpp.New(retriever, glslpp.WithVersion("#version 330"))
//	proc.Define("MAX_LIGHTS", 4)
//	flat, ok := proc.ResolveSource("main.vert")
package glslpp

import (
	"glslpp/internal/adapters/source"
	"glslpp/internal/core/domain"
	"glslpp/internal/core/ports"
	"glslpp/internal/engine/processor"
)

// Core types, aliased from the internal packages.
type (
	// Processor resolves top-level shader sources into flattened buffers.
	Processor = processor.Processor
	// Option configures a Processor.
	Option = processor.Option
	// SourceRetriever supplies raw shader text by role and name.
	SourceRetriever = ports.SourceRetriever
	// PathPolicy maps logical shader names to file paths.
	PathPolicy = ports.PathPolicy
	// DiagnosticSink receives human-readable diagnostics.
	DiagnosticSink = ports.DiagnosticSink
	// DiagnosticFunc adapts a plain function to a DiagnosticSink.
	DiagnosticFunc = ports.DiagnosticFunc
	// SourceRole distinguishes entry-point sources from included fragments.
	SourceRole = domain.SourceRole
	// CacheMode selects the source retrieval caching strategy.
	CacheMode = domain.CacheMode
)

// Source roles.
const (
	RoleSource  = domain.RoleSource
	RoleInclude = domain.RoleInclude
)

// Cache modes.
const (
	CacheNone    = domain.CacheNone
	CacheForever = domain.CacheForever
	CacheSmart   = domain.CacheSmart
)

// DefaultVersion is the pragma injected when no version is configured.
const DefaultVersion = processor.DefaultVersion

// NopSink discards all diagnostics.
var NopSink = ports.NopSink

// New creates a Processor reading through the given retriever.
func New(retriever SourceRetriever, opts ...Option) *Processor {
	return processor.New(retriever, opts...)
}

// WithVersion sets the version pragma line injected into top-level sources.
func WithVersion(version string) Option {
	return processor.WithVersion(version)
}

// WithDiagnostics sets the sink syntax diagnostics are reported to.
func WithDiagnostics(sink DiagnosticSink) Option {
	return processor.WithDiagnostics(sink)
}

// NewFileRetriever creates a retriever that reads entry-point shaders from
// srcRoot and included fragments from includeRoot, caching per the given
// mode. A nil sink discards read diagnostics.
func NewFileRetriever(srcRoot, includeRoot string, mode CacheMode, sink DiagnosticSink) SourceRetriever {
	return source.NewRetriever(
		source.NewProvider(mode, source.NewOSFS(), sink),
		source.NewSplitDirsAt(srcRoot, includeRoot),
	)
}

// NewSingleDirRetriever creates a retriever that resolves every shader name,
// regardless of role, under one shared root.
func NewSingleDirRetriever(root string, mode CacheMode, sink DiagnosticSink) SourceRetriever {
	return source.NewRetriever(
		source.NewProvider(mode, source.NewOSFS(), sink),
		source.NewSingleDir(root),
	)
}
