// Package processor implements the directive resolution engine: it turns a
// named top-level shader into one flattened text buffer by recursively
// inlining #include fragments and injecting the version pragma and macro
// definitions at the top.
package processor

import (
	"fmt"
	"strings"

	"glslpp/internal/core/domain"
	"glslpp/internal/core/ports"
)

// DefaultVersion is the pragma injected when no version is configured.
const DefaultVersion = "#version 450 core"

// Processor resolves top-level shader sources. It owns the definition map;
// definitions are mutated only through Define/DefineFlag/Undefine/
// ClearDefinitions and live as long as the Processor.
//
// A Processor is not safe for concurrent mutation; callers that share one
// instance across goroutines must supply external locking.
type Processor struct {
	retriever ports.SourceRetriever
	version   string
	sink      ports.DiagnosticSink
	defs      map[string]string
}

// Option configures a Processor.
type Option func(*Processor)

// WithVersion sets the version pragma line injected into top-level sources.
func WithVersion(version string) Option {
	return func(p *Processor) { p.version = version }
}

// WithDiagnostics sets the sink syntax diagnostics are reported to.
func WithDiagnostics(sink ports.DiagnosticSink) Option {
	return func(p *Processor) {
		if sink != nil {
			p.sink = sink
		}
	}
}

// New creates a Processor reading through the given retriever.
func New(retriever ports.SourceRetriever, opts ...Option) *Processor {
	p := &Processor{
		retriever: retriever,
		version:   DefaultVersion,
		sink:      ports.NopSink,
		defs:      make(map[string]string),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Define inserts or overwrites a macro definition. The value is rendered
// with its default textual representation, so Define("N", 4) emits
// "#define N 4".
func (p *Processor) Define(name string, value any) {
	p.defs[name] = fmt.Sprintf("%v", value)
}

// DefineFlag registers a flag-only macro with an empty value.
func (p *Processor) DefineFlag(name string) {
	p.defs[name] = ""
}

// Undefine removes a definition if present.
func (p *Processor) Undefine(name string) {
	delete(p.defs, name)
}

// ClearDefinitions removes all definitions.
func (p *Processor) ClearDefinitions() {
	clear(p.defs)
}

// ResolveSource resolves the named top-level shader into one flattened
// buffer. It returns ok=false when the source cannot be retrieved, any
// included fragment cannot be retrieved, or an #include directive is
// malformed; the cause has been reported through the diagnostic sinks and
// there is no partial output.
func (p *Processor) ResolveSource(name string) (string, bool) {
	src, ok := p.retriever.GetSource(domain.RoleSource, name)
	if !ok {
		return "", false
	}

	// The inclusion set lives for exactly one resolution. A fragment's name
	// is recorded before its own directives are scanned, so a fragment that
	// re-references itself is skipped on the repeat reference instead of
	// recursing forever. A genuine cycle is therefore truncated silently,
	// same as a benign diamond share.
	included := make(map[string]struct{})
	return p.flatten(src, domain.RoleSource, included)
}

func (p *Processor) flatten(src string, role domain.SourceRole, included map[string]struct{}) (string, bool) {
	var b strings.Builder
	b.Grow(len(src) + len(src)/2)

	if role == domain.RoleSource {
		b.WriteString(p.version)
		b.WriteByte('\n')
		for name, value := range p.defs {
			b.WriteString("#define ")
			b.WriteString(name)
			b.WriteByte(' ')
			b.WriteString(value)
			b.WriteByte('\n')
		}
	}

	for line := range strings.SplitSeq(src, "\n") {
		if !strings.HasPrefix(line, includePrefix) {
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}

		name, ok := scanIncludeName(line)
		if !ok {
			p.sink.Report(fmt.Sprintf("malformed #include directive at '%s'", line))
			return "", false
		}

		if _, seen := included[name]; seen {
			continue
		}
		included[name] = struct{}{}

		frag, ok := p.retriever.GetSource(domain.RoleInclude, name)
		if !ok {
			return "", false
		}
		flat, ok := p.flatten(frag, domain.RoleInclude, included)
		if !ok {
			return "", false
		}
		b.WriteString(flat)
	}

	return b.String(), true
}
