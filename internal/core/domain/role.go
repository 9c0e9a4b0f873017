// Package domain contains the core types of the shader preprocessor.
package domain

// SourceRole distinguishes a top-level shader source from an included
// fragment. The role decides which directory root a name resolves under and
// whether the resolved text receives the injected preamble.
type SourceRole uint8

const (
	// RoleSource is an entry-point shader submitted directly for resolution.
	RoleSource SourceRole = iota
	// RoleInclude is a fragment reachable only through #include directives.
	RoleInclude
)

// String returns a human-readable role name for diagnostics.
func (r SourceRole) String() string {
	switch r {
	case RoleSource:
		return "source"
	case RoleInclude:
		return "include"
	default:
		return "unknown"
	}
}
