package ports

import "glslpp/internal/core/domain"

// SourceRetriever turns a (role, name) pair into raw shader text.
//
// Absence is the only failure signal: implementations report the reason
// through their diagnostic sink and return ok=false. Callers must not expect
// an error value.
//
//go:generate mockgen -source=retriever.go -destination=mocks/mock_retriever.go -package=mocks
type SourceRetriever interface {
	// GetSource returns the raw text of the named file, or ok=false if it
	// cannot be supplied.
	GetSource(role domain.SourceRole, name string) (text string, ok bool)
}

// PathPolicy maps a (role, name) pair to a concrete file path.
type PathPolicy interface {
	// Filepath returns the path the named file is read from for the given role.
	Filepath(role domain.SourceRole, name string) string
}
