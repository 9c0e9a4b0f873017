package source

import (
	"glslpp/internal/core/domain"
	"glslpp/internal/core/ports"
)

var _ ports.SourceRetriever = (*Retriever)(nil)

// Retriever implements ports.SourceRetriever by resolving names through a
// path policy and reading the resulting paths through a file provider.
type Retriever struct {
	provider FileProvider
	policy   ports.PathPolicy
}

// NewRetriever creates a Retriever from a provider and a path policy.
func NewRetriever(provider FileProvider, policy ports.PathPolicy) *Retriever {
	return &Retriever{
		provider: provider,
		policy:   policy,
	}
}

// GetSource returns the raw text of the named file, or ok=false if it cannot
// be supplied. The provider has already reported the reason through its sink.
func (r *Retriever) GetSource(role domain.SourceRole, name string) (string, bool) {
	return r.provider.ReadString(r.policy.Filepath(role, name))
}
