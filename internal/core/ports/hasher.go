package ports

// Hasher defines the interface for content fingerprinting. Fingerprints are
// used to skip rewriting outputs whose content has not changed.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns the fingerprint of the given content.
	Fingerprint(data []byte) uint64

	// FingerprintFile returns the fingerprint of the file's content.
	FingerprintFile(path string) (uint64, error)
}
