// Package fs provides content fingerprinting for generated shader outputs.
package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"glslpp/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash fingerprints of output content. Fingerprints let
// the app skip rewriting files whose flattened content has not changed, so
// downstream build steps watching the output directory do not retrigger.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint returns the fingerprint of the given content.
func (h *Hasher) Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FingerprintFile returns the fingerprint of the file's content.
func (h *Hasher) FingerprintFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open output file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash output file"), "path", path)
	}

	return digest.Sum64(), nil
}
