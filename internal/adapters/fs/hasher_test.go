package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glslpp/internal/adapters/fs"
)

func TestHasher_FingerprintMatchesFile(t *testing.T) {
	content := []byte("#version 450 core\nvoid main() {}\n")
	path := filepath.Join(t.TempDir(), "main.vert")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	h := fs.NewHasher()

	fromFile, err := h.FingerprintFile(path)
	require.NoError(t, err)
	assert.Equal(t, h.Fingerprint(content), fromFile)
}

func TestHasher_FingerprintDiffersOnChange(t *testing.T) {
	h := fs.NewHasher()

	a := h.Fingerprint([]byte("content a"))
	b := h.Fingerprint([]byte("content b"))
	assert.NotEqual(t, a, b)
}

func TestHasher_FingerprintFile_Missing(t *testing.T) {
	h := fs.NewHasher()

	_, err := h.FingerprintFile(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
