// Package sha256 fingerprints generated artifacts.
package sha256

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher implements generator.Hasher using SHA-256.
type Hasher struct{}

// New returns a SHA-256 hasher.
func New() *Hasher {
	return &Hasher{}
}

// Hash returns the hex digest of an artifact body. Identical bodies always
// produce identical digests, which lets consumers skip unchanged artifacts.
func (h *Hasher) Hash(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
