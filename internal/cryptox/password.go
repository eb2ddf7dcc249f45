// Package cryptox wraps the password hashing primitive and a few helpers
// for handling secrets in memory.
package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns plaintext passwords into salted one-way hashes
// and checks candidates against them.
type PasswordHasher interface {
	Hash(password []byte) ([]byte, error)
	Compare(hash, password []byte) bool
}

// BcryptHasher implements PasswordHasher with bcrypt over a base64
// SHA-256 digest of the password, so passwords of any length are accepted
// and no byte past bcrypt's 72-byte window is ignored.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given cost. Costs outside
// bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password []byte) ([]byte, error) {
	digest := prehash(password)
	defer WipeByteArray(digest)

	hash, err := bcrypt.GenerateFromPassword(digest, h.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// Compare reports whether password matches hash. Malformed hashes never match.
func (h *BcryptHasher) Compare(hash, password []byte) bool {
	digest := prehash(password)
	defer WipeByteArray(digest)

	return bcrypt.CompareHashAndPassword(hash, digest) == nil
}

// prehash returns the 44-byte base64 form of sha256(password). Base64 keeps
// NUL bytes out of bcrypt's input.
func prehash(password []byte) []byte {
	sum := sha256.Sum256(password)
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// WipeByteArray overwrites b with zeros. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
