package pkghash

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Verify when the secret does not match the hash,
// including when the stored hash is not a bcrypt hash at all.
var ErrMismatch = errors.New("hash mismatch")

// bcrypt rejects secrets longer than this.
const maxSecretBytes = 72

// Hasher hashes secrets and verifies them against stored hashes.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(hash, secret string) error
}

// Bcrypt is a Hasher backed by golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a bcrypt Hasher. Costs outside bcrypt's valid range
// fall back to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of secret. Secrets over 72 bytes are
// SHA-256 digested first.
func (b *Bcrypt) Hash(secret string) (string, error) {
	out, err := bcrypt.GenerateFromPassword(prepare(secret), b.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify returns nil when secret matches hash and ErrMismatch when it does not.
func (b *Bcrypt) Verify(hash, secret string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prepare(secret))
	if err == nil {
		return nil
	}

	var prefixErr bcrypt.InvalidHashPrefixError
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) ||
		errors.Is(err, bcrypt.ErrHashTooShort) ||
		errors.As(err, &prefixErr) {
		return ErrMismatch
	}
	return err
}

func prepare(secret string) []byte {
	if len(secret) <= maxSecretBytes {
		return []byte(secret)
	}
	sum := sha256.Sum256([]byte(secret))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
