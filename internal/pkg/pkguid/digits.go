package pkguid

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Digits generates fixed-length numeric codes, such as one-time passwords.
type Digits struct {
	length int
	max    *big.Int
}

// NewDigits returns a generator of codes with the given number of digits.
// Non-positive lengths default to 6.
func NewDigits(length int) *Digits {
	if length < 1 {
		length = 6
	}

	return &Digits{
		length: length,
		max:    new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil),
	}
}

// Generate returns a zero-padded random code drawn from crypto/rand.
func (d *Digits) Generate() string {
	n, err := rand.Int(rand.Reader, d.max)
	if err != nil {
		panic(fmt.Sprintf("pkguid: crypto/rand failed: %v", err))
	}

	return fmt.Sprintf("%0*d", d.length, n.Int64())
}
