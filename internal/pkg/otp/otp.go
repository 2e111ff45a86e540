package otp

import (
	"crypto/rand"
	"math/big"
)

const (
	// Digits is the number of digits in a generated code.
	Digits = 6

	codeMin  = 100000
	codeSpan = 900000
)

// Generator produces one-time codes for email delivery.
type Generator interface {
	// Generate returns a new one-time code.
	Generate() (string, error)
}

// Numeric generates fixed-length numeric codes using crypto/rand.
//
// Codes are drawn uniformly from [100000, 999999] so every code has exactly
// six digits and no leading zero.
type Numeric struct{}

// NewNumeric returns a numeric code generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a new six-digit code.
func (*Numeric) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}

	return big.NewInt(0).Add(n, big.NewInt(codeMin)).String(), nil
}
