package token

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in a one-time code.
const OTPLength = 6

type OTPGenerator interface {
	Generate() (string, error)
}

type otpGenerator struct {
	max *big.Int
}

func NewOTPGenerator() OTPGenerator {
	return &otpGenerator{max: big.NewInt(1_000_000)}
}

// Generate returns a uniformly random zero-padded decimal code.
func (g *otpGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, g.max)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", OTPLength, n.Int64()), nil
}

// Equal compares two codes in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
