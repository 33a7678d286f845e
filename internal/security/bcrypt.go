package security

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes and verifies passwords using bcrypt. Callers must not
// log or persist plaintext passwords.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a BcryptHasher with the cost clamped to the range
// bcrypt accepts. A non-positive cost selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify uses bcrypt's constant-time comparison. Passwords longer than 72
// bytes are rejected by bcrypt and never verify.
func (h *BcryptHasher) Verify(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
