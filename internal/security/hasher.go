package security

import (
	"fmt"
	"strings"
)

const (
	AlgorithmArgon2id = "argon2id"
	AlgorithmBcrypt   = "bcrypt"
)

type Options struct {
	Algorithm  string
	BcryptCost int
	Argon2     Argon2Params
}

// Hasher produces digests with one algorithm and verifies digests produced
// by any supported algorithm, picked from the digest prefix.
type Hasher struct {
	algorithm string
	argon2    *Argon2idHasher
	bcrypt    *BcryptHasher
}

func NewHasher(opts Options) (*Hasher, error) {
	algo := strings.ToLower(strings.TrimSpace(opts.Algorithm))
	if algo == "" {
		algo = AlgorithmArgon2id
	}
	if algo != AlgorithmArgon2id && algo != AlgorithmBcrypt {
		return nil, fmt.Errorf("unsupported password hasher: %s", opts.Algorithm)
	}
	return &Hasher{
		algorithm: algo,
		argon2:    NewArgon2idHasher(opts.Argon2),
		bcrypt:    NewBcryptHasher(opts.BcryptCost),
	}, nil
}

func (h *Hasher) Algorithm() string {
	return h.algorithm
}

func (h *Hasher) Hash(password string) (string, error) {
	if h.algorithm == AlgorithmBcrypt {
		return h.bcrypt.Hash(password)
	}
	return h.argon2.Hash(password)
}

func (h *Hasher) Verify(digest, password string) bool {
	switch {
	case strings.HasPrefix(digest, argon2Prefix):
		return h.argon2.Verify(digest, password)
	case strings.HasPrefix(digest, "$2a$"), strings.HasPrefix(digest, "$2b$"), strings.HasPrefix(digest, "$2y$"):
		return h.bcrypt.Verify(digest, password)
	default:
		return false
	}
}
