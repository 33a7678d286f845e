package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argon2Prefix  = "$argon2id$"
	argon2SaltLen = 16
	argon2KeyLen  = 32
)

// ErrMalformedDigest is returned when a stored digest cannot be decoded.
var ErrMalformedDigest = errors.New("malformed password digest")

// Argon2Params are the argon2id cost parameters. Memory is in KiB.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultArgon2Params follows the RFC 9106 second recommended option.
var DefaultArgon2Params = Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4}

// Argon2idHasher hashes passwords with argon2id and a random per-digest salt.
// Digests are self-describing:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// so parameters can change without invalidating stored digests.
type Argon2idHasher struct {
	Params Argon2Params
}

// NewArgon2idHasher returns a hasher using p, replacing zero fields with the
// defaults.
func NewArgon2idHasher(p Argon2Params) *Argon2idHasher {
	if p.Time == 0 {
		p.Time = DefaultArgon2Params.Time
	}
	if p.Memory == 0 {
		p.Memory = DefaultArgon2Params.Memory
	}
	if p.Threads == 0 {
		p.Threads = DefaultArgon2Params.Threads
	}
	// argon2 requires at least 8 KiB per lane.
	if floor := 8 * uint32(p.Threads); p.Memory < floor {
		p.Memory = floor
	}
	return &Argon2idHasher{Params: p}
}

// Derive is the deterministic core of the hasher: the same password, salt and
// parameters always produce the same key.
func (h *Argon2idHasher) Derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, h.Params.Time, h.Params.Memory, h.Params.Threads, argon2KeyLen)
}

// Hash draws a fresh salt and returns the encoded digest.
func (h *Argon2idHasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return h.encode(salt, h.Derive(password, salt)), nil
}

// Verify recomputes the key with the salt and parameters stored in digest and
// compares in constant time. Malformed digests never verify.
func (h *Argon2idHasher) Verify(digest, password string) bool {
	p, salt, key, err := decodeArgon2(digest)
	if err != nil {
		return false
	}
	got := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(got, key) == 1
}

func (h *Argon2idHasher) encode(salt, key []byte) string {
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix,
		argon2.Version,
		h.Params.Memory,
		h.Params.Time,
		h.Params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decodeArgon2(digest string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, ErrMalformedDigest
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, ErrMalformedDigest
	}
	if p.Time == 0 || p.Threads == 0 || p.Memory < 8*uint32(p.Threads) {
		return p, nil, nil, ErrMalformedDigest
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, ErrMalformedDigest
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrMalformedDigest
	}
	return p, salt, key, nil
}
