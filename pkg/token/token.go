// Package token generates opaque bearer tokens and their keyed hashes.
//
// Only the hash is ever persisted. A lookup hashes the presented token with
// the same secret and compares hashes inside the database query.
package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

// DefaultSize is the number of random bytes in a generated token.
const DefaultSize = 32

// ErrMissingSecret is returned by NewHasher when no secret is configured.
var ErrMissingSecret = errors.New("token: missing secret")

// Hasher computes HMAC-SHA256 digests of tokens with a server-held secret.
type Hasher struct {
	secret []byte
}

func NewHasher(secret string) (*Hasher, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Hasher{secret: []byte(secret)}, nil
}

// Hash returns the hex encoded HMAC of value.
func (h *Hasher) Hash(value string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}

// Generate returns a URL-safe random token of size bytes of entropy.
func Generate(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token: reading random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
