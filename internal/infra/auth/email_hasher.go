package auth

import (
	"crypto/md5" //nolint:gosec // lookup index key, not a credential hash
	"encoding/hex"
	"strings"

	"inventory/internal/domain/service"
	"inventory/internal/errors"
)

// md5EmailHasher implements service.EmailHasher with a fast deterministic
// digest. Emails are stored only under this hash so the plaintext address
// never reaches the database; MD5 is acceptable here because the hash serves
// as a unique index key, not as password-grade protection.
type md5EmailHasher struct{}

// NewEmailHasher is the constructor for md5EmailHasher.
func NewEmailHasher() service.EmailHasher {
	return &md5EmailHasher{}
}

// HashForLookup returns the hex MD5 of the lowercased, whitespace-trimmed
// email so that " A@B.com " and "a@b.com" map to the same key.
func (h *md5EmailHasher) HashForLookup(email string) (string, error) {
	if email == "" {
		return "", errors.New("email cannot be empty")
	}

	normalized := strings.TrimSpace(strings.ToLower(email))
	if normalized == "" {
		return "", errors.New("email cannot be empty")
	}

	sum := md5.Sum([]byte(normalized)) //nolint:gosec // see type comment

	return hex.EncodeToString(sum[:]), nil
}

// Verify reports whether the email hashes to the given lookup hash.
func (h *md5EmailHasher) Verify(email, hash string) (bool, error) {
	computed, err := h.HashForLookup(email)
	if err != nil {
		return false, err
	}

	return computed == hash, nil
}
