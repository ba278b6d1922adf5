// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	// It fails on empty input.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}

// EmailHasher produces the deterministic, non-secret lookup hash under which
// email addresses are indexed. It is distinct from PasswordHasher: the output
// is an index key, not a credential.
type EmailHasher interface {
	// HashForLookup hashes an email address after lowercasing and trimming
	// whitespace, so equivalent spellings map to the same key. It fails on
	// empty input.
	HashForLookup(email string) (string, error)

	// Verify reports whether the email hashes to the given lookup hash.
	Verify(email, hash string) (bool, error)
}
