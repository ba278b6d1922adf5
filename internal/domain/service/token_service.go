package service

// TokenService defines the interface for issuing and validating the signed
// bearer tokens used for authentication.
type TokenService interface {
	// Issue creates a signed token carrying the username as subject plus role
	// and user ID claims, expiring after the configured lifetime.
	Issue(username, role string, userID int64) (string, error)

	// Validate reports whether the token's signature verifies, its expiry is
	// still in the future at the time of the call, and its subject equals
	// expectedUsername. It fails closed: any parse or verification problem
	// yields false, never an error.
	Validate(tokenString, expectedUsername string) bool

	// ExtractUsername returns the subject claim. It fails with a token error
	// when the signature is invalid or the token is malformed or expired.
	ExtractUsername(tokenString string) (string, error)

	// ExtractUserID returns the user ID claim.
	ExtractUserID(tokenString string) (int64, error)

	// ExtractRole returns the role claim.
	ExtractRole(tokenString string) (string, error)
}
