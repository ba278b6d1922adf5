package auth

import (
	"crypto/rand"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inventory/config"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
	"inventory/internal/errors"
)

const (
	defaultTokenTTL  = 24 * time.Hour
	generatedKeySize = 32
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing key is fixed for the lifetime of the process and shared read-only
// across requests; when no key is configured, a random one is generated at
// construction, which invalidates all outstanding tokens on restart.
type jwtService struct {
	signingKey []byte
	ttl        time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	var key []byte
	ttl := defaultTokenTTL

	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.SigningKey != "" {
			key = []byte(cfg.Auth.SigningKey)
		}
		if cfg.Auth.TokenTTL > 0 {
			ttl = cfg.Auth.TokenTTL
		}
	}

	if key == nil {
		key = make([]byte, generatedKeySize)
		if _, err := rand.Read(key); err != nil {
			return nil, errors.Wrap(err, "failed to generate signing key")
		}
	}

	return &jwtService{
		signingKey: key,
		ttl:        ttl,
	}, nil
}

// Issue creates a signed token with the username as subject plus role and
// user ID claims, expiring after the configured lifetime.
func (s *jwtService) Issue(username, role string, userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    username,
		"role":   role,
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate fails closed: it returns true only when the signature verifies,
// the expiry is still in the future right now, and the subject equals
// expectedUsername. Expiry is checked against the wall clock at each call,
// never cached from issuance.
func (s *jwtService) Validate(tokenString, expectedUsername string) bool {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return false
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return false
	}

	return subject == expectedUsername
}

// ExtractUsername returns the subject claim of a verified token.
func (s *jwtService) ExtractUsername(tokenString string) (string, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return "", err
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenInvalid, "subject claim missing")
	}

	return subject, nil
}

// ExtractUserID returns the user ID claim of a verified token.
func (s *jwtService) ExtractUserID(tokenString string) (int64, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return 0, err
	}

	// JSON numbers decode as float64 in MapClaims.
	id, ok := claims["userId"].(float64)
	if !ok {
		return 0, errors.Wrap(domainerrors.ErrTokenInvalid, "userId claim missing")
	}

	return int64(id), nil
}

// ExtractRole returns the role claim of a verified token.
func (s *jwtService) ExtractRole(tokenString string) (string, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return "", err
	}

	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.Wrap(domainerrors.ErrTokenInvalid, "role claim missing")
	}

	return role, nil
}

// parseClaims verifies the signature and standard claims (including expiry
// against the current time) and returns the claim set.
func (s *jwtService) parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.signingKey, nil
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "unexpected claims type")
	}

	return claims, nil
}
