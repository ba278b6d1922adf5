package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/config"
)

func newTestTokenConfig(key string) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		SigningKey: key,
		TokenTTL:   time.Hour,
	}

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_signing_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.Issue("alice1", "USER", 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid immediately after issuance for the right subject.
	assert.True(t, svc.Validate(token, "alice1"))

	// Fails closed for a different subject.
	assert.False(t, svc.Validate(token, "bob"))

	// Claims round-trip.
	username, err := svc.ExtractUsername(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice1", username)

	role, err := svc.ExtractRole(token)
	assert.NoError(t, err)
	assert.Equal(t, "USER", role)

	userID, err := svc.ExtractUserID(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTService_GeneratedKeyWhenUnconfigured(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{}}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.Issue("alice1", "USER", 1)
	require.NoError(t, err)
	assert.True(t, svc.Validate(token, "alice1"))

	// A second service has its own random key, so tokens from the first do
	// not verify against it.
	other, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.False(t, other.Validate(token, "alice1"))

	_, err = other.ExtractUsername(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		signingKey: []byte("test_signing_key_very_long_for_testing"),
		ttl:        -time.Minute,
	}

	token, err := svc.Issue("alice1", "USER", 42)
	require.NoError(t, err)

	// Expiry is compared against the wall clock at validation time.
	assert.False(t, svc.Validate(token, "alice1"))

	_, err = svc.ExtractUsername(token)
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_signing_key_very_long_for_testing"))
	require.NoError(t, err)

	assert.False(t, svc.Validate("clearly-not-a-jwt", "alice1"))

	_, err = svc.ExtractUsername("clearly-not-a-jwt")
	assert.Error(t, err)

	_, err = svc.ExtractUserID("")
	assert.Error(t, err)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_signing_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.Issue("alice1", "USER", 42)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	assert.False(t, svc.Validate(tampered, "alice1"))
}

func TestJWTService_TTLDefaultsTo24h(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{SigningKey: "key"}}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	concrete, ok := svc.(*jwtService)
	require.True(t, ok)
	assert.Equal(t, 24*time.Hour, concrete.ttl)
}
