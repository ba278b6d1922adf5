package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailHasher_CaseAndWhitespaceInsensitive(t *testing.T) {
	hasher := NewEmailHasher()

	canonical, err := hasher.HashForLookup("a@b.com")
	require.NoError(t, err)

	variants := []string{" A@B.com ", "A@b.COM", "\ta@b.com\n"}
	for _, variant := range variants {
		hash, err := hasher.HashForLookup(variant)
		require.NoError(t, err)
		assert.Equal(t, canonical, hash, "variant %q should normalize to the same key", variant)
	}
}

func TestEmailHasher_KnownDigest(t *testing.T) {
	hasher := NewEmailHasher()

	hash, err := hasher.HashForLookup("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "357a20e8c56e69d6f9734d23ef9517e8", hash)
	assert.Len(t, hash, 32)
}

func TestEmailHasher_EmptyInput(t *testing.T) {
	hasher := NewEmailHasher()

	_, err := hasher.HashForLookup("")
	assert.Error(t, err)

	_, err = hasher.HashForLookup("   ")
	assert.Error(t, err)
}

func TestEmailHasher_Verify(t *testing.T) {
	hasher := NewEmailHasher()

	hash, err := hasher.HashForLookup("alice@example.com")
	require.NoError(t, err)

	ok, err := hasher.Verify(" ALICE@example.com ", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("bob@example.com", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = hasher.Verify("", hash)
	assert.Error(t, err)
}
