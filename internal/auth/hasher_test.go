package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashVerifyRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	for _, password := range []string{"secret1", "p", "with spaces and ünïcödé", strings.Repeat("x", 72)} {
		digest, err := hasher.Hash(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, digest)

		ok, err := hasher.Verify(password, digest)
		require.NoError(t, err)
		assert.True(t, ok, "password %q should verify against its own digest", password)
	}
}

func TestBcryptHasher_MismatchIsNotAnError(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("secret1")
	require.NoError(t, err)

	ok, err := hasher.Verify("secret2", digest)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Verify("", digest)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	a, err := hasher.Hash("secret1")
	require.NoError(t, err)
	b, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(DefaultCost)

	digest, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	assert.Equal(t, DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
}

func TestBcryptHasher_EmptySecretRejected(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("")
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.Empty(t, digest)
}

func TestBcryptHasher_TooLongSecretRejected(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_MalformedDigestIsAnError(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "plaintext", "$2a$10$short"} {
		ok, err := hasher.Verify("secret1", digest)
		assert.Error(t, err, "digest %q", digest)
		assert.False(t, ok)
	}
}
