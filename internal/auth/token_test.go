package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nirmalvora/padosee-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "token-test-secret-at-least-32-chars!"

var testUser = &domain.User{
	ID:           "2f7c0a51-6f0e-4d0c-9a55-0d8a9c1c1b11",
	FirstName:    "Asha",
	LastName:     "Rao",
	Email:        "a@x.com",
	PasswordHash: "$2a$10$abcdefghijklmnopqrstuuKQ0qQ9K1c3nqj3Qb5l1dA0a7c0E1s2",
}

func fixedIssuer(key []byte, now time.Time) *TokenIssuer {
	i := NewTokenIssuer(key)
	i.now = func() time.Time { return now }
	return i
}

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer([]byte(testKey))

	raw, err := issuer.Issue(testUser.Sanitize())
	require.NoError(t, err)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, claims.User.ID)
	assert.Equal(t, testUser.Email, claims.User.Email)
}

func TestTokenIssuer_ExpiresAfterFourHours(t *testing.T) {
	now := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	issuer := fixedIssuer([]byte(testKey), now)

	raw, err := issuer.Issue(testUser.Sanitize())
	require.NoError(t, err)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, now.Add(4*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())

	late := fixedIssuer([]byte(testKey), now.Add(4*time.Hour+time.Second))
	_, err = late.Parse(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenIssuer_PayloadHasNoDigest(t *testing.T) {
	issuer := NewTokenIssuer([]byte(testKey))

	raw, err := issuer.Issue(testUser.Sanitize())
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	assert.NotContains(t, string(payload), testUser.PasswordHash)
	assert.NotContains(t, string(payload), "password")
	assert.Contains(t, string(payload), `"user"`)
}

func TestTokenIssuer_MissingKey(t *testing.T) {
	issuer := NewTokenIssuer(nil)

	raw, err := issuer.Issue(testUser.Sanitize())
	assert.ErrorIs(t, err, ErrSigningKeyMissing)
	assert.Empty(t, raw)

	_, err = issuer.Parse("a.b.c")
	assert.ErrorIs(t, err, ErrSigningKeyMissing)
}

func TestTokenIssuer_WrongKeyRejected(t *testing.T) {
	raw, err := NewTokenIssuer([]byte("another-secret-that-is-32-chars!!")).Issue(testUser.Sanitize())
	require.NoError(t, err)

	_, err = NewTokenIssuer([]byte(testKey)).Parse(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenIssuer_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		User: testUser.Sanitize(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer([]byte(testKey)).Parse(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenIssuer_RejectsMissingUserID(t *testing.T) {
	issuer := NewTokenIssuer([]byte(testKey))

	raw, err := issuer.Issue(domain.SanitizedUser{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = issuer.Parse(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
