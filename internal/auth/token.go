package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nirmalvora/padosee-server/internal/domain"
)

// SessionTTL is fixed at issuance; tokens are not refreshed.
const SessionTTL = 4 * time.Hour

var (
	// ErrSigningKeyMissing is returned by Issue when no key was configured.
	ErrSigningKeyMissing = errors.New("signing key is not configured")

	// ErrTokenInvalid covers every Parse failure: bad signature, expiry or payload.
	ErrTokenInvalid = errors.New("token is invalid or expired")
)

// Claims is the session token payload: the sanitized user plus exp/iat.
type Claims struct {
	User domain.SanitizedUser `json:"user"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens with a single key.
type TokenIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenIssuer returns an issuer bound to key with the standard SessionTTL.
func NewTokenIssuer(key []byte) *TokenIssuer {
	return &TokenIssuer{
		key: key,
		ttl: SessionTTL,
		now: time.Now,
	}
}

// Issue signs a token for user expiring SessionTTL from now.
func (i *TokenIssuer) Issue(user domain.SanitizedUser) (string, error) {
	if len(i.key) == 0 {
		return "", ErrSigningKeyMissing
	}

	now := i.now()
	claims := Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and returns the embedded claims.
func (i *TokenIssuer) Parse(raw string) (*Claims, error) {
	if len(i.key) == 0 {
		return nil, ErrSigningKeyMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.key, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.User.ID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
