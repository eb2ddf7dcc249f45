// Package auth issues and checks the signed session tokens handed to
// clients after signup and login. Tokens are self-contained HS256 JWTs;
// nothing is stored server-side.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/feelflow/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered iat/exp claims plus the user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// GenerateToken signs a token for userID valid from issuedAt for validityDuration.
func GenerateToken(userID string, secretKey []byte, issuedAt time.Time, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(validityDuration)),
		},
		UserID: userID,
	})

	return token.SignedString(secretKey)
}

// ParseToken checks signature and expiry (as of now) and returns the claims.
// Expired tokens yield common.ErrorTokenExpired; anything else that fails,
// including a foreign signing algorithm or a missing user id, yields
// common.ErrorInvalidToken.
func ParseToken(tokenString string, secretKey []byte, now time.Time) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrorTokenExpired
		}
		return nil, common.ErrorInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrorInvalidToken
	}

	return claims, nil
}

// TokenManager binds the signing secret, token lifetime and clock.
type TokenManager struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewTokenManager(secretKey string, validity time.Duration) *TokenManager {
	return &TokenManager{
		secret:   []byte(secretKey),
		validity: validity,
		now:      time.Now,
	}
}

// Issue returns a fresh token for userID.
func (m *TokenManager) Issue(userID string) (string, error) {
	return GenerateToken(userID, m.secret, m.now(), m.validity)
}

// Verify returns the user id carried by a valid token.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims, err := ParseToken(tokenString, m.secret, m.now())
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
