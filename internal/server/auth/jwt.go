// Package auth implements the token service and password hasher behind the
// authentication pipeline. Both are pure computations: no I/O, no retries.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/policia-dp/delegacia-api/internal/common"
)

// Claims is the claim set carried by an access token: agent identifier and
// role plus the registered issued-at/expiry claims.
type Claims struct {
	jwt.RegisteredClaims
	AgentID int64  `json:"id"`
	Cargo   string `json:"cargo"`
}

// GenerateToken signs an HS256 token for the given agent, expiring after
// validityDuration.
func GenerateToken(agentID int64, cargo string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		AgentID: agentID,
		Cargo:   cargo,
	})
	return token.SignedString(secretKey)
}

// ParseToken verifies the token and returns its claims.
//
// A broken signature, wrong algorithm, or malformed structure yields
// common.ErrInvalidToken; an otherwise valid but expired token yields
// common.ErrTokenExpired. Signature failures win over expiry so a tampered
// token never reports an expiry reason.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, common.ErrInvalidToken
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
