package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"flighttrack/logbook/internal/constants"
)

// UserClaims identifies the owner of the records a request may touch.
type UserClaims interface {
	OwnerID() string
}

// JWTClaims are the bearer-token claims. The token subject is the owner id
// assigned by the identity provider.
type JWTClaims struct {
	jwt.RegisteredClaims
}

func (c *JWTClaims) OwnerID() string {
	return c.Subject
}

// LocalClaims stand in for authentication on single-user deployments.
type LocalClaims struct{}

func (LocalClaims) OwnerID() string {
	return constants.LocalOwnerID
}

// ParseToken validates an HS256 bearer token and returns its claims.
func ParseToken(tokenString, secret string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
