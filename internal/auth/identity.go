// Package auth turns bearer tokens into the explicit identity capability the
// services consume. Token issuance lives in a separate identity service; this
// side only verifies.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jobboardhq/jobboard-api/internal/models"
)

// Identity is the (identityId, role) capability passed into every service
// call. There is no ambient auth context anywhere else.
type Identity struct {
	ID   uuid.UUID
	Role models.Role
}

// Claims carried by the identity service's tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// VerifyToken parses an HS256 token and extracts the caller identity.
func VerifyToken(tokenString, secret string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return Identity{ID: id, Role: models.Role(claims.Role)}, nil
}

// SignToken mints a token for the given identity. The API never calls this in
// request handling; it exists for tests and local tooling.
func SignToken(identity Identity, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: identity.ID.String(),
		Role:   string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
