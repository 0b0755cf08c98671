// Package auth issues and verifies the JWT tokens used for API access.
package auth

import (
	"errors"
	"time"

	"github.com/cavalaria/backend/internal/models"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("the token is invalid or expired")
	ErrTokenRevoked = errors.New("the token has been revoked")
)

// Claims are the JWT claims carried by every issued token.
type Claims struct {
	jwt.StandardClaims
	UserID   uuid.UUID       `json:"userId"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

// Issuer creates and verifies tokens with a shared secret.
type Issuer struct {
	secret    []byte
	expiresIn time.Duration
}

func NewIssuer(secret string, expiresIn time.Duration) *Issuer {
	return &Issuer{
		secret:    []byte(secret),
		expiresIn: expiresIn,
	}
}

// Issue returns a signed token for the user.
func (i *Issuer) Issue(user models.User) (string, error) {
	now := time.Now().In(time.UTC)

	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(i.expiresIn).Unix(),
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses the token and returns its claims.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}

		return i.secret, nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// ExpiresIn returns the configured token lifetime.
func (i *Issuer) ExpiresIn() time.Duration {
	return i.expiresIn
}
