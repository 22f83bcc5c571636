// Package auth issues and verifies the HS256 access tokens handed out by the
// server. Tokens carry the user id together with the plan and role that the
// entitlement check needs, so protected calls avoid a database round trip.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the subject of an access token.
type Identity struct {
	UserID string
	Plan   string
	Role   string
}

// Claims embeds the registered claims plus the token Identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Plan   string `json:"plan"`
	Role   string `json:"role"`
}

// GenerateToken signs a token for id that expires after validityDuration.
func GenerateToken(id Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: id.UserID,
		Plan:   id.Plan,
		Role:   id.Role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString and returns its Identity. Expired tokens
// yield common.ErrTokenExpired; every other failure is common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, common.ErrTokenExpired
		}
		return Identity{}, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{UserID: claims.UserID, Plan: claims.Plan, Role: claims.Role}, nil
}

// GetUserIDFromToken is ParseToken reduced to the user id.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	id, err := ParseToken(tokenString, secretKey)
	if err != nil {
		return "", err
	}
	return id.UserID, nil
}
