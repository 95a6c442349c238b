// Package service provides token issuance and validation for authentication
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenGenerator handles JWT token generation and validation.
// Tokens are valid purely by signature and expiry; there is no server-side
// revocation list.
type TokenGenerator struct {
	secret string
	expiry time.Duration
}

// NewTokenGenerator creates a new token generator.
// expireDays is the token (and cookie) lifetime in days.
func NewTokenGenerator(secret string, expireDays int) *TokenGenerator {
	return &TokenGenerator{
		secret: secret,
		expiry: time.Duration(expireDays) * 24 * time.Hour,
	}
}

// Expiry returns the configured token lifetime
func (tg *TokenGenerator) Expiry() time.Duration {
	return tg.expiry
}

// Generate creates a signed token carrying userID and role
func (tg *TokenGenerator) Generate(userID int, role int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(tg.expiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate validates a token and returns the userID and role
func (tg *TokenGenerator) Validate(tokenString string) (int, int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	})

	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return 0, 0, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, fmt.Errorf("invalid token claims")
	}

	// Extract userID (JWT claims decode numbers as float64)
	userIDInt, ok := claims["user_id"].(float64)
	if !ok {
		return 0, 0, fmt.Errorf("user_id not found in token")
	}

	// Extract role (JWT claims decode numbers as float64)
	roleInt, ok := claims["role"].(float64)
	if !ok {
		return 0, 0, fmt.Errorf("role not found in token")
	}

	return int(userIDInt), int(roleInt), nil
}
