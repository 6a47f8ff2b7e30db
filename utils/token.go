package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const resetPurpose = "password_reset"

// ResetTokenTTL bounds how long a password reset link stays valid.
const ResetTokenTTL = 30 * time.Minute

type resetClaims struct {
	UserID  uint   `json:"user_id"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateResetToken signs a short-lived token identifying the user allowed
// to set a new password.
func GenerateResetToken(userID uint, secret string) (string, error) {
	claims := &resetClaims{
		UserID:  userID,
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ResetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseResetToken validates a reset token and returns the user id it was
// issued for.
func ParseResetToken(tokenString, secret string) (uint, error) {
	claims := &resetClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return 0, err
	}

	if !token.Valid || claims.Purpose != resetPurpose {
		return 0, errors.New("invalid reset token")
	}

	return claims.UserID, nil
}
