package utils

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	AccessTokenLifetime  = time.Hour * 24 * 7
	RefreshTokenLifetime = time.Hour * 24 * 30
)

func GenerateAccessToken(userID uint, isAdmin bool) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(AccessTokenLifetime).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func GenerateRefreshToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(RefreshTokenLifetime).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
