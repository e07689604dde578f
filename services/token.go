package services

import (
	"time"

	"staybook/config"
	"staybook/errors"
	"staybook/models"

	"github.com/dgrijalva/jwt-go"
)

// TokenValidity is the fixed validity window of a session token.
const TokenValidity = 7 * 24 * time.Hour

type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	Email  string `json:"email,omitempty"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(config.GetEnv("JWT_SECRET"))
}

// GenerateToken phát hành token phiên cho user
func GenerateToken(user *models.User) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenValidity).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseToken verify chữ ký + hạn token và trả về claims
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid or expired token.", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid or expired token.", nil)
	}

	return claims, nil
}
