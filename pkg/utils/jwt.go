package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	accessSecret string
	accessExpiry time.Duration
)

// InitJWT initializes the guest token secret and expiry
func InitJWT(accessSec string, accessExp time.Duration) {
	accessSecret = accessSec
	accessExpiry = accessExp
}

// GuestClaims represents the JWT claims issued to a logged-in guest
type GuestClaims struct {
	GuestID string `json:"id_hospede"`
	CPF     string `json:"cpf"`
	jwt.RegisteredClaims
}

// GenerateAccessToken generates a signed guest access token
func GenerateAccessToken(guestID, cpf string) (string, error) {
	if accessSecret == "" {
		return "", errors.New("jwt secret not configured")
	}

	now := time.Now()
	claims := GuestClaims{
		GuestID: guestID,
		CPF:     cpf,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   guestID,
			ExpiresAt: jwt.NewNumericDate(now.Add(accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(accessSecret))
}

// ValidateAccessToken validates and parses a guest access token
func ValidateAccessToken(tokenString string) (*GuestClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &GuestClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(accessSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*GuestClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
