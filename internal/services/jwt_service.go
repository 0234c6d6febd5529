package services

import (
	"fmt"
	"time"

	"farm-advisor/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService signs and verifies the session cookie. The cookie only carries
// the server-side session ID; everything else lives in the session store.
type JWTService struct {
	Secret string
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{Secret: secret}
}

func (jwt_s *JWTService) GenerateSessionToken(sessionID string) (string, error) {
	claim := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   "farm-advisor",
		},
		SessionID: sessionID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claim)
	tokenString, err := token.SignedString([]byte(jwt_s.Secret))
	if err != nil {
		return "", fmt.Errorf("error generate token string: %s", err)
	}
	return tokenString, nil
}

func (jwt_s *JWTService) VerifySessionToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&models.SessionClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwt_s.Secret), nil
		},
	)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.SessionID, nil
}
