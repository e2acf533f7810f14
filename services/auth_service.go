// Package services, iş mantığı katmanını içerir.
// Service'ler repository interface'lerine bağımlıdır, HTTP detayı bilmez.
package services

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kadirgun/peyk/pkg"
)

// TokenClaims, access token içinde taşınan bilgiler.
// jwt.RegisteredClaims gömülüdür — exp, iat gibi standart alanları sağlar.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService, access token doğrulama iş mantığı interface'i.
//
// Bu servis token ÜRETMEZ — session/token üretimi auth servisinin işidir.
// Arama servisi sadece gelen Bearer token'ın geçerli olduğunu ve hangi
// kullanıcıya ait olduğunu bilmek zorundadır. Secret iki servis arasında
// paylaşılır (HS256).
type AuthService interface {
	ValidateAccessToken(tokenString string) (*TokenClaims, error)
}

type authService struct {
	jwtSecret []byte
}

// NewAuthService, constructor.
func NewAuthService(jwtSecret string) AuthService {
	return &authService{jwtSecret: []byte(jwtSecret)}
}

// ValidateAccessToken, JWT access token'ı doğrular ve claims'i döner.
// İmza, algoritma ve expiry kontrolü jwt kütüphanesindedir — herhangi biri
// tutmazsa ErrUnauthorized döner, detay sızdırılmaz.
func (s *authService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: token has no subject", pkg.ErrUnauthorized)
	}

	return claims, nil
}
