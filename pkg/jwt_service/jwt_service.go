package jwtservice

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errorvalues "github.com/limbo/tasktracker/internal/error_values"
	"github.com/limbo/tasktracker/pkg/entity"
)

var (
	tokenTTL = 24 * time.Hour
)

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type JWTService struct {
	secret []byte
}

func New(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

func (s *JWTService) GenerateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies signature and time claims. Every failure is ErrInvalidToken.
func (s *JWTService) ParseToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}

func TTL() time.Duration {
	return tokenTTL
}
