package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/platform/apierr"
)

type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
	VerifyToken(tokenString string) error
}

type authService struct {
	log               *logger.Logger
	jwtSecretKey      string
	adminPassword     string
	adminPasswordHash string
	tokenTTL          time.Duration
}

func NewAuthService(log *logger.Logger, jwtSecretKey, adminPassword, adminPasswordHash string, tokenTTL time.Duration) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		log:               serviceLog,
		jwtSecretKey:      jwtSecretKey,
		adminPassword:     adminPassword,
		adminPasswordHash: adminPasswordHash,
		tokenTTL:          tokenTTL,
	}
}

// Login checks the single admin credential and issues a bearer token. An
// empty password is rejected before any comparison happens.
func (as *authService) Login(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", apierr.Validation("password is required")
	}

	var valid bool
	if as.adminPasswordHash != "" {
		valid = bcrypt.CompareHashAndPassword([]byte(as.adminPasswordHash), []byte(password)) == nil
	} else {
		valid = subtle.ConstantTimeCompare([]byte(password), []byte(as.adminPassword)) == 1
	}
	if !valid {
		return "", apierr.Unauthorized("invalid password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(as.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		as.log.Error("Failed to sign token", "error", err)
		return "", apierr.Upstream(fmt.Errorf("Failed to sign token"))
	}
	return signed, nil
}

func (as *authService) VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return apierr.Unauthorized("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return apierr.Unauthorized("invalid or expired token")
	}
	return nil
}
