package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sambafall/missmister-api/internal/pkg/jwthelper"
)

var ErrWrongPassword = errors.New("wrong password")

// AuthService authenticates the single administrator against the configured
// shared secret and mints a short-lived signed token, replacing the static
// session constant of earlier revisions.
type AuthService struct {
	passwordHash []byte
	signingKey   string
	tokenTTL     time.Duration
}

func NewAuthService(adminPassword, signingKey string, tokenTTL time.Duration) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return &AuthService{
		passwordHash: hash,
		signingKey:   signingKey,
		tokenTTL:     tokenTTL,
	}, nil
}

func (s *AuthService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrWrongPassword
	}

	token, err := jwthelper.GenerateToken(s.signingKey, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	return token, nil
}
