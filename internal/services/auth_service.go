package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const RoleAdmin = "ADMIN"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAuthNotConfigured  = errors.New("admin authentication is not configured")
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ParseToken(raw string) (*AuthClaims, error)
}

type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Role        string    `json:"role"`
}

type AuthClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	secret       []byte
	ttl          time.Duration
	adminEmail   string
	passwordHash []byte
	logger       *logrus.Logger
}

func NewAuthService(cfg config.AuthConfig, logger *logrus.Logger) AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &authService{
		secret:       []byte(cfg.JWTSecret),
		ttl:          ttl,
		adminEmail:   strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		passwordHash: []byte(cfg.AdminPasswordHash),
		logger:       logger,
	}
}

func (s *authService) Login(_ context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.adminEmail == "" || len(s.passwordHash) == 0 || len(s.secret) == 0 {
		s.logger.Warn("Admin login attempted but admin credentials are not configured")
		return nil, ErrInvalidCredentials
	}
	if email != s.adminEmail {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.WithField("email", email).Warn("Admin login failed")
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Email: email,
		Role:  RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.WithField("email", email).Info("Admin logged in")
	return &LoginResult{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Role:        RoleAdmin,
	}, nil
}

// ParseToken rejects every token while no signing secret is configured.
func (s *authService) ParseToken(raw string) (*AuthClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrAuthNotConfigured
	}
	parsed, err := jwt.ParseWithClaims(raw, &AuthClaims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*AuthClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
