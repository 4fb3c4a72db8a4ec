package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/FACorreiaa/geoglobe/internal/app/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// JWTConfig holds JWT authentication configuration
type JWTConfig struct {
	SecretKey       string
	TokenExpiration time.Duration
	Logger          *zap.Logger
}

// Claims represents the JWT claims
type Claims struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"name"`
	Email       string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// User converts the claims into the user record shown by the navbar.
func (c *Claims) User() *models.User {
	return &models.User{
		ID:          c.UserID,
		DisplayName: c.DisplayName,
		Email:       c.Email,
	}
}

type TokenService struct {
	config JWTConfig
	now    func() time.Time
}

// NewTokenService creates a new JWT service
func NewTokenService(config JWTConfig) *TokenService {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &TokenService{config: config, now: time.Now}
}

// Expiration returns the lifetime of issued tokens.
func (s *TokenService) Expiration() time.Duration {
	return s.config.TokenExpiration
}

// GenerateToken generates a new JWT token
func (s *TokenService) GenerateToken(user models.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		s.config.Logger.Error("Failed to sign token", zap.Error(err))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
