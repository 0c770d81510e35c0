package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"accommodation-portal-backend/internal/database/models"
	apperrors "accommodation-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token types carried in the token_type claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// UserRepository defines the user lookups needed by the auth service
type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// AuthService issues and validates JWTs for local accounts
type AuthService struct {
	config   *AuthConfig
	userRepo UserRepository
	now      func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID    string `json:"id" example:"5b0c7d9e-8a7f-4f21-9a57-0d7c5b0e3c11"`
	Role      string `json:"role" example:"sda_owner"`
	Name      string `json:"name" example:"Jane Doe"`
	Username  string `json:"username" example:"jane"`
	Status    string `json:"status" example:"Active"`
	TokenType string `json:"token_type" example:"access"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username" example:"owner"`
	Password string `json:"password" example:"ownerpassword123"`
}

// UserProfile is the account summary returned on login
type UserProfile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
}

// LoginResponse represents the response for the login endpoint
type LoginResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    UserProfile `json:"user"`
}

// RefreshResponse represents the response from the refresh endpoint
type RefreshResponse struct {
	Access string `json:"access"`
}

// LogoutResponse represents the response from the logout endpoint
type LogoutResponse struct {
	Message string `json:"message" example:"Logout successful"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo UserRepository) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{
		config:   config,
		userRepo: userRepo,
		now:      time.Now,
	}, nil
}

// Login checks the credentials and returns an access/refresh pair
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("", "Missing username or password")
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.CheckPassword(password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, apperrors.ErrInactiveAccount
	}

	access, err := s.GenerateJWT(user, TokenTypeAccess)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.GenerateJWT(user, TokenTypeRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &LoginResponse{
		Access:  access,
		Refresh: refresh,
		User: UserProfile{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			Role:     string(user.Role),
			Status:   string(user.Status),
		},
	}, nil
}

// Refresh issues a new access token from a refresh token. The account is
// reloaded so role and status changes take effect.
func (s *AuthService) Refresh(refreshToken string) (*RefreshResponse, error) {
	claims, err := s.ValidateJWT(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive() {
		return nil, apperrors.ErrInactiveAccount
	}

	access, err := s.GenerateJWT(user, TokenTypeAccess)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &RefreshResponse{Access: access}, nil
}

// GenerateJWT creates a signed token of the given type for the user
func (s *AuthService) GenerateJWT(user *models.User, tokenType string) (string, error) {
	ttl := s.config.AccessTokenTTL
	if tokenType == TokenTypeRefresh {
		ttl = s.config.RefreshTokenTTL
	}

	now := s.now()
	claims := &AuthClaims{
		UserID:    user.ID.String(),
		Role:      string(user.Role),
		Name:      user.Name,
		Username:  user.Username,
		Status:    string(user.Status),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT parses a token and checks it is of the expected type
func (s *AuthService) ValidateJWT(tokenString, tokenType string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("%w: expected %s token", apperrors.ErrInvalidToken, tokenType)
	}
	return claims, nil
}

// Logout is stateless; clients discard their tokens
func (s *AuthService) Logout() error {
	return nil
}
