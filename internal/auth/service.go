package auth

import (
	"context"
	"fmt"
	"time"

	"teampro-backend/internal/database/models"
	"teampro-backend/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService issues and validates access tokens
type AuthService struct {
	config    *AuthConfig
	directory service.DirectoryServiceInterface
	now       func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Role                 models.Role `json:"role" example:"Student"`
	ActorID              string      `json:"actor_id" example:"3f1c2a9e-7b4d-4e51-9a0c-2d8e6f1b7c35"`
	Department           string      `json:"department" example:"CSE"`
	Name                 string      `json:"name" example:"Asha Menon"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Actor converts the claims to the actor passed to the services
func (c *AuthClaims) Actor() (service.ActorContext, error) {
	id, err := uuid.Parse(c.ActorID)
	if err != nil {
		return service.ActorContext{}, fmt.Errorf("invalid actor id: %w", err)
	}
	return service.ActorContext{Role: c.Role, ID: id, Department: c.Department, Name: c.Name}, nil
}

// LoginResponse represents the response from the login endpoint
type LoginResponse struct {
	AccessToken string               `json:"accessToken"`
	TokenType   string               `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64                `json:"expiresIn" example:"43200"`
	Actor       service.ActorContext `json:"actor"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, directory service.DirectoryServiceInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, directory: directory, now: time.Now}, nil
}

// Login checks the credentials and issues a token for the account
func (s *AuthService) Login(ctx context.Context, req *service.LoginRequest) (*LoginResponse, error) {
	actor, err := s.directory.Authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	token, err := s.GenerateJWT(*actor)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.Expiration.Seconds()),
		Actor:       *actor,
	}, nil
}

// GenerateJWT creates a JWT token for the actor
func (s *AuthService) GenerateJWT(actor service.ActorContext) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		Role:       actor.Role,
		ActorID:    actor.ID.String(),
		Department: actor.Department,
		Name:       actor.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   actor.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
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
		return nil, fmt.Errorf("invalid token")
	}
	switch claims.Role {
	case models.RoleStudent, models.RoleFaculty, models.RoleAdmin:
	default:
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}
	if _, err := claims.Actor(); err != nil {
		return nil, err
	}
	return claims, nil
}
