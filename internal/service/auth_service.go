package service

import (
	"errors"
	"os"
	"time"

	"endoguard/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles user authentication. The assessment itself never
// requires a login; tokens only gate persistence, history and report
// downloads.
type AuthService struct {
	demoEmail    string
	demoPassword string
	jwtSecret    []byte
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret string) *AuthService {
	email := os.Getenv("DEMO_USER_EMAIL")
	if email == "" {
		email = "demo@nexusbiomedical.example"
	}
	password := os.Getenv("DEMO_USER_PASSWORD")
	if password == "" {
		password = "password123"
	}

	return &AuthService{
		demoEmail:    email,
		demoPassword: password,
		jwtSecret:    []byte(jwtSecret),
	}
}

// Login validates credentials and returns a signed token
func (s *AuthService) Login(email, password string) (*model.LoginResponse, error) {
	if email != s.demoEmail || password != s.demoPassword {
		return nil, ErrInvalidCredentials
	}

	userID := "u_" + uuid.New().String()[:8]

	claims := &model.UserClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:  tokenString,
		UserID: userID,
	}, nil
}

// ValidateToken validates a user JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
