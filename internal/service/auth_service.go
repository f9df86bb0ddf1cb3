package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farmmarket/internal/domain"
	"farmmarket/internal/repository"
	"farmmarket/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10

	DefaultAccessExpiry = time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidUserType    = errors.New("user type must be farmer or consumer")
)

// AuthService defines the interface for the mock authentication flow.
// It authenticates against the in-memory user store and hands out one
// session per sign-in; there is no real identity provider behind it.
type AuthService interface {
	Register(ctx context.Context, email, password string, userType domain.UserType) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (accessToken string, user *domain.User, err error)
	SignOut(ctx context.Context, sessionID uuid.UUID) error
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims represents the JWT claims carried by an access token.
type Claims struct {
	SessionID uuid.UUID       `json:"session_id"`
	UserType  domain.UserType `json:"user_type"`
	jwt.RegisteredClaims
}

type authService struct {
	userRepo     repository.UserRepository
	sessions     *session.Manager
	jwtSecret    string
	accessExpiry time.Duration
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	sessions *session.Manager,
	jwtSecret string,
	accessExpiry time.Duration,
) AuthService {
	if accessExpiry <= 0 {
		accessExpiry = DefaultAccessExpiry
	}
	return &authService{
		userRepo:     userRepo,
		sessions:     sessions,
		jwtSecret:    jwtSecret,
		accessExpiry: accessExpiry,
	}
}

// Register creates a new account with a hashed password
func (s *authService) Register(ctx context.Context, email, password string, userType domain.UserType) (*domain.User, error) {
	if !userType.Valid() {
		return nil, ErrInvalidUserType
	}

	hashedPassword, err := s.hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		UserType:     userType,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == repository.ErrUserAlreadyExists {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// SignIn authenticates a user, opens a session and returns an access
// token bound to it
func (s *authService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	sess := s.sessions.Create(user.Email, user.UserType)

	token, err := s.generateAccessToken(sess.ID, user.UserType)
	if err != nil {
		s.sessions.Destroy(sess.ID)
		return "", nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return token, user, nil
}

// SignOut destroys the session and everything it holds. Signing out an
// already-destroyed session succeeds.
func (s *authService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	s.sessions.Destroy(sessionID)
	return nil
}

// ValidateToken validates a JWT access token and returns its claims
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *authService) hashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *authService) generateAccessToken(sessionID uuid.UUID, userType domain.UserType) (string, error) {
	expirationTime := time.Now().Add(s.accessExpiry)
	claims := &Claims{
		SessionID: sessionID,
		UserType:  userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
