package service

import (
	"context"
	"testing"
	"time"

	"farmmarket/internal/domain"
	"farmmarket/internal/repository"
	"farmmarket/internal/session"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"golang.org/x/crypto/bcrypt"
)

// Mock repository for testing
type mockUserRepository struct {
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, exists := m.users[user.Email]; exists {
		return repository.ErrUserAlreadyExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, exists := m.users[email]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// Feature: farmer-marketplace, Property 11: Registration creates hashed passwords
// Validates: Requirements 1.1, 1.3
func TestProperty_RegistrationCreatesHashedPasswords(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("passwords are hashed with bcrypt and not stored as plaintext", prop.ForAll(
		func(email string, password string, userType string) bool {
			// Setup
			userRepo := newMockUserRepository()
			sessions := session.NewManager(0)
			service := NewAuthService(userRepo, sessions, "test-secret", time.Hour)
			ctx := context.Background()

			// Execute registration
			user, err := service.Register(ctx, email, password, domain.UserType(userType))
			if err != nil {
				// If registration fails, skip this test case
				return true
			}

			// Verify password is hashed (not equal to plaintext)
			if user.PasswordHash == password {
				t.Logf("FAIL: Password stored as plaintext for email %s", email)
				return false
			}

			// Verify password hash is a valid bcrypt hash
			err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
			if err != nil {
				t.Logf("FAIL: Password hash is not a valid bcrypt hash or doesn't match: %v", err)
				return false
			}

			// Verify the stored user has the hashed password
			storedUser, err := userRepo.FindByEmail(ctx, email)
			if err != nil {
				t.Logf("FAIL: Could not find stored user: %v", err)
				return false
			}

			if storedUser.PasswordHash != user.PasswordHash {
				t.Logf("FAIL: Stored password hash doesn't match returned password hash")
				return false
			}

			return true
		},
		// Generate valid email addresses
		gen.RegexMatch(`[a-z]{3,10}@[a-z]{3,8}\.(com|org|net)`),
		// Generate passwords with at least 8 characters
		gen.RegexMatch(`[A-Za-z0-9!@#$%]{8,20}`),
		gen.OneConstOf("farmer", "consumer"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Feature: farmer-marketplace, Property 12: Access tokens carry session and user type claims
// Validates: Requirements 1.4, 1.5
func TestProperty_TokensCarrySessionClaims(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("sign-in opens a session and binds the token to it", prop.ForAll(
		func(email string, password string, userType string) bool {
			// Setup
			userRepo := newMockUserRepository()
			sessions := session.NewManager(0)
			service := NewAuthService(userRepo, sessions, "test-secret-key", time.Hour)
			ctx := context.Background()

			// Register user
			_, err := service.Register(ctx, email, password, domain.UserType(userType))
			if err != nil {
				return true // Skip if registration fails
			}

			// Sign in to get a token
			accessToken, user, err := service.SignIn(ctx, email, password)
			if err != nil {
				t.Logf("FAIL: Sign-in failed: %v", err)
				return false
			}

			// Validate and decode the access token
			claims, err := service.ValidateToken(accessToken)
			if err != nil {
				t.Logf("FAIL: Token validation failed: %v", err)
				return false
			}

			// Verify the session the token points at exists
			sess, err := sessions.Get(claims.SessionID)
			if err != nil {
				t.Logf("FAIL: Token references unknown session: %v", err)
				return false
			}

			if sess.Email != user.Email {
				t.Logf("FAIL: Session email mismatch. Expected %s, got %s", user.Email, sess.Email)
				return false
			}

			// Verify user type claim matches
			if claims.UserType != domain.UserType(userType) {
				t.Logf("FAIL: User type claim mismatch. Expected %s, got %s", userType, claims.UserType)
				return false
			}

			// Verify token has expiration and issued at
			if claims.ExpiresAt == nil {
				t.Logf("FAIL: Token missing expiration claim")
				return false
			}
			if claims.IssuedAt == nil {
				t.Logf("FAIL: Token missing issued at claim")
				return false
			}

			return true
		},
		gen.RegexMatch(`[a-z]{3,10}@[a-z]{3,8}\.(com|org|net)`),
		gen.RegexMatch(`[A-Za-z0-9!@#$%]{8,20}`),
		gen.OneConstOf("farmer", "consumer"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Feature: farmer-marketplace, Property 13: Sign-out destroys the session
// Validates: Requirements 1.6
func TestProperty_SignOutDestroysSession(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("the session and its state are gone after sign-out", prop.ForAll(
		func(email string, password string) bool {
			// Setup
			userRepo := newMockUserRepository()
			sessions := session.NewManager(0)
			service := NewAuthService(userRepo, sessions, "test-secret-key", time.Hour)
			ctx := context.Background()

			// Register and sign in
			_, err := service.Register(ctx, email, password, domain.UserTypeConsumer)
			if err != nil {
				return true // Skip if registration fails
			}

			accessToken, _, err := service.SignIn(ctx, email, password)
			if err != nil {
				t.Logf("FAIL: Sign-in failed: %v", err)
				return false
			}

			claims, err := service.ValidateToken(accessToken)
			if err != nil {
				t.Logf("FAIL: Token validation failed: %v", err)
				return false
			}

			// Session exists before sign-out
			if _, err := sessions.Get(claims.SessionID); err != nil {
				t.Logf("FAIL: Session missing before sign-out: %v", err)
				return false
			}

			// Sign out
			if err := service.SignOut(ctx, claims.SessionID); err != nil {
				t.Logf("FAIL: Sign-out failed: %v", err)
				return false
			}

			// Session is gone
			if _, err := sessions.Get(claims.SessionID); err != session.ErrSessionNotFound {
				t.Logf("FAIL: Expected ErrSessionNotFound after sign-out, got: %v", err)
				return false
			}

			// Signing out again is a no-op
			if err := service.SignOut(ctx, claims.SessionID); err != nil {
				t.Logf("FAIL: Repeated sign-out failed: %v", err)
				return false
			}

			return true
		},
		gen.RegexMatch(`[a-z]{3,10}@[a-z]{3,8}\.(com|org|net)`),
		gen.RegexMatch(`[A-Za-z0-9!@#$%]{8,20}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAuthService_SignInRejectsBadCredentials(t *testing.T) {
	userRepo := newMockUserRepository()
	sessions := session.NewManager(0)
	service := NewAuthService(userRepo, sessions, "test-secret", time.Hour)
	ctx := context.Background()

	if _, err := service.Register(ctx, "a@example.com", "password1", domain.UserTypeFarmer); err != nil {
		t.Fatal(err)
	}

	if _, _, err := service.SignIn(ctx, "a@example.com", "wrong-password"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := service.SignIn(ctx, "nobody@example.com", "password1"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if sessions.Len() != 0 {
		t.Errorf("failed sign-ins must not open sessions, have %d", sessions.Len())
	}
}

func TestAuthService_RegisterRejectsUnknownUserType(t *testing.T) {
	service := NewAuthService(newMockUserRepository(), session.NewManager(0), "test-secret", time.Hour)

	_, err := service.Register(context.Background(), "a@example.com", "password1", "admin")
	if err != ErrInvalidUserType {
		t.Errorf("expected ErrInvalidUserType, got %v", err)
	}
}

func TestAuthService_ValidateTokenRejectsGarbage(t *testing.T) {
	service := NewAuthService(newMockUserRepository(), session.NewManager(0), "test-secret", time.Hour)

	if _, err := service.ValidateToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
