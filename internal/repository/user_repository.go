package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"farmmarket/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// memoryUserRepository keeps accounts in process memory only. The
// marketplace has no persistence layer; a process restart forgets
// every account, the same way a page reload did.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
}

// NewUserRepository creates a new in-memory UserRepository
func NewUserRepository() UserRepository {
	return &memoryUserRepository{byEmail: make(map[string]*domain.User)}
}

// Create stores a new user; emails are unique, case-insensitively.
func (r *memoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	key := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[key]; exists {
		return ErrUserAlreadyExists
	}
	u := *user
	r.byEmail[key] = &u
	return nil
}

// FindByEmail retrieves a user by email
func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, exists := r.byEmail[strings.ToLower(email)]
	if !exists {
		return nil, ErrUserNotFound
	}
	u := *user
	return &u, nil
}

// FindByID retrieves a user by ID
func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.byEmail {
		if user.ID == id {
			u := *user
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}
