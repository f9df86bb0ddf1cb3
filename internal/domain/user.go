package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserType selects which dashboard composition a session sees. The
// cart/catalog logic is identical for both.
type UserType string

const (
	UserTypeFarmer   UserType = "farmer"
	UserTypeConsumer UserType = "consumer"
)

// Valid reports whether t is one of the two known user types.
func (t UserType) Valid() bool {
	return t == UserTypeFarmer || t == UserTypeConsumer
}

// User is a registered account. Accounts live only in process memory;
// there is no persistence behind them.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	UserType     UserType  `json:"user_type"`
	CreatedAt    time.Time `json:"created_at"`
}
