package user

import (
	"context"
	"errors"
	"time"
)

var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // never expose hash in JSON
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the projection returned to clients.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Phone: u.Phone,
	}
}

// Repository is the credential store. Lookups are exact-match; no format
// normalization happens at this layer.
type Repository interface {
	// FindByIdentifier returns the first record (insertion order) whose
	// email or phone exactly equals identifier.
	FindByIdentifier(ctx context.Context, identifier string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	// Insert appends a record; a record with the same email already present
	// yields ErrDuplicateUser.
	Insert(ctx context.Context, u User) error
	Count(ctx context.Context) (int, error)
}
