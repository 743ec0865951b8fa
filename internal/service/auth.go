// Package service holds the server-side business logic. Auth validates
// credentials against an injected repository and mints session tokens, so
// it runs unchanged against the in-memory store or postgres.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/andriiko/pocketbank/internal/domain/user"
	"github.com/andriiko/pocketbank/internal/security"
	"github.com/google/uuid"
)

type TokenIssuer interface {
	Issue(subject string) (string, error)
}

type Auth struct {
	users  user.Repository
	tokens TokenIssuer
}

func NewAuth(users user.Repository, tokens TokenIssuer) *Auth {
	return &Auth{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a credential record and mints a session token for it.
// Only presence is checked here; format validation is the client's job.
func (a *Auth) Register(ctx context.Context, email, phone, password string) (user.PublicUser, string, error) {
	if _, err := a.users.FindByEmail(ctx, email); err == nil {
		return user.PublicUser{}, "", user.ErrDuplicateUser
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.PublicUser{}, "", err
	}

	hash, err := security.HashPassword(password)

	if err != nil {
		return user.PublicUser{}, "", err
	}

	u := user.User{
		ID:           uuid.NewString(),
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := a.users.Insert(ctx, u); err != nil {
		return user.PublicUser{}, "", err
	}

	token, err := a.tokens.Issue(u.ID)

	if err != nil {
		return user.PublicUser{}, "", err
	}

	return u.Public(), token, nil
}

// Login resolves the identifier against email or phone, verifies the
// password, and mints a fresh token. Prior tokens stay valid until expiry;
// there is no single-session enforcement.
func (a *Auth) Login(ctx context.Context, identifier, password string) (user.PublicUser, string, error) {
	u, err := a.users.FindByIdentifier(ctx, identifier)

	if err != nil {
		return user.PublicUser{}, "", err
	}

	if err := security.CheckPassword(u.PasswordHash, password); err != nil {
		return user.PublicUser{}, "", user.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(u.ID)

	if err != nil {
		return user.PublicUser{}, "", err
	}

	return u.Public(), token, nil
}
