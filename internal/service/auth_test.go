package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andriiko/pocketbank/internal/auth"
	"github.com/andriiko/pocketbank/internal/domain/user"
	"github.com/andriiko/pocketbank/internal/repo/memory"
)

func newAuth(t *testing.T) (*Auth, *memory.UsersRepo, *auth.Issuer) {
	t.Helper()

	repo := memory.NewUsersRepo()
	issuer := auth.NewIssuer("test-secret-key", 7*24*time.Hour)

	return NewAuth(repo, issuer), repo, issuer
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	svc, _, issuer := newAuth(t)
	ctx := context.Background()

	pub, token, err := svc.Register(ctx, "a@example.com", "380501112233", "secret123")

	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if pub.Email != "a@example.com" || pub.Phone != "380501112233" || pub.ID == "" {
		t.Fatalf("unexpected public projection: %+v", pub)
	}

	subject, err := issuer.Verify(token)

	if err != nil {
		t.Fatalf("token did not verify: %v", err)
	}

	if subject != pub.ID {
		t.Fatalf("token subject %q, want %q", subject, pub.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo, _ := newAuth(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "a@example.com", "380501112233", "secret123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, _, err := svc.Register(ctx, "a@example.com", "380509998877", "other-pass")

	if !errors.Is(err, user.ErrDuplicateUser) {
		t.Fatalf("got %v, want ErrDuplicateUser", err)
	}

	n, err := repo.Count(ctx)

	if err != nil {
		t.Fatalf("count failed: %v", err)
	}

	if n != 1 {
		t.Fatalf("store size changed after failed register: got %d, want 1", n)
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuth(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "a@example.com", "380501112233", "secret123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tests := []struct {
		name       string
		identifier string
		password   string
		wantErr    error
	}{
		{name: "by_email", identifier: "a@example.com", password: "secret123"},
		{name: "by_phone", identifier: "380501112233", password: "secret123"},
		{name: "wrong_password", identifier: "a@example.com", password: "nope", wantErr: user.ErrInvalidCredentials},
		{name: "unknown_identifier", identifier: "who@example.com", password: "secret123", wantErr: user.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub, token, err := svc.Login(ctx, tt.identifier, tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v, want %v", err, tt.wantErr)
				}
				if token != "" {
					t.Fatal("no token may be issued on a failed login")
				}
				return
			}

			if err != nil {
				t.Fatalf("login failed: %v", err)
			}

			if token == "" || pub.Email != "a@example.com" {
				t.Fatalf("unexpected result: user=%+v token=%q", pub, token)
			}
		})
	}
}

func TestLoginMintsFreshTokenEachTime(t *testing.T) {
	svc, _, _ := newAuth(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "a@example.com", "380501112233", "secret123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, first, err := svc.Login(ctx, "a@example.com", "secret123")

	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	_, second, err := svc.Login(ctx, "a@example.com", "secret123")

	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if first == second {
		t.Fatal("each login should mint an independent token")
	}
}
