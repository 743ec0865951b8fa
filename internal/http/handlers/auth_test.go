package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andriiko/pocketbank/internal/domain/user"
	"github.com/andriiko/pocketbank/internal/http/handlers"
	"github.com/gin-gonic/gin"
)

// Make sure Gin does not spam the console during the test

func init() {
	gin.SetMode(gin.TestMode)
}

// Fake implementation of the handlers.Authenticator interface

type fakeAuth struct {
	registerFn func(ctx context.Context, email, phone, password string) (user.PublicUser, string, error)
	loginFn    func(ctx context.Context, identifier, password string) (user.PublicUser, string, error)
}

func (f *fakeAuth) Register(ctx context.Context, email, phone, password string) (user.PublicUser, string, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, email, phone, password)
	}
	return user.PublicUser{}, "", nil
}

func (f *fakeAuth) Login(ctx context.Context, identifier, password string) (user.PublicUser, string, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, identifier, password)
	}
	return user.PublicUser{}, "", nil
}

// small helper which returns a gin engine with one handler mounted per test

func setupRouter(method, path string, h gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	r.Handle(method, path, h)

	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		authSetUp      func(*fakeAuth)
		wantStatusCode int
		wantMessage    string
	}{
		{
			name: "success",
			body: `{"email":"a@example.com","phone":"380501112233","password":"secret123"}`,
			authSetUp: func(f *fakeAuth) {
				f.registerFn = func(ctx context.Context, email, phone, password string) (user.PublicUser, string, error) {
					return user.PublicUser{ID: "u1", Email: email, Phone: phone}, "tok-1", nil
				}
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing_fields",
			body:           `{"email":"a@example.com"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "duplicate_email",
			body: `{"email":"a@example.com","phone":"380501112233","password":"secret123"}`,
			authSetUp: func(f *fakeAuth) {
				f.registerFn = func(ctx context.Context, email, phone, password string) (user.PublicUser, string, error) {
					return user.PublicUser{}, "", user.ErrDuplicateUser
				}
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "User already exists",
		},
		{
			name: "service_error",
			body: `{"email":"a@example.com","phone":"380501112233","password":"secret123"}`,
			authSetUp: func(f *fakeAuth) {
				f.registerFn = func(ctx context.Context, email, phone, password string) (user.PublicUser, string, error) {
					return user.PublicUser{}, "", errors.New("boom")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuth{}

			if tt.authSetUp != nil {
				tt.authSetUp(fake)
			}

			h := handlers.NewAuthHandler(fake)
			r := setupRouter(http.MethodPost, "/register", h.Register)

			w := doJSON(t, r, http.MethodPost, "/register", tt.body)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantMessage != "" {
				var resp struct {
					Message string `json:"message"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("bad body: %v", err)
				}
				if resp.Message != tt.wantMessage {
					t.Fatalf("got message %q, want %q", resp.Message, tt.wantMessage)
				}
			}
		})
	}
}

func TestRegisterHandlerReturnsUserAndToken(t *testing.T) {
	fake := &fakeAuth{
		registerFn: func(ctx context.Context, email, phone, password string) (user.PublicUser, string, error) {
			return user.PublicUser{ID: "u1", Email: email, Phone: phone}, "tok-1", nil
		},
	}

	h := handlers.NewAuthHandler(fake)
	r := setupRouter(http.MethodPost, "/register", h.Register)

	w := doJSON(t, r, http.MethodPost, "/register", `{"email":"a@example.com","phone":"380501112233","password":"secret123"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var resp handlers.AuthResponse

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}

	if resp.User.ID != "u1" || resp.Token != "tok-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if bytes.Contains(w.Body.Bytes(), []byte("password")) {
		t.Fatal("response must not leak password material")
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		authSetUp      func(*fakeAuth)
		wantStatusCode int
		wantMessage    string
	}{
		{
			name: "success",
			body: `{"identifier":"a@example.com","password":"secret123"}`,
			authSetUp: func(f *fakeAuth) {
				f.loginFn = func(ctx context.Context, identifier, password string) (user.PublicUser, string, error) {
					return user.PublicUser{ID: "u1", Email: identifier}, "tok-2", nil
				}
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing_password",
			body:           `{"identifier":"a@example.com"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "user_not_found",
			body: `{"identifier":"who@example.com","password":"secret123"}`,
			authSetUp: func(f *fakeAuth) {
				f.loginFn = func(ctx context.Context, identifier, password string) (user.PublicUser, string, error) {
					return user.PublicUser{}, "", user.ErrUserNotFound
				}
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "User not found",
		},
		{
			name: "bad_password",
			body: `{"identifier":"a@example.com","password":"nope"}`,
			authSetUp: func(f *fakeAuth) {
				f.loginFn = func(ctx context.Context, identifier, password string) (user.PublicUser, string, error) {
					return user.PublicUser{}, "", user.ErrInvalidCredentials
				}
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Invalid password",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuth{}

			if tt.authSetUp != nil {
				tt.authSetUp(fake)
			}

			h := handlers.NewAuthHandler(fake)
			r := setupRouter(http.MethodPost, "/login", h.Login)

			w := doJSON(t, r, http.MethodPost, "/login", tt.body)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantMessage != "" {
				var resp struct {
					Message string `json:"message"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("bad body: %v", err)
				}
				if resp.Message != tt.wantMessage {
					t.Fatalf("got message %q, want %q", resp.Message, tt.wantMessage)
				}
			}
		})
	}
}
