// Package client is the app side of the auth flow: it validates form
// input locally, calls the HTTP API, and moves the session state machine
// through pending/authenticated/failed.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/andriiko/pocketbank/internal/domain/user"
	"github.com/andriiko/pocketbank/internal/session"
)

const (
	loginFallbackMessage    = "Login failed"
	registerFallbackMessage = "Registration failed"
)

type Auth struct {
	baseURL string
	http    *http.Client
	session *session.Machine
}

func NewAuth(baseURL string, m *session.Machine) *Auth {
	return &Auth{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		session: m,
	}
}

func (a *Auth) Session() *session.Machine { return a.session }

type authResponse struct {
	User  user.PublicUser `json:"user"`
	Token string          `json:"token"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Login validates the form, then runs the request through the session
// machine. Schema failures never reach the network.
func (a *Auth) Login(ctx context.Context, identifier, password string) error {
	if errs := ValidateLogin(identifier, password); len(errs) > 0 {
		return errs
	}

	if err := a.session.Submit(); err != nil {
		return err
	}

	body := map[string]string{
		"identifier": identifier,
		"password":   password,
	}

	return a.roundTrip(ctx, "/login", body, loginFallbackMessage)
}

func (a *Auth) Register(ctx context.Context, email, phone, password, confirmPassword string) error {
	if errs := ValidateRegister(email, phone, password, confirmPassword); len(errs) > 0 {
		return errs
	}

	if err := a.session.Submit(); err != nil {
		return err
	}

	body := map[string]string{
		"email":    email,
		"phone":    phone,
		"password": password,
	}

	return a.roundTrip(ctx, "/register", body, registerFallbackMessage)
}

// Logout is purely local: the token is forgotten, nothing is sent.
func (a *Auth) Logout() {
	a.session.Logout()
}

func (a *Auth) roundTrip(ctx context.Context, path string, body map[string]string, fallback string) error {
	raw, err := json.Marshal(body)

	if err != nil {
		return a.session.Fail(fallback)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(raw))

	if err != nil {
		return a.session.Fail(fallback)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)

	if err != nil {
		return a.session.Fail(fallback)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var er errorResponse

		message := fallback

		if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Message != "" {
			message = er.Message
		}

		return a.session.Fail(message)
	}

	var ar authResponse

	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return a.session.Fail(fallback)
	}

	return a.session.Succeed(ar.User, ar.Token)
}
