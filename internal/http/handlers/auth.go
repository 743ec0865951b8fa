package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/andriiko/pocketbank/internal/config"
	"github.com/andriiko/pocketbank/internal/domain/user"
	"github.com/gin-gonic/gin"
)

// Authenticator is the slice of the auth service the handler needs; kept
// as an interface so tests can fake it.
type Authenticator interface {
	Register(ctx context.Context, email, phone, password string) (user.PublicUser, string, error)
	Login(ctx context.Context, identifier, password string) (user.PublicUser, string, error)
}

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Only presence is required server-side; email/phone format checks live in
// the client's schema layer.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  user.PublicUser `json:"user"`
	Token string          `json:"token"`
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)

	defer cancel()

	pub, token, err := h.auth.Register(cctx, req.Email, req.Phone, req.Password)

	if err != nil {
		if errors.Is(err, user.ErrDuplicateUser) {
			RespondBadRequest(ctx, "duplicate_user", "User already exists", nil)
			return
		}

		RespondInternal(ctx, "Could not create user")
		return
	}

	ctx.JSON(http.StatusCreated, AuthResponse{User: pub, Token: token})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	pub, token, err := h.auth.Login(cctx, req.Identifier, req.Password)

	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			RespondBadRequest(ctx, "user_not_found", "User not found", nil)
		case errors.Is(err, user.ErrInvalidCredentials):
			RespondBadRequest(ctx, "invalid_credentials", "Invalid password", nil)
		default:
			RespondInternal(ctx, "Could not log in")
		}
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{User: pub, Token: token})
}
