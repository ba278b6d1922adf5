// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inventory/internal/delivery/http/response"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account-related handlers.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignupRequest is the JSON payload for account registration. Field presence
// and format rules live in the account service so their messages match the
// API contract; the tags here only cap structural size.
type SignupRequest struct {
	Firstname string `json:"firstname" validate:"max=255"`
	Lastname  string `json:"lastname" validate:"max=255"`
	Username  string `json:"username" validate:"max=255"`
	Email     string `json:"email" validate:"max=255"`
	Password  string `json:"password" validate:"max=255"`
	Role      string `json:"role" validate:"max=64"`
}

// SignupResponse is the JSON body returned after a successful registration.
type SignupResponse struct {
	UserID    int64  `json:"userId"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// LoginRequest is the JSON payload for account login.
type LoginRequest struct {
	Username string `json:"username" validate:"max=255"`
	Password string `json:"password" validate:"max=255"`
}

// LoginResponse mirrors the token response body issued on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Message  string `json:"message"`
}

// AccountResponse is the read-model view of an account for listing endpoints.
type AccountResponse struct {
	UserID    int64      `json:"userId"`
	Firstname string     `json:"firstname"`
	Lastname  string     `json:"lastname"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// Signup handles the account registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, SignupResponse{
		UserID:    output.UserID,
		Firstname: output.Firstname,
		Lastname:  output.Lastname,
		Username:  output.Username,
		Email:     output.Email,
		Role:      output.Role,
	}, "Account registered successfully")
}

// Login handles the account login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:    output.Token,
		Type:     output.Type,
		UserID:   output.UserID,
		Username: output.Username,
		Role:     output.Role,
		Message:  output.Message,
	}, output.Message)
}

// ListAccounts handles the request to list every registered account.
func (h *AuthHandler) ListAccounts(c echo.Context) error {
	summaries, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	accounts := make([]AccountResponse, 0, len(summaries))
	for _, summary := range summaries {
		accounts = append(accounts, AccountResponse{
			UserID:    summary.UserID,
			Firstname: summary.Firstname,
			Lastname:  summary.Lastname,
			Username:  summary.Username,
			Role:      summary.Role,
			CreatedAt: summary.CreatedAt,
			LastLogin: summary.LastLogin,
		})
	}

	return response.Success(c, http.StatusOK, accounts, "Accounts retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
