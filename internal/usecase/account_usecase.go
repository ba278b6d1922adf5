// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
// Role is free text and defaults to entity.DefaultRole when blank.
type SignupInput struct {
	Firstname string
	Lastname  string
	Username  string
	Email     string
	Password  string
	Role      string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account's basic information.
// Email echoes the address submitted at signup; only its lookup hash is stored.
type SignupOutput struct {
	UserID    int64
	Firstname string
	Lastname  string
	Username  string
	Email     string
	Role      string
}

// LoginOutput returns the issued token alongside the account's identity.
type LoginOutput struct {
	Token    string
	Type     string
	UserID   int64
	Username string
	Role     string
	Message  string
}

// AccountSummary is the read-model view of an account for listing endpoints.
type AccountSummary struct {
	UserID    int64
	Firstname string
	Lastname  string
	Username  string
	Role      string
	CreatedAt time.Time
	LastLogin *time.Time
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ListAccounts(ctx context.Context) ([]*AccountSummary, error)
	// FindByUsername loads an account for token verification.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
}
