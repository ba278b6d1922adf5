// Package repository defines the persistence interfaces the domain depends on.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/entity"
)

// ErrAccountNotFound is returned when no account matches the lookup key.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// FindByUsername retrieves an account by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// ExistsByUsername reports whether an account with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmailHash reports whether an account with the email hash exists.
	ExistsByEmailHash(ctx context.Context, emailHash string) (bool, error)

	// Create persists a new account and fills in its generated ID and timestamps.
	Create(ctx context.Context, account *entity.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// ListAll returns every account.
	ListAll(ctx context.Context) ([]*entity.Account, error)
}
