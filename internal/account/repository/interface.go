package repository

import (
	"context"

	"library-loans/internal/model"
)

// Repository is the composed interface for the account data store.
type Repository interface {
	AccountRepository
}

// AccountRepository defines all data access methods for the Account entity.
type AccountRepository interface {
	CreateAccount(ctx context.Context, opt CreateAccountOptions) (model.Account, error)
	// GetOneAccount returns a zero-value Account (ID == 0) when not found.
	GetOneAccount(ctx context.Context, opt GetOneAccountOptions) (model.Account, error)
	ListAccounts(ctx context.Context, opt ListAccountsOptions) ([]model.Account, error)
	// SetActive returns a zero-value Account when the id does not exist.
	SetActive(ctx context.Context, id int64, active bool) (model.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
