package repository

import (
	"context"

	"library-loans/internal/model"
)

// Repository is the composed interface for the local loan store.
type Repository interface {
	LoanRepository
}

// LoanRepository defines all data access methods for the Loan entity.
type LoanRepository interface {
	CreateLoan(ctx context.Context, opt CreateLoanOptions) (model.Loan, error)
	// GetOneLoan returns a zero-value Loan (ID == 0) when not found.
	GetOneLoan(ctx context.Context, id int64) (model.Loan, error)
	ListLoans(ctx context.Context, opt ListLoansOptions) ([]model.Loan, error)
	// MarkReturned sets the return date only if it is still null. It returns
	// a zero-value Loan when no outstanding loan with that id exists.
	MarkReturned(ctx context.Context, opt MarkReturnedOptions) (model.Loan, error)
}

// AccountRepository reads account snapshots from the account store.
type AccountRepository interface {
	FetchAccount(ctx context.Context, id int64) (model.Account, error)
}

// ItemRepository reads and mutates item snapshots in the item store.
type ItemRepository interface {
	FetchItem(ctx context.Context, id int64) (model.Item, error)
	UpdateItemCount(ctx context.Context, id int64, availableCount int) error
}

// CatalogRepository is the remote side of the loan saga.
//
// Implementations return ErrRemoteNotFound only for an explicit "no such
// resource" answer, and wrap ErrRemoteUnavailable for everything else.
type CatalogRepository interface {
	AccountRepository
	ItemRepository
}
