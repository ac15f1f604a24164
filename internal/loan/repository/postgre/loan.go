package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "library-loans/internal/loan/repository"
	"library-loans/internal/model"
)

// CreateLoan inserts a new Loan row inside its own transaction and returns the created entity.
func (r *implRepository) CreateLoan(ctx context.Context, opt repo.CreateLoanOptions) (model.Loan, error) {
	query, args, err := r.buildInsertQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateLoan"), err)
		return model.Loan{}, repo.ErrFailedToInsert
	}

	var l model.Loan
	err = r.inTx(ctx, func(tx *sqlxTx) error {
		return tx.GetContext(ctx, &l, query, args...)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateLoan"), err)
		return model.Loan{}, repo.ErrFailedToInsert
	}
	return l, nil
}

// GetOneLoan retrieves a single Loan by ID.
// Returns zero-value Loan (ID == 0) when not found; not-found is not an error.
func (r *implRepository) GetOneLoan(ctx context.Context, id int64) (model.Loan, error) {
	query, args, err := r.buildGetOneQuery(id)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOneLoan"), err)
		return model.Loan{}, repo.ErrFailedToGet
	}

	var l model.Loan
	err = r.db.GetContext(ctx, &l, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Loan{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneLoan"), err)
		return model.Loan{}, repo.ErrFailedToGet
	}
	return l, nil
}

// ListLoans returns every Loan matching the filters, oldest first.
func (r *implRepository) ListLoans(ctx context.Context, opt repo.ListLoansOptions) ([]model.Loan, error) {
	query, args, err := r.buildListQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("ListLoans"), err)
		return nil, repo.ErrFailedToList
	}

	loans := []model.Loan{}
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLoans"), err)
		return nil, repo.ErrFailedToList
	}
	return loans, nil
}

// MarkReturned sets the return date of an outstanding Loan inside its own transaction.
// Returns zero-value Loan when the loan is missing or already returned.
func (r *implRepository) MarkReturned(ctx context.Context, opt repo.MarkReturnedOptions) (model.Loan, error) {
	query, args, err := r.buildMarkReturnedQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("MarkReturned"), err)
		return model.Loan{}, repo.ErrFailedToUpdate
	}

	var l model.Loan
	err = r.inTx(ctx, func(tx *sqlxTx) error {
		return tx.GetContext(ctx, &l, query, args...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return model.Loan{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkReturned"), err)
		return model.Loan{}, repo.ErrFailedToUpdate
	}
	return l, nil
}
