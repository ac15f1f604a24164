package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	repo "library-loans/internal/account/repository"
	"library-loans/internal/model"
)

const pqUniqueViolation = "23505"

// CreateAccount inserts a new Account row and returns the created entity.
func (r *implRepository) CreateAccount(ctx context.Context, opt repo.CreateAccountOptions) (model.Account, error) {
	query, args, err := r.buildInsertQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateAccount"), err)
		return model.Account{}, repo.ErrFailedToInsert
	}

	var acc model.Account
	if err := r.db.GetContext(ctx, &acc, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return model.Account{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAccount"), err)
		return model.Account{}, repo.ErrFailedToInsert
	}
	return acc, nil
}

// GetOneAccount retrieves a single Account by the provided filters (AND condition).
func (r *implRepository) GetOneAccount(ctx context.Context, opt repo.GetOneAccountOptions) (model.Account, error) {
	query, args, err := r.buildGetOneQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOneAccount"), err)
		return model.Account{}, repo.ErrFailedToGet
	}

	var acc model.Account
	err = r.db.GetContext(ctx, &acc, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneAccount"), err)
		return model.Account{}, repo.ErrFailedToGet
	}
	return acc, nil
}

// ListAccounts returns every Account matching the filters, by id.
func (r *implRepository) ListAccounts(ctx context.Context, opt repo.ListAccountsOptions) ([]model.Account, error) {
	query, args, err := r.buildListQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("ListAccounts"), err)
		return nil, repo.ErrFailedToList
	}

	accounts := []model.Account{}
	if err := r.db.SelectContext(ctx, &accounts, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAccounts"), err)
		return nil, repo.ErrFailedToList
	}
	return accounts, nil
}

// SetActive flips the active flag of an Account.
func (r *implRepository) SetActive(ctx context.Context, id int64, active bool) (model.Account, error) {
	query, args, err := r.buildSetActiveQuery(id, active)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("SetActive"), err)
		return model.Account{}, repo.ErrFailedToUpdate
	}

	var acc model.Account
	err = r.db.GetContext(ctx, &acc, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetActive"), err)
		return model.Account{}, repo.ErrFailedToUpdate
	}
	return acc, nil
}

// DeleteAccount removes an Account by ID.
func (r *implRepository) DeleteAccount(ctx context.Context, id int64) error {
	query, args, err := r.buildDeleteQuery(id)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("DeleteAccount"), err)
		return repo.ErrFailedToDelete
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAccount"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ExistsByEmail reports whether any Account already uses email.
func (r *implRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query, args, err := r.buildCountByEmailQuery(email)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("ExistsByEmail"), err)
		return false, repo.ErrFailedToGet
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ExistsByEmail"), err)
		return false, repo.ErrFailedToGet
	}
	return n > 0, nil
}
