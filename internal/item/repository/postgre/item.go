package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	repo "library-loans/internal/item/repository"
	"library-loans/internal/model"
)

const pqUniqueViolation = "23505"

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	query, args, err := r.buildInsertQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}

	var item model.Item
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Item{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem retrieves a single Item by the provided filters (AND condition).
// Returns zero-value Item (ID == 0) when not found; not-found is not an error.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	query, args, err := r.buildGetOneQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}

	var item model.Item
	err = r.db.GetContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns every Item matching the filters, by id.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	query, args, err := r.buildListQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}

	items := []model.Item{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItem overwrites an Item by ID and returns the updated entity.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	query, args, err := r.buildUpdateQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}

	var item model.Item
	err = r.db.GetContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return model.Item{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	query, args, err := r.buildDeleteQuery(id)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ExistsByISBN reports whether any Item already uses isbn.
func (r *implRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	query, args, err := r.buildCountByISBNQuery(isbn)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("ExistsByISBN"), err)
		return false, repo.ErrFailedToGet
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ExistsByISBN"), err)
		return false, repo.ErrFailedToGet
	}
	return n > 0, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
