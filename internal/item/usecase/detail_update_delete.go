package usecase

import (
	"context"
	"errors"

	"library-loans/internal/item"
	repo "library-loans/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (item.DetailOutput, error) {
	found, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailOutput{}, err
	}
	if found.ID == 0 {
		return item.DetailOutput{}, item.ErrItemNotFound
	}
	return item.DetailOutput{Item: found}, nil
}

// Update applies a partial update. The loan service uses it to overwrite
// available_count.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateInput) (item.UpdateOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return item.UpdateOutput{}, err
	}
	if existing.ID == 0 {
		return item.UpdateOutput{}, item.ErrItemNotFound
	}

	if input.AvailableCount != nil && *input.AvailableCount < 0 {
		return item.UpdateOutput{}, item.ErrNegativeStock
	}

	if input.ISBN != nil && *input.ISBN != existing.ISBN {
		exists, err := uc.repo.ExistsByISBN(ctx, *input.ISBN)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update ExistsByISBN: %v", err)
			return item.UpdateOutput{}, err
		}
		if exists {
			return item.UpdateOutput{}, item.ErrDuplicateISBN
		}
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:             existing.ID,
		Title:          coalesce(input.Title, existing.Title),
		Author:         coalesce(input.Author, existing.Author),
		ISBN:           coalesce(input.ISBN, existing.ISBN),
		AvailableCount: coalesce(input.AvailableCount, existing.AvailableCount),
	})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueViolation) {
			return item.UpdateOutput{}, item.ErrDuplicateISBN
		}
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateOutput{}, err
	}
	if updated.ID == 0 {
		return item.UpdateOutput{}, item.ErrItemNotFound
	}
	return item.UpdateOutput{Item: updated}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == 0 {
		return item.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
