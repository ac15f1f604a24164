package usecase

import (
	"context"
	"errors"

	"library-loans/internal/item"
	repo "library-loans/internal/item/repository"
)

// Create creates a new Item after checking for ISBN uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateInput) (item.CreateOutput, error) {
	if input.AvailableCount < 0 {
		return item.CreateOutput{}, item.ErrNegativeStock
	}

	exists, err := uc.repo.ExistsByISBN(ctx, input.ISBN)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create ExistsByISBN: %v", err)
		return item.CreateOutput{}, err
	}
	if exists {
		return item.CreateOutput{}, item.ErrDuplicateISBN
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Title:          input.Title,
		Author:         input.Author,
		ISBN:           input.ISBN,
		AvailableCount: input.AvailableCount,
	})
	if err != nil {
		// Lost the race to a concurrent create with the same ISBN.
		if errors.Is(err, repo.ErrUniqueViolation) {
			return item.CreateOutput{}, item.ErrDuplicateISBN
		}
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateOutput{}, err
	}

	return item.CreateOutput{Item: created}, nil
}
