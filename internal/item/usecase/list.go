package usecase

import (
	"context"

	"library-loans/internal/item"
	repo "library-loans/internal/item/repository"
)

// List returns all Items.
func (uc *implUseCase) List(ctx context.Context, input item.ListInput) (item.ListOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{InStock: input.InStock})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListOutput{}, err
	}
	return item.ListOutput{Items: items}, nil
}
