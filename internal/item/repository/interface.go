package repository

import (
	"context"

	"library-loans/internal/model"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	// GetOneItem returns a zero-value Item (ID == 0) when not found.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	// UpdateItem returns a zero-value Item when the id does not exist.
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
}
