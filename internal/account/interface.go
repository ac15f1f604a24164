package account

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Create always registers the account as active.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	// Deactivate blocks new loans for the account. Existing loans can still be returned.
	Deactivate(ctx context.Context, id int64) (DeactivateOutput, error)
	Delete(ctx context.Context, id int64) error
}
