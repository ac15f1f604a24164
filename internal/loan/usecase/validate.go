package usecase

import (
	"context"
	"errors"

	"library-loans/internal/loan"
	repo "library-loans/internal/loan/repository"
	"library-loans/internal/model"
)

// validateAccount fetches the borrower and requires it to be active.
func (uc *implUseCase) validateAccount(ctx context.Context, id int64) (model.Account, error) {
	acc, err := uc.catalog.FetchAccount(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrRemoteNotFound) {
			uc.l.Warnf(ctx, "uc.validateAccount: account %d does not exist", id)
			return model.Account{}, loan.NewResourceNotFound(loan.ResourceAccount, id)
		}
		uc.l.Errorf(ctx, "uc.validateAccount FetchAccount: %v", err)
		return model.Account{}, loan.NewCommunicationFailure("could not reach the account service")
	}

	if !acc.Active {
		uc.l.Warnf(ctx, "uc.validateAccount: account %d is not active", id)
		return model.Account{}, loan.NewInvalidState(loan.ReasonAccountInactive)
	}
	return acc, nil
}

// validateItemStock fetches the item and requires at least one available copy.
func (uc *implUseCase) validateItemStock(ctx context.Context, id int64) (model.Item, error) {
	item, err := uc.catalog.FetchItem(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrRemoteNotFound) {
			uc.l.Warnf(ctx, "uc.validateItemStock: item %d does not exist", id)
			return model.Item{}, loan.NewResourceNotFound(loan.ResourceItem, id)
		}
		uc.l.Errorf(ctx, "uc.validateItemStock FetchItem: %v", err)
		return model.Item{}, loan.NewCommunicationFailure("could not reach the item service")
	}

	if !item.HasStock() {
		uc.l.Warnf(ctx, "uc.validateItemStock: item %d has no stock", id)
		return model.Item{}, loan.NewInvalidState(loan.ReasonNoStock)
	}
	return item, nil
}
