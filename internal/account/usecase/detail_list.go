package usecase

import (
	"context"

	"library-loans/internal/account"
	repo "library-loans/internal/account/repository"
)

// Detail retrieves a single Account by ID. Returns ErrAccountNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (account.DetailOutput, error) {
	acc, err := uc.repo.GetOneAccount(ctx, repo.GetOneAccountOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneAccount: %v", err)
		return account.DetailOutput{}, err
	}
	if acc.ID == 0 {
		return account.DetailOutput{}, account.ErrAccountNotFound
	}
	return account.DetailOutput{Account: acc}, nil
}

func (uc *implUseCase) List(ctx context.Context, input account.ListInput) (account.ListOutput, error) {
	accounts, err := uc.repo.ListAccounts(ctx, repo.ListAccountsOptions{ActiveOnly: input.ActiveOnly})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListAccounts: %v", err)
		return account.ListOutput{}, err
	}
	return account.ListOutput{Accounts: accounts}, nil
}
