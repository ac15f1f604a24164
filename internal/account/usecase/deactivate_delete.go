package usecase

import (
	"context"

	"library-loans/internal/account"
	repo "library-loans/internal/account/repository"
)

// Deactivate clears the active flag. Deactivating an inactive account is a no-op.
func (uc *implUseCase) Deactivate(ctx context.Context, id int64) (account.DeactivateOutput, error) {
	acc, err := uc.repo.SetActive(ctx, id, false)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Deactivate SetActive: %v", err)
		return account.DeactivateOutput{}, err
	}
	if acc.ID == 0 {
		return account.DeactivateOutput{}, account.ErrAccountNotFound
	}
	uc.l.Infof(ctx, "uc.Deactivate: account %d deactivated", id)
	return account.DeactivateOutput{Account: acc}, nil
}

// Delete removes an Account by ID. Returns ErrAccountNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneAccount(ctx, repo.GetOneAccountOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneAccount: %v", err)
		return err
	}
	if existing.ID == 0 {
		return account.ErrAccountNotFound
	}
	if err := uc.repo.DeleteAccount(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteAccount: %v", err)
		return err
	}
	return nil
}
