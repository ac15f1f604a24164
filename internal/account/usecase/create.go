package usecase

import (
	"context"
	"errors"
	"strings"

	"library-loans/internal/account"
	repo "library-loans/internal/account/repository"
)

// Create registers a new active Account after checking for email uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input account.CreateInput) (account.CreateOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := uc.repo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create ExistsByEmail: %v", err)
		return account.CreateOutput{}, err
	}
	if exists {
		return account.CreateOutput{}, account.ErrDuplicateEmail
	}

	created, err := uc.repo.CreateAccount(ctx, repo.CreateAccountOptions{
		FullName: strings.TrimSpace(input.FullName),
		Email:    email,
		Active:   true,
	})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueViolation) {
			return account.CreateOutput{}, account.ErrDuplicateEmail
		}
		uc.l.Errorf(ctx, "uc.Create CreateAccount: %v", err)
		return account.CreateOutput{}, err
	}

	return account.CreateOutput{Account: created}, nil
}
