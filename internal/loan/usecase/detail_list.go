package usecase

import (
	"context"

	"library-loans/internal/loan"
	repo "library-loans/internal/loan/repository"
)

// Detail retrieves a single loan with its snapshots attached.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (loan.DetailOutput, error) {
	l, err := uc.repo.GetOneLoan(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneLoan: %v", err)
		return loan.DetailOutput{}, err
	}
	if l.ID == 0 {
		return loan.DetailOutput{}, loan.NewResourceNotFound(loan.ResourceLoan, id)
	}
	return loan.DetailOutput{Loan: uc.enrich(ctx, l)}, nil
}

// List returns every loan matching the filters, each enriched independently.
func (uc *implUseCase) List(ctx context.Context, input loan.ListInput) (loan.ListOutput, error) {
	loans, err := uc.repo.ListLoans(ctx, repo.ListLoansOptions{
		AccountID: input.AccountID,
		ItemID:    input.ItemID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListLoans: %v", err)
		return loan.ListOutput{}, err
	}

	views := make([]loan.LoanView, 0, len(loans))
	for _, l := range loans {
		views = append(views, uc.enrich(ctx, l))
	}
	return loan.ListOutput{Loans: views}, nil
}
