package usecase

import (
	"context"

	"library-loans/internal/loan"
	repo "library-loans/internal/loan/repository"
	"library-loans/internal/metrics"
)

// Issue runs the issue saga. Validation failures leave no state behind. A
// failure to decrement the remote stock is reported as a communication
// failure, but the recorded loan stays.
func (uc *implUseCase) Issue(ctx context.Context, input loan.IssueInput) (out loan.IssueOutput, err error) {
	start := uc.now()
	defer func() { uc.observe(metrics.SagaIssue, start, err) }()

	// Once started the saga runs to completion; each remote call is bounded by the client timeout.
	ctx = context.WithoutCancel(ctx)

	// 1. Account
	acc, err := uc.validateAccount(ctx, input.AccountID)
	if err != nil {
		return loan.IssueOutput{}, err
	}

	// 2. Item & stock
	item, err := uc.validateItemStock(ctx, input.ItemID)
	if err != nil {
		return loan.IssueOutput{}, err
	}

	// 3. Commit
	loanDate := uc.today()
	if input.LoanDate != nil {
		loanDate = *input.LoanDate
	}
	l, err := uc.repo.CreateLoan(ctx, repo.CreateLoanOptions{
		AccountID: input.AccountID,
		ItemID:    input.ItemID,
		LoanDate:  loanDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Issue CreateLoan: %v", err)
		return loan.IssueOutput{}, err
	}
	uc.l.Infof(ctx, "uc.Issue: loan %d recorded for account %d item %d", l.ID, l.AccountID, l.ItemID)

	// 4. Propagate
	item.AvailableCount--
	if err := uc.catalog.UpdateItemCount(ctx, item.ID, item.AvailableCount); err != nil {
		uc.l.Errorf(ctx, "uc.Issue UpdateItemCount: loan %d recorded but stock of item %d not updated: %v", l.ID, item.ID, err)
		return loan.IssueOutput{}, loan.NewCommunicationFailure("could not update the item stock")
	}

	return loan.IssueOutput{
		Loan: loan.LoanView{Loan: l, Account: &acc, Item: &item},
	}, nil
}
