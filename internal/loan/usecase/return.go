package usecase

import (
	"context"

	"library-loans/internal/loan"
	repo "library-loans/internal/loan/repository"
	"library-loans/internal/metrics"
)

// Return runs the return saga. The return date is written at most once; a
// failure to increment the remote stock afterwards does not undo it.
func (uc *implUseCase) Return(ctx context.Context, id int64) (out loan.ReturnOutput, err error) {
	start := uc.now()
	defer func() { uc.observe(metrics.SagaReturn, start, err) }()

	// Once started the saga runs to completion; each remote call is bounded by the client timeout.
	ctx = context.WithoutCancel(ctx)

	// 1. Load
	existing, err := uc.repo.GetOneLoan(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Return GetOneLoan: %v", err)
		return loan.ReturnOutput{}, err
	}
	if existing.ID == 0 {
		return loan.ReturnOutput{}, loan.NewResourceNotFound(loan.ResourceLoan, id)
	}

	// 2. Guard
	if existing.IsReturned() {
		uc.l.Warnf(ctx, "uc.Return: loan %d already returned", id)
		return loan.ReturnOutput{}, loan.NewInvalidState(loan.ReasonAlreadyReturned)
	}

	// 3. Commit
	updated, err := uc.repo.MarkReturned(ctx, repo.MarkReturnedOptions{ID: id, ReturnDate: uc.today()})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Return MarkReturned: %v", err)
		return loan.ReturnOutput{}, err
	}
	if updated.ID == 0 {
		// Lost a race with a concurrent return of the same loan.
		uc.l.Warnf(ctx, "uc.Return: loan %d returned concurrently", id)
		return loan.ReturnOutput{}, loan.NewInvalidState(loan.ReasonAlreadyReturned)
	}
	uc.l.Infof(ctx, "uc.Return: loan %d marked returned", id)

	// 4. Propagate
	if err := uc.restock(ctx, updated.ItemID); err != nil {
		uc.l.Errorf(ctx, "uc.Return: loan %d returned but stock of item %d not updated: %v", id, updated.ItemID, err)
		return loan.ReturnOutput{}, loan.NewCommunicationFailure("could not update the item stock")
	}

	return loan.ReturnOutput{Loan: uc.enrich(ctx, updated)}, nil
}

// restock re-reads the item and puts one copy back.
func (uc *implUseCase) restock(ctx context.Context, itemID int64) error {
	item, err := uc.catalog.FetchItem(ctx, itemID)
	if err != nil {
		return err
	}
	return uc.catalog.UpdateItemCount(ctx, item.ID, item.AvailableCount+1)
}
