package usecase

import (
	"context"

	"library-loans/internal/loan"
	"library-loans/internal/model"
)

const (
	snapshotAccount = "account"
	snapshotItem    = "item"
)

// enrich attaches the current account and item snapshots. Failures are
// logged and leave the snapshot nil; they never fail the caller.
func (uc *implUseCase) enrich(ctx context.Context, l model.Loan) loan.LoanView {
	view := loan.LoanView{Loan: l}

	if acc, err := uc.catalog.FetchAccount(ctx, l.AccountID); err != nil {
		uc.l.Warnf(ctx, "uc.enrich: loan %d account %d: %v", l.ID, l.AccountID, err)
		uc.metrics.IncEnrichmentFailure(snapshotAccount)
	} else {
		view.Account = &acc
	}

	if item, err := uc.catalog.FetchItem(ctx, l.ItemID); err != nil {
		uc.l.Warnf(ctx, "uc.enrich: loan %d item %d: %v", l.ID, l.ItemID, err)
		uc.metrics.IncEnrichmentFailure(snapshotItem)
	} else {
		view.Item = &item
	}

	return view
}
