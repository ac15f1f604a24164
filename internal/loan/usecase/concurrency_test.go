package usecase

import (
	"context"
	"sync"
	"testing"

	"library-loans/internal/loan"
	"library-loans/internal/model"
)

// barrierCatalog holds every FetchItem until n callers have read the item,
// forcing concurrent sagas to observe the same stock.
type barrierCatalog struct {
	*fakeCatalog
	wg sync.WaitGroup
}

func (b *barrierCatalog) FetchItem(ctx context.Context, id int64) (model.Item, error) {
	item, err := b.fakeCatalog.FetchItem(ctx, id)
	b.wg.Done()
	b.wg.Wait()
	return item, err
}

// Two issues racing on the last copy both succeed: the stock read and write
// are not guarded by any version token.
func TestIssue_ConcurrentLastCopy(t *testing.T) {
	ctx := context.Background()
	uc, loans, catalog, _ := newTestUseCase()
	catalog.setStock(10, 1)

	barrier := &barrierCatalog{fakeCatalog: catalog}
	barrier.wg.Add(2)
	uc.catalog = barrier

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Issue(ctx, loan.IssueInput{AccountID: 1, ItemID: 10})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("Issue #%d: %v", i+1, err)
		}
	}
	if loans.count() != 2 {
		t.Errorf("loans = %d, want 2", loans.count())
	}
	if got := catalog.stock(10); got != 0 {
		t.Errorf("stock = %d, want 0: both sagas wrote the same decremented count", got)
	}
}
