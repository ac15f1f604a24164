package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	repo "library-loans/internal/loan/repository"
	"library-loans/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memLoanRepo is an in-memory loan store.
type memLoanRepo struct {
	mu        sync.Mutex
	loans     map[int64]model.Loan
	nextID    int64
	createErr error
}

func newMemLoanRepo() *memLoanRepo {
	return &memLoanRepo{loans: map[int64]model.Loan{}, nextID: 1}
}

func (m *memLoanRepo) CreateLoan(ctx context.Context, opt repo.CreateLoanOptions) (model.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return model.Loan{}, m.createErr
	}
	l := model.Loan{ID: m.nextID, AccountID: opt.AccountID, ItemID: opt.ItemID, LoanDate: opt.LoanDate}
	m.loans[l.ID] = l
	m.nextID++
	return l, nil
}

func (m *memLoanRepo) GetOneLoan(ctx context.Context, id int64) (model.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loans[id], nil
}

func (m *memLoanRepo) ListLoans(ctx context.Context, opt repo.ListLoansOptions) ([]model.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Loan
	for id := int64(1); id < m.nextID; id++ {
		l, ok := m.loans[id]
		if !ok {
			continue
		}
		if opt.AccountID != 0 && l.AccountID != opt.AccountID {
			continue
		}
		if opt.ItemID != 0 && l.ItemID != opt.ItemID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *memLoanRepo) MarkReturned(ctx context.Context, opt repo.MarkReturnedOptions) (model.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.loans[opt.ID]
	if !ok || l.ReturnDate != nil {
		return model.Loan{}, nil
	}
	d := opt.ReturnDate
	l.ReturnDate = &d
	m.loans[l.ID] = l
	return l, nil
}

func (m *memLoanRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.loans)
}

// cancellingLoanRepo cancels the caller's context while the local commit is in
// flight, like a client hanging up mid-request.
type cancellingLoanRepo struct {
	*memLoanRepo
	cancel context.CancelFunc
}

func (r *cancellingLoanRepo) CreateLoan(ctx context.Context, opt repo.CreateLoanOptions) (model.Loan, error) {
	r.cancel()
	return r.memLoanRepo.CreateLoan(ctx, opt)
}

func (r *cancellingLoanRepo) MarkReturned(ctx context.Context, opt repo.MarkReturnedOptions) (model.Loan, error) {
	r.cancel()
	return r.memLoanRepo.MarkReturned(ctx, opt)
}

var errTransport = errors.New("connection refused")

// fakeCatalog is an in-memory account and item store with injectable failures.
type fakeCatalog struct {
	mu       sync.Mutex
	accounts map[int64]model.Account
	items    map[int64]model.Item

	accountErr error
	itemErr    error
	updateErr  error

	// itemErrAfter makes FetchItem fail once it has been called this many times (0 disables).
	itemErrAfter int
	itemCalls    int
	updates      int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		accounts: map[int64]model.Account{
			1: {ID: 1, FullName: "Ada Lovelace", Email: "ada@example.com", Active: true},
			2: {ID: 2, FullName: "Charles Babbage", Email: "charles@example.com", Active: false},
		},
		items: map[int64]model.Item{
			10: {ID: 10, Title: "Dune", Author: "Frank Herbert", ISBN: "978-0441013593", AvailableCount: 5},
		},
	}
}

func (f *fakeCatalog) FetchAccount(ctx context.Context, id int64) (model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return model.Account{}, fmt.Errorf("%w: %v", repo.ErrRemoteUnavailable, err)
	}
	if f.accountErr != nil {
		return model.Account{}, f.accountErr
	}
	acc, ok := f.accounts[id]
	if !ok {
		return model.Account{}, repo.ErrRemoteNotFound
	}
	return acc, nil
}

func (f *fakeCatalog) FetchItem(ctx context.Context, id int64) (model.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrRemoteUnavailable, err)
	}
	f.itemCalls++
	if f.itemErr != nil {
		return model.Item{}, f.itemErr
	}
	if f.itemErrAfter > 0 && f.itemCalls > f.itemErrAfter {
		return model.Item{}, errTransport
	}
	item, ok := f.items[id]
	if !ok {
		return model.Item{}, repo.ErrRemoteNotFound
	}
	return item, nil
}

func (f *fakeCatalog) UpdateItemCount(ctx context.Context, id int64, availableCount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", repo.ErrRemoteUnavailable, err)
	}
	if f.updateErr != nil {
		return f.updateErr
	}
	item, ok := f.items[id]
	if !ok {
		return repo.ErrRemoteUnavailable
	}
	item.AvailableCount = availableCount
	f.items[id] = item
	f.updates++
	return nil
}

func (f *fakeCatalog) stock(id int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[id].AvailableCount
}

func (f *fakeCatalog) setStock(id int64, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.items[id]
	item.AvailableCount = n
	f.items[id] = item
}

type sagaObservation struct {
	saga, outcome string
}

type mockRecorder struct {
	mu          sync.Mutex
	sagas       []sagaObservation
	enrichFails map[string]int
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{enrichFails: map[string]int{}}
}

func (m *mockRecorder) ObserveSaga(saga, outcome string, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sagas = append(m.sagas, sagaObservation{saga, outcome})
}

func (m *mockRecorder) IncEnrichmentFailure(snapshot string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enrichFails[snapshot]++
}

func (m *mockRecorder) IncRemoteRequest(target, operation, outcome string) {}

var fixedNow = time.Date(2026, 10, 16, 15, 4, 5, 0, time.UTC)

func newTestUseCase() (*implUseCase, *memLoanRepo, *fakeCatalog, *mockRecorder) {
	loans := newMemLoanRepo()
	catalog := newFakeCatalog()
	rec := newMockRecorder()
	uc := New(&mockLogger{}, loans, catalog, rec)
	uc.now = func() time.Time { return fixedNow }
	return uc, loans, catalog, rec
}
