package postgre

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	repo "library-loans/internal/loan/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var loanRowColumns = []string{"id", "account_id", "item_id", "loan_date", "return_date"}

func newMockRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r := New(sqlx.NewDb(db, "postgres"), &mockLogger{}).(*implRepository)
	return r, mock
}

func TestCreateLoan(t *testing.T) {
	ctx := context.Background()
	loanDate := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	t.Run("inserts in a transaction", func(t *testing.T) {
		r, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "loans"`)).
			WithArgs(int64(1), int64(10), loanDate).
			WillReturnRows(sqlmock.NewRows(loanRowColumns).AddRow(int64(5), int64(1), int64(10), loanDate, nil))
		mock.ExpectCommit()

		l, err := r.CreateLoan(ctx, repo.CreateLoanOptions{AccountID: 1, ItemID: 10, LoanDate: loanDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.ID != 5 || l.AccountID != 1 || l.ItemID != 10 {
			t.Errorf("unexpected loan: %+v", l)
		}
		if l.ReturnDate != nil {
			t.Errorf("expected nil return date, got %v", l.ReturnDate)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		r, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "loans"`)).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		_, err := r.CreateLoan(ctx, repo.CreateLoanOptions{AccountID: 1, ItemID: 10, LoanDate: loanDate})
		if !errors.Is(err, repo.ErrFailedToInsert) {
			t.Fatalf("expected ErrFailedToInsert, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}

func TestGetOneLoan(t *testing.T) {
	ctx := context.Background()
	loanDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	returnDate := time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM "loans"`)).
			WillReturnRows(sqlmock.NewRows(loanRowColumns).AddRow(int64(3), int64(2), int64(10), loanDate, returnDate))

		l, err := r.GetOneLoan(ctx, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.ID != 3 || !l.IsReturned() || !l.ReturnDate.Equal(returnDate) {
			t.Errorf("unexpected loan: %+v", l)
		}
	})

	t.Run("not found returns zero value", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM "loans"`)).
			WillReturnRows(sqlmock.NewRows(loanRowColumns))

		l, err := r.GetOneLoan(ctx, 99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.ID != 0 {
			t.Errorf("expected zero loan, got %+v", l)
		}
	})

	t.Run("db error", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM "loans"`)).
			WillReturnError(sql.ErrConnDone)

		if _, err := r.GetOneLoan(ctx, 1); !errors.Is(err, repo.ErrFailedToGet) {
			t.Fatalf("expected ErrFailedToGet, got %v", err)
		}
	})
}

func TestListLoans(t *testing.T) {
	ctx := context.Background()
	loanDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	r, mock := newMockRepo(t)
	mock.ExpectQuery(`FROM "loans" WHERE .*"account_id" = \$1.*ORDER BY "id" ASC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(loanRowColumns).
			AddRow(int64(1), int64(1), int64(10), loanDate, nil).
			AddRow(int64(2), int64(1), int64(11), loanDate, loanDate))

	loans, err := r.ListLoans(ctx, repo.ListLoansOptions{AccountID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loans) != 2 {
		t.Fatalf("expected 2 loans, got %d", len(loans))
	}
	if loans[0].IsReturned() || !loans[1].IsReturned() {
		t.Errorf("unexpected return state: %+v", loans)
	}
}

func TestMarkReturned(t *testing.T) {
	ctx := context.Background()
	loanDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	returnDate := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	t.Run("closes an outstanding loan", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "loans" SET "return_date"=$1`)).
			WithArgs(returnDate, int64(1)).
			WillReturnRows(sqlmock.NewRows(loanRowColumns).AddRow(int64(1), int64(1), int64(10), loanDate, returnDate))
		mock.ExpectCommit()

		l, err := r.MarkReturned(ctx, repo.MarkReturnedOptions{ID: 1, ReturnDate: returnDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !l.IsReturned() {
			t.Errorf("expected returned loan, got %+v", l)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("already returned matches no row", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`"return_date" IS NULL`)).
			WillReturnRows(sqlmock.NewRows(loanRowColumns))
		mock.ExpectRollback()

		l, err := r.MarkReturned(ctx, repo.MarkReturnedOptions{ID: 1, ReturnDate: returnDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.ID != 0 {
			t.Errorf("expected zero loan, got %+v", l)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}
