package postgre

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
	"github.com/jmoiron/sqlx"

	"library-loans/internal/loan/repository"
	"library-loans/pkg/log"
)

const (
	dialectPostgres = "postgres"
	tableLoans      = "loans"

	colID         = "id"
	colAccountID  = "account_id"
	colItemID     = "item_id"
	colLoanDate   = "loan_date"
	colReturnDate = "return_date"
)

var loanColumns = []interface{}{colID, colAccountID, colItemID, colLoanDate, colReturnDate}

type implRepository struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
	l       log.Logger
}

// New creates a new PostgreSQL-backed Repository for the loan domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("loan/repository/postgre: db is required")
	}
	return &implRepository{db: db, dialect: goqu.Dialect(dialectPostgres), l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("loan/repository/postgre.%s", method)
}
