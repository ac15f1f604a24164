package postgre

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
	"github.com/jmoiron/sqlx"

	"library-loans/internal/account/repository"
	"library-loans/pkg/log"
)

const (
	dialectPostgres = "postgres"
	tableAccounts   = "accounts"

	colID       = "id"
	colFullName = "full_name"
	colEmail    = "email"
	colActive   = "active"
)

var accountColumns = []interface{}{colID, colFullName, colEmail, colActive}

type implRepository struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
	l       log.Logger
}

// New creates a new PostgreSQL-backed Repository for the account domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("account/repository/postgre: db is required")
	}
	return &implRepository{db: db, dialect: goqu.Dialect(dialectPostgres), l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("account/repository/postgre.%s", method)
}
