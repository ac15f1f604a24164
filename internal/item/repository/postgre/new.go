package postgre

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
	"github.com/jmoiron/sqlx"

	"library-loans/internal/item/repository"
	"library-loans/pkg/log"
)

const (
	dialectPostgres = "postgres"
	tableItems      = "items"

	colID             = "id"
	colTitle          = "title"
	colAuthor         = "author"
	colISBN           = "isbn"
	colAvailableCount = "available_count"
)

var itemColumns = []interface{}{colID, colTitle, colAuthor, colISBN, colAvailableCount}

type implRepository struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
	l       log.Logger
}

// New creates a new PostgreSQL-backed Repository for the item domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/postgre: db is required")
	}
	return &implRepository{db: db, dialect: goqu.Dialect(dialectPostgres), l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/postgre.%s", method)
}
