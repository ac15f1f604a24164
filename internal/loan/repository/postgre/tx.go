package postgre

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type sqlxTx = sqlx.Tx

// inTx runs fn in a transaction, committing on nil and rolling back otherwise.
// fn's error is returned unchanged so callers can still match sql.ErrNoRows.
func (r *implRepository) inTx(ctx context.Context, fn func(tx *sqlxTx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.l.Warnf(ctx, "%s rollback: %v", r.dsn("inTx"), rbErr)
		}
		return err
	}

	return tx.Commit()
}
