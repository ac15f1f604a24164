package postgre

import (
	"github.com/doug-martin/goqu/v9"

	repo "library-loans/internal/account/repository"
)

func (r *implRepository) buildInsertQuery(opt repo.CreateAccountOptions) (string, []any, error) {
	return r.dialect.Insert(tableAccounts).
		Rows(goqu.Record{
			colFullName: opt.FullName,
			colEmail:    opt.Email,
			colActive:   opt.Active,
		}).
		Returning(accountColumns...).
		Prepared(true).
		ToSQL()
}

func (r *implRepository) buildGetOneQuery(opt repo.GetOneAccountOptions) (string, []any, error) {
	ds := r.dialect.From(tableAccounts).Select(accountColumns...)
	if opt.ID > 0 {
		ds = ds.Where(goqu.C(colID).Eq(opt.ID))
	}
	if opt.Email != "" {
		ds = ds.Where(goqu.C(colEmail).Eq(opt.Email))
	}
	return ds.Limit(1).Prepared(true).ToSQL()
}

func (r *implRepository) buildListQuery(opt repo.ListAccountsOptions) (string, []any, error) {
	ds := r.dialect.From(tableAccounts).Select(accountColumns...)
	if opt.ActiveOnly {
		ds = ds.Where(goqu.C(colActive).IsTrue())
	}
	return ds.Order(goqu.C(colID).Asc()).Prepared(true).ToSQL()
}

func (r *implRepository) buildSetActiveQuery(id int64, active bool) (string, []any, error) {
	return r.dialect.Update(tableAccounts).
		Set(goqu.Record{colActive: active}).
		Where(goqu.C(colID).Eq(id)).
		Returning(accountColumns...).
		Prepared(true).
		ToSQL()
}

func (r *implRepository) buildDeleteQuery(id int64) (string, []any, error) {
	return r.dialect.Delete(tableAccounts).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
}

func (r *implRepository) buildCountByEmailQuery(email string) (string, []any, error) {
	return r.dialect.From(tableAccounts).
		Select(goqu.COUNT("*")).
		Where(goqu.C(colEmail).Eq(email)).
		Prepared(true).
		ToSQL()
}
