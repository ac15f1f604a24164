package postgre

import (
	"github.com/doug-martin/goqu/v9"

	repo "library-loans/internal/item/repository"
)

func (r *implRepository) buildInsertQuery(opt repo.CreateItemOptions) (string, []any, error) {
	return r.dialect.Insert(tableItems).
		Rows(goqu.Record{
			colTitle:          opt.Title,
			colAuthor:         opt.Author,
			colISBN:           opt.ISBN,
			colAvailableCount: opt.AvailableCount,
		}).
		Returning(itemColumns...).
		Prepared(true).
		ToSQL()
}

// buildGetOneQuery builds the SELECT for GetOneItem.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) (string, []any, error) {
	ds := r.dialect.From(tableItems).Select(itemColumns...)
	if opt.ID > 0 {
		ds = ds.Where(goqu.C(colID).Eq(opt.ID))
	}
	if opt.ISBN != "" {
		ds = ds.Where(goqu.C(colISBN).Eq(opt.ISBN))
	}
	return ds.Limit(1).Prepared(true).ToSQL()
}

func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any, error) {
	ds := r.dialect.From(tableItems).Select(itemColumns...)
	if opt.InStock {
		ds = ds.Where(goqu.C(colAvailableCount).Gt(0))
	}
	return ds.Order(goqu.C(colID).Asc()).Prepared(true).ToSQL()
}

func (r *implRepository) buildUpdateQuery(opt repo.UpdateItemOptions) (string, []any, error) {
	return r.dialect.Update(tableItems).
		Set(goqu.Record{
			colTitle:          opt.Title,
			colAuthor:         opt.Author,
			colISBN:           opt.ISBN,
			colAvailableCount: opt.AvailableCount,
		}).
		Where(goqu.C(colID).Eq(opt.ID)).
		Returning(itemColumns...).
		Prepared(true).
		ToSQL()
}

func (r *implRepository) buildDeleteQuery(id int64) (string, []any, error) {
	return r.dialect.Delete(tableItems).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
}

func (r *implRepository) buildCountByISBNQuery(isbn string) (string, []any, error) {
	return r.dialect.From(tableItems).
		Select(goqu.COUNT("*")).
		Where(goqu.C(colISBN).Eq(isbn)).
		Prepared(true).
		ToSQL()
}
