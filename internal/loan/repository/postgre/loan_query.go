package postgre

import (
	"github.com/doug-martin/goqu/v9"

	repo "library-loans/internal/loan/repository"
)

// buildInsertQuery builds the INSERT ... RETURNING statement for CreateLoan.
func (r *implRepository) buildInsertQuery(opt repo.CreateLoanOptions) (string, []any, error) {
	return r.dialect.Insert(tableLoans).
		Rows(goqu.Record{
			colAccountID: opt.AccountID,
			colItemID:    opt.ItemID,
			colLoanDate:  opt.LoanDate,
		}).
		Returning(loanColumns...).
		Prepared(true).
		ToSQL()
}

// buildGetOneQuery builds the SELECT for GetOneLoan.
func (r *implRepository) buildGetOneQuery(id int64) (string, []any, error) {
	return r.dialect.From(tableLoans).
		Select(loanColumns...).
		Where(goqu.C(colID).Eq(id)).
		Limit(1).
		Prepared(true).
		ToSQL()
}

// buildListQuery builds the SELECT for ListLoans. Non-zero filters are ANDed.
func (r *implRepository) buildListQuery(opt repo.ListLoansOptions) (string, []any, error) {
	var conditions []goqu.Expression
	if opt.AccountID > 0 {
		conditions = append(conditions, goqu.C(colAccountID).Eq(opt.AccountID))
	}
	if opt.ItemID > 0 {
		conditions = append(conditions, goqu.C(colItemID).Eq(opt.ItemID))
	}

	ds := r.dialect.From(tableLoans).Select(loanColumns...)
	if len(conditions) > 0 {
		ds = ds.Where(goqu.And(conditions...))
	}

	return ds.Order(goqu.C(colID).Asc()).Prepared(true).ToSQL()
}

// buildMarkReturnedQuery builds a conditional UPDATE that only touches
// outstanding loans, so a loan can be closed at most once.
func (r *implRepository) buildMarkReturnedQuery(opt repo.MarkReturnedOptions) (string, []any, error) {
	return r.dialect.Update(tableLoans).
		Set(goqu.Record{colReturnDate: opt.ReturnDate}).
		Where(
			goqu.C(colID).Eq(opt.ID),
			goqu.C(colReturnDate).IsNull(),
		).
		Returning(loanColumns...).
		Prepared(true).
		ToSQL()
}
