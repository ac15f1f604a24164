package model

import "time"

// Loan is one borrowing transaction. ReturnDate is nil while the loan is outstanding.
type Loan struct {
	ID         int64      `db:"id"`
	AccountID  int64      `db:"account_id"`
	ItemID     int64      `db:"item_id"`
	LoanDate   time.Time  `db:"loan_date"`
	ReturnDate *time.Time `db:"return_date"`
}

// IsReturned reports whether the return saga has already completed for this loan.
func (l Loan) IsReturned() bool {
	return l.ReturnDate != nil
}
