package repository

import "time"

// CreateLoanOptions holds parameters for inserting a new Loan.
type CreateLoanOptions struct {
	AccountID int64
	ItemID    int64
	LoanDate  time.Time
}

// ListLoansOptions holds filter parameters for listing Loans.
// Zero-valued fields are ignored.
type ListLoansOptions struct {
	AccountID int64
	ItemID    int64
}

// MarkReturnedOptions holds parameters for closing a Loan.
type MarkReturnedOptions struct {
	ID         int64
	ReturnDate time.Time
}
