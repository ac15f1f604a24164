package loan

import (
	"time"

	"library-loans/internal/model"
)

// --- Read model ---

// LoanView is a loan plus whatever account/item snapshots could be attached.
// A nil snapshot means the remote store could not be reached or did not know
// the id at read time; it never means the loan itself is invalid.
type LoanView struct {
	Loan    model.Loan
	Account *model.Account
	Item    *model.Item
}

// --- UseCase Inputs ---

type IssueInput struct {
	AccountID int64
	ItemID    int64
	LoanDate  *time.Time // defaults to today when nil
}

type ListInput struct {
	AccountID int64
	ItemID    int64
}

// --- UseCase Outputs ---

type IssueOutput struct {
	Loan LoanView
}

type DetailOutput struct {
	Loan LoanView
}

type ListOutput struct {
	Loans []LoanView
}

type ReturnOutput struct {
	Loan LoanView
}
