package http

import (
	"time"

	"library-loans/internal/loan"
	"library-loans/internal/model"
	"library-loans/pkg/response"
)

// --- Request DTOs ---

type issueReq struct {
	AccountID int64          `json:"account_id" binding:"required,gt=0"`
	ItemID    int64          `json:"item_id"    binding:"required,gt=0"`
	LoanDate  *response.Date `json:"loan_date"`
}

func (r issueReq) toInput() loan.IssueInput {
	in := loan.IssueInput{
		AccountID: r.AccountID,
		ItemID:    r.ItemID,
	}
	if r.LoanDate != nil {
		d := time.Time(*r.LoanDate)
		in.LoanDate = &d
	}
	return in
}

// ---

type listReq struct {
	AccountID int64 `form:"account_id" binding:"omitempty,gt=0"`
	ItemID    int64 `form:"item_id"    binding:"omitempty,gt=0"`
}

func (r listReq) toInput() loan.ListInput {
	return loan.ListInput{
		AccountID: r.AccountID,
		ItemID:    r.ItemID,
	}
}

// --- Response DTOs ---

type accountResp struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

type itemResp struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	ISBN           string `json:"isbn"`
	AvailableCount int    `json:"available_count"`
}

type loanResp struct {
	ID         int64          `json:"id"`
	AccountID  int64          `json:"account_id"`
	ItemID     int64          `json:"item_id"`
	LoanDate   response.Date  `json:"loan_date"`
	ReturnDate *response.Date `json:"return_date"`
	Account    *accountResp   `json:"account,omitempty"`
	Item       *itemResp      `json:"item,omitempty"`
}

func newAccountResp(a *model.Account) *accountResp {
	if a == nil {
		return nil
	}
	return &accountResp{ID: a.ID, FullName: a.FullName, Email: a.Email, Active: a.Active}
}

func newItemResp(i *model.Item) *itemResp {
	if i == nil {
		return nil
	}
	return &itemResp{ID: i.ID, Title: i.Title, Author: i.Author, ISBN: i.ISBN, AvailableCount: i.AvailableCount}
}

func newLoanResp(v loan.LoanView) loanResp {
	return loanResp{
		ID:         v.Loan.ID,
		AccountID:  v.Loan.AccountID,
		ItemID:     v.Loan.ItemID,
		LoanDate:   response.Date(v.Loan.LoanDate),
		ReturnDate: response.NewDatePtr(v.Loan.ReturnDate),
		Account:    newAccountResp(v.Account),
		Item:       newItemResp(v.Item),
	}
}

type issueResp struct {
	Loan loanResp `json:"loan"`
}

func (h *handler) newIssueResp(out loan.IssueOutput) issueResp {
	return issueResp{Loan: newLoanResp(out.Loan)}
}

type listResp struct {
	Loans []loanResp `json:"loans"`
}

func (h *handler) newListResp(out loan.ListOutput) listResp {
	loans := make([]loanResp, len(out.Loans))
	for i, v := range out.Loans {
		loans[i] = newLoanResp(v)
	}
	return listResp{Loans: loans}
}

type detailResp struct {
	Loan loanResp `json:"loan"`
}

func (h *handler) newDetailResp(out loan.DetailOutput) detailResp {
	return detailResp{Loan: newLoanResp(out.Loan)}
}

type returnResp struct {
	Loan loanResp `json:"loan"`
}

func (h *handler) newReturnResp(out loan.ReturnOutput) returnResp {
	return returnResp{Loan: newLoanResp(out.Loan)}
}
