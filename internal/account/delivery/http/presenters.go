package http

import (
	"library-loans/internal/account"
	"library-loans/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	FullName string `json:"full_name" binding:"required,min=1,max=80"`
	Email    string `json:"email"     binding:"required,email"`
}

func (r createReq) toInput() account.CreateInput {
	return account.CreateInput{
		FullName: r.FullName,
		Email:    r.Email,
	}
}

type listReq struct {
	ActiveOnly bool `form:"active_only"`
}

func (r listReq) toInput() account.ListInput {
	return account.ListInput{ActiveOnly: r.ActiveOnly}
}

// --- Response DTOs ---

type accountResp struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

func newAccountResp(a model.Account) accountResp {
	return accountResp{
		ID:       a.ID,
		FullName: a.FullName,
		Email:    a.Email,
		Active:   a.Active,
	}
}

type singleResp struct {
	Account accountResp `json:"account"`
}

type listResp struct {
	Accounts []accountResp `json:"accounts"`
}

func (h *handler) newListResp(out account.ListOutput) listResp {
	accounts := make([]accountResp, len(out.Accounts))
	for i, a := range out.Accounts {
		accounts[i] = newAccountResp(a)
	}
	return listResp{Accounts: accounts}
}
