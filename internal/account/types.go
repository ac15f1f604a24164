package account

import "library-loans/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	FullName string
	Email    string
}

type ListInput struct {
	ActiveOnly bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Account model.Account
}

type ListOutput struct {
	Accounts []model.Account
}

type DetailOutput struct {
	Account model.Account
}

type DeactivateOutput struct {
	Account model.Account
}
