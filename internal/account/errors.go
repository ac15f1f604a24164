package account

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateEmail  = errors.New("an account with this email already exists")
)
