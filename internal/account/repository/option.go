package repository

// CreateAccountOptions holds parameters for inserting a new Account.
type CreateAccountOptions struct {
	FullName string
	Email    string
	Active   bool
}

// GetOneAccountOptions holds filter parameters for fetching a single Account.
// All non-empty fields are applied as AND conditions.
type GetOneAccountOptions struct {
	ID    int64
	Email string
}

// ListAccountsOptions holds filter parameters for listing Accounts.
type ListAccountsOptions struct {
	ActiveOnly bool
}
