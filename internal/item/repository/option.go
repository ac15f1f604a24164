package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Title          string
	Author         string
	ISBN           string
	AvailableCount int
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID   int64
	ISBN string
}

// ListItemsOptions holds filter parameters for listing Items.
type ListItemsOptions struct {
	InStock bool
}

// UpdateItemOptions holds the full row to write for an existing Item.
type UpdateItemOptions struct {
	ID             int64
	Title          string
	Author         string
	ISBN           string
	AvailableCount int
}
