package item

import "errors"

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrDuplicateISBN = errors.New("an item with this isbn already exists")
	ErrNegativeStock = errors.New("available count cannot be negative")
)
