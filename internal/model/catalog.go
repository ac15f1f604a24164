package model

// Account is a library member as seen by the account store.
type Account struct {
	ID       int64  `db:"id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Active   bool   `db:"active"`
}

// Item is a catalog entry as seen by the item store.
type Item struct {
	ID             int64  `db:"id"`
	Title          string `db:"title"`
	Author         string `db:"author"`
	ISBN           string `db:"isbn"`
	AvailableCount int    `db:"available_count"`
}

// HasStock reports whether at least one copy can be lent.
func (i Item) HasStock() bool {
	return i.AvailableCount > 0
}
