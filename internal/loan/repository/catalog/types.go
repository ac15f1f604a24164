package catalog

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

const maxErrorBody = 4 << 10

// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
var ErrMalformedResponse = errors.New("malformed catalog response")

// StatusError is a non-2xx answer from a catalog store.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog API error %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an explicit 404 from the remote store.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// ---- Request/Response types scoped to this package ----

type envelope struct {
	ErrorCode int                 `json:"error_code"`
	Message   string              `json:"message"`
	Data      jsoniter.RawMessage `json:"data"`
}

// Account is the account store's account object.
type Account struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

// Item is the item store's item object.
type Item struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	ISBN           string `json:"isbn"`
	AvailableCount int    `json:"available_count"`
}

// UpdateItemRequest is the body for PUT /api/v1/items/{id}. Nil fields are left unchanged.
type UpdateItemRequest struct {
	AvailableCount *int `json:"available_count,omitempty"`
}
