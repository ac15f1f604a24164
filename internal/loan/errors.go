package loan

import (
	"errors"
	"fmt"
)

// Failure taxonomy. Every error a saga returns wraps exactly one of these,
// so callers can branch with errors.Is.
var (
	ErrResourceNotFound     = errors.New("resource not found")
	ErrInvalidState         = errors.New("invalid state")
	ErrCommunicationFailure = errors.New("communication failure")
)

// Tags exposed to API callers next to the reason string.
const (
	KindResourceNotFound     = "RESOURCE_NOT_FOUND"
	KindInvalidState         = "INVALID_STATE"
	KindCommunicationFailure = "COMMUNICATION_FAILURE"
)

const (
	ResourceAccount = "account"
	ResourceItem    = "item"
	ResourceLoan    = "loan"

	ReasonAccountInactive = "account is not active"
	ReasonNoStock         = "no copies available"
	ReasonAlreadyReturned = "loan has already been returned"
)

// SagaError carries a taxonomy kind and a human-readable reason. The reason
// is safe to show to callers.
type SagaError struct {
	kind   error
	Reason string
}

func (e *SagaError) Error() string { return e.Reason }

func (e *SagaError) Unwrap() error { return e.kind }

func NewResourceNotFound(resource string, id int64) error {
	return &SagaError{kind: ErrResourceNotFound, Reason: fmt.Sprintf("%s with id %d does not exist", resource, id)}
}

func NewInvalidState(reason string) error {
	return &SagaError{kind: ErrInvalidState, Reason: reason}
}

func NewCommunicationFailure(reason string) error {
	return &SagaError{kind: ErrCommunicationFailure, Reason: reason}
}

// KindOf returns the API tag for err, or "" when err is outside the taxonomy.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrResourceNotFound):
		return KindResourceNotFound
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrCommunicationFailure):
		return KindCommunicationFailure
	default:
		return ""
	}
}
