package item

import "library-loans/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Title          string
	Author         string
	ISBN           string
	AvailableCount int
}

type ListInput struct {
	InStock bool
}

// UpdateInput is a partial update; nil fields keep their stored value.
type UpdateInput struct {
	ID             int64
	Title          *string
	Author         *string
	ISBN           *string
	AvailableCount *int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Item model.Item
}

type ListOutput struct {
	Items []model.Item
}

type DetailOutput struct {
	Item model.Item
}

type UpdateOutput struct {
	Item model.Item
}
