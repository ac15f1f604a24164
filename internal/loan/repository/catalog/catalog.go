package catalog

import (
	"context"
	"fmt"

	repo "library-loans/internal/loan/repository"
	"library-loans/internal/model"
)

// FetchAccount returns the current account snapshot.
func (r *implRepository) FetchAccount(ctx context.Context, id int64) (model.Account, error) {
	var acc *Account
	err := r.withRetry(ctx, targetAccount, opFetch, func(ctx context.Context) error {
		var err error
		acc, err = r.client.GetAccount(ctx, id)
		return err
	})
	if err != nil {
		return model.Account{}, r.collapse(ctx, "FetchAccount", err, true)
	}

	return model.Account{
		ID:       acc.ID,
		FullName: acc.FullName,
		Email:    acc.Email,
		Active:   acc.Active,
	}, nil
}

// FetchItem returns the current item snapshot.
func (r *implRepository) FetchItem(ctx context.Context, id int64) (model.Item, error) {
	var item *Item
	err := r.withRetry(ctx, targetItem, opFetch, func(ctx context.Context) error {
		var err error
		item, err = r.client.GetItem(ctx, id)
		return err
	})
	if err != nil {
		return model.Item{}, r.collapse(ctx, "FetchItem", err, true)
	}

	return model.Item{
		ID:             item.ID,
		Title:          item.Title,
		Author:         item.Author,
		ISBN:           item.ISBN,
		AvailableCount: item.AvailableCount,
	}, nil
}

// UpdateItemCount overwrites the item's available count. Any failure,
// including a 404, is reported as ErrRemoteUnavailable.
func (r *implRepository) UpdateItemCount(ctx context.Context, id int64, availableCount int) error {
	err := r.withRetry(ctx, targetItem, opUpdate, func(ctx context.Context) error {
		return r.client.UpdateItem(ctx, id, UpdateItemRequest{AvailableCount: &availableCount})
	})
	if err != nil {
		return r.collapse(ctx, "UpdateItemCount", err, false)
	}
	return nil
}

// collapse maps a transport outcome onto the two repository sentinels.
// Only reads may report ErrRemoteNotFound.
func (r *implRepository) collapse(ctx context.Context, method string, err error, allowNotFound bool) error {
	if allowNotFound && IsNotFound(err) {
		r.l.Warnf(ctx, "%s: %v", r.dsn(method), err)
		return repo.ErrRemoteNotFound
	}
	r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
	return fmt.Errorf("%w: %v", repo.ErrRemoteUnavailable, err)
}
