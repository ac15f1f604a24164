package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")

	// ErrRemoteNotFound: the remote store answered that the resource does not exist.
	ErrRemoteNotFound = errors.New("remote resource not found")
	// ErrRemoteUnavailable: the remote state could not be confirmed or changed.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)
