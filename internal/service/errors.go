package service

import "errors"

var (
	// ErrNotFound is returned when a read, update, or delete targets an id
	// with no matching record.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateName is returned when a unique-name constraint rejects a
	// create or update.
	ErrDuplicateName = errors.New("name already in use")
)
