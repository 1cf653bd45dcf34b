package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email or username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoteNotFound indicates that note was not found for the requesting owner.
	// Deliberately covers both "no such note" and "note belongs to someone else"
	// so callers cannot probe for foreign note IDs.
	ErrNoteNotFound = errors.New("note not found")
)
