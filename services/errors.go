package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services.
var (
	// ErrItemNotFound is returned by DynamoService.GetItem when no item
	// exists for the given key. Callers that treat "not found" as a valid
	// result (the profile store does) must check for it explicitly.
	ErrItemNotFound = errors.New("item not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrSessionNotFound    = errors.New("session not found")

	ErrInvalidTransition = errors.New("invalid transition for current screen")
	ErrNotMatched        = errors.New("profile is not in the match list")
	ErrNoActiveChat      = errors.New("no active chat thread")
	ErrFeedExhausted     = errors.New("no more candidates")

	ErrThreadClosed = errors.New("chat thread is closed")
)

// ValidationError reports a profile that is missing required fields. The UI
// is expected to enforce these preconditions; the store rejects anyway.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Reason)
}
