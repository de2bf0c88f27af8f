package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports a lookup, update or delete that addressed an id
// absent from the store.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s was not found.", e.Resource, e.ID)
}

// ValidationError is a request the service refuses before or instead of
// touching the store: malformed bodies, unresolved references, duplicates.
type ValidationError struct {
	Message string
}

func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrThrottled    = errors.New("too many attempts")
)

// Gateway sentinels. Repositories return these; services translate them.
var (
	ErrNoRecord         = errors.New("store: no record")
	ErrMissingReference = errors.New("store: referenced record does not exist")
	ErrDuplicate        = errors.New("store: duplicate key")
	ErrReferenced       = errors.New("store: record is referenced by other records")
)

// Confirmation is the body returned by update and delete operations.
type Confirmation struct {
	Message string `json:"message"`
}

func Updated(resource, id string) Confirmation {
	return Confirmation{Message: fmt.Sprintf("%s with id %s was updated!", resource, id)}
}

func Deleted(resource, id string) Confirmation {
	return Confirmation{Message: fmt.Sprintf("%s with id %s was deleted!", resource, id)}
}
