package app

import (
	"errors"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"

	"staybook/internal/domain"
)

// hashParams is swapped for cheaper parameters in tests.
var hashParams = argon2id.DefaultParams

func newID() string { return uuid.NewString() }

func hashPassword(pw string) (string, error) {
	return argon2id.CreateHash(pw, hashParams)
}

// HashPassword is exported for the seeder, which inserts records directly.
func HashPassword(pw string) (string, error) { return hashPassword(pw) }

// readErr maps a gateway miss on a single-id read to NotFoundError.
func readErr(err error, resource, id string) error {
	if errors.Is(err, domain.ErrNoRecord) {
		return domain.NewNotFound(resource, id)
	}
	return err
}

// writeErr maps constraint failures reported by the store to ValidationError.
func writeErr(err error, resource string) error {
	switch {
	case errors.Is(err, domain.ErrMissingReference):
		return domain.NewValidation("%s references a record that does not exist.", resource)
	case errors.Is(err, domain.ErrDuplicate):
		return domain.NewValidation("%s already exists.", resource)
	case errors.Is(err, domain.ErrReferenced):
		return domain.NewValidation("%s is still referenced by other records.", resource)
	}
	return err
}

// affectedOne turns the row count of an id-bounded mutation into an outcome.
// Zero rows is NotFound; the store never sees a preceding existence check.
func affectedOne(n int64, err error, resource, id string) error {
	if err != nil {
		return writeErr(err, resource)
	}
	if n == 0 {
		return domain.NewNotFound(resource, id)
	}
	return nil
}

func orEmpty[T any](xs []T) []T {
	if xs == nil {
		return []T{}
	}
	return xs
}
