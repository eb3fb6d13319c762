package database

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned when a targeted read, update or delete matched no row.
	ErrNotFound = errors.New("requested resource not found")
	// ErrInvalidReference is matched by every *InvalidReferenceError.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrStoreFailure is matched by any unclassified error coming from the store.
	ErrStoreFailure = errors.New("store failure")
)

// InvalidReferenceError lists referenced ids that do not exist.
type InvalidReferenceError struct {
	Entity string
	IDs    []int
}

func (e *InvalidReferenceError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("invalid %s ID(s): %s", e.Entity, strings.Join(ids, ", "))
}

func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// Failure classifies err as a store failure for operation op. Errors that
// already carry a kind are returned unchanged.
func Failure(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidReference) || errors.Is(err, ErrStoreFailure) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreFailure, err)
}
