package database

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when creating an experiment whose ID
// already exists in the store.
var ErrDuplicateID = errors.New("experiment id already exists")

// StorageError wraps a failure of the underlying store: the file cannot
// be opened or created, an insert fails, or the schema of an existing
// file does not match what this package expects.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
