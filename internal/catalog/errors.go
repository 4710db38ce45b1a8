package catalog

import "fmt"

// StorageError indicates a persistence operation failed. The enclosing
// transaction rolls back every write made in the same ingestion call.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storageErr wraps a gorm error, passing nil through
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// ScoringError indicates the popularity score is undefined for the given
// signals. A non-finite score must never reach storage.
type ScoringError struct {
	Reason string
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("popularity score undefined: %s", e.Reason)
}
