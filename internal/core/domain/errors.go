package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStorageUnavailable means the database file location could not be
	// opened or reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorageClosed means an operation was attempted after Close and
	// before a new Open.
	ErrStorageClosed = errors.New("storage closed")

	// ErrFetchFailed means the external profile provider returned a
	// non-success response or could not be reached.
	ErrFetchFailed = errors.New("provider fetch failed")
)

// FieldError is a single validation failure, scoped to one record field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects the failures of every invalid field. All
// validators run independently; the list is never short-circuited at the
// first failure.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Fields returns the errors as a field→message map for inline display.
func (e ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(e))
	for _, fe := range e {
		fields[fe.Field] = fe.Message
	}
	return fields
}
