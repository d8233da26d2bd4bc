// Package errdefs provides useful error types such as 'MultiError'.
package errdefs

import (
	"strings"
)

// MultiError aggregates multiple errors into a single error value, it's used to report the failure which caused a
// rollback alongside any failures encountered whilst cleaning up.
//
// The zero value of MultiError is ready for use.
//
// NOTE: MultiError is not safe for concurrent use and needs to be wrapped in a lock to be shared safely between
// threads.
type MultiError struct {
	errs []error

	// Prefix will be printed before the errors in this MultiError, which are separated by "; ".
	Prefix string
}

// Add adds a new error to this MultiError, nil errors are ignored.
func (m *MultiError) Add(err error) {
	if err == nil {
		return
	}

	m.errs = append(m.errs, err)
}

func (m *MultiError) Error() string {
	if len(m.errs) == 0 {
		return ""
	}

	errStr := strings.Builder{}

	if m.Prefix != "" {
		errStr.WriteString(m.Prefix)
	}

	for _, err := range m.errs[:len(m.errs)-1] {
		errStr.WriteString(err.Error())
		errStr.WriteString("; ")
	}

	errStr.WriteString(m.errs[len(m.errs)-1].Error())

	return errStr.String()
}

// Unwrap returns the accumulated errors so that 'errors.Is' and 'errors.As' inspect every one of them.
//
// NOTE: Callers must not modify the returned slice.
func (m *MultiError) Unwrap() []error {
	return m.errs
}

// ErrOrNil returns this MultiError if it has at least one error, or nil otherwise.
// The intended use case is the following:
//
//	return foo, errs.ErrOrNil()
//
// instead of:
//
//	if len(errs.Unwrap()) > 0 {
//		return nil, errs
//	}
//
//	return foo, nil
func (m *MultiError) ErrOrNil() error {
	if len(m.errs) > 0 {
		return m
	}

	return nil
}
