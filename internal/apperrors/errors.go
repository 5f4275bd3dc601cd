// Package apperrors defines the error kinds the application core raises.
// HTTP status mapping happens only at the interface layer.
package apperrors

import (
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound signals that the requested employee does not exist.
	ErrNotFound = fmt.Errorf("employee not found")

	// ErrAmbiguous signals that a lookup expected a single match but found
	// more than one (email is not enforced unique by the store).
	ErrAmbiguous = fmt.Errorf("more than one employee matches")
)

// ValidationError carries per-field rule violations.
type ValidationError struct {
	Details map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Details: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	if e.Details == nil {
		e.Details = map[string]string{}
	}
	e.Details[field] = message
}

func (e *ValidationError) HasErrors() bool { return len(e.Details) > 0 }

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// DependencyError signals that a collaborator (department service, store,
// broker) was unreachable or misbehaved. Distinct from "does not exist".
type DependencyError struct {
	Service string
	Err     error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency %s unavailable: %v", e.Service, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

func NewDependencyError(service string, err error) *DependencyError {
	return &DependencyError{Service: service, Err: err}
}
