package errs

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateMember     = errors.New("duplicate member")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrAlreadyClosed       = errors.New("already closed")
	ErrSymmetryConflict    = errors.New("symmetry conflict")
	ErrAllocationExhausted = errors.New("allocation exhausted")
	ErrLookupFailed        = errors.New("lookup failed")
)

// DuplicateMemberError is returned when a consignment is already held by the
// addressed document, or by another open document of the same kind.
type DuplicateMemberError struct {
	CN           string
	DocumentCode string
}

func NewDuplicateMemberError(cn string, documentCode string) *DuplicateMemberError {
	return &DuplicateMemberError{CN: cn, DocumentCode: documentCode}
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("%s: %s is already held by %s", ErrDuplicateMember, e.CN, e.DocumentCode)
}

func (e *DuplicateMemberError) Unwrap() error {
	return ErrDuplicateMember
}

// InvalidTransitionError is returned when a status change is not reachable
// from the current status.
type InvalidTransitionError struct {
	Subject string
	From    string
	To      string
	Cause   error
}

func NewInvalidTransitionError(subject string, from string, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Subject: subject, From: from, To: to}
}

func NewInvalidTransitionErrorWithCause(subject string, from string, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Subject: subject, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Subject, e.From, e.To)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyClosedError is returned when a mutation targets a completed document
// or a closed batch.
type AlreadyClosedError struct {
	Entity string
	ID     string
}

func NewAlreadyClosedError(entity string, id string) *AlreadyClosedError {
	return &AlreadyClosedError{Entity: entity, ID: id}
}

func (e *AlreadyClosedError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrAlreadyClosed, e.Entity, e.ID)
}

func (e *AlreadyClosedError) Unwrap() error {
	return ErrAlreadyClosed
}

// SymmetryConflictError is returned when the mirror row of a pricing pair
// could not be written. The primary write has been rolled back.
type SymmetryConflictError struct {
	Route    string
	Attempts int
	Cause    error
}

func NewSymmetryConflictError(route string, attempts int, cause error) *SymmetryConflictError {
	return &SymmetryConflictError{Route: route, Attempts: attempts, Cause: cause}
}

func (e *SymmetryConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: mirror of %s not written after %d attempts (cause: %v)",
			ErrSymmetryConflict, e.Route, e.Attempts, e.Cause)
	}
	return fmt.Sprintf("%s: mirror of %s not written after %d attempts", ErrSymmetryConflict, e.Route, e.Attempts)
}

func (e *SymmetryConflictError) Unwrap() error {
	return ErrSymmetryConflict
}

// AllocationExhaustedError is returned when the sequence allocator could not
// find an unused code within its retry budget.
type AllocationExhaustedError struct {
	Kind     string
	Scope    string
	Attempts int
}

func NewAllocationExhaustedError(kind string, scope string, attempts int) *AllocationExhaustedError {
	return &AllocationExhaustedError{Kind: kind, Scope: scope, Attempts: attempts}
}

func (e *AllocationExhaustedError) Error() string {
	return fmt.Sprintf("%s: no free %s code for scope %q after %d attempts",
		ErrAllocationExhausted, e.Kind, e.Scope, e.Attempts)
}

func (e *AllocationExhaustedError) Unwrap() error {
	return ErrAllocationExhausted
}

// LookupFailedError wraps a failure of the consignment lookup collaborator
// other than not-found.
type LookupFailedError struct {
	CN    string
	Cause error
}

func NewLookupFailedError(cn string, cause error) *LookupFailedError {
	return &LookupFailedError{CN: cn, Cause: cause}
}

func (e *LookupFailedError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrLookupFailed, e.CN, e.Cause)
}

func (e *LookupFailedError) Unwrap() error {
	return ErrLookupFailed
}
