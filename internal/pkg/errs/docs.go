// Package errs provides standardized error types for the hub operations core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Validation errors:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value is outside of its allowed bounds
//
// Operational errors surfaced to callers:
//   - ObjectNotFoundError: a CN, batch or document id does not resolve
//   - DuplicateMemberError: a CN is already held by the document
//   - InvalidTransitionError: a status change is not reachable
//   - AlreadyClosedError: a completed document or closed batch was mutated
//   - SymmetryConflictError: the mirror pricing row could not be written
//   - AllocationExhaustedError: the sequence allocator ran out of attempts
//   - LookupFailedError: the consignment lookup failed for a reason other than not-found
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on wrapped values
package errs
