// Package errs provides standardized error types for the orderflow application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - AlreadyClaimedError: For when a competing actor already committed a claim
//   - InvalidTransitionError: For when an order transition is not reachable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify outcomes with errors.Is against the sentinels: a claim
// conflict (ErrAlreadyClaimed) is an expected business outcome and must be
// answered with a re-query, never a retry of the same transition; an invalid
// transition (ErrInvalidTransition) is a logic fault and is fatal to the call.
package errs
