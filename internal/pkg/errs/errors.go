package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the stable classification targets for errors.Is.
var (
	// ErrObjectNotFound indicates a referenced object does not exist in storage.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates a supplied value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsRequired indicates a required value was missing or zero.
	ErrValueIsRequired = errors.New("value is required")

	// ErrAlreadyClaimed indicates a guarded order update found the order
	// already claimed by a competing actor. The losing caller must re-query;
	// retrying the same transition can never succeed.
	ErrAlreadyClaimed = errors.New("order already claimed")

	// ErrInvalidTransition indicates a requested order transition is not
	// reachable from the order's current status. This is a logic fault and
	// is fatal to the call.
	ErrInvalidTransition = errors.New("invalid order transition")

	// ErrNotAuthenticated indicates no resolved identity was available for a
	// role-scoped action.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrPermissionDenied indicates an authenticated actor invoked an
	// operation outside its role's workspace.
	ErrPermissionDenied = errors.New("permission denied")
)

// sanitize flattens multi-line values so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError reports that an object referenced by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that a named value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// AlreadyClaimedError reports that the order is no longer in the status a
// claim expects: a competing actor committed the claim first. It is raised by
// the conditional update when the race is lost at write time, and by the
// order aggregate when a read already shows the committed claim.
type AlreadyClaimedError struct {
	OrderID        string
	ExpectedStatus string
}

// NewAlreadyClaimedError creates an AlreadyClaimedError for the given order.
func NewAlreadyClaimedError(orderID, expectedStatus string) *AlreadyClaimedError {
	return &AlreadyClaimedError{OrderID: orderID, ExpectedStatus: expectedStatus}
}

func (e *AlreadyClaimedError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s is no longer %s",
		ErrAlreadyClaimed, e.OrderID, e.ExpectedStatus))
}

func (e *AlreadyClaimedError) Unwrap() error {
	return ErrAlreadyClaimed
}

// InvalidTransitionError reports a transition that the order state machine
// does not define from the order's current status.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the attempted step.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot advance to %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PermissionDeniedError reports that an actor's role does not grant the
// attempted operation.
type PermissionDeniedError struct {
	RequiredRole string
	ActualRole   string
}

// NewPermissionDeniedError creates a PermissionDeniedError for the role mismatch.
func NewPermissionDeniedError(requiredRole, actualRole string) *PermissionDeniedError {
	return &PermissionDeniedError{RequiredRole: requiredRole, ActualRole: actualRole}
}

func (e *PermissionDeniedError) Error() string {
	return sanitize(fmt.Sprintf("%s: requires role %s, actor has role %s",
		ErrPermissionDenied, e.RequiredRole, e.ActualRole))
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}
