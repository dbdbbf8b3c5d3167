package models

import "errors"

// Error taxonomy surfaced to callers. Services classify repository and
// crypto failures into these before returning; raw driver errors never
// cross the service boundary.
var (
	// ErrDuplicateKey means an employee id or email is already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound means the operation targeted a nonexistent record.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// indistinguishable on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers missing, malformed, tampered and expired
	// tokens, indistinguishable on purpose.
	ErrInvalidToken = errors.New("invalid token")
	// ErrValidation means malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden means the verified identity lacks the required role or
	// ownership for the operation.
	ErrForbidden = errors.New("operation not allowed")
	// ErrConflict means the record is not in a state the operation
	// accepts, e.g. deciding an already-decided leave request.
	ErrConflict = errors.New("conflicting state")
)
