package services

import "errors"

// Shared error taxonomy of the request workflow engine and its
// supporting services. Handlers translate these with errors.Is onto
// HTTP status codes; anything else bubbling up from storage is an
// internal error, logged and never retried.
var (
	// ErrUnauthenticated indicates no valid session identity was supplied
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden indicates the caller's role or ownership does not
	// permit the operation
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidStatus indicates a status outside the settable set
	// {accepted, rejected}
	ErrInvalidStatus = errors.New("invalid status")

	// ErrNotFound indicates the referenced entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrSelfRequest indicates a learner addressed a mentoring request
	// to themselves
	ErrSelfRequest = errors.New("cannot request mentoring from yourself")

	// ErrDuplicateRequest indicates a request for an already-used
	// (learner, mentor, skill) triple; recoverable by the caller
	ErrDuplicateRequest = errors.New("duplicate request")

	// ErrConflict indicates a uniqueness violation outside the skill
	// request path (duplicate email, duplicate course skill pair)
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials indicates a failed email/password login
	ErrInvalidCredentials = errors.New("invalid credentials")
)
