package domain

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrClientNotFound = errors.New("client not found")
	ErrTaskNotFound   = errors.New("task not found")

	// ErrUnknownEmail is returned by login when no user matches the
	// supplied email (case-sensitive exact match).
	ErrUnknownEmail = errors.New("no account matches that email")

	// ErrForbidden is returned when a caller opens a view or record
	// outside their scope.
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidCommission covers a negative percentage or more than one
	// commission entry for the same user on a client.
	ErrInvalidCommission = errors.New("invalid commission")

	// ErrInvalidInput covers semantic validation failures that the
	// request schema cannot express.
	ErrInvalidInput = errors.New("invalid input")
)
