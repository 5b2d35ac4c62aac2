package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTerminalNotFound   = errors.New("terminal not found")
	ErrTableNotFound      = errors.New("table not found")
	ErrInvitationNotFound = errors.New("invitation not found")
)

// ErrAccessDenied is the only outcome of a failed access check, whichever
// predicate failed.
var ErrAccessDenied = errors.New("invalid access")

var (
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrEventCodeTaken      = errors.New("event code is already taken")
	ErrInvitationCodeTaken = errors.New("invitation code is already taken")
	ErrAlreadyAssigned     = errors.New("user is already assigned to this event")
	ErrCodeConflict        = errors.New("generated code already exists")
)

var (
	ErrCodeExhausted = errors.New("could not generate a unique code")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
)
