package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAdminNotFound        = errors.New("admin not found")
)

var (
	ErrRegistrationClosed = errors.New("event is not available for registration")
	ErrEventInPast        = errors.New("cannot register for past event")
	ErrAlreadyCancelled   = errors.New("registration is already cancelled")
)

var (
	ErrTeamSizeOutOfRange = errors.New("team size is outside the event limits")
	ErrTeamNameTaken      = errors.New("team name already exists for this event")
	ErrEventAtCapacity    = errors.New("event has no confirmed spots left")

	// ErrDuplicateRegistration is the storage-level uniqueness violation:
	// a concurrent insert won the same (event, team name) pair between the
	// pre-check and this write.
	ErrDuplicateRegistration = errors.New("registration for this team was just created")
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
