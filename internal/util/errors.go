package util

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrTeamNotFound       = errors.New("team not found")
	ErrInvalidCredentials = errors.New("team already exists with a different password")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrLevelNotFound      = errors.New("level not found")
	ErrValidation         = errors.New("validation error")
)
