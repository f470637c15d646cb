package domain

import "errors"

// Sentinel errors raised by the service layer. The API error handler maps each
// one to a fixed HTTP status; wrap them with fmt.Errorf("...: %w", err) to
// attach the offending field or value.
var (
	ErrPlanetNotFound  = errors.New("planet not found")
	ErrMoonNotFound    = errors.New("moon not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicatePlanet = errors.New("planet already exists")
	ErrDuplicateMoon   = errors.New("moon already exists")
	ErrUserExists      = errors.New("user already exists")
	ErrValidation      = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)
