package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike, so the response does not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingFields is returned when a submission omits a required field.
	ErrMissingFields = errors.New("missing required fields")
)
