package app

import "errors"

// Error kinds reported back to clients as {"error": message}.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrEmptyResult = errors.New("empty result")
)

const (
	msgUsernameRequired = "You must provide an username"
	msgExerciseInput    = "You must provide a description, a duration and a valid id, date is optional."
	msgInvalidDate      = "Invalid date, use YYYY-MM-DD"
	msgInvalidUserID    = "Invalid id"
	msgLogUserRequired  = "Please provide a valid user id"
	msgLogUserMissing   = "User doesnt exists"
	msgNoExercises      = "User has no exercises yet"
)

// RequestError carries a client-facing message and unwraps to its kind.
type RequestError struct {
	kind    error
	message string
}

func (e *RequestError) Error() string { return e.message }

func (e *RequestError) Unwrap() error { return e.kind }

func validationError(message string) error {
	return &RequestError{kind: ErrValidation, message: message}
}

func notFoundError(message string) error {
	return &RequestError{kind: ErrNotFound, message: message}
}

func emptyResultError(message string) error {
	return &RequestError{kind: ErrEmptyResult, message: message}
}
