package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidID          = errors.New("invalid id")
)

// ValidationError marks a rejected payload; controllers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
