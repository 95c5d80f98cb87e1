package repositories

import "github.com/pkg/errors"

// Client-facing failures. Handlers match these with errors.Is to pick the
// response status; everything else is treated as an internal error.
var (
	ErrEmailInUse          = errors.New("email already in use")
	ErrPhoneInUse          = errors.New("phone already in use")
	ErrPatientNotExists    = errors.New("patient does not exist")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)
