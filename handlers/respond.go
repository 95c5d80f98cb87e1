package handlers

import (
	"ClinicRecords/repositories"
	"errors"
)

// statusForError maps repository failures onto HTTP status codes. Conflicts
// and bad references are client errors; unknown ids are 404s.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repositories.ErrPatientNotFound),
		errors.Is(err, repositories.ErrAppointmentNotFound):
		return 404
	case errors.Is(err, repositories.ErrEmailInUse),
		errors.Is(err, repositories.ErrPhoneInUse),
		errors.Is(err, repositories.ErrPatientNotExists):
		return 400
	default:
		return 500
	}
}
