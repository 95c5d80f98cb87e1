package utils

import (
	"ClinicRecords/models"
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	// DateLayout is the calendar-date format for date_of_birth.
	DateLayout = "2006-01-02"
	// DateTimeLayout is the combined date and time format for scheduled_at.
	DateTimeLayout = "2006-01-02T15:04:05"
)

// ValidatePatientCreate validates a patient creation payload. All fields are
// required.
func ValidatePatientCreate(p models.PatientCreate) error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
		validation.Field(&p.Phone, validation.Required, validation.Length(3, 30)),
		validation.Field(&p.Gender, validation.Required, validation.In(models.GenderMale, models.GenderFemale, models.GenderOther)),
		validation.Field(&p.DateOfBirth, validation.Required, validation.Date(DateLayout)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidatePatientUpdate validates a partial patient update. Only supplied
// fields are checked; nil fields pass untouched.
func ValidatePatientUpdate(p models.PatientUpdate) error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&p.LastName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&p.Email, validation.NilOrNotEmpty, is.EmailFormat),
		validation.Field(&p.Phone, validation.NilOrNotEmpty, validation.Length(3, 30)),
		validation.Field(&p.Gender, validation.NilOrNotEmpty, validation.In(models.GenderMale, models.GenderFemale, models.GenderOther)),
		validation.Field(&p.DateOfBirth, validation.NilOrNotEmpty, validation.Date(DateLayout)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateAppointmentCreate validates an appointment creation payload. Status
// may be omitted (it defaults to scheduled); reason is free text.
func ValidateAppointmentCreate(a models.AppointmentCreate) error {
	err := validation.ValidateStruct(&a,
		validation.Field(&a.PatientID, validation.Required),
		// NotNil rather than Required: doctor_id 0 is a legitimate identifier.
		validation.Field(&a.DoctorID, validation.NotNil),
		validation.Field(&a.ScheduledAt, validation.Required, validation.Date(DateTimeLayout)),
		validation.Field(&a.Status, validation.In(models.StatusScheduled, models.StatusCompleted, models.StatusCancelled, models.StatusNoShow)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateAppointmentUpdate validates a partial appointment update.
func ValidateAppointmentUpdate(a models.AppointmentUpdate) error {
	err := validation.ValidateStruct(&a,
		validation.Field(&a.PatientID, validation.NilOrNotEmpty),
		validation.Field(&a.ScheduledAt, validation.NilOrNotEmpty, validation.Date(DateTimeLayout)),
		validation.Field(&a.Status, validation.NilOrNotEmpty, validation.In(models.StatusScheduled, models.StatusCompleted, models.StatusCancelled, models.StatusNoShow)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}
