package repositories

import (
	"ClinicRecords/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientCreateAndGetByID(t *testing.T) {
	patientRepo, _ := setupTestDB(t)
	ctx := context.Background()

	patient := newTestPatient("ann@x.com", "555-0100")
	require.NoError(t, patientRepo.Create(ctx, patient))
	assert.NotZero(t, patient.PatientID)

	got, err := patientRepo.GetByID(ctx, patient.PatientID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, "Lee", got.LastName)
	assert.Equal(t, "ann@x.com", got.Email)
	assert.Equal(t, "555-0100", got.Phone)
	assert.Equal(t, models.GenderFemale, got.Gender)
	assert.Equal(t, "1990-01-01", got.DateOfBirth)
}

func TestPatientCreateDuplicateEmail(t *testing.T) {
	patientRepo, _ := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, patientRepo.Create(ctx, newTestPatient("ann@x.com", "555-0100")))

	err := patientRepo.Create(ctx, newTestPatient("ann@x.com", "555-0199"))
	assert.ErrorIs(t, err, ErrEmailInUse)

	// The failed create must not leave a row behind.
	patients, err := patientRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, patients, 1)
}

func TestPatientCreateDuplicatePhone(t *testing.T) {
	patientRepo, _ := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, patientRepo.Create(ctx, newTestPatient("ann@x.com", "555-0100")))

	err := patientRepo.Create(ctx, newTestPatient("bob@x.com", "555-0100"))
	assert.ErrorIs(t, err, ErrPhoneInUse)
}

func TestPatientGetByIDNotFound(t *testing.T) {
	patientRepo, _ := setupTestDB(t)

	_, err := patientRepo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientGetAllOrderedByID(t *testing.T) {
	patientRepo, _ := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, patientRepo.Create(ctx, newTestPatient("a@x.com", "555-0001")))
	require.NoError(t, patientRepo.Create(ctx, newTestPatient("b@x.com", "555-0002")))
	require.NoError(t, patientRepo.Create(ctx, newTestPatient("c@x.com", "555-0003")))

	patients, err := patientRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 3)
	for i := 1; i < len(patients); i++ {
		assert.Less(t, patients[i-1].PatientID, patients[i].PatientID)
	}
}

func TestPatientUpdatePartial(t *testing.T) {
	patientRepo, _ := setupTestDB(t)
	ctx := context.Background()

	patient := newTestPatient("ann@x.com", "555-0100")
	require.NoError(t, patientRepo.Create(ctx, patient))

	updated, err := patientRepo.Update(ctx, patient.PatientID, &models.PatientUpdate{
		LastName: strPtr("Smith"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Smith", updated.LastName)
	// Fields absent from the payload stay untouched.
	assert.Equal(t, "Ann", updated.FirstName)
	assert.Equal(t, "ann@x.com", updated.Email)
}

func TestPatientUpdatePhoneConflict(t *testing.T) {
	patientRepo, _ := setupTestDB(t)
	ctx := context.Background()

	first := newTestPatient("ann@x.com", "555-0100")
	second := newTestPatient("bob@x.com", "555-0200")
	require.NoError(t, patientRepo.Create(ctx, first))
	require.NoError(t, patientRepo.Create(ctx, second))

	_, err := patientRepo.Update(ctx, second.PatientID, &models.PatientUpdate{
		Phone: strPtr("555-0100"),
	})
	assert.ErrorIs(t, err, ErrPhoneInUse)

	// Setting a field to its own current value passes the uniqueness check.
	updated, err := patientRepo.Update(ctx, first.PatientID, &models.PatientUpdate{
		Phone: strPtr("555-0100"),
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", updated.Phone)
}

func TestPatientUpdateEmailConflict(t *testing.T) {
	patientRepo, _ := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, patientRepo.Create(ctx, newTestPatient("ann@x.com", "555-0100")))
	second := newTestPatient("bob@x.com", "555-0200")
	require.NoError(t, patientRepo.Create(ctx, second))

	_, err := patientRepo.Update(ctx, second.PatientID, &models.PatientUpdate{
		Email: strPtr("ann@x.com"),
	})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestPatientUpdateNotFound(t *testing.T) {
	patientRepo, _ := setupTestDB(t)

	_, err := patientRepo.Update(context.Background(), 42, &models.PatientUpdate{
		FirstName: strPtr("Nobody"),
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientDelete(t *testing.T) {
	patientRepo, _ := setupTestDB(t)
	ctx := context.Background()

	patient := newTestPatient("ann@x.com", "555-0100")
	require.NoError(t, patientRepo.Create(ctx, patient))

	require.NoError(t, patientRepo.Delete(ctx, patient.PatientID))

	_, err := patientRepo.GetByID(ctx, patient.PatientID)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientDeleteNotFound(t *testing.T) {
	patientRepo, _ := setupTestDB(t)

	err := patientRepo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientDeleteRemovesAppointments(t *testing.T) {
	patientRepo, appointmentRepo := setupTestDB(t)
	ctx := context.Background()

	patient := newTestPatient("ann@x.com", "555-0100")
	require.NoError(t, patientRepo.Create(ctx, patient))

	appointment := &models.Appointment{
		PatientID:   patient.PatientID,
		DoctorID:    7,
		ScheduledAt: "2024-05-01T10:00:00",
		Status:      models.StatusScheduled,
	}
	require.NoError(t, appointmentRepo.Create(ctx, appointment))

	require.NoError(t, patientRepo.Delete(ctx, patient.PatientID))

	_, err := appointmentRepo.GetByID(ctx, appointment.AppointmentID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
