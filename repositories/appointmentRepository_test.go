package repositories

import (
	"ClinicRecords/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppointment(patientID uint, scheduledAt string) *models.Appointment {
	return &models.Appointment{
		PatientID:   patientID,
		DoctorID:    7,
		ScheduledAt: scheduledAt,
		Status:      models.StatusScheduled,
	}
}

func TestAppointmentCreateAndGetByID(t *testing.T) {
	patientRepo, appointmentRepo := setupTestDB(t)
	ctx := context.Background()

	patient := newTestPatient("ann@x.com", "555-0100")
	require.NoError(t, patientRepo.Create(ctx, patient))

	appointment := newTestAppointment(patient.PatientID, "2024-05-01T10:00:00")
	appointment.Reason = strPtr("checkup")
	require.NoError(t, appointmentRepo.Create(ctx, appointment))
	assert.NotZero(t, appointment.AppointmentID)

	got, err := appointmentRepo.GetByID(ctx, appointment.AppointmentID)
	require.NoError(t, err)
	assert.Equal(t, patient.PatientID, got.PatientID)
	assert.Equal(t, 7, got.DoctorID)
	assert.Equal(t, "2024-05-01T10:00:00", got.ScheduledAt)
	assert.Equal(t, models.StatusScheduled, got.Status)
	require.NotNil(t, got.Reason)
	assert.Equal(t, "checkup", *got.Reason)
}

func TestAppointmentCreateUnknownPatient(t *testing.T) {
	_, appointmentRepo := setupTestDB(t)
	ctx := context.Background()

	err := appointmentRepo.Create(ctx, newTestAppointment(42, "2024-05-01T10:00:00"))
	assert.ErrorIs(t, err, ErrPatientNotExists)

	appointments, err := appointmentRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, appointments)
}

func TestAppointmentDefaultStatus(t *testing.T) {
	patientRepo, appointmentRepo := setupTestDB(t)
	ctx := context.Background()

	patient := newTestPatient("ann@x.com", "555-0100")
	require.NoError(t, patientRepo.Create(ctx, patient))

	payload := models.AppointmentCreate{
		PatientID:   patient.PatientID,
		DoctorID:    intPtr(7),
		ScheduledAt: "2024-05-01T10:00:00",
	}
	appointment := payload.ToAppointment()
	require.NoError(t, appointmentRepo.Create(ctx, appointment))
	assert.Equal(t, models.StatusScheduled, appointment.Status)
}

func TestAppointmentGetAllOrderedByScheduledAtDesc(t *testing.T) {
	patientRepo, appointmentRepo := setupTestDB(t)
	ctx := context.Background()

	patient := newTestPatient("ann@x.com", "555-0100")
	require.NoError(t, patientRepo.Create(ctx, patient))

	require.NoError(t, appointmentRepo.Create(ctx, newTestAppointment(patient.PatientID, "2024-03-10T09:00:00")))
	require.NoError(t, appointmentRepo.Create(ctx, newTestAppointment(patient.PatientID, "2024-07-22T14:30:00")))
	require.NoError(t, appointmentRepo.Create(ctx, newTestAppointment(patient.PatientID, "2024-05-01T10:00:00")))

	appointments, err := appointmentRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 3)
	assert.Equal(t, "2024-07-22T14:30:00", appointments[0].ScheduledAt)
	assert.Equal(t, "2024-05-01T10:00:00", appointments[1].ScheduledAt)
	assert.Equal(t, "2024-03-10T09:00:00", appointments[2].ScheduledAt)
}

func TestAppointmentUpdatePartial(t *testing.T) {
	patientRepo, appointmentRepo := setupTestDB(t)
	ctx := context.Background()

	patient := newTestPatient("ann@x.com", "555-0100")
	require.NoError(t, patientRepo.Create(ctx, patient))

	appointment := newTestAppointment(patient.PatientID, "2024-05-01T10:00:00")
	require.NoError(t, appointmentRepo.Create(ctx, appointment))

	status := models.StatusCompleted
	updated, err := appointmentRepo.Update(ctx, appointment.AppointmentID, &models.AppointmentUpdate{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, "2024-05-01T10:00:00", updated.ScheduledAt)
	assert.Equal(t, patient.PatientID, updated.PatientID)
}

func TestAppointmentUpdateClearsReason(t *testing.T) {
	patientRepo, appointmentRepo := setupTestDB(t)
	ctx := context.Background()

	patient := newTestPatient("ann@x.com", "555-0100")
	require.NoError(t, patientRepo.Create(ctx, patient))

	appointment := newTestAppointment(patient.PatientID, "2024-05-01T10:00:00")
	appointment.Reason = strPtr("checkup")
	require.NoError(t, appointmentRepo.Create(ctx, appointment))

	// An absent reason key leaves the stored value alone.
	status := models.StatusCompleted
	updated, err := appointmentRepo.Update(ctx, appointment.AppointmentID, &models.AppointmentUpdate{
		Status: &status,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Reason)
	assert.Equal(t, "checkup", *updated.Reason)

	// An explicit null clears it.
	updated, err = appointmentRepo.Update(ctx, appointment.AppointmentID, &models.AppointmentUpdate{
		Reason: models.OptionalString{Set: true},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Reason)
}

func TestAppointmentUpdateUnknownPatientReference(t *testing.T) {
	patientRepo, appointmentRepo := setupTestDB(t)
	ctx := context.Background()

	patient := newTestPatient("ann@x.com", "555-0100")
	require.NoError(t, patientRepo.Create(ctx, patient))

	appointment := newTestAppointment(patient.PatientID, "2024-05-01T10:00:00")
	require.NoError(t, appointmentRepo.Create(ctx, appointment))

	missing := uint(42)
	_, err := appointmentRepo.Update(ctx, appointment.AppointmentID, &models.AppointmentUpdate{
		PatientID: &missing,
	})
	assert.ErrorIs(t, err, ErrPatientNotExists)

	// A valid reference change is applied.
	other := newTestPatient("bob@x.com", "555-0200")
	require.NoError(t, patientRepo.Create(ctx, other))
	updated, err := appointmentRepo.Update(ctx, appointment.AppointmentID, &models.AppointmentUpdate{
		PatientID: &other.PatientID,
	})
	require.NoError(t, err)
	assert.Equal(t, other.PatientID, updated.PatientID)
}

func TestAppointmentUpdateNotFound(t *testing.T) {
	_, appointmentRepo := setupTestDB(t)

	status := models.StatusCancelled
	_, err := appointmentRepo.Update(context.Background(), 42, &models.AppointmentUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentDelete(t *testing.T) {
	patientRepo, appointmentRepo := setupTestDB(t)
	ctx := context.Background()

	patient := newTestPatient("ann@x.com", "555-0100")
	require.NoError(t, patientRepo.Create(ctx, patient))

	appointment := newTestAppointment(patient.PatientID, "2024-05-01T10:00:00")
	require.NoError(t, appointmentRepo.Create(ctx, appointment))

	require.NoError(t, appointmentRepo.Delete(ctx, appointment.AppointmentID))

	_, err := appointmentRepo.GetByID(ctx, appointment.AppointmentID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentDeleteNotFound(t *testing.T) {
	_, appointmentRepo := setupTestDB(t)

	err := appointmentRepo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
