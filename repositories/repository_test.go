package repositories

import (
	"ClinicRecords/cache"
	"ClinicRecords/database"
	"ClinicRecords/models"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global database handle at a throwaway sqlite file and
// returns repositories backed by it. The cache has no redis client attached,
// so every read goes straight to the database.
func setupTestDB(t *testing.T) (*PatientRepository, *AppointmentRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "clinic.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Patient{}, &models.Appointment{}))

	database.DB = db

	patientRepo := NewPatientRepository(cache.New(nil))
	return patientRepo, NewAppointmentRepository(cache.New(nil), patientRepo)
}

func newTestPatient(email, phone string) *models.Patient {
	return &models.Patient{
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       email,
		Phone:       phone,
		Gender:      models.GenderFemale,
		DateOfBirth: "1990-01-01",
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
