package repositories

import (
	"ClinicRecords/cache"
	"ClinicRecords/database"
	"ClinicRecords/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 24 * time.Hour
)

type PatientRepository struct {
	cache *cache.Cache
}

func NewPatientRepository(cache *cache.Cache) *PatientRepository {
	return &PatientRepository{cache: cache}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	// Friendly uniqueness checks before insert; the unique indexes on email
	// and phone still back this up against racing writers.
	var count int64
	if err := database.DB.WithContext(ctx).Model(&models.Patient{}).
		Where("email = ?", patient.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if count > 0 {
		return ErrEmailInUse
	}
	if err := database.DB.WithContext(ctx).Model(&models.Patient{}).
		Where("phone = ?", patient.Phone).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check phone uniqueness: %w", err)
	}
	if count > 0 {
		return ErrPhoneInUse
	}

	if err := database.DB.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	r.invalidateCaches(ctx, patient.PatientID)
	return nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	cacheKey := r.getPatientCacheKey(id)
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cached), &patient); err == nil {
			return &patient, nil
		}
	}

	var patient models.Patient
	err := database.DB.WithContext(ctx).First(&patient, "patient_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if patientJSON, err := json.Marshal(patient); err == nil {
		if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
			log.Printf("Failed to set patient in cache: %v", err)
		}
	}
	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	cacheKey := "patients_cache"
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cached), &patients); err == nil {
			return patients, nil
		}
	}

	patients := []models.Patient{}
	err := database.DB.WithContext(ctx).Order("patient_id ASC").Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	if patientsJSON, err := json.Marshal(patients); err == nil {
		if err := r.cache.Set(ctx, cacheKey, patientsJSON, PatientCacheExpiry); err != nil {
			log.Printf("Failed to set patients in cache: %v", err)
		}
	}
	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, id uint, payload *models.PatientUpdate) (*models.Patient, error) {
	var patient models.Patient
	err := database.DB.WithContext(ctx).First(&patient, "patient_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	// Uniqueness checks exclude the row being updated, so setting a field to
	// its own current value succeeds.
	var count int64
	if payload.Email != nil {
		if err := database.DB.WithContext(ctx).Model(&models.Patient{}).
			Where("email = ? AND patient_id <> ?", *payload.Email, id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if count > 0 {
			return nil, ErrEmailInUse
		}
	}
	if payload.Phone != nil {
		if err := database.DB.WithContext(ctx).Model(&models.Patient{}).
			Where("phone = ? AND patient_id <> ?", *payload.Phone, id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check phone uniqueness: %w", err)
		}
		if count > 0 {
			return nil, ErrPhoneInUse
		}
	}

	payload.Apply(&patient)
	if err := database.DB.WithContext(ctx).Save(&patient).Error; err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	r.invalidateCaches(ctx, id)
	return &patient, nil
}

// Delete removes the patient and every appointment referencing it in a single
// transaction. Deleting at the application layer keeps the appointment caches
// coherent regardless of storage-level cascade support.
func (r *PatientRepository) Delete(ctx context.Context, id uint) error {
	var patient models.Patient
	err := database.DB.WithContext(ctx).First(&patient, "patient_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("failed to get patient: %w", err)
	}

	err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Patient{}, "patient_id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	r.invalidateCaches(ctx, id)
	if err := r.cache.DeleteAll(ctx, "appointment_cache:*"); err != nil {
		log.Printf("Failed to delete appointment caches: %v", err)
	}
	if err := r.cache.Delete(ctx, "appointments_cache"); err != nil {
		log.Printf("Failed to delete appointments cache: %v", err)
	}
	return nil
}

// Exists reports whether a patient row with the given id is present. Used by
// the appointment repository for reference checks.
func (r *PatientRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Patient{}).
		Where("patient_id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check patient existence: %w", err)
	}
	return count > 0, nil
}

func (r *PatientRepository) invalidateCaches(ctx context.Context, id uint) {
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
		log.Printf("Failed to delete patient cache: %v", err)
	}
	if err := r.cache.Delete(ctx, "patients_cache"); err != nil {
		log.Printf("Failed to delete patients cache: %v", err)
	}
}

func (r *PatientRepository) getPatientCacheKey(id uint) string {
	return fmt.Sprintf("patient_cache:%d", id)
}
