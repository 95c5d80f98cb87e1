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
	AppointmentCacheExpiry = 24 * time.Hour
)

type AppointmentRepository struct {
	cache       *cache.Cache
	patientRepo *PatientRepository
}

func NewAppointmentRepository(cache *cache.Cache, patientRepo *PatientRepository) *AppointmentRepository {
	return &AppointmentRepository{cache: cache, patientRepo: patientRepo}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	// FK is enforced in the store too, but the friendly check gives a clear
	// client error instead of a constraint violation.
	exists, err := r.patientRepo.Exists(ctx, appointment.PatientID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPatientNotExists
	}

	if err := database.DB.WithContext(ctx).Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	r.invalidateCaches(ctx, appointment.AppointmentID)
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	cacheKey := r.getAppointmentCacheKey(id)
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var appointment models.Appointment
		if err := json.Unmarshal([]byte(cached), &appointment); err == nil {
			return &appointment, nil
		}
	}

	var appointment models.Appointment
	err := database.DB.WithContext(ctx).First(&appointment, "appointment_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointmentJSON, err := json.Marshal(appointment); err == nil {
		if err := r.cache.Set(ctx, cacheKey, appointmentJSON, AppointmentCacheExpiry); err != nil {
			log.Printf("Failed to set appointment in cache: %v", err)
		}
	}
	return &appointment, nil
}

func (r *AppointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	cacheKey := "appointments_cache"
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var appointments []models.Appointment
		if err := json.Unmarshal([]byte(cached), &appointments); err == nil {
			return appointments, nil
		}
	}

	// Most recently scheduled first.
	appointments := []models.Appointment{}
	err := database.DB.WithContext(ctx).Order("scheduled_at DESC").Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all appointments: %w", err)
	}

	if appointmentsJSON, err := json.Marshal(appointments); err == nil {
		if err := r.cache.Set(ctx, cacheKey, appointmentsJSON, AppointmentCacheExpiry); err != nil {
			log.Printf("Failed to set appointments in cache: %v", err)
		}
	}
	return appointments, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id uint, payload *models.AppointmentUpdate) (*models.Appointment, error) {
	var appointment models.Appointment
	err := database.DB.WithContext(ctx).First(&appointment, "appointment_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if payload.PatientID != nil {
		exists, err := r.patientRepo.Exists(ctx, *payload.PatientID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrPatientNotExists
		}
	}

	payload.Apply(&appointment)
	if err := database.DB.WithContext(ctx).Save(&appointment).Error; err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	r.invalidateCaches(ctx, id)
	return &appointment, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	var appointment models.Appointment
	err := database.DB.WithContext(ctx).First(&appointment, "appointment_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to get appointment: %w", err)
	}

	if err := database.DB.WithContext(ctx).Delete(&models.Appointment{}, "appointment_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	r.invalidateCaches(ctx, id)
	return nil
}

func (r *AppointmentRepository) invalidateCaches(ctx context.Context, id uint) {
	if err := r.cache.Delete(ctx, r.getAppointmentCacheKey(id)); err != nil {
		log.Printf("Failed to delete appointment cache: %v", err)
	}
	if err := r.cache.Delete(ctx, "appointments_cache"); err != nil {
		log.Printf("Failed to delete appointments cache: %v", err)
	}
}

func (r *AppointmentRepository) getAppointmentCacheKey(id uint) string {
	return fmt.Sprintf("appointment_cache:%d", id)
}
