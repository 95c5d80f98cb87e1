package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Appointment status values.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// Appointment model. DoctorID is a bare identifier: doctors are not modeled
// here, so no existence check is performed against it.
type Appointment struct {
	AppointmentID uint      `gorm:"primaryKey;autoIncrement;column:appointment_id" json:"appointment_id"`
	PatientID     uint      `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID      int       `gorm:"column:doctor_id;not null" json:"doctor_id"`
	ScheduledAt   string    `gorm:"column:scheduled_at;not null;index" json:"scheduled_at"`
	Status        string    `gorm:"column:status;check:status IN ('scheduled', 'completed', 'cancelled', 'no_show');not null" json:"status"`
	Reason        *string   `gorm:"column:reason" json:"reason"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// OptionalString is a nullable string that records whether its key appeared
// in the payload at all, so an explicit null can clear a value while an
// absent key leaves it untouched.
type OptionalString struct {
	Value *string
	Set   bool
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// AppointmentCreate is the payload for creating an appointment. Status is
// optional and defaults to scheduled; reason is optional free text. DoctorID
// is a pointer so that a missing key is told apart from a doctor id of 0.
type AppointmentCreate struct {
	PatientID   uint    `json:"patient_id"`
	DoctorID    *int    `json:"doctor_id"`
	ScheduledAt string  `json:"scheduled_at"`
	Status      string  `json:"status"`
	Reason      *string `json:"reason"`
}

func (a *AppointmentCreate) Trim() {
	a.ScheduledAt = strings.TrimSpace(a.ScheduledAt)
	a.Status = strings.TrimSpace(a.Status)
}

// ToAppointment builds the entity to be persisted, defaulting the status.
func (a *AppointmentCreate) ToAppointment() *Appointment {
	status := a.Status
	if status == "" {
		status = StatusScheduled
	}
	doctorID := 0
	if a.DoctorID != nil {
		doctorID = *a.DoctorID
	}
	return &Appointment{
		PatientID:   a.PatientID,
		DoctorID:    doctorID,
		ScheduledAt: a.ScheduledAt,
		Status:      status,
		Reason:      a.Reason,
	}
}

// AppointmentUpdate is the payload for a partial update. A nil field is left
// untouched on the target row; a non-nil field is applied as-is. Reason is
// nullable, so it carries a presence flag: an explicit null clears it.
type AppointmentUpdate struct {
	PatientID   *uint          `json:"patient_id"`
	DoctorID    *int           `json:"doctor_id"`
	ScheduledAt *string        `json:"scheduled_at"`
	Status      *string        `json:"status"`
	Reason      OptionalString `json:"reason"`
}

func (a *AppointmentUpdate) Trim() {
	trimField(a.ScheduledAt)
	trimField(a.Status)
}

// Apply copies the supplied fields onto the appointment row.
func (a *AppointmentUpdate) Apply(appointment *Appointment) {
	if a.PatientID != nil {
		appointment.PatientID = *a.PatientID
	}
	if a.DoctorID != nil {
		appointment.DoctorID = *a.DoctorID
	}
	if a.ScheduledAt != nil {
		appointment.ScheduledAt = *a.ScheduledAt
	}
	if a.Status != nil {
		appointment.Status = *a.Status
	}
	if a.Reason.Set {
		appointment.Reason = a.Reason.Value
	}
}
