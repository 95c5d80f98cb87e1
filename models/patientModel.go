package models

import (
	"strings"
	"time"
)

// Gender values accepted for a patient.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Patient model
type Patient struct {
	PatientID    uint          `gorm:"primaryKey;autoIncrement;column:patient_id" json:"patient_id"`
	FirstName    string        `gorm:"column:first_name;not null" json:"first_name"`
	LastName     string        `gorm:"column:last_name;not null;index" json:"last_name"`
	Email        string        `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Phone        string        `gorm:"column:phone;not null;uniqueIndex" json:"phone"`
	Gender       string        `gorm:"column:gender;check:gender IN ('male', 'female', 'other');not null" json:"gender"`
	DateOfBirth  string        `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Appointments []Appointment `gorm:"foreignKey:PatientID;references:PatientID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// PatientCreate is the payload for creating a patient. Every field is required.
type PatientCreate struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
}

// Trim normalizes whitespace on the text fields before validation.
func (p *PatientCreate) Trim() {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
}

// ToPatient builds the entity to be persisted.
func (p *PatientCreate) ToPatient() *Patient {
	return &Patient{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Phone:       p.Phone,
		Gender:      p.Gender,
		DateOfBirth: p.DateOfBirth,
	}
}

// PatientUpdate is the payload for a partial update. A nil field is left
// untouched on the target row; a non-nil field is applied as-is.
type PatientUpdate struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"date_of_birth"`
}

func (p *PatientUpdate) Trim() {
	trimField(p.FirstName)
	trimField(p.LastName)
	trimField(p.Email)
	trimField(p.Phone)
}

// Apply copies the supplied fields onto the patient row.
func (p *PatientUpdate) Apply(patient *Patient) {
	if p.FirstName != nil {
		patient.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		patient.LastName = *p.LastName
	}
	if p.Email != nil {
		patient.Email = *p.Email
	}
	if p.Phone != nil {
		patient.Phone = *p.Phone
	}
	if p.Gender != nil {
		patient.Gender = *p.Gender
	}
	if p.DateOfBirth != nil {
		patient.DateOfBirth = *p.DateOfBirth
	}
}

func trimField(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
