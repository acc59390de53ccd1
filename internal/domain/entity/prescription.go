package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Prescription belongs to a patient and optionally to the appointment it was issued at.
type Prescription struct {
	ID             int                         `gorm:"column:prescription_id;primaryKey;autoIncrement" json:"prescription_id"`
	PatientID      int                         `gorm:"not null;index" json:"patient_id"`
	AppointmentID  *int                        `gorm:"index" json:"appointment_id"`
	MedicationName string                      `gorm:"type:varchar(100);not null" json:"medication_name"`
	Dosage         string                      `gorm:"type:varchar(50);not null;default:''" json:"dosage"`
	Frequency      string                      `gorm:"type:varchar(50);not null;default:''" json:"frequency"`
	ReminderTimes  datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" json:"reminder_times"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionDetail is a prescription joined with its patient's name.
type PrescriptionDetail struct {
	Prescription
	PatientFirstName string `gorm:"column:patient_first_name"`
	PatientLastName  string `gorm:"column:patient_last_name"`
}
