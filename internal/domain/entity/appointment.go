package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// IsValid reports whether s is one of the three known statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment belongs to one patient and, until the doctor is deleted, one doctor.
type Appointment struct {
	ID              int               `gorm:"column:appointment_id;primaryKey;autoIncrement" json:"appointment_id"`
	PatientID       int               `gorm:"not null;index" json:"patient_id"`
	DoctorID        *int              `gorm:"index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"type:timestamp;not null;index" json:"appointment_date"`
	Reason          string            `gorm:"type:text;not null;default:''" json:"reason"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentDetail is an appointment joined with patient and doctor names.
// Doctor columns are nil when the doctor has been deleted.
type AppointmentDetail struct {
	ID                   int               `gorm:"column:appointment_id"`
	AppointmentDate      time.Time         `gorm:"column:appointment_date"`
	Reason               string            `gorm:"column:reason"`
	Status               AppointmentStatus `gorm:"column:status"`
	PatientID            int               `gorm:"column:patient_id"`
	PatientFirstName     string            `gorm:"column:patient_first_name"`
	PatientLastName      string            `gorm:"column:patient_last_name"`
	DoctorID             *int              `gorm:"column:doctor_id"`
	DoctorFirstName      *string           `gorm:"column:doctor_first_name"`
	DoctorLastName       *string           `gorm:"column:doctor_last_name"`
	DoctorSpecialization *string           `gorm:"column:specialization"`
}
