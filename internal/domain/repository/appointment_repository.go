package repository

import (
	"time"

	"sehat-clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	Update(db *gorm.DB, appointment *entity.Appointment) (int64, error)
	UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error)
	Delete(db *gorm.DB, id int) (int64, error)
	// ExistsForPatient reports whether the appointment exists and belongs to the patient.
	ExistsForPatient(db *gorm.DB, id, patientID int) (bool, error)
	// FindDetails returns appointments newest first. A limit of zero means no limit.
	FindDetails(db *gorm.DB, limit int) ([]entity.AppointmentDetail, error)
	FindDetailsByPatientID(db *gorm.DB, patientID int) ([]entity.AppointmentDetail, error)
	Count(db *gorm.DB) (int64, error)
	// CountBetween counts appointments with from <= appointment_date < to.
	CountBetween(db *gorm.DB, from, to time.Time) (int64, error)
}
