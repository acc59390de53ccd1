package repository

import (
	"sehat-clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	Delete(db *gorm.DB, id int) (int64, error)
	DeleteByPatient(db *gorm.DB, id, patientID int) (int64, error)
	FindDetails(db *gorm.DB) ([]entity.PrescriptionDetail, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Prescription, error)
	CountDistinct(db *gorm.DB) (int64, error)
}
