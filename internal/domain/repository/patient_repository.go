package repository

import (
	"sehat-clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	// Update writes every editable column of patient; the password hash only when non-empty.
	Update(db *gorm.DB, patient *entity.Patient) (int64, error)
	Delete(db *gorm.DB, id int) (int64, error)
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Patient, error)
	FindAllWithTotals(db *gorm.DB) ([]entity.PatientSummary, error)
	Count(db *gorm.DB) (int64, error)
}
