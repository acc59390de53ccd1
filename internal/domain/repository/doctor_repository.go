package repository

import (
	"sehat-clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	Update(db *gorm.DB, doctor *entity.Doctor) (int64, error)
	Delete(db *gorm.DB, id int) (int64, error)
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
}
