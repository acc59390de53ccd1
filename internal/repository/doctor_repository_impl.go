package repository

import (
	"errors"

	"sehat-clinic/internal/domain/entity"
	domainRepo "sehat-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) (int64, error) {
	result := db.Model(&entity.Doctor{}).Where("doctor_id = ?", doctor.ID).Updates(map[string]interface{}{
		"first_name":      doctor.FirstName,
		"last_name":       doctor.LastName,
		"specialization":  doctor.Specialization,
		"phone":           doctor.Phone,
		"available_days":  doctor.AvailableDays,
		"available_hours": doctor.AvailableHours,
	})
	return result.RowsAffected, result.Error
}

// Delete removes the doctor. Appointments keep their row with a null doctor_id.
func (r *doctorRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("doctor_id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("doctor_id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Order("last_name, first_name").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
