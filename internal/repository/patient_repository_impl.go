package repository

import (
	"errors"

	"sehat-clinic/internal/domain/entity"
	domainRepo "sehat-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) (int64, error) {
	changes := map[string]interface{}{
		"first_name": patient.FirstName,
		"last_name":  patient.LastName,
		"email":      patient.Email,
		"phone":      patient.Phone,
		"dob":        patient.DOB,
	}
	if patient.PasswordHash != "" {
		changes["password_hash"] = patient.PasswordHash
	}

	result := db.Model(&entity.Patient{}).Where("patient_id = ?", patient.ID).Updates(changes)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("patient_id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("patient_id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByEmail(db *gorm.DB, email string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("email = ?", email).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// FindAllWithTotals counts distinct appointments and prescriptions per patient.
// Both joins are LEFT so patients without either still appear with zero.
func (r *patientRepository) FindAllWithTotals(db *gorm.DB) ([]entity.PatientSummary, error) {
	var patients []entity.PatientSummary
	err := db.Table("patients p").
		Select("p.patient_id, p.first_name, p.last_name, p.email, p.phone, p.dob, " +
			"COUNT(DISTINCT a.appointment_id) AS total_appointments, " +
			"COUNT(DISTINCT pr.prescription_id) AS total_medications").
		Joins("LEFT JOIN appointments a ON a.patient_id = p.patient_id").
		Joins("LEFT JOIN prescriptions pr ON pr.patient_id = p.patient_id").
		Group("p.patient_id").
		Order("p.last_name, p.first_name").
		Scan(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Patient{}).Count(&total).Error
	return total, err
}
