package repository

import (
	"sehat-clinic/internal/domain/entity"
	domainRepo "sehat-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("prescription_id = ?", id).Delete(&entity.Prescription{})
	return result.RowsAffected, result.Error
}

// DeleteByPatient only removes the prescription when patientID owns it.
func (r *prescriptionRepository) DeleteByPatient(db *gorm.DB, id, patientID int) (int64, error) {
	result := db.Where("prescription_id = ? AND patient_id = ?", id, patientID).Delete(&entity.Prescription{})
	return result.RowsAffected, result.Error
}

func (r *prescriptionRepository) FindDetails(db *gorm.DB) ([]entity.PrescriptionDetail, error) {
	var prescriptions []entity.PrescriptionDetail
	err := db.Table("prescriptions pr").
		Select("pr.*, p.first_name AS patient_first_name, p.last_name AS patient_last_name").
		Joins("JOIN patients p ON p.patient_id = pr.patient_id").
		Order("pr.created_at DESC, pr.prescription_id DESC").
		Scan(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Where("patient_id = ?", patientID).
		Order("created_at DESC, prescription_id DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) CountDistinct(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Prescription{}).Distinct("prescription_id").Count(&total).Error
	return total, err
}
