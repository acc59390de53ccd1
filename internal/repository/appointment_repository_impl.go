package repository

import (
	"time"

	"sehat-clinic/internal/domain/entity"
	domainRepo "sehat-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

// Update rewrites the appointment. An empty status keeps the stored one.
func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) (int64, error) {
	changes := map[string]interface{}{
		"patient_id":       appointment.PatientID,
		"doctor_id":        appointment.DoctorID,
		"appointment_date": appointment.AppointmentDate,
		"reason":           appointment.Reason,
	}
	if appointment.Status != "" {
		changes["status"] = appointment.Status
	}

	result := db.Model(&entity.Appointment{}).Where("appointment_id = ?", appointment.ID).Updates(changes)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).Where("appointment_id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("appointment_id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) ExistsForPatient(db *gorm.DB, id, patientID int) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("appointment_id = ? AND patient_id = ?", id, patientID).
		Count(&count).Error
	return count > 0, err
}

func (r *appointmentRepository) FindDetails(db *gorm.DB, limit int) ([]entity.AppointmentDetail, error) {
	query := appointmentDetails(db).Order("a.appointment_date DESC, a.appointment_id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var appointments []entity.AppointmentDetail
	if err := query.Scan(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindDetailsByPatientID(db *gorm.DB, patientID int) ([]entity.AppointmentDetail, error) {
	var appointments []entity.AppointmentDetail
	err := appointmentDetails(db).
		Where("a.patient_id = ?", patientID).
		Order("a.appointment_date DESC, a.appointment_id DESC").
		Scan(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Appointment{}).Count(&total).Error
	return total, err
}

func (r *appointmentRepository) CountBetween(db *gorm.DB, from, to time.Time) (int64, error) {
	var total int64
	err := db.Model(&entity.Appointment{}).
		Where("appointment_date >= ? AND appointment_date < ?", from, to).
		Count(&total).Error
	return total, err
}

// appointmentDetails joins patient and doctor names. Doctors are LEFT joined
// so appointments whose doctor was deleted are still listed.
func appointmentDetails(db *gorm.DB) *gorm.DB {
	return db.Table("appointments a").
		Select("a.appointment_id, a.appointment_date, a.reason, a.status, " +
			"p.patient_id, p.first_name AS patient_first_name, p.last_name AS patient_last_name, " +
			"a.doctor_id, d.first_name AS doctor_first_name, d.last_name AS doctor_last_name, d.specialization").
		Joins("JOIN patients p ON p.patient_id = a.patient_id").
		Joins("LEFT JOIN doctors d ON d.doctor_id = a.doctor_id")
}
