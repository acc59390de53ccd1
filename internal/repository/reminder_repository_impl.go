package repository

import (
	"time"

	"sehat-clinic/internal/domain/entity"
	domainRepo "sehat-clinic/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reminderRepository struct{}

func NewReminderRepository() domainRepo.ReminderRepository {
	return &reminderRepository{}
}

func (r *reminderRepository) CreateBatch(db *gorm.DB, reminders []entity.Reminder) error {
	if len(reminders) == 0 {
		return nil
	}
	return db.Create(&reminders).Error
}

func (r *reminderRepository) FindByPatientID(db *gorm.DB, patientID int, status *entity.ReminderStatus) ([]entity.ReminderDetail, error) {
	query := reminderDetails(db).Where("pr.patient_id = ?", patientID)
	if status != nil {
		query = query.Where("r.status = ?", *status)
	}

	var reminders []entity.ReminderDetail
	if err := query.Order("r.reminder_time, r.reminder_id").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) UpdateStatusByPatient(db *gorm.DB, id, patientID int, status entity.ReminderStatus) (int64, error) {
	result := db.Model(&entity.Reminder{}).
		Where("reminder_id = ? AND prescription_id IN (SELECT prescription_id FROM prescriptions WHERE patient_id = ?)", id, patientID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *reminderRepository) LockDue(db *gorm.DB, now time.Time, limit int) ([]entity.ReminderDetail, error) {
	var reminders []entity.ReminderDetail
	err := reminderDetails(db).
		Where("r.status = ? AND r.reminder_time <= ?", entity.ReminderStatusPending, now).
		Order("r.reminder_time, r.reminder_id").
		Limit(limit).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "r"}, Options: "SKIP LOCKED"}).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) MarkSent(db *gorm.DB, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	return db.Model(&entity.Reminder{}).
		Where("reminder_id IN ?", ids).
		Update("status", entity.ReminderStatusSent).Error
}

func reminderDetails(db *gorm.DB) *gorm.DB {
	return db.Table("reminders r").
		Select("r.*, pr.patient_id, pr.medication_name, pr.dosage").
		Joins("JOIN prescriptions pr ON pr.prescription_id = r.prescription_id")
}
