package repository

import (
	"time"

	"sehat-clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type ReminderRepository interface {
	CreateBatch(db *gorm.DB, reminders []entity.Reminder) error
	// FindByPatientID lists a patient's reminders by reminder_time. A nil status matches all.
	FindByPatientID(db *gorm.DB, patientID int, status *entity.ReminderStatus) ([]entity.ReminderDetail, error)
	UpdateStatusByPatient(db *gorm.DB, id, patientID int, status entity.ReminderStatus) (int64, error)
	// LockDue selects pending reminders due at or before now, skipping rows locked by another dispatcher.
	// It must run inside a transaction.
	LockDue(db *gorm.DB, now time.Time, limit int) ([]entity.ReminderDetail, error)
	MarkSent(db *gorm.DB, ids []int) error
}
