package usecase

import (
	"context"
	"errors"

	"sehat-clinic/internal/converter"
	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/domain/entity"
	"sehat-clinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReminderNotFound      = errors.New("reminder not found")
	ErrInvalidReminderStatus = errors.New("invalid reminder status")
)

type ReminderUsecase interface {
	// ListForPatient lists the patient's reminders. An empty status lists all of them.
	ListForPatient(ctx context.Context, patientID int, status string) ([]dto.ReminderResponse, error)
	UpdateStatus(ctx context.Context, id, patientID int, status string) error
}

type reminderUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reminderRepo repository.ReminderRepository
}

func NewReminderUsecase(db *gorm.DB, log *logrus.Logger, reminderRepo repository.ReminderRepository) ReminderUsecase {
	return &reminderUsecase{
		db:           db,
		log:          log,
		reminderRepo: reminderRepo,
	}
}

func (u *reminderUsecase) ListForPatient(ctx context.Context, patientID int, status string) ([]dto.ReminderResponse, error) {
	var filter *entity.ReminderStatus
	if status != "" {
		s := entity.ReminderStatus(status)
		if !s.IsValid() {
			return nil, ErrInvalidReminderStatus
		}
		filter = &s
	}

	reminders, err := u.reminderRepo.FindByPatientID(u.db.WithContext(ctx), patientID, filter)
	if err != nil {
		u.log.Warnf("Failed to find reminders for patient %d: %+v", patientID, err)
		return nil, err
	}
	return converter.RemindersToResponses(reminders), nil
}

func (u *reminderUsecase) UpdateStatus(ctx context.Context, id, patientID int, status string) error {
	s := entity.ReminderStatus(status)
	if !s.IsValid() {
		return ErrInvalidReminderStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.reminderRepo.UpdateStatusByPatient(tx, id, patientID, s)
	if err != nil {
		u.log.Warnf("Failed to update reminder %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrReminderNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}
