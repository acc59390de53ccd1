package usecase

import (
	"context"
	"errors"
	"time"

	"sehat-clinic/internal/converter"
	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/domain/entity"
	"sehat-clinic/internal/domain/repository"
	"sehat-clinic/internal/service"
	"sehat-clinic/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrInvalidReminderTime  = errors.New("reminder times must use HH:MM")
	ErrAppointmentReference = errors.New("referenced appointment does not exist")
)

type PrescriptionUsecase interface {
	List(ctx context.Context) ([]dto.PrescriptionResponse, error)
	ListForPatient(ctx context.Context, patientID int) ([]dto.PrescriptionResponse, error)
	// Create stores the prescription and plans its first round of reminders in the same transaction.
	Create(ctx context.Context, patientID int, req *dto.MedicationRequest) (*dto.PrescriptionCreatedResponse, error)
	Delete(ctx context.Context, id int) error
	DeleteForPatient(ctx context.Context, id, patientID int) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	appointmentRepo  repository.AppointmentRepository
	reminderRepo     repository.ReminderRepository
	audit            service.AuditService
	now              func() time.Time
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
	reminderRepo repository.ReminderRepository,
	audit service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
		reminderRepo:     reminderRepo,
		audit:            audit,
		now:              time.Now,
	}
}

func (u *prescriptionUsecase) List(ctx context.Context) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindDetails(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}
	return converter.PrescriptionDetailsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) ListForPatient(ctx context.Context, patientID int) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions for patient %d: %+v", patientID, err)
		return nil, err
	}
	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) Create(ctx context.Context, patientID int, req *dto.MedicationRequest) (*dto.PrescriptionCreatedResponse, error) {
	times := datatypes.JSONSlice[string]{}
	for _, clock := range req.ReminderTimes {
		if !validator.IsClock(clock) {
			return nil, ErrInvalidReminderTime
		}
		times = append(times, clock)
	}

	prescription := &entity.Prescription{
		PatientID:      patientID,
		AppointmentID:  req.AppointmentID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		ReminderTimes:  times,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// An appointment owned by another patient is reported like a missing one.
	if req.AppointmentID != nil {
		owned, err := u.appointmentRepo.ExistsForPatient(tx, *req.AppointmentID, patientID)
		if err != nil {
			u.log.Warnf("Failed to check appointment %d: %+v", *req.AppointmentID, err)
			return nil, err
		}
		if !owned {
			return nil, ErrAppointmentReference
		}
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		switch {
		case isForeignKeyError(err, "patient_id"):
			return nil, ErrPatientReference
		case isForeignKeyError(err, "appointment_id"):
			return nil, ErrAppointmentReference
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	reminders := service.PlanReminders(prescription.ID, times, u.now())
	if err := u.reminderRepo.CreateBatch(tx, reminders); err != nil {
		u.log.Warnf("Failed to plan reminders for prescription %d: %+v", prescription.ID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, "prescription", prescription.ID)
	return &dto.PrescriptionCreatedResponse{
		PrescriptionID:     prescription.ID,
		RemindersScheduled: len(reminders),
	}, nil
}

func (u *prescriptionUsecase) Delete(ctx context.Context, id int) error {
	return u.delete(ctx, id, func(tx *gorm.DB) (int64, error) {
		return u.prescriptionRepo.Delete(tx, id)
	})
}

// DeleteForPatient reports ErrPrescriptionNotFound when the prescription belongs to someone else.
func (u *prescriptionUsecase) DeleteForPatient(ctx context.Context, id, patientID int) error {
	return u.delete(ctx, id, func(tx *gorm.DB) (int64, error) {
		return u.prescriptionRepo.DeleteByPatient(tx, id, patientID)
	})
}

func (u *prescriptionUsecase) delete(ctx context.Context, id int, remove func(tx *gorm.DB) (int64, error)) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := remove(tx)
	if err != nil {
		u.log.Warnf("Failed to delete prescription %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPrescriptionNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, "prescription", id)
	return nil
}
