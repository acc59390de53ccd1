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
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidDateTime     = errors.New("invalid date or time format")
	ErrPatientReference    = errors.New("referenced patient does not exist")
	ErrDoctorReference     = errors.New("referenced doctor does not exist")
)

// Accepted forms of a clinic-entered appointment_date.
var appointmentDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

type AppointmentUsecase interface {
	List(ctx context.Context) ([]dto.AppointmentResponse, error)
	Create(ctx context.Context, req *dto.ClinicAppointmentRequest) (*dto.AppointmentCreatedResponse, error)
	Update(ctx context.Context, id int, req *dto.ClinicAppointmentRequest) error
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error

	ListForPatient(ctx context.Context, patientID int) ([]dto.AppointmentResponse, error)
	Book(ctx context.Context, patientID int, req *dto.BookAppointmentRequest) (*dto.AppointmentCreatedResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	audit           service.AuditService
}

func NewAppointmentUsecase(db *gorm.DB, log *logrus.Logger, appointmentRepo repository.AppointmentRepository, audit service.AuditService) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		audit:           audit,
	}
}

func (u *appointmentUsecase) List(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindDetails(u.db.WithContext(ctx), 0)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentDetailsToResponses(appointments), nil
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.ClinicAppointmentRequest) (*dto.AppointmentCreatedResponse, error) {
	when, err := parseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	doctorID := req.DoctorID
	return u.create(ctx, &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        &doctorID,
		AppointmentDate: when,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusScheduled,
	})
}

// Book creates an appointment for the authenticated patient from a separate date and time of day.
func (u *appointmentUsecase) Book(ctx context.Context, patientID int, req *dto.BookAppointmentRequest) (*dto.AppointmentCreatedResponse, error) {
	when, err := combineDateAndTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	doctorID := req.DoctorID
	return u.create(ctx, &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        &doctorID,
		AppointmentDate: when,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusScheduled,
	})
}

func (u *appointmentUsecase) create(ctx context.Context, appointment *entity.Appointment) (*dto.AppointmentCreatedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if refErr := appointmentReferenceError(err); refErr != nil {
			return nil, refErr
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, "appointment", appointment.ID)
	return &dto.AppointmentCreatedResponse{AppointmentID: appointment.ID}, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id int, req *dto.ClinicAppointmentRequest) error {
	when, err := parseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return err
	}

	status := entity.AppointmentStatus(req.Status)
	if status != "" && !status.IsValid() {
		return ErrInvalidStatus
	}

	doctorID := req.DoctorID
	appointment := &entity.Appointment{
		ID:              id,
		PatientID:       req.PatientID,
		DoctorID:        &doctorID,
		AppointmentDate: when,
		Reason:          req.Reason,
		Status:          status,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.Update(tx, appointment)
	if err != nil {
		if refErr := appointmentReferenceError(err); refErr != nil {
			return refErr
		}
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.audit.LogUpdate(ctx, "appointment", id)
	return nil
}

// UpdateStatus only accepts scheduled, completed or cancelled; anything else leaves the row untouched.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id int, status string) error {
	s := entity.AppointmentStatus(status)
	if !s.IsValid() {
		return ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatus(tx, id, s)
	if err != nil {
		u.log.Warnf("Failed to update status of appointment %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.audit.LogStatusChange(ctx, "appointment", id, status)
	return nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, "appointment", id)
	return nil
}

func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID int) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindDetailsByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}
	return converter.AppointmentDetailsToResponses(appointments), nil
}

func parseAppointmentDate(value string) (time.Time, error) {
	for _, layout := range appointmentDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}

// combineDateAndTime joins a YYYY-MM-DD date and an HH:MM time of day.
func combineDateAndTime(date, clock string) (time.Time, error) {
	day, err := time.Parse(dto.DateLayout, date)
	if err != nil || !validator.IsClock(clock) {
		return time.Time{}, ErrInvalidDateTime
	}

	tod, err := time.Parse(validator.ClockLayout, clock)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC), nil
}

func appointmentReferenceError(err error) error {
	switch {
	case isForeignKeyError(err, "patient_id"):
		return ErrPatientReference
	case isForeignKeyError(err, "doctor_id"):
		return ErrDoctorReference
	}
	return nil
}
