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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	List(ctx context.Context) ([]dto.PatientSummaryResponse, error)
	Get(ctx context.Context, id int) (*dto.PatientDetailResponse, error)
	Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientCreatedResponse, error)
	Update(ctx context.Context, id int, req *dto.PatientRequest) error
	Delete(ctx context.Context, id int) error
}

type patientUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	appointmentRepo  repository.AppointmentRepository
	prescriptionRepo repository.PrescriptionRepository
	audit            service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	prescriptionRepo repository.PrescriptionRepository,
	audit service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		appointmentRepo:  appointmentRepo,
		prescriptionRepo: prescriptionRepo,
		audit:            audit,
	}
}

func (u *patientUsecase) List(ctx context.Context) ([]dto.PatientSummaryResponse, error) {
	patients, err := u.patientRepo.FindAllWithTotals(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientSummariesToResponses(patients), nil
}

// Get returns the patient with their appointments and prescriptions, newest first.
func (u *patientUsecase) Get(ctx context.Context, id int) (*dto.PatientDetailResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindDetailsByPatientID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", id, err)
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.FindByPatientID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions for patient %d: %+v", id, err)
		return nil, err
	}

	return &dto.PatientDetailResponse{
		Patient:      *converter.PatientToResponse(patient),
		Appointments: converter.AppointmentDetailsToResponses(appointments),
		Medications:  converter.PrescriptionsToResponses(prescriptions),
	}, nil
}

// Create registers a patient. Without a password a random secret is hashed,
// so the account cannot log in until staff set one.
func (u *patientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientCreatedResponse, error) {
	patient, err := u.patientFromRequest(req)
	if err != nil {
		return nil, err
	}

	password := req.Password
	if password == "" {
		password = uuid.NewString()
	}
	if patient.PasswordHash, err = hashPassword(password); err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, "patient", patient.ID)
	return &dto.PatientCreatedResponse{PatientID: patient.ID}, nil
}

func (u *patientUsecase) Update(ctx context.Context, id int, req *dto.PatientRequest) error {
	patient, err := u.patientFromRequest(req)
	if err != nil {
		return err
	}
	patient.ID = id

	if req.Password != "" {
		if patient.PasswordHash, err = hashPassword(req.Password); err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return err
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.patientRepo.Update(tx, patient)
	if err != nil {
		if isDuplicateKeyError(err, "email") {
			return ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.audit.LogUpdate(ctx, "patient", id)
	return nil
}

// Delete removes the patient; appointments, prescriptions and reminders cascade.
func (u *patientUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.patientRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, "patient", id)
	return nil
}

func (u *patientUsecase) patientFromRequest(req *dto.PatientRequest) (*entity.Patient, error) {
	patient := &entity.Patient{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if req.DOB != "" {
		dob, err := time.Parse(dto.DateLayout, req.DOB)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DOB = &dob
	}
	return patient, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
