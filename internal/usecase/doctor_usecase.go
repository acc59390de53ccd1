package usecase

import (
	"context"
	"errors"

	"sehat-clinic/internal/converter"
	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/domain/entity"
	"sehat-clinic/internal/domain/repository"
	"sehat-clinic/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidHours   = errors.New("available hours must start before they end")
)

type DoctorUsecase interface {
	List(ctx context.Context) ([]dto.DoctorResponse, error)
	Get(ctx context.Context, id int) (*dto.DoctorResponse, error)
	Create(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorCreatedResponse, error)
	Update(ctx context.Context, id int, req *dto.DoctorRequest) error
	Delete(ctx context.Context, id int) error
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	audit      service.AuditService
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository, audit service.AuditService) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		audit:      audit,
	}
}

func (u *doctorUsecase) List(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) Get(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorCreatedResponse, error) {
	doctor, err := doctorFromRequest(req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, "doctor", doctor.ID)
	return &dto.DoctorCreatedResponse{DoctorID: doctor.ID}, nil
}

func (u *doctorUsecase) Update(ctx context.Context, id int, req *dto.DoctorRequest) error {
	doctor, err := doctorFromRequest(req)
	if err != nil {
		return err
	}
	doctor.ID = id

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.doctorRepo.Update(tx, doctor)
	if err != nil {
		u.log.Warnf("Failed to update doctor %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.audit.LogUpdate(ctx, "doctor", id)
	return nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.doctorRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.audit.LogDelete(ctx, "doctor", id)
	return nil
}

func doctorFromRequest(req *dto.DoctorRequest) (*entity.Doctor, error) {
	var hours entity.AvailableHours
	if req.AvailableHours != nil {
		// Both ends are zero-padded HH:MM, so string order is time order.
		if req.AvailableHours.Start >= req.AvailableHours.End {
			return nil, ErrInvalidHours
		}
		hours = entity.AvailableHours{Start: req.AvailableHours.Start, End: req.AvailableHours.End}
	}

	days := datatypes.JSONSlice[string]{}
	days = append(days, req.AvailableDays...)

	return &entity.Doctor{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		AvailableDays:  days,
		AvailableHours: datatypes.NewJSONType(hours),
	}, nil
}
