package usecase

import (
	"context"
	"time"

	"sehat-clinic/internal/converter"
	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/domain/repository"
	"sehat-clinic/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	recentAppointmentsLimit = 10
	recentActivityLimit     = 8
)

type DashboardUsecase interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	RecentAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	RecentActivity(ctx context.Context) ([]dto.ActivityResponse, error)
	PatientsOverview(ctx context.Context) ([]dto.PatientSummaryResponse, error)
}

type dashboardUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	appointmentRepo  repository.AppointmentRepository
	prescriptionRepo repository.PrescriptionRepository
	now              func() time.Time
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	prescriptionRepo repository.PrescriptionRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		appointmentRepo:  appointmentRepo,
		prescriptionRepo: prescriptionRepo,
		now:              time.Now,
	}
}

// Stats runs the four counts concurrently. "Today" is the server's current calendar date.
func (u *dashboardUsecase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	now := service.WallClock(u.now())
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var stats dto.DashboardStatsResponse
	g, gctx := errgroup.WithContext(ctx)
	db := u.db.WithContext(gctx)

	g.Go(func() (err error) {
		stats.TotalPatients, err = u.patientRepo.Count(db)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalAppointments, err = u.appointmentRepo.Count(db)
		return err
	})
	g.Go(func() (err error) {
		stats.TodayAppointments, err = u.appointmentRepo.CountBetween(db, startOfDay, endOfDay)
		return err
	})
	g.Go(func() (err error) {
		stats.ActiveMedications, err = u.prescriptionRepo.CountDistinct(db)
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to compute dashboard stats: %+v", err)
		return nil, err
	}
	return &stats, nil
}

func (u *dashboardUsecase) RecentAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindDetails(u.db.WithContext(ctx), recentAppointmentsLimit)
	if err != nil {
		u.log.Warnf("Failed to fetch recent appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentDetailsToResponses(appointments), nil
}

func (u *dashboardUsecase) RecentActivity(ctx context.Context) ([]dto.ActivityResponse, error) {
	appointments, err := u.appointmentRepo.FindDetails(u.db.WithContext(ctx), recentActivityLimit)
	if err != nil {
		u.log.Warnf("Failed to fetch recent activity: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToActivities(appointments), nil
}

func (u *dashboardUsecase) PatientsOverview(ctx context.Context) ([]dto.PatientSummaryResponse, error) {
	patients, err := u.patientRepo.FindAllWithTotals(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to fetch patients overview: %+v", err)
		return nil, err
	}
	return converter.PatientSummariesToResponses(patients), nil
}
