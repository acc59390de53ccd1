package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sehat-clinic/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db, _ := newMockDB(t)
	appointments := &fakeAppointmentRepo{count: 3, today: 1}
	uc := NewDashboardUsecase(db, newTestLogger(), &fakePatientRepo{count: 2}, appointments, &fakePrescriptionRepo{count: 3}).(*dashboardUsecase)
	uc.now = func() time.Time { return time.Date(2025, 9, 20, 15, 45, 0, 0, time.UTC) }

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalPatients)
	assert.Equal(t, int64(3), stats.TotalAppointments)
	assert.Equal(t, int64(1), stats.TodayAppointments)
	assert.Equal(t, int64(3), stats.ActiveMedications)

	assert.Equal(t, time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC), appointments.from)
	assert.Equal(t, time.Date(2025, 9, 21, 0, 0, 0, 0, time.UTC), appointments.to)
}

func TestDashboardStatsFailsWhenAnyCountFails(t *testing.T) {
	db, _ := newMockDB(t)
	uc := NewDashboardUsecase(db, newTestLogger(), &fakePatientRepo{countErr: errors.New("connection refused")}, &fakeAppointmentRepo{}, &fakePrescriptionRepo{})

	_, err := uc.Stats(context.Background())
	assert.Error(t, err)
}

func TestDashboardRecentViewsUseLimits(t *testing.T) {
	db, _ := newMockDB(t)
	doctorFirst, doctorLast := "Sarah", "Johnson"
	appointments := &fakeAppointmentRepo{details: []entity.AppointmentDetail{{
		ID:               1,
		AppointmentDate:  time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC),
		Status:           entity.AppointmentStatusScheduled,
		PatientFirstName: "John",
		PatientLastName:  "Doe",
		DoctorFirstName:  &doctorFirst,
		DoctorLastName:   &doctorLast,
	}}}
	uc := NewDashboardUsecase(db, newTestLogger(), &fakePatientRepo{}, appointments, &fakePrescriptionRepo{})

	recent, err := uc.RecentAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, appointments.limit)
	assert.Equal(t, "2025-09-20T10:00:00", recent[0].AppointmentDate)

	activity, err := uc.RecentActivity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, appointments.limit)
	assert.Equal(t, "John Doe with Dr. Sarah Johnson", activity[0].Description)
}
