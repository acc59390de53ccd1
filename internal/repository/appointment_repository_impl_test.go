package repository

import (
	"regexp"
	"testing"
	"time"

	"sehat-clinic/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var appointmentDetailColumns = []string{
	"appointment_id", "appointment_date", "reason", "status",
	"patient_id", "patient_first_name", "patient_last_name",
	"doctor_id", "doctor_first_name", "doctor_last_name", "specialization",
}

func TestAppointmentRepositoryFindDetailsKeepsOrphans(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	when := time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(appointmentDetailColumns).
		AddRow(2, when, "Checkup", "scheduled", 1, "John", "Doe", 3, "Sarah", "Johnson", "Cardiology").
		AddRow(1, when.Add(-time.Hour), "", "cancelled", 1, "John", "Doe", nil, nil, nil, nil)

	mock.ExpectQuery(`LEFT JOIN doctors d ON d.doctor_id = a.doctor_id ORDER BY a.appointment_date DESC, a.appointment_id DESC LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(rows)

	appointments, err := repo.FindDetails(db, 10)
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, "Sarah", *appointments[0].DoctorFirstName)
	assert.Nil(t, appointments[1].DoctorID)
	assert.Nil(t, appointments[1].DoctorFirstName)
	assert.Equal(t, entity.AppointmentStatusCancelled, appointments[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepositoryUpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "appointments" SET "status"=$1 WHERE appointment_id = $2`)).
		WithArgs(entity.AppointmentStatusCompleted, 8).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateStatus(db, 8, entity.AppointmentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepositoryCountBetween(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	from := time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "appointments" WHERE appointment_date >= $1 AND appointment_date < $2`)).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	total, err := repo.CountBetween(db, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepositoryExistsForPatient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	query := regexp.QuoteMeta(`SELECT count(*) FROM "appointments" WHERE appointment_id = $1 AND patient_id = $2`)
	mock.ExpectQuery(query).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(query).
		WithArgs(99, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	owned, err := repo.ExistsForPatient(db, 99, 1)
	require.NoError(t, err)
	assert.False(t, owned)

	owned, err = repo.ExistsForPatient(db, 99, 2)
	require.NoError(t, err)
	assert.True(t, owned)
	assert.NoError(t, mock.ExpectationsWereMet())
}
