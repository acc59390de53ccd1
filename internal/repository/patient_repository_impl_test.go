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

func TestPatientRepositoryCreateReturnsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "patients"`)).
		WillReturnRows(sqlmock.NewRows([]string{"patient_id"}).AddRow(7))

	patient := &entity.Patient{FirstName: "Ayu", LastName: "Lestari", Email: "ayu@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(db, patient))
	assert.Equal(t, 7, patient.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepositoryFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "patients" WHERE patient_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"patient_id"}))

	patient, err := repo.FindByID(db, 99)
	require.NoError(t, err)
	assert.Nil(t, patient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepositoryFindAllWithTotals(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	dob := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"patient_id", "first_name", "last_name", "email", "phone", "dob", "total_appointments", "total_medications"}).
		AddRow(1, "John", "Doe", "john@example.com", "555", dob, 3, 3).
		AddRow(2, "Jane", "Roe", "jane@example.com", "", nil, 0, 0)

	mock.ExpectQuery(`COUNT\(DISTINCT a\.appointment_id\).*LEFT JOIN appointments a.*LEFT JOIN prescriptions pr.*GROUP BY "p"\."patient_id" ORDER BY p\.last_name, p\.first_name`).
		WillReturnRows(rows)

	patients, err := repo.FindAllWithTotals(db)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, int64(3), patients[0].TotalAppointments)
	assert.Equal(t, dob, *patients[0].DOB)
	assert.Nil(t, patients[1].DOB)
	assert.Zero(t, patients[1].TotalMedications)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepositoryUpdateSkipsEmptyPassword(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectExec(`UPDATE "patients" SET "dob"=\$1,"email"=\$2,"first_name"=\$3,"last_name"=\$4,"phone"=\$5 WHERE patient_id = \$6`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Update(db, &entity.Patient{ID: 4, FirstName: "A", LastName: "B", Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepositoryDeleteReportsRowsAffected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "patients" WHERE patient_id = $1`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Delete(db, 5)
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
