package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"sehat-clinic/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func foreignKeyViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

type auditCall struct {
	action string
	entity string
	id     int
}

type fakeAudit struct {
	mu    sync.Mutex
	calls []auditCall
}

func (f *fakeAudit) record(action, entityName string, id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, auditCall{action, entityName, id})
}

func (f *fakeAudit) LogCreate(ctx context.Context, entityName string, entityID int) {
	f.record("create", entityName, entityID)
}

func (f *fakeAudit) LogUpdate(ctx context.Context, entityName string, entityID int) {
	f.record("update", entityName, entityID)
}

func (f *fakeAudit) LogDelete(ctx context.Context, entityName string, entityID int) {
	f.record("delete", entityName, entityID)
}

func (f *fakeAudit) LogStatusChange(ctx context.Context, entityName string, entityID int, status string) {
	f.record("status_change", entityName, entityID)
}

type fakePatientRepo struct {
	nextID    int
	createErr error
	created   *entity.Patient

	updated        *entity.Patient
	updateAffected int64
	updateErr      error

	deleteAffected int64

	byID      *entity.Patient
	byEmail   *entity.Patient
	summaries []entity.PatientSummary
	count     int64
	countErr  error
}

func (f *fakePatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	if f.createErr != nil {
		return f.createErr
	}
	patient.ID = f.nextID
	f.created = patient
	return nil
}

func (f *fakePatientRepo) Update(db *gorm.DB, patient *entity.Patient) (int64, error) {
	f.updated = patient
	return f.updateAffected, f.updateErr
}

func (f *fakePatientRepo) Delete(db *gorm.DB, id int) (int64, error) {
	return f.deleteAffected, nil
}

func (f *fakePatientRepo) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	return f.byID, nil
}

func (f *fakePatientRepo) FindByEmail(db *gorm.DB, email string) (*entity.Patient, error) {
	if f.byEmail != nil && f.byEmail.Email == email {
		return f.byEmail, nil
	}
	return nil, nil
}

func (f *fakePatientRepo) FindAllWithTotals(db *gorm.DB) ([]entity.PatientSummary, error) {
	return f.summaries, nil
}

func (f *fakePatientRepo) Count(db *gorm.DB) (int64, error) {
	return f.count, f.countErr
}

type fakeDoctorRepo struct {
	nextID         int
	created        *entity.Doctor
	updateAffected int64
	deleteAffected int64
	byID           *entity.Doctor
	all            []entity.Doctor
}

func (f *fakeDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	doctor.ID = f.nextID
	f.created = doctor
	return nil
}

func (f *fakeDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) (int64, error) {
	return f.updateAffected, nil
}

func (f *fakeDoctorRepo) Delete(db *gorm.DB, id int) (int64, error) {
	return f.deleteAffected, nil
}

func (f *fakeDoctorRepo) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	return f.byID, nil
}

func (f *fakeDoctorRepo) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	return f.all, nil
}

type fakeAppointmentRepo struct {
	nextID    int
	createErr error
	created   *entity.Appointment

	updated        *entity.Appointment
	updateAffected int64

	statusID       int
	status         entity.AppointmentStatus
	statusAffected int64

	deleteAffected int64

	// owners maps appointment id to patient id.
	owners map[int]int

	details  []entity.AppointmentDetail
	limit    int
	count    int64
	today    int64
	from, to time.Time
	countErr error
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	appointment.ID = f.nextID
	f.created = appointment
	return nil
}

func (f *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) (int64, error) {
	f.updated = appointment
	return f.updateAffected, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error) {
	f.statusID, f.status = id, status
	return f.statusAffected, nil
}

func (f *fakeAppointmentRepo) Delete(db *gorm.DB, id int) (int64, error) {
	return f.deleteAffected, nil
}

func (f *fakeAppointmentRepo) ExistsForPatient(db *gorm.DB, id, patientID int) (bool, error) {
	owner, ok := f.owners[id]
	return ok && owner == patientID, nil
}

func (f *fakeAppointmentRepo) FindDetails(db *gorm.DB, limit int) ([]entity.AppointmentDetail, error) {
	f.limit = limit
	return f.details, nil
}

func (f *fakeAppointmentRepo) FindDetailsByPatientID(db *gorm.DB, patientID int) ([]entity.AppointmentDetail, error) {
	return f.details, nil
}

func (f *fakeAppointmentRepo) Count(db *gorm.DB) (int64, error) {
	return f.count, f.countErr
}

func (f *fakeAppointmentRepo) CountBetween(db *gorm.DB, from, to time.Time) (int64, error) {
	f.from, f.to = from, to
	return f.today, nil
}

type fakePrescriptionRepo struct {
	nextID    int
	createErr error
	created   *entity.Prescription

	deleteAffected int64
	ownedBy        map[int]int

	details   []entity.PrescriptionDetail
	byPatient []entity.Prescription
	count     int64
}

func (f *fakePrescriptionRepo) Create(db *gorm.DB, prescription *entity.Prescription) error {
	if f.createErr != nil {
		return f.createErr
	}
	prescription.ID = f.nextID
	f.created = prescription
	return nil
}

func (f *fakePrescriptionRepo) Delete(db *gorm.DB, id int) (int64, error) {
	return f.deleteAffected, nil
}

func (f *fakePrescriptionRepo) DeleteByPatient(db *gorm.DB, id, patientID int) (int64, error) {
	if owner, ok := f.ownedBy[id]; ok && owner == patientID {
		return 1, nil
	}
	return 0, nil
}

func (f *fakePrescriptionRepo) FindDetails(db *gorm.DB) ([]entity.PrescriptionDetail, error) {
	return f.details, nil
}

func (f *fakePrescriptionRepo) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Prescription, error) {
	return f.byPatient, nil
}

func (f *fakePrescriptionRepo) CountDistinct(db *gorm.DB) (int64, error) {
	return f.count, nil
}

type fakeReminderRepo struct {
	batch          []entity.Reminder
	batchErr       error
	filter         *entity.ReminderStatus
	found          []entity.ReminderDetail
	updateAffected int64
}

func (f *fakeReminderRepo) CreateBatch(db *gorm.DB, reminders []entity.Reminder) error {
	f.batch = reminders
	return f.batchErr
}

func (f *fakeReminderRepo) FindByPatientID(db *gorm.DB, patientID int, status *entity.ReminderStatus) ([]entity.ReminderDetail, error) {
	f.filter = status
	return f.found, nil
}

func (f *fakeReminderRepo) UpdateStatusByPatient(db *gorm.DB, id, patientID int, status entity.ReminderStatus) (int64, error) {
	return f.updateAffected, nil
}

func (f *fakeReminderRepo) LockDue(db *gorm.DB, now time.Time, limit int) ([]entity.ReminderDetail, error) {
	return nil, nil
}

func (f *fakeReminderRepo) MarkSent(db *gorm.DB, ids []int) error {
	return nil
}
