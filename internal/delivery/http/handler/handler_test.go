package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/delivery/http/middleware"
	"sehat-clinic/internal/usecase"
	"sehat-clinic/pkg/response"
	"sehat-clinic/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(h http.HandlerFunc, method, target, body string, vars map[string]string, patientID int) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	if patientID > 0 {
		req = req.WithContext(middleware.WithPatientID(req.Context(), patientID, "token-id"))
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

type fakePatientUsecase struct {
	usecase.PatientUsecase
	createErr error
	created   *dto.PatientRequest
	getErr    error
	deleteErr error
}

func (f *fakePatientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientCreatedResponse, error) {
	f.created = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dto.PatientCreatedResponse{PatientID: 11}, nil
}

func (f *fakePatientUsecase) Get(ctx context.Context, id int) (*dto.PatientDetailResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dto.PatientDetailResponse{
		Patient:      dto.PatientResponse{PatientID: id},
		Appointments: []dto.AppointmentResponse{},
		Medications:  []dto.PrescriptionResponse{},
	}, nil
}

func (f *fakePatientUsecase) Delete(ctx context.Context, id int) error {
	return f.deleteErr
}

func TestCreatePatient(t *testing.T) {
	uc := &fakePatientUsecase{}
	h := NewPatientHandler(uc, validator.NewValidator())

	rec := doRequest(h.CreatePatient, http.MethodPost, "/api/clinic/patients",
		`{"first_name":"John","last_name":"Doe","email":"john.doe@email.com","dob":"1985-05-15"}`, nil, 0)
	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, float64(11), resp.Data.(map[string]interface{})["patient_id"])
}

func TestCreatePatientRejectsInvalidInput(t *testing.T) {
	uc := &fakePatientUsecase{}
	h := NewPatientHandler(uc, validator.NewValidator())

	cases := map[string]string{
		"malformed json": `{"first_name":`,
		"missing email":  `{"first_name":"John","last_name":"Doe"}`,
		"bad email":      `{"first_name":"John","last_name":"Doe","email":"nope"}`,
		"bad dob":        `{"first_name":"John","last_name":"Doe","email":"j@d.com","dob":"15/05/1985"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(h.CreatePatient, http.MethodPost, "/api/clinic/patients", body, nil, 0)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, decodeEnvelope(t, rec).Success)
		})
	}
	assert.Nil(t, uc.created)
}

func TestCreatePatientDuplicateEmail(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{createErr: usecase.ErrEmailAlreadyExists}, validator.NewValidator())

	rec := doRequest(h.CreatePatient, http.MethodPost, "/api/clinic/patients",
		`{"first_name":"John","last_name":"Doe","email":"john.doe@email.com"}`, nil, 0)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetPatient(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	rec := doRequest(h.GetPatient, http.MethodGet, "/api/clinic/patients/abc", "", map[string]string{"id": "abc"}, 0)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h.GetPatient, http.MethodGet, "/api/clinic/patients/3", "", map[string]string{"id": "3"}, 0)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"appointments":[]`)

	h = NewPatientHandler(&fakePatientUsecase{getErr: usecase.ErrPatientNotFound}, validator.NewValidator())
	rec = doRequest(h.GetPatient, http.MethodGet, "/api/clinic/patients/999", "", map[string]string{"id": "999"}, 0)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePatientHidesInternalErrors(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{deleteErr: assert.AnError}, validator.NewValidator())

	rec := doRequest(h.DeletePatient, http.MethodDelete, "/api/clinic/patients/1", "", map[string]string{"id": "1"}, 0)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

type fakeAppointmentUsecase struct {
	usecase.AppointmentUsecase
	statusErr     error
	status        string
	bookedFor     int
	bookErr       error
	listPatientID int
}

func (f *fakeAppointmentUsecase) UpdateStatus(ctx context.Context, id int, status string) error {
	f.status = status
	return f.statusErr
}

func (f *fakeAppointmentUsecase) Book(ctx context.Context, patientID int, req *dto.BookAppointmentRequest) (*dto.AppointmentCreatedResponse, error) {
	f.bookedFor = patientID
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	return &dto.AppointmentCreatedResponse{AppointmentID: 5}, nil
}

func (f *fakeAppointmentUsecase) ListForPatient(ctx context.Context, patientID int) ([]dto.AppointmentResponse, error) {
	f.listPatientID = patientID
	return []dto.AppointmentResponse{}, nil
}

func TestUpdateAppointmentStatus(t *testing.T) {
	uc := &fakeAppointmentUsecase{statusErr: usecase.ErrInvalidStatus}
	h := NewAppointmentHandler(uc, validator.NewValidator())

	rec := doRequest(h.UpdateAppointmentStatus, http.MethodPatch, "/api/clinic/appointments/1", `{"status":"bogus"}`, map[string]string{"id": "1"}, 0)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bogus", uc.status)

	uc.statusErr = usecase.ErrAppointmentNotFound
	rec = doRequest(h.UpdateAppointmentStatus, http.MethodPatch, "/api/clinic/appointments/9", `{"status":"completed"}`, map[string]string{"id": "9"}, 0)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	uc.statusErr = nil
	rec = doRequest(h.UpdateAppointmentStatus, http.MethodPatch, "/api/clinic/appointments/1", `{"status":"completed"}`, map[string]string{"id": "1"}, 0)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookAppointmentUsesAuthenticatedPatient(t *testing.T) {
	uc := &fakeAppointmentUsecase{}
	h := NewAppointmentHandler(uc, validator.NewValidator())
	body := `{"doctor_id":1,"date":"2025-10-01","time":"09:30","reason":"Checkup"}`

	rec := doRequest(h.BookAppointment, http.MethodPost, "/api/appointments", body, nil, 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, uc.bookedFor)

	rec = doRequest(h.BookAppointment, http.MethodPost, "/api/appointments", body, nil, 42)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 42, uc.bookedFor)

	rec = doRequest(h.GetMyAppointments, http.MethodGet, "/api/appointments", "", nil, 42)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, uc.listPatientID)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestBookAppointmentErrors(t *testing.T) {
	for err, status := range map[error]int{
		usecase.ErrInvalidDateTime: http.StatusBadRequest,
		usecase.ErrDoctorReference: http.StatusBadRequest,
		assert.AnError:             http.StatusInternalServerError,
	} {
		h := NewAppointmentHandler(&fakeAppointmentUsecase{bookErr: err}, validator.NewValidator())
		rec := doRequest(h.BookAppointment, http.MethodPost, "/api/appointments",
			`{"doctor_id":1,"date":"2025-10-01","time":"09:30"}`, nil, 42)
		assert.Equal(t, status, rec.Code, err.Error())
	}
}

type fakePrescriptionUsecase struct {
	usecase.PrescriptionUsecase
	createdFor int
	createErr  error
	deleteErr  error
}

func (f *fakePrescriptionUsecase) Create(ctx context.Context, patientID int, req *dto.MedicationRequest) (*dto.PrescriptionCreatedResponse, error) {
	f.createdFor = patientID
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dto.PrescriptionCreatedResponse{PrescriptionID: 8, RemindersScheduled: len(req.ReminderTimes)}, nil
}

func (f *fakePrescriptionUsecase) DeleteForPatient(ctx context.Context, id, patientID int) error {
	return f.deleteErr
}

func TestCreatePrescription(t *testing.T) {
	uc := &fakePrescriptionUsecase{}
	h := NewPrescriptionHandler(uc, validator.NewValidator())

	rec := doRequest(h.CreatePrescription, http.MethodPost, "/api/clinic/prescriptions",
		`{"patient_id":3,"medication_name":"Ibuprofen","reminder_times":["08:00","25:99"]}`, nil, 0)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h.CreatePrescription, http.MethodPost, "/api/clinic/prescriptions",
		`{"patient_id":3,"medication_name":"Ibuprofen","reminder_times":["08:00","20:00"]}`, nil, 0)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 3, uc.createdFor)
	assert.Contains(t, rec.Body.String(), `"reminders_scheduled":2`)
}

func TestAddMyMedicationForeignAppointment(t *testing.T) {
	uc := &fakePrescriptionUsecase{createErr: usecase.ErrAppointmentReference}
	h := NewPrescriptionHandler(uc, validator.NewValidator())

	rec := doRequest(h.AddMyMedication, http.MethodPost, "/api/medications",
		`{"appointment_id":99,"medication_name":"Ibuprofen"}`, nil, 1)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, uc.createdFor)
	assert.Contains(t, rec.Body.String(), "Appointment does not exist")
}

func TestDeleteMyMedicationNotOwned(t *testing.T) {
	h := NewPrescriptionHandler(&fakePrescriptionUsecase{deleteErr: usecase.ErrPrescriptionNotFound}, validator.NewValidator())

	rec := doRequest(h.DeleteMyMedication, http.MethodDelete, "/api/medications/4", "", map[string]string{"id": "4"}, 2)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type fakeReminderUsecase struct {
	usecase.ReminderUsecase
	listStatus string
	updateErr  error
}

func (f *fakeReminderUsecase) ListForPatient(ctx context.Context, patientID int, status string) ([]dto.ReminderResponse, error) {
	f.listStatus = status
	return []dto.ReminderResponse{}, nil
}

func (f *fakeReminderUsecase) UpdateStatus(ctx context.Context, id, patientID int, status string) error {
	return f.updateErr
}

func TestReminders(t *testing.T) {
	uc := &fakeReminderUsecase{}
	h := NewReminderHandler(uc, validator.NewValidator())

	rec := doRequest(h.GetMyReminders, http.MethodGet, "/api/reminders?status=pending", "", nil, 1)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pending", uc.listStatus)

	rec = doRequest(h.UpdateReminderStatus, http.MethodPatch, "/api/reminders/1", `{"status":"snoozed"}`, map[string]string{"id": "1"}, 1)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.updateErr = usecase.ErrReminderNotFound
	rec = doRequest(h.UpdateReminderStatus, http.MethodPatch, "/api/reminders/1", `{"status":"dismissed"}`, map[string]string{"id": "1"}, 1)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type fakeChatUsecase struct {
	available bool
	err       error
	called    bool
}

func (f *fakeChatUsecase) Available() bool { return f.available }

func (f *fakeChatUsecase) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ChatResponse{Text: "echo: " + req.Message}, nil
}

func TestChat(t *testing.T) {
	unavailable := &fakeChatUsecase{}
	rec := doRequest(NewChatHandler(unavailable).Chat, http.MethodPost, "/api/chat", `not json`, nil, 0)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, unavailable.called)

	for err, status := range map[error]int{
		usecase.ErrEmptyMessage:     http.StatusBadRequest,
		usecase.ErrAssistantTimeout: http.StatusGatewayTimeout,
		assert.AnError:              http.StatusInternalServerError,
	} {
		rec := doRequest(NewChatHandler(&fakeChatUsecase{available: true, err: err}).Chat, http.MethodPost, "/api/chat", `{"message":"hi"}`, nil, 0)
		assert.Equal(t, status, rec.Code, err.Error())
	}

	rec = doRequest(NewChatHandler(&fakeChatUsecase{available: true}).Chat, http.MethodPost, "/api/chat", `{"message":"hi"}`, nil, 0)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "echo: hi", decodeEnvelope(t, rec).Data.(map[string]interface{})["text"])
}

type fakeDashboardUsecase struct {
	usecase.DashboardUsecase
	err error
}

func (f *fakeDashboardUsecase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DashboardStatsResponse{TotalPatients: 2}, nil
}

func TestDashboardStats(t *testing.T) {
	rec := doRequest(NewDashboardHandler(&fakeDashboardUsecase{}).GetStats, http.MethodGet, "/api/dashboard/stats", "", nil, 0)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_patients":2`)

	rec = doRequest(NewDashboardHandler(&fakeDashboardUsecase{err: assert.AnError}).GetStats, http.MethodGet, "/api/dashboard/stats", "", nil, 0)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type fakeAuthUsecase struct {
	usecase.AuthUsecase
	loginErr     error
	loggedOut    int
	refreshToken string
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &dto.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, nil
}

func (f *fakeAuthUsecase) Logout(ctx context.Context, patientID int, accessTokenID, refreshToken string) error {
	f.loggedOut = patientID
	f.refreshToken = refreshToken
	return nil
}

func TestLogin(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{loginErr: usecase.ErrInvalidCredentials}, validator.NewValidator())
	rec := doRequest(h.Login, http.MethodPost, "/api/auth/login", `{"email":"john.doe@email.com","password":"x"}`, nil, 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h = NewAuthHandler(&fakeAuthUsecase{}, validator.NewValidator())
	rec = doRequest(h.Login, http.MethodPost, "/api/auth/login", `{"email":"john.doe@email.com","password":"x"}`, nil, 0)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"expires_in":900`)
}

func TestLogoutWithoutBody(t *testing.T) {
	uc := &fakeAuthUsecase{}
	h := NewAuthHandler(uc, validator.NewValidator())

	rec := doRequest(h.Logout, http.MethodPost, "/api/auth/logout", "", nil, 6)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6, uc.loggedOut)
	assert.Empty(t, uc.refreshToken)
}
