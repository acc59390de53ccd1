package http

import (
	"net/http"
	"time"

	"sehat-clinic/internal/delivery/http/handler"
	"sehat-clinic/internal/delivery/http/middleware"
	"sehat-clinic/pkg/response"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router              *mux.Router
	log                 *logrus.Logger
	requestTimeout      time.Duration
	patientHandler      *handler.PatientHandler
	doctorHandler       *handler.DoctorHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
	reminderHandler     *handler.ReminderHandler
	authHandler         *handler.AuthHandler
	dashboardHandler    *handler.DashboardHandler
	chatHandler         *handler.ChatHandler
	metricsHandler      http.Handler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

type RouterConfig struct {
	Log                 *logrus.Logger
	RequestTimeout      time.Duration
	PatientHandler      *handler.PatientHandler
	DoctorHandler       *handler.DoctorHandler
	AppointmentHandler  *handler.AppointmentHandler
	PrescriptionHandler *handler.PrescriptionHandler
	ReminderHandler     *handler.ReminderHandler
	AuthHandler         *handler.AuthHandler
	DashboardHandler    *handler.DashboardHandler
	ChatHandler         *handler.ChatHandler
	MetricsHandler      http.Handler
	AuthMiddleware      *middleware.AuthMiddleware
	CORSMiddleware      *middleware.CORSMiddleware
	LoggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(cfg RouterConfig) *Router {
	return &Router{
		router:              mux.NewRouter(),
		log:                 cfg.Log,
		requestTimeout:      cfg.RequestTimeout,
		patientHandler:      cfg.PatientHandler,
		doctorHandler:       cfg.DoctorHandler,
		appointmentHandler:  cfg.AppointmentHandler,
		prescriptionHandler: cfg.PrescriptionHandler,
		reminderHandler:     cfg.ReminderHandler,
		authHandler:         cfg.AuthHandler,
		dashboardHandler:    cfg.DashboardHandler,
		chatHandler:         cfg.ChatHandler,
		metricsHandler:      cfg.MetricsHandler,
		authMiddleware:      cfg.AuthMiddleware,
		corsMiddleware:      cfg.CORSMiddleware,
		loggingMiddleware:   cfg.LoggingMiddleware,
	}
}

func (r *Router) Setup() http.Handler {
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(middleware.Timeout(r.requestTimeout))

	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentPatient).Methods(http.MethodGet)

	// Public doctor directory
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)

	// Clinic management
	clinic := api.PathPrefix("/clinic").Subrouter()

	clinic.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	clinic.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	clinic.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	clinic.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	clinic.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	clinic.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	clinic.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	clinic.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	clinic.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	clinic.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	clinic.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	clinic.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	clinic.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	clinic.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)
	clinic.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	clinic.HandleFunc("/prescriptions", r.prescriptionHandler.GetAllPrescriptions).Methods(http.MethodGet)
	clinic.HandleFunc("/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	clinic.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.DeletePrescription).Methods(http.MethodDelete)

	// Dashboard
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.HandleFunc("/stats", r.dashboardHandler.GetStats).Methods(http.MethodGet)
	dashboard.HandleFunc("/recent-appointments", r.dashboardHandler.GetRecentAppointments).Methods(http.MethodGet)
	dashboard.HandleFunc("/recent-activity", r.dashboardHandler.GetRecentActivity).Methods(http.MethodGet)
	dashboard.HandleFunc("/patients-overview", r.dashboardHandler.GetPatientsOverview).Methods(http.MethodGet)

	// AI assistant
	api.HandleFunc("/chat", r.chatHandler.Chat).Methods(http.MethodPost)

	// Patient routes (protected)
	patient := api.NewRoute().Subrouter()
	patient.Use(r.authMiddleware.Authenticate)

	patient.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)

	patient.HandleFunc("/medications", r.prescriptionHandler.GetMyMedications).Methods(http.MethodGet)
	patient.HandleFunc("/medications", r.prescriptionHandler.AddMyMedication).Methods(http.MethodPost)
	patient.HandleFunc("/medications/{id}", r.prescriptionHandler.DeleteMyMedication).Methods(http.MethodDelete)

	patient.HandleFunc("/reminders", r.reminderHandler.GetMyReminders).Methods(http.MethodGet)
	patient.HandleFunc("/reminders/{id}", r.reminderHandler.UpdateReminderStatus).Methods(http.MethodPatch)

	// CORS wraps the router so preflight requests are answered before method matching.
	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(r.log), handlers.PrintRecoveryStack(true))
	return recovery(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
