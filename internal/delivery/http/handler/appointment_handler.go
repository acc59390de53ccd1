package handler

import (
	"net/http"

	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/usecase"
	"sehat-clinic/pkg/response"
	"sehat-clinic/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// writeAppointmentError maps appointment usecase errors shared by the clinic and patient routes.
func writeAppointmentError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrInvalidStatus:
		response.BadRequest(w, "Invalid status")
	case usecase.ErrInvalidDateTime:
		response.BadRequest(w, "Invalid date or time format")
	case usecase.ErrPatientReference:
		response.BadRequest(w, "Patient does not exist")
	case usecase.ErrDoctorReference:
		response.BadRequest(w, "Doctor does not exist")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.ClinicAppointmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment scheduled successfully", created)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "appointment")
	if !ok {
		return
	}

	var req dto.ClinicAppointmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.appointmentUsecase.Update(r.Context(), id, &req); err != nil {
		writeAppointmentError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", nil)
}

func (h *AppointmentHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "appointment")
	if !ok {
		return
	}

	var req dto.AppointmentStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.appointmentUsecase.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeAppointmentError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", nil)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "appointment")
	if !ok {
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		writeAppointmentError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := currentPatient(w, r)
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.ListForPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, ok := currentPatient(w, r)
	if !ok {
		return
	}

	var req dto.BookAppointmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.appointmentUsecase.Book(r.Context(), patientID, &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", created)
}
