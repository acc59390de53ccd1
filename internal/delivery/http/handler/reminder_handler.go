package handler

import (
	"net/http"

	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/usecase"
	"sehat-clinic/pkg/response"
	"sehat-clinic/pkg/validator"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
	validator       *validator.CustomValidator
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase, validator *validator.CustomValidator) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
		validator:       validator,
	}
}

// GetMyReminders lists the caller's reminders, optionally filtered by ?status=.
func (h *ReminderHandler) GetMyReminders(w http.ResponseWriter, r *http.Request) {
	patientID, ok := currentPatient(w, r)
	if !ok {
		return
	}

	reminders, err := h.reminderUsecase.ListForPatient(r.Context(), patientID, r.URL.Query().Get("status"))
	if err != nil {
		if err == usecase.ErrInvalidReminderStatus {
			response.BadRequest(w, "Invalid reminder status")
			return
		}
		response.InternalServerError(w, "Failed to get reminders")
		return
	}

	response.Success(w, http.StatusOK, "Reminders retrieved successfully", reminders)
}

func (h *ReminderHandler) UpdateReminderStatus(w http.ResponseWriter, r *http.Request) {
	patientID, ok := currentPatient(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "id", "reminder")
	if !ok {
		return
	}

	var req dto.ReminderStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.reminderUsecase.UpdateStatus(r.Context(), id, patientID, req.Status); err != nil {
		switch err {
		case usecase.ErrReminderNotFound:
			response.NotFound(w, "Reminder not found")
		case usecase.ErrInvalidReminderStatus:
			response.BadRequest(w, "Invalid reminder status")
		default:
			response.InternalServerError(w, "Failed to update reminder")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reminder updated successfully", nil)
}
