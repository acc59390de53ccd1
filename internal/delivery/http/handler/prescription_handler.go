package handler

import (
	"net/http"

	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/usecase"
	"sehat-clinic/pkg/response"
	"sehat-clinic/pkg/validator"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func writePrescriptionError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrPrescriptionNotFound:
		response.NotFound(w, "Prescription not found")
	case usecase.ErrInvalidReminderTime:
		response.BadRequest(w, "Reminder times must use HH:MM")
	case usecase.ErrPatientReference:
		response.BadRequest(w, "Patient does not exist")
	case usecase.ErrAppointmentReference:
		response.BadRequest(w, "Appointment does not exist")
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *PrescriptionHandler) GetAllPrescriptions(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.prescriptionUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

func (h *PrescriptionHandler) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	var req dto.PrescriptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.prescriptionUsecase.Create(r.Context(), req.PatientID, &req.MedicationRequest)
	if err != nil {
		writePrescriptionError(w, err, "Failed to create prescription")
		return
	}

	response.Success(w, http.StatusCreated, "Prescription added successfully", created)
}

func (h *PrescriptionHandler) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "prescription")
	if !ok {
		return
	}

	if err := h.prescriptionUsecase.Delete(r.Context(), id); err != nil {
		writePrescriptionError(w, err, "Failed to delete prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription deleted successfully", nil)
}

func (h *PrescriptionHandler) GetMyMedications(w http.ResponseWriter, r *http.Request) {
	patientID, ok := currentPatient(w, r)
	if !ok {
		return
	}

	medications, err := h.prescriptionUsecase.ListForPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get medications")
		return
	}

	response.Success(w, http.StatusOK, "Medications retrieved successfully", medications)
}

func (h *PrescriptionHandler) AddMyMedication(w http.ResponseWriter, r *http.Request) {
	patientID, ok := currentPatient(w, r)
	if !ok {
		return
	}

	var req dto.MedicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.prescriptionUsecase.Create(r.Context(), patientID, &req)
	if err != nil {
		writePrescriptionError(w, err, "Failed to add medication")
		return
	}

	response.Success(w, http.StatusCreated, "Medication added successfully", created)
}

func (h *PrescriptionHandler) DeleteMyMedication(w http.ResponseWriter, r *http.Request) {
	patientID, ok := currentPatient(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "id", "medication")
	if !ok {
		return
	}

	if err := h.prescriptionUsecase.DeleteForPatient(r.Context(), id, patientID); err != nil {
		if err == usecase.ErrPrescriptionNotFound {
			response.NotFound(w, "Medication not found")
			return
		}
		response.InternalServerError(w, "Failed to delete medication")
		return
	}

	response.Success(w, http.StatusOK, "Medication deleted successfully", nil)
}
