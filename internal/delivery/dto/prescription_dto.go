package dto

// Request DTOs

// MedicationRequest is the prescription body a patient sends for themselves.
type MedicationRequest struct {
	AppointmentID  *int     `json:"appointment_id" validate:"omitempty,min=1"`
	MedicationName string   `json:"medication_name" validate:"required,max=100"`
	Dosage         string   `json:"dosage" validate:"omitempty,max=50"`
	Frequency      string   `json:"frequency" validate:"omitempty,max=50"`
	ReminderTimes  []string `json:"reminder_times" validate:"omitempty,max=12,dive,clock"`
}

// PrescriptionRequest is the clinic variant, naming the patient explicitly.
type PrescriptionRequest struct {
	PatientID int `json:"patient_id" validate:"required,min=1"`
	MedicationRequest
}

// Response DTOs

type PrescriptionResponse struct {
	PrescriptionID   int      `json:"prescription_id"`
	PatientID        int      `json:"patient_id"`
	PatientFirstName string   `json:"patient_first_name,omitempty"`
	PatientLastName  string   `json:"patient_last_name,omitempty"`
	AppointmentID    *int     `json:"appointment_id"`
	MedicationName   string   `json:"medication_name"`
	Dosage           string   `json:"dosage"`
	Frequency        string   `json:"frequency"`
	ReminderTimes    []string `json:"reminder_times"`
	CreatedAt        string   `json:"created_at"`
}

type PrescriptionCreatedResponse struct {
	PrescriptionID     int `json:"prescription_id"`
	RemindersScheduled int `json:"reminders_scheduled"`
}
