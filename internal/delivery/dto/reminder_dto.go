package dto

type ReminderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending sent dismissed"`
}

type ReminderResponse struct {
	ReminderID     int    `json:"reminder_id"`
	PrescriptionID int    `json:"prescription_id"`
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	ReminderTime   string `json:"reminder_time"`
	Status         string `json:"status"`
}
