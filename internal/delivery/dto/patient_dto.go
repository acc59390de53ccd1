package dto

// Request DTOs

// PatientRequest is used for both create and update. An empty password leaves the stored hash alone on update.
type PatientRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	DOB       string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Password  string `json:"password" validate:"omitempty,min=6,max=72"`
}

// Response DTOs

type PatientResponse struct {
	PatientID int     `json:"patient_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	DOB       *string `json:"dob"`
}

type PatientSummaryResponse struct {
	PatientResponse
	TotalAppointments int64 `json:"total_appointments"`
	TotalMedications  int64 `json:"total_medications"`
}

type PatientDetailResponse struct {
	Patient      PatientResponse        `json:"patient"`
	Appointments []AppointmentResponse  `json:"appointments"`
	Medications  []PrescriptionResponse `json:"medications"`
}

type PatientCreatedResponse struct {
	PatientID int `json:"patient_id"`
}
