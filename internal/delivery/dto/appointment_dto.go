package dto

// Request DTOs

// ClinicAppointmentRequest is sent by clinic staff. AppointmentDate accepts
// "2006-01-02T15:04", "2006-01-02 15:04" and either with seconds.
type ClinicAppointmentRequest struct {
	PatientID       int    `json:"patient_id" validate:"required,min=1"`
	DoctorID        int    `json:"doctor_id" validate:"required,min=1"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	Reason          string `json:"reason"`
	Status          string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type AppointmentStatusRequest struct {
	Status string `json:"status"`
}

// BookAppointmentRequest is sent by an authenticated patient.
type BookAppointmentRequest struct {
	DoctorID int    `json:"doctor_id" validate:"required,min=1"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Reason   string `json:"reason"`
}

// Response DTOs

type AppointmentResponse struct {
	AppointmentID    int     `json:"appointment_id"`
	AppointmentDate  string  `json:"appointment_date"`
	Reason           string  `json:"reason"`
	Status           string  `json:"status"`
	PatientID        int     `json:"patient_id"`
	PatientFirstName string  `json:"patient_first_name"`
	PatientLastName  string  `json:"patient_last_name"`
	DoctorID         *int    `json:"doctor_id"`
	DoctorFirstName  *string `json:"doctor_first_name"`
	DoctorLastName   *string `json:"doctor_last_name"`
	Specialization   *string `json:"specialization"`
}

type AppointmentCreatedResponse struct {
	AppointmentID int `json:"appointment_id"`
}
