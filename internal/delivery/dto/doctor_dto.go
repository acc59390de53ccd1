package dto

// Request DTOs

type AvailableHoursRequest struct {
	Start string `json:"start" validate:"required,clock"`
	End   string `json:"end" validate:"required,clock"`
}

type DoctorRequest struct {
	FirstName      string                 `json:"first_name" validate:"required,max=50"`
	LastName       string                 `json:"last_name" validate:"required,max=50"`
	Specialization string                 `json:"specialization" validate:"omitempty,max=100"`
	Phone          string                 `json:"phone" validate:"omitempty,max=20"`
	AvailableDays  []string               `json:"available_days" validate:"omitempty,unique,dive,weekday"`
	AvailableHours *AvailableHoursRequest `json:"available_hours" validate:"omitempty"`
}

// Response DTOs

type AvailableHoursResponse struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type DoctorResponse struct {
	DoctorID       int                    `json:"doctor_id"`
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	Specialization string                 `json:"specialization"`
	Phone          string                 `json:"phone"`
	AvailableDays  []string               `json:"available_days"`
	AvailableHours AvailableHoursResponse `json:"available_hours"`
}

type DoctorCreatedResponse struct {
	DoctorID int `json:"doctor_id"`
}
