package converter

import (
	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	days := make([]string, len(doctor.AvailableDays))
	copy(days, doctor.AvailableDays)
	hours := doctor.AvailableHours.Data()

	return &dto.DoctorResponse{
		DoctorID:       doctor.ID,
		FirstName:      doctor.FirstName,
		LastName:       doctor.LastName,
		Specialization: doctor.Specialization,
		Phone:          doctor.Phone,
		AvailableDays:  days,
		AvailableHours: dto.AvailableHoursResponse{Start: hours.Start, End: hours.End},
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
