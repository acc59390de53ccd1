package converter

import (
	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/domain/entity"
)

func AppointmentDetailToResponse(a *entity.AppointmentDetail) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		AppointmentID:    a.ID,
		AppointmentDate:  a.AppointmentDate.Format(dto.TimestampLayout),
		Reason:           a.Reason,
		Status:           string(a.Status),
		PatientID:        a.PatientID,
		PatientFirstName: a.PatientFirstName,
		PatientLastName:  a.PatientLastName,
		DoctorID:         a.DoctorID,
		DoctorFirstName:  a.DoctorFirstName,
		DoctorLastName:   a.DoctorLastName,
		Specialization:   a.DoctorSpecialization,
	}
}

func AppointmentDetailsToResponses(appointments []entity.AppointmentDetail) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = AppointmentDetailToResponse(&appointments[i])
	}
	return responses
}

// AppointmentsToActivities projects appointments into the dashboard activity feed.
func AppointmentsToActivities(appointments []entity.AppointmentDetail) []dto.ActivityResponse {
	activities := make([]dto.ActivityResponse, len(appointments))
	for i, a := range appointments {
		description := a.PatientFirstName + " " + a.PatientLastName
		if a.DoctorFirstName != nil && a.DoctorLastName != nil {
			description += " with Dr. " + *a.DoctorFirstName + " " + *a.DoctorLastName
		}

		activities[i] = dto.ActivityResponse{
			Type:        "appointment",
			Time:        a.AppointmentDate.Format(dto.TimestampLayout),
			Title:       "Appointment " + string(a.Status),
			Description: description,
			Status:      string(a.Status),
		}
	}
	return activities
}
