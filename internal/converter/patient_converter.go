package converter

import (
	"time"

	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		PatientID: patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Email:     patient.Email,
		Phone:     patient.Phone,
		DOB:       formatDate(patient.DOB),
	}
}

func PatientSummariesToResponses(patients []entity.PatientSummary) []dto.PatientSummaryResponse {
	responses := make([]dto.PatientSummaryResponse, len(patients))
	for i, p := range patients {
		responses[i] = dto.PatientSummaryResponse{
			PatientResponse: dto.PatientResponse{
				PatientID: p.ID,
				FirstName: p.FirstName,
				LastName:  p.LastName,
				Email:     p.Email,
				Phone:     p.Phone,
				DOB:       formatDate(p.DOB),
			},
			TotalAppointments: p.TotalAppointments,
			TotalMedications:  p.TotalMedications,
		}
	}
	return responses
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dto.DateLayout)
	return &s
}
