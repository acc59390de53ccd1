package converter

import (
	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/domain/entity"
)

func PrescriptionToResponse(p *entity.Prescription) dto.PrescriptionResponse {
	times := make([]string, len(p.ReminderTimes))
	copy(times, p.ReminderTimes)

	return dto.PrescriptionResponse{
		PrescriptionID: p.ID,
		PatientID:      p.PatientID,
		AppointmentID:  p.AppointmentID,
		MedicationName: p.MedicationName,
		Dosage:         p.Dosage,
		Frequency:      p.Frequency,
		ReminderTimes:  times,
		CreatedAt:      p.CreatedAt.Format(dto.TimestampLayout),
	}
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = PrescriptionToResponse(&prescriptions[i])
	}
	return responses
}

func PrescriptionDetailsToResponses(prescriptions []entity.PrescriptionDetail) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = PrescriptionToResponse(&prescriptions[i].Prescription)
		responses[i].PatientFirstName = prescriptions[i].PatientFirstName
		responses[i].PatientLastName = prescriptions[i].PatientLastName
	}
	return responses
}
