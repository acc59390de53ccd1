package converter

import (
	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/domain/entity"
)

func RemindersToResponses(reminders []entity.ReminderDetail) []dto.ReminderResponse {
	responses := make([]dto.ReminderResponse, len(reminders))
	for i, r := range reminders {
		responses[i] = dto.ReminderResponse{
			ReminderID:     r.ID,
			PrescriptionID: r.PrescriptionID,
			MedicationName: r.MedicationName,
			Dosage:         r.Dosage,
			ReminderTime:   r.ReminderTime.Format(dto.TimestampLayout),
			Status:         string(r.Status),
		}
	}
	return responses
}
