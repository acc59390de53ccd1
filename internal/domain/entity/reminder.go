package entity

import "time"

type ReminderStatus string

const (
	ReminderStatusPending   ReminderStatus = "pending"
	ReminderStatusSent      ReminderStatus = "sent"
	ReminderStatusDismissed ReminderStatus = "dismissed"
)

func (s ReminderStatus) IsValid() bool {
	switch s {
	case ReminderStatusPending, ReminderStatusSent, ReminderStatusDismissed:
		return true
	}
	return false
}

// Reminder is one scheduled dose notification for a prescription.
type Reminder struct {
	ID             int            `gorm:"column:reminder_id;primaryKey;autoIncrement" json:"reminder_id"`
	PrescriptionID int            `gorm:"not null;index" json:"prescription_id"`
	ReminderTime   time.Time      `gorm:"type:timestamp;not null" json:"reminder_time"`
	Status         ReminderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// ReminderDetail is a reminder joined with its prescription and owning patient.
type ReminderDetail struct {
	Reminder
	PatientID      int    `gorm:"column:patient_id"`
	MedicationName string `gorm:"column:medication_name"`
	Dosage         string `gorm:"column:dosage"`
}
