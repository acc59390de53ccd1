package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AvailableHours is a doctor's daily working window, both ends in HH:MM.
type AvailableHours struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type Doctor struct {
	ID             int                                `gorm:"column:doctor_id;primaryKey;autoIncrement" json:"doctor_id"`
	FirstName      string                             `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName       string                             `gorm:"type:varchar(50);not null" json:"last_name"`
	Specialization string                             `gorm:"type:varchar(100);not null;default:''" json:"specialization"`
	Phone          string                             `gorm:"type:varchar(20);not null;default:''" json:"phone"`
	AvailableDays  datatypes.JSONSlice[string]        `gorm:"type:jsonb;not null;default:'[]'" json:"available_days"`
	AvailableHours datatypes.JSONType[AvailableHours] `gorm:"type:jsonb;not null;default:'{}'" json:"available_hours"`
	CreatedAt      time.Time                          `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
