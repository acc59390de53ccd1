package entity

import "time"

// Patient is a clinic patient. Email is unique; the password hash is never serialized.
type Patient struct {
	ID           int        `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id"`
	FirstName    string     `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName     string     `gorm:"type:varchar(50);not null" json:"last_name"`
	Email        string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Phone        string     `gorm:"type:varchar(20);not null;default:''" json:"phone"`
	DOB          *time.Time `gorm:"column:dob;type:date" json:"dob"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName joins first and last name.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PatientSummary is a patient row with aggregate counts of owned appointments and prescriptions.
type PatientSummary struct {
	ID                int        `gorm:"column:patient_id"`
	FirstName         string     `gorm:"column:first_name"`
	LastName          string     `gorm:"column:last_name"`
	Email             string     `gorm:"column:email"`
	Phone             string     `gorm:"column:phone"`
	DOB               *time.Time `gorm:"column:dob"`
	TotalAppointments int64      `gorm:"column:total_appointments"`
	TotalMedications  int64      `gorm:"column:total_medications"`
}
