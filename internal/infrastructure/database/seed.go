package database

import (
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:embed seed.sql
var seedSQL string

// SeedPatientEmail is the demo patient created by Seed.
const SeedPatientEmail = "john.doe@email.com"

// Seed replaces all clinic data with the demo data set and gives the demo
// patient the supplied login password.
func Seed(db *gorm.DB, patientPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(patientPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(seedSQL).Error; err != nil {
			return fmt.Errorf("load seed data: %w", err)
		}
		if err := tx.Exec("UPDATE patients SET password_hash = ? WHERE email = ?", string(hash), SeedPatientEmail).Error; err != nil {
			return fmt.Errorf("set seed password: %w", err)
		}
		logrus.Info("Seed data loaded")
		return nil
	})
}
