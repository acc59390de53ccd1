package database

import (
	"errors"
	"fmt"

	"sehat-clinic/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Direction selects which way Migrate moves the schema.
type Direction string

const (
	MigrateUp   Direction = "up"
	MigrateDown Direction = "down"
)

// Migrate applies the embedded schema migrations in the given direction.
// An already up-to-date schema is not an error.
func Migrate(db *gorm.DB, direction Direction) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	dbDriver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}

	srcDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migrate direction %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr == nil {
		logrus.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Infof("Migrations %s complete", direction)
	} else {
		logrus.Infof("Migrations %s complete", direction)
	}
	return nil
}
