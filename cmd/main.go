package main

import (
	"fmt"
	"os"

	"sehat-clinic/cmd/bootstrap"
	"sehat-clinic/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "sehat",
		Short:         "Sehat clinic backend",
		SilenceUsage:  true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, newMigrateCmd(), newSeedCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and the reminder dispatcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}

			app.Run()
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the embedded schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap.Open()
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := database.Migrate(db, database.Direction(args[0])); err != nil {
				return fmt.Errorf("migrate %s: %w", args[0], err)
			}
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var patientPassword string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace clinic data with the demo data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap.Open()
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := database.Seed(db, patientPassword); err != nil {
				return err
			}
			logrus.Infof("Demo patient %s can log in with the supplied password", database.SeedPatientEmail)
			return nil
		},
	}
	cmd.Flags().StringVar(&patientPassword, "patient-password", "password123", "login password for the demo patient")
	return cmd
}
