package helper

import (
	"errors"
	"fmt"
	"net"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"madison/config"
)

const migrationSource = "file://migrations/postgres"

func newMigrate(config *config.Config) (*migrate.Migrate, error) {
	write := config.DB.Postgres.Write
	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		write.Username,
		write.Password,
		net.JoinHostPort(write.Host, write.Port),
		config.DB.Postgres.Prefix+write.Name,
		write.SSLMode,
		config.DB.Postgres.MigrationTable,
	)

	mig, err := migrate.New(migrationSource, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func run(config *config.Config, action func(*migrate.Migrate) error, failureMsg, successMsg string) error {
	mig, err := newMigrate(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := action(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", failureMsg, err)
	}

	log.Info().Msg(successMsg)

	return nil
}

// Up applies every pending migration.
func Up(config *config.Config) error {
	return run(config,
		func(m *migrate.Migrate) error { return m.Up() },
		"error running migrations", "Database migrations completed successfully")
}

// StepUp applies exactly one pending migration.
func StepUp(config *config.Config) error {
	return run(config,
		func(m *migrate.Migrate) error { return m.Steps(1) },
		"error running migrations", "Database migrations completed successfully")
}

// Down rolls back the most recent migration.
func Down(config *config.Config) error {
	return run(config,
		func(m *migrate.Migrate) error { return m.Steps(-1) },
		"error rolling back migrations", "Database migrations rolled back successfully")
}

// Drop rolls back every applied migration.
func Drop(config *config.Config) error {
	return run(config,
		func(m *migrate.Migrate) error { return m.Down() },
		"error rolling back migrations", "Database migrations rolled back successfully")
}
