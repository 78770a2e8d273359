package postgres

import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"madison/config"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
)

// Connection holds the read/write split. Both sides may point at the same
// instance in small deployments.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  connect("read", config.DB.Postgres.Read, *config),
		Write: connect("write", config.DB.Postgres.Write, *config),
	}
}

func databaseName(config config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

func connect(name string, endpoint config.PostgresEndpoint, cfg config.Config) *sqlx.DB {
	dbName := databaseName(cfg, endpoint.Name)
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		endpoint.Username,
		endpoint.Password,
		net.JoinHostPort(endpoint.Host, endpoint.Port),
		dbName,
		endpoint.SSLMode,
	)

	for retry := range cfg.DB.Postgres.MaxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.Info().
				Str("name", name).
				Str("host", endpoint.Host).
				Str("port", endpoint.Port).
				Str("dbName", dbName).
				Msg("Connected to database")

			sqlDB.SetMaxIdleConns(maxIdleConnections)
			sqlDB.SetMaxOpenConns(maxOpenConnections)

			return sqlDB
		}

		log.Error().
			Err(err).
			Str("name", name).
			Str("host", endpoint.Host).
			Str("port", endpoint.Port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil
}
