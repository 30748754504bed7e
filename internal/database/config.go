package database

import (
	"fmt"
	"strings"

	"financeai/internal/config"
)

// Driver names the SQL backend.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Config holds database configuration
type Config struct {
	Driver         Driver
	DSN            string
	MigrationsPath string
}

// NewConfig derives the database configuration from the application config.
// An empty DATABASE_URL selects SQLite at SQLITE_PATH.
func NewConfig(cfg *config.Config) *Config {
	if cfg.UseSQLite() {
		return &Config{
			Driver:         DriverSQLite,
			DSN:            sqliteDSN(cfg.SQLitePath),
			MigrationsPath: cfg.MigrationsPath,
		}
	}
	return &Config{
		Driver:         DriverPostgres,
		DSN:            cfg.DatabaseURL,
		MigrationsPath: cfg.MigrationsPath,
	}
}

// sqliteDSN turns a file path into a DSN with foreign keys enforced, so
// ON DELETE CASCADE behaves as it does on Postgres.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_foreign_keys=on", path, sep)
}
