package db

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

type MariaDbConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// MultiStatements is needed by the migration runner only.
	MultiStatements bool
}

// normaliseDSN forces the driver options the repositories rely on:
// DATETIME columns scanned into time.Time, in UTC.
func normaliseDSN(dsn string, multiStatements bool) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid MariaDB DSN: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	if multiStatements {
		cfg.MultiStatements = true
	}
	return cfg.FormatDSN(), nil
}
