package database

import (
	"database/sql"
	"fmt"

	"moviehub/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// OpenSQL returns a database/sql handle backed by the pgx driver, for tools
// such as goose that do not speak pgx natively.
func OpenSQL(config utils.DatabaseConfig) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(ConnString(config))
	if err != nil {
		return nil, fmt.Errorf("parse connection config: %w", err)
	}
	return stdlib.OpenDB(*connConfig), nil
}
