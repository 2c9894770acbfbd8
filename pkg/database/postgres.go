package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"moviehub/pkg/metrics"
	"moviehub/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIface is the subset of the pool the repositories depend on
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

// DB wraps a PgxIface and bounds every statement by a timeout.
type DB struct {
	pool    PgxIface
	timeout time.Duration
}

// NewDB wraps pool. A non-positive timeout disables the per-query deadline.
func NewDB(pool PgxIface, timeout time.Duration) *DB {
	return &DB{pool: pool, timeout: timeout}
}

// Query implements PgxIface. The deadline lives until the rows are closed.
func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	ctx, cancel := db.withTimeout(ctx)
	start := time.Now()

	rows, err := db.pool.Query(ctx, sql, args...)
	metrics.RecordDBQuery(operation(sql), time.Since(start), err)
	if err != nil {
		cancel()
		return nil, err
	}

	return &timedRows{Rows: rows, cancel: cancel}, nil
}

// QueryRow implements PgxIface. The deadline lives until Scan returns.
func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ctx, cancel := db.withTimeout(ctx)
	start := time.Now()
	row := db.pool.QueryRow(ctx, sql, args...)
	return &timedRow{
		row:    row,
		cancel: cancel,
		op:     operation(sql),
		start:  start,
	}
}

// Exec implements PgxIface
func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	tag, err := db.pool.Exec(ctx, sql, args...)
	metrics.RecordDBQuery(operation(sql), time.Since(start), err)

	return tag, err
}

// Ping implements PgxIface
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	return db.pool.Ping(ctx)
}

// Close implements PgxIface
func (db *DB) Close() {
	db.pool.Close()
}

func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.timeout)
}

type timedRows struct {
	pgx.Rows
	cancel context.CancelFunc
}

func (r *timedRows) Close() {
	r.Rows.Close()
	r.cancel()
}

type timedRow struct {
	row    pgx.Row
	cancel context.CancelFunc
	op     string
	start  time.Time
}

func (r *timedRow) Scan(dest ...any) error {
	defer r.cancel()

	err := r.row.Scan(dest...)
	if err == pgx.ErrNoRows {
		metrics.RecordDBQuery(r.op, time.Since(r.start), nil)
	} else {
		metrics.RecordDBQuery(r.op, time.Since(r.start), err)
	}
	return err
}

// operation returns the leading SQL keyword, used as a metrics label.
func operation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}

// ConnString builds a postgres URL from config.
func ConnString(config utils.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(config.User, config.Password),
		Host:   fmt.Sprintf("%s:%s", config.Host, config.Port),
		Path:   "/" + config.Name,
	}
	q := u.Query()
	q.Set("sslmode", config.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// InitDB creates the connection pool and checks it is reachable
func InitDB(config utils.DatabaseConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(ConnString(config))
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	// Pool configuration
	poolConfig.MaxConns = config.MaxConns
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return NewDB(pool, config.QueryTimeout), nil
}
