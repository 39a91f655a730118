package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

type DB struct {
	log  *slog.Logger
	conn *sqlx.DB
	now  func() time.Time
}

type Option func(*DB)

// WithClock overrides the source of created_at/updated_at values.
func WithClock(now func() time.Time) Option {
	return func(db *DB) { db.now = now }
}

func New(log *slog.Logger, driver, address string, opts ...Option) (*DB, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	conn, err := sqlx.Connect(driver, address)
	if err != nil {
		log.Error("connection problem", "driver", driver, "error", err)
		return nil, err
	}
	if driver == DriverSQLite {
		// single writer; also pins :memory: databases to one connection
		conn.SetMaxOpenConns(1)
	}

	db := &DB{
		log:  log,
		conn: conn,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(db)
	}
	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return db.fail("ping", err)
	}
	return nil
}

// Result reports the outcome of a write statement.
type Result struct {
	OK           bool
	LastInsertID int64
}

// Query runs a parameterized read and appends every row to dest, which must be
// a pointer to a slice. No match leaves dest untouched.
func (db *DB) Query(ctx context.Context, dest any, query string, args ...any) error {
	if err := db.conn.SelectContext(ctx, dest, db.conn.Rebind(query), args...); err != nil {
		return db.fail("query", err)
	}
	return nil
}

// Execute runs a parameterized write. OK is false when no row was affected.
// LastInsertID is zero on drivers that do not report it.
func (db *DB) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	res, err := db.conn.ExecContext(ctx, db.conn.Rebind(query), args...)
	if err != nil {
		return Result{}, db.fail("execute", err)
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return Result{}, db.fail("rows affected", err)
	}

	out := Result{OK: aff > 0}
	if id, err := res.LastInsertId(); err == nil {
		out.LastInsertID = id
	}
	return out, nil
}

// insert runs an INSERT and returns the new row id.
func (db *DB) insert(ctx context.Context, query string, args ...any) (int64, error) {
	if db.conn.DriverName() == DriverPostgres {
		var id int64
		q := db.conn.Rebind(query + " RETURNING id")
		if err := db.conn.QueryRowxContext(ctx, q, args...).Scan(&id); err != nil {
			return 0, db.fail("insert", err)
		}
		return id, nil
	}

	res, err := db.Execute(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	if !res.OK || res.LastInsertID == 0 {
		return 0, fmt.Errorf("%w: insert did not apply", core.ErrDatastore)
	}
	return res.LastInsertID, nil
}

var errConstraint = &core.Error{Kind: core.ErrValidation, Msg: "value violates a table constraint"}

// fail converts a driver error into a core error kind. The driver error text is
// kept in the message but not in the chain.
func (db *DB) fail(op string, err error) error {
	if isCheckViolation(err) {
		return errConstraint
	}
	db.log.Error("datastore failure", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %v", core.ErrDatastore, op, err)
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		// primary code when extended result codes are off
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_CHECK || code == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
