package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gomysql "github.com/go-sql-driver/mysql"

	"staybook/internal/adapters/observability"
	"staybook/internal/domain"
)

const (
	errDupEntry      = 1062
	errNoReferenced  = 1452
	errRowReferenced = 1451
)

// Open builds the shared pool. Update/delete correctness depends on
// clientFoundRows: without it MySQL reports 0 rows for an update that
// rewrites identical values.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	cfg, err := connConfig(dsn)
	if err != nil {
		return nil, err
	}
	conn, err := gomysql.NewConnector(cfg)
	if err != nil {
		return nil, err
	}
	db := sql.OpenDB(conn)
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}

func connConfig(dsn string) (*gomysql.Config, error) {
	cfg, err := gomysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	cfg.Loc = time.UTC
	return cfg, nil
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

// mapErr turns driver constraint failures into gateway sentinels.
func mapErr(err error) error {
	var me *gomysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case errDupEntry:
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, me.Message)
		case errNoReferenced:
			return fmt.Errorf("%w: %s", domain.ErrMissingReference, me.Message)
		case errRowReferenced:
			return fmt.Errorf("%w: %s", domain.ErrReferenced, me.Message)
		}
	}
	return err
}

func outcome(n int64, err error) string {
	switch {
	case err != nil:
		return "error"
	case n == 0:
		return "miss"
	}
	return "ok"
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// exec runs a single-statement mutation and reports the affected-row count.
func (r *Repo) exec(ctx context.Context, ex execer, table, op, query string, args ...any) (int64, error) {
	n, err := affected(ex.ExecContext(ctx, query, args...))
	observability.ObserveStore(table, op, outcome(n, err))
	return n, err
}

func affected(res sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, mapErr(err)
	}
	return res.RowsAffected()
}

// get scans a single row; sql.ErrNoRows becomes domain.ErrNoRecord.
func (r *Repo) get(ctx context.Context, table, query string, args []any, dest ...any) error {
	err := r.db.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		observability.ObserveStore(table, "get", "miss")
		return domain.ErrNoRecord
	}
	observability.ObserveStore(table, "get", outcome(1, err))
	return err
}

func (r *Repo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
