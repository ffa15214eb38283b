// Package store exports the flag lookup table to PostgreSQL.
//
// Each export replaces the table contents in one transaction: the previous
// rows are deleted and the new ones are bulk-loaded with COPY, tagged with
// the run ID that produced them.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonMunkholm/cclookup/internal/config"
	"github.com/JonMunkholm/cclookup/internal/core"
	"github.com/JonMunkholm/cclookup/internal/logging"
	"github.com/JonMunkholm/cclookup/internal/schema"
)

// DB is the subset of *pgxpool.Pool the exporter needs.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Exporter writes flag lookup records to a Postgres table.
type Exporter struct {
	db      DB
	table   string
	timeout time.Duration
	logger  *slog.Logger
}

// New creates an exporter over db. The table name must already be a
// validated identifier.
func New(db DB, cfg config.DatabaseConfig, logger *slog.Logger) *Exporter {
	return &Exporter{
		db:      db,
		table:   cfg.Table,
		timeout: cfg.Timeout,
		logger:  logging.OrDefault(logger),
	}
}

// Connect opens a pool for cfg.URL and verifies it with a ping. The caller
// closes the pool.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	logger = logging.OrDefault(logger)

	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse database URL: %w", core.ErrExport, err)
	}
	poolConfig.MaxConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %w", core.ErrExport, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: ping: %w", core.ErrExport, err)
	}

	if u, err := url.Parse(cfg.URL); err == nil {
		logger.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	} else {
		logger.Info("connected to database")
	}
	return pool, nil
}

// Columns returns the table columns in COPY order.
func Columns() []string {
	return append([]string{"run_id"}, schema.DBColumns(schema.OutputFieldSpecs)...)
}

// CreateTableSQL returns the DDL for table.
func CreateTableSQL(table string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", table)
	b.WriteString("\trun_id UUID NOT NULL")
	for _, spec := range schema.OutputFieldSpecs {
		b.WriteString(",\n\t")
		b.WriteString(spec.Column())
		b.WriteString(" TEXT")
		if !spec.Nullable {
			b.WriteString(" NOT NULL")
		}
	}
	b.WriteString(",\n\texported_at TIMESTAMPTZ NOT NULL DEFAULT now()\n)")
	return b.String()
}

// Rows converts records to COPY rows. Null fields stay null.
func Rows(runID uuid.UUID, records []core.OutputRecord) [][]any {
	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = []any{
			runID,
			rec.Char,
			rec.Name,
			rec.RegionName,
			rec.SubRegionName,
			rec.Alpha2,
			rec.Alpha3,
			rec.TLD,
		}
	}
	return rows
}

// Export replaces the table contents with records. It returns the number of
// rows copied.
func (e *Exporter) Export(ctx context.Context, runID uuid.UUID, records []core.OutputRecord) (int64, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	tx, err := e.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: begin: %w", core.ErrExport, err)
	}
	defer tx.Rollback(ctx) // No-op if already committed

	if _, err := tx.Exec(ctx, CreateTableSQL(e.table)); err != nil {
		return 0, fmt.Errorf("%w: create table %s: %w", core.ErrExport, e.table, err)
	}

	deleted, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s", e.table))
	if err != nil {
		return 0, fmt.Errorf("%w: clear %s: %w", core.ErrExport, e.table, err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{e.table}, Columns(), pgx.CopyFromRows(Rows(runID, records)))
	if err != nil {
		return 0, fmt.Errorf("%w: copy into %s: %w", core.ErrExport, e.table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%w: commit: %w", core.ErrExport, err)
	}

	e.logger.Info("exported flag lookup",
		"table", e.table,
		"run_id", runID,
		"rows", n,
		"replaced", deleted.RowsAffected(),
	)
	return n, nil
}
