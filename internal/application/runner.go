// Package application sequences the flag lookup pipeline:
// fetch, load, transform, write, export and cleanup.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/google/uuid"

	"github.com/JonMunkholm/cclookup/internal/config"
	"github.com/JonMunkholm/cclookup/internal/core"
	"github.com/JonMunkholm/cclookup/internal/fetch"
	"github.com/JonMunkholm/cclookup/internal/logging"
	"github.com/JonMunkholm/cclookup/internal/output"
	"github.com/JonMunkholm/cclookup/internal/store"
	"github.com/JonMunkholm/cclookup/internal/web"
)

// Fetcher downloads both inputs to their configured paths.
type Fetcher interface {
	FetchInputs(ctx context.Context, src config.SourceConfig) error
}

// Exporter writes a finished table to a database.
type Exporter interface {
	Export(ctx context.Context, runID uuid.UUID, records []core.OutputRecord) (int64, error)
}

// ExporterFactory opens an exporter and returns a function releasing it.
type ExporterFactory func(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (Exporter, func(), error)

// Result describes a finished run.
type Result struct {
	RunID      uuid.UUID
	OutputPath string
	Records    []core.OutputRecord
	Unresolved int
	Exported   int64
}

// Runner executes one generation of the flag lookup table.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger

	// Fetcher and NewExporter default to the network and Postgres
	// implementations. Tests may replace them.
	Fetcher     Fetcher
	NewExporter ExporterFactory
}

// New returns a runner for a validated configuration.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	logger = logging.OrDefault(logger)
	return &Runner{
		cfg:         cfg,
		logger:      logger,
		Fetcher:     fetch.NewClient(cfg.Fetch, logger),
		NewExporter: postgresExporter,
	}
}

// Run executes the pipeline once. Unresolved names are not an error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	res := &Result{RunID: uuid.New(), OutputPath: r.cfg.OutputPath()}
	logger := logging.WithFields(ctx, r.logger, "run_id", res.RunID.String())
	logger.Info("run started", "version", config.Version, "emoji_version", config.EmojiVersion)

	if r.cfg.Fetch.UseCached {
		logger.Info("using cached files")
	} else if err := r.Fetcher.FetchInputs(ctx, r.cfg.Source); err != nil {
		return nil, err
	}

	emojiPath, countryCodesPath := r.cfg.InputPaths()

	table, err := core.LoadReference(countryCodesPath, logger)
	if err != nil {
		return nil, err
	}
	entries, err := core.LoadCatalog(emojiPath, logger)
	if err != nil {
		return nil, err
	}

	res.Records = core.NewTransformer(table, logger).Transform(entries)
	for _, rec := range res.Records {
		if !(core.Codes{Alpha2: rec.Alpha2, Alpha3: rec.Alpha3}).Resolved() {
			res.Unresolved++
		}
	}

	if err := output.WriteFile(res.OutputPath, r.cfg.Output.Format, res.Records); err != nil {
		return nil, fmt.Errorf("write %s: %w", res.OutputPath, err)
	}
	logger.Info("wrote flag lookup", "rows", len(res.Records), "path", res.OutputPath)

	if r.cfg.Database.Enabled() {
		n, err := r.export(ctx, logger, res)
		if err != nil {
			return nil, err
		}
		res.Exported = n
	}

	if r.cfg.Fetch.NoCleanup {
		logger.Info("not cleaning up downloaded files")
	} else {
		// Cleanup failures never fail the run.
		_ = fetch.Cleanup([]string{emojiPath, countryCodesPath}, logger)
	}

	logger.Info("done", "unresolved", res.Unresolved)
	return res, nil
}

func (r *Runner) export(ctx context.Context, logger *slog.Logger, res *Result) (int64, error) {
	exp, release, err := r.NewExporter(ctx, r.cfg.Database, logger)
	if err != nil {
		return 0, err
	}
	defer release()

	return exp.Export(ctx, res.RunID, res.Records)
}

// Serve runs the lookup server over res until ctx is cancelled, then shuts
// it down within the configured timeout.
func (r *Runner) Serve(ctx context.Context, res *Result) error {
	ln, err := net.Listen("tcp", r.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("lookup server: %w", err)
	}
	return r.serve(ctx, ln, res)
}

func (r *Runner) serve(ctx context.Context, ln net.Listener, res *Result) error {
	srv := web.NewServer(res.Records, res.RunID.String(), r.cfg.Server, r.logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("lookup server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	r.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("lookup server shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("lookup server: %w", err)
	}
	return nil
}

func postgresExporter(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (Exporter, func(), error) {
	pool, err := store.Connect(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return store.New(pool, cfg, logger), pool.Close, nil
}
