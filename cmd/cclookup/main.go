// Command cclookup builds a lookup table from emoji country flags to ISO
// 3166-1 codes, region, sub-region and top-level domain.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/cclookup/internal/application"
	"github.com/JonMunkholm/cclookup/internal/config"
	"github.com/JonMunkholm/cclookup/internal/core"
	"github.com/JonMunkholm/cclookup/internal/logging"
)

const description = "Create a country code lookup files for ISO3166-1 Alpha2 and Alpha3 to Emoji (" +
	config.EmojiVersion + ") Country Flags and TLD."

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	// A missing .env file is fine; the environment alone is enough.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes one generation and optionally serves the result.
// It returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Defaults()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	opts, err := parseFlags(cfg, args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}
	if opts.version {
		fmt.Fprintf(stdout, "cclookup %s\n", config.Version)
		return exitOK
	}

	if opts.verbose {
		cfg.Logging.Level = "info"
		cfg.Fetch.Progress = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, stderr)
	logger.Info("configuration loaded", "config", cfg.String())

	runner := application.New(cfg, logger)
	res, err := runner.Run(ctx)
	if err != nil {
		return fail(logger, err)
	}

	if cfg.Server.Enabled() {
		if err := runner.Serve(ctx, res); err != nil {
			return fail(logger, err)
		}
	}
	return exitOK
}

// fail logs err with its mapped operator message and returns exitFailure.
func fail(logger *slog.Logger, err error) int {
	msg := core.MapError(err)
	logger.Error(msg.Message, "code", msg.Code, "action", msg.Action, "error", err)
	return exitFailure
}

type cliOptions struct {
	verbose bool
	version bool
}

// parseFlags applies command-line flags on top of the environment
// configuration in cfg.
func parseFlags(cfg *config.Config, args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	asJSON := cfg.Output.Format == config.FormatJSON

	flags := flag.NewFlagSet("cclookup", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: cclookup [options]\n\n%s\n\n", description)
		flags.PrintDefaults()
	}

	boolFlag := func(p *bool, short, long, usage string) {
		if short != "" {
			flags.BoolVar(p, short, *p, usage)
		}
		flags.BoolVar(p, long, *p, usage)
	}
	stringFlag := func(p *string, short, long, usage string) {
		if short != "" {
			flags.StringVar(p, short, *p, usage)
		}
		flags.StringVar(p, long, *p, usage)
	}

	boolFlag(&opts.verbose, "v", "verbose", "Enable verbose output")
	boolFlag(&opts.version, "V", "version", "Show version number and exit")

	// Fetch options
	boolFlag(&cfg.Fetch.UseCached, "", "use-cached", "Use local emoji and country-codes files if available")
	stringFlag(&cfg.Source.EmojiCachedPath, "", "local-emoji-filepath", "Use local emoji.json file if available")
	stringFlag(&cfg.Source.CountryCodesCachedPath, "", "local-country-codes-filepath", "Use local country-codes.csv file if available")
	boolFlag(&cfg.Fetch.IgnoreTLS, "k", "ignore-ssl", "Ignore SSL certificate warnings")

	// Output options
	boolFlag(&asJSON, "j", "json", "Output JSON file instead of CSV")
	stringFlag(&cfg.Output.Path, "o", "output", "Output file name default: cc_lookup.csv or cc_lookup.json")
	boolFlag(&cfg.Fetch.NoCleanup, "x", "no-cleanup", "Do not delete downloaded files after processing")

	// Sinks
	stringFlag(&cfg.Server.Addr, "", "serve", "Serve the generated table over HTTP on this address, e.g. :8080")
	stringFlag(&cfg.Database.URL, "", "database-url", "Also export the generated table to this PostgreSQL database")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", flags.Args())
		flags.Usage()
		return opts, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	if asJSON {
		cfg.Output.Format = config.FormatJSON
	}
	return opts, nil
}
