// Package config provides centralized configuration management for cclookup.
// It loads configuration from environment variables with sensible defaults,
// lets command-line flags override them, and validates all settings before
// the pipeline starts so misconfiguration fails fast.
package config

import "time"

// Version is the tool version printed by --version.
const Version = "1.0"

// EmojiVersion is the emoji.json release the default catalog URL points at.
const EmojiVersion = "15.1.0"

// Output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Source   SourceConfig
	Fetch    FetchConfig
	Output   OutputConfig
	Logging  LoggingConfig
	Server   ServerConfig
	Database DatabaseConfig
}

// SourceConfig holds the locations of the two input datasets.
type SourceConfig struct {
	// EmojiURL is the emoji catalog download URL
	EmojiURL string `env:"CCLOOKUP_EMOJI_URL" default:"https://unpkg.com/emoji.json@15.1.0/emoji.json"`

	// CountryCodesURL is the country-codes reference table download URL
	CountryCodesURL string `env:"CCLOOKUP_COUNTRY_CODES_URL" default:"https://raw.githubusercontent.com/datasets/country-codes/main/data/country-codes.csv"`

	// EmojiDownloadPath is where the fetched catalog is stored (default: npm-emoji.json)
	EmojiDownloadPath string `env:"CCLOOKUP_EMOJI_DOWNLOAD_PATH" default:"npm-emoji.json"`

	// CountryCodesDownloadPath is where the fetched reference table is stored (default: country-codes.csv)
	CountryCodesDownloadPath string `env:"CCLOOKUP_COUNTRY_CODES_DOWNLOAD_PATH" default:"country-codes.csv"`

	// EmojiCachedPath is the local catalog used with --use-cached (default: emoji.json)
	EmojiCachedPath string `env:"CCLOOKUP_LOCAL_EMOJI_FILEPATH" default:"emoji.json"`

	// CountryCodesCachedPath is the local reference table used with --use-cached (default: country-codes.csv)
	CountryCodesCachedPath string `env:"CCLOOKUP_LOCAL_COUNTRY_CODES_FILEPATH" default:"country-codes.csv"`
}

// FetchConfig holds download behaviour.
type FetchConfig struct {
	// UseCached reads the local files instead of downloading (default: false)
	UseCached bool `env:"CCLOOKUP_USE_CACHED" default:"false"`

	// IgnoreTLS disables certificate verification (default: false)
	IgnoreTLS bool `env:"CCLOOKUP_IGNORE_SSL" default:"false"`

	// Timeout bounds each download (default: 60s)
	Timeout time.Duration `env:"CCLOOKUP_FETCH_TIMEOUT" default:"60s"`

	// NoCleanup keeps the input files after processing (default: false)
	NoCleanup bool `env:"CCLOOKUP_NO_CLEANUP" default:"false"`

	// Progress renders a progress bar while downloading (default: false)
	Progress bool `env:"CCLOOKUP_PROGRESS" default:"false"`
}

// OutputConfig holds result file settings.
type OutputConfig struct {
	// Path is the output file name (default: cc_lookup.csv)
	Path string `env:"CCLOOKUP_OUTPUT" default:"cc_lookup.csv"`

	// Format is csv or json (default: csv)
	Format string `env:"CCLOOKUP_FORMAT" default:"csv"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ServerConfig holds settings for the optional lookup server.
type ServerConfig struct {
	// Addr is the listen address; empty disables the server
	Addr string `env:"CCLOOKUP_SERVE_ADDR"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"CCLOOKUP_SERVER_READ_TIMEOUT" default:"15s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"CCLOOKUP_SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds settings for the optional Postgres export.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string; empty disables the export
	// Supports both CCLOOKUP_DATABASE_URL and DATABASE_URL
	URL string `env:"CCLOOKUP_DATABASE_URL" envAlt:"DATABASE_URL"`

	// Table receives the exported rows (default: flag_lookup)
	Table string `env:"CCLOOKUP_DATABASE_TABLE" default:"flag_lookup"`

	// Timeout bounds the whole export (default: 30s)
	Timeout time.Duration `env:"CCLOOKUP_DATABASE_TIMEOUT" default:"30s"`
}

// Enabled reports whether the lookup server should run.
func (c *ServerConfig) Enabled() bool {
	return c.Addr != ""
}

// Enabled reports whether the Postgres export should run.
func (c *DatabaseConfig) Enabled() bool {
	return c.URL != ""
}
