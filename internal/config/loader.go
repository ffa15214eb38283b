package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
// Returns an error if required values are missing or validation fails.
func Load() (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Defaults reads configuration from the environment without validating it.
// Callers that apply command-line overrides validate afterwards.
func Defaults() (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	return cfg, nil
}

// loadStruct recursively populates struct fields from environment variables.
func loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fieldVal); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		envAlt := field.Tag.Get("envAlt")
		defaultVal := field.Tag.Get("default")
		required := field.Tag.Get("required") == "true"

		if envName == "" {
			continue
		}

		// Try primary env var, then alternate
		value := os.Getenv(envName)
		if value == "" && envAlt != "" {
			value = os.Getenv(envAlt)
		}

		if value == "" {
			if required {
				return fmt.Errorf("required environment variable %s is not set", envName)
			}
			value = defaultVal
		}

		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.Set(reflect.ValueOf(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}
			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Source validation
	if !c.Fetch.UseCached {
		if c.Source.EmojiURL == "" {
			errs = append(errs, "CCLOOKUP_EMOJI_URL is required unless --use-cached is set")
		}
		if c.Source.CountryCodesURL == "" {
			errs = append(errs, "CCLOOKUP_COUNTRY_CODES_URL is required unless --use-cached is set")
		}
	}
	emoji, countryCodes := c.InputPaths()
	if emoji == "" {
		errs = append(errs, "emoji catalog path must not be empty")
	}
	if countryCodes == "" {
		errs = append(errs, "country codes path must not be empty")
	}

	// Fetch validation
	if c.Fetch.Timeout <= 0 {
		errs = append(errs, "CCLOOKUP_FETCH_TIMEOUT must be positive")
	}

	// Output validation
	if c.Output.Path == "" {
		errs = append(errs, "CCLOOKUP_OUTPUT must not be empty")
	}
	validFormats := map[string]bool{FormatCSV: true, FormatJSON: true}
	if !validFormats[strings.ToLower(c.Output.Format)] {
		errs = append(errs, fmt.Sprintf("CCLOOKUP_FORMAT (%q) must be one of: csv, json", c.Output.Format))
	}

	// Server validation
	if c.Server.Enabled() {
		if c.Server.ReadTimeout < 0 {
			errs = append(errs, "CCLOOKUP_SERVER_READ_TIMEOUT must be non-negative")
		}
		if c.Server.ShutdownTimeout <= 0 {
			errs = append(errs, "CCLOOKUP_SERVER_SHUTDOWN_TIMEOUT must be positive")
		}
	}

	// Database validation
	if c.Database.Enabled() {
		if !validIdentifier(c.Database.Table) {
			errs = append(errs, fmt.Sprintf("CCLOOKUP_DATABASE_TABLE (%q) must be a plain SQL identifier", c.Database.Table))
		}
		if c.Database.Timeout <= 0 {
			errs = append(errs, "CCLOOKUP_DATABASE_TIMEOUT must be positive")
		}
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// validIdentifier accepts lowercase letters, digits and underscores, not
// starting with a digit.
func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// InputPaths returns the emoji catalog and reference table paths the
// pipeline reads: the cached paths with --use-cached, else the download
// targets.
func (c *Config) InputPaths() (emoji, countryCodes string) {
	if c.Fetch.UseCached {
		return c.Source.EmojiCachedPath, c.Source.CountryCodesCachedPath
	}
	return c.Source.EmojiDownloadPath, c.Source.CountryCodesDownloadPath
}

// OutputPath returns the file the result is written to. JSON output swaps
// every ".csv" in the configured name for ".json".
func (c *Config) OutputPath() string {
	if strings.ToLower(c.Output.Format) == FormatJSON {
		return strings.ReplaceAll(c.Output.Path, ".csv", ".json")
	}
	return c.Output.Path
}

// String returns a safe string representation of the config for logging.
// The database URL is masked.
func (c *Config) String() string {
	dbURL := ""
	if c.Database.Enabled() {
		dbURL = "[MASKED]"
	}

	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Fetch: {UseCached: %v, IgnoreTLS: %v, Timeout: %s, NoCleanup: %v}, ",
		c.Fetch.UseCached, c.Fetch.IgnoreTLS, c.Fetch.Timeout, c.Fetch.NoCleanup))
	b.WriteString(fmt.Sprintf("Output: {Path: %q, Format: %q}, ", c.OutputPath(), c.Output.Format))
	b.WriteString(fmt.Sprintf("Server: {Addr: %q}, ", c.Server.Addr))
	b.WriteString(fmt.Sprintf("Database: {URL: %s, Table: %q}, ", dbURL, c.Database.Table))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
