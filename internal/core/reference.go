package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JonMunkholm/cclookup/internal/logging"
	"github.com/JonMunkholm/cclookup/internal/schema"
)

// LoadReference opens the country-codes CSV at path and parses it.
func LoadReference(path string, logger *slog.Logger) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open reference table: %w", ErrDataAccess, err)
	}
	defer f.Close()

	table, err := ParseReference(f, logger)
	if err != nil {
		return nil, fmt.Errorf("reference table %s: %w", path, err)
	}
	return table, nil
}

// ParseReference reads a header row followed by data rows. Every row becomes
// a Record holding all named columns; short rows leave the trailing columns
// absent and extra fields are dropped. Expected columns missing from the
// header are reported but not fatal.
func ParseReference(r io.Reader, logger *slog.Logger) (*Table, error) {
	logger = logging.OrDefault(logger)

	sanitized, counter := WrapForReading(r)
	reader := csv.NewReader(sanitized)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidCSV, err)
	}
	header = append([]string(nil), header...)

	if missing := schema.MissingColumns(header, schema.CountryCodesFieldSpecs); len(missing) > 0 {
		logger.Warn("reference table is missing expected columns", "columns", missing)
	}

	table := &Table{Header: header}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
		}

		rec := make(Record, len(header))
		for i, col := range header {
			if i >= len(row) {
				break
			}
			rec[col] = row[i]
		}
		table.Records = append(table.Records, rec)
	}

	logger.Info("loaded reference table", "rows", table.Len(), "bytes", counter.BytesRead)
	return table, nil
}
