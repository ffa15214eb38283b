// Package output serializes flag lookup records as CSV or JSON.
package output

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/cclookup/internal/config"
	"github.com/JonMunkholm/cclookup/internal/core"
	"github.com/JonMunkholm/cclookup/internal/schema"
)

// WriteCSV writes a header row followed by one row per record. Null fields
// are written as empty strings. Rows end in CRLF.
func WriteCSV(w io.Writer, records []core.OutputRecord) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(schema.OutputHeader()); err != nil {
		return fmt.Errorf("%w: header: %w", core.ErrWrite, err)
	}
	for i, rec := range records {
		if err := cw.Write(rec.Values()); err != nil {
			return fmt.Errorf("%w: row %d: %w", core.ErrWrite, i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrWrite, err)
	}
	return nil
}

// WriteJSON writes records as an array indented with four spaces. Null
// fields become null, non-ASCII text is kept as-is and HTML characters are
// not escaped.
func WriteJSON(w io.Writer, records []core.OutputRecord) error {
	if records == nil {
		records = []core.OutputRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("%w: %w", core.ErrWrite, err)
	}
	return nil
}

// Write dispatches to WriteCSV or WriteJSON by format name.
func Write(w io.Writer, format string, records []core.OutputRecord) error {
	switch strings.ToLower(format) {
	case config.FormatJSON:
		return WriteJSON(w, records)
	case config.FormatCSV, "":
		return WriteCSV(w, records)
	default:
		return fmt.Errorf("%w: unknown format %q", core.ErrWrite, format)
	}
}

// WriteFile writes records to path in the given format. The file is written
// to a temporary sibling first and renamed into place, so a failed run never
// leaves a truncated result behind.
func WriteFile(path, format string, records []core.OutputRecord) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrWrite, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := Write(bw, format, records); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrWrite, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", core.ErrWrite, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", core.ErrWrite, err)
	}
	return nil
}
