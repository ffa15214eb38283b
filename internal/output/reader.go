package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JonMunkholm/cclookup/internal/core"
	"github.com/JonMunkholm/cclookup/internal/schema"
)

// ReadCSV reads records written by WriteCSV. The tabular form cannot tell
// an empty value from a missing one, so every empty nullable field comes
// back as null.
func ReadCSV(r io.Reader) ([]core.OutputRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(schema.OutputFieldSpecs)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", core.ErrInvalidCSV)
		}
		return nil, fmt.Errorf("%w: header: %w", core.ErrInvalidCSV, err)
	}
	if missing := schema.MissingColumns(header, schema.OutputFieldSpecs); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %v", core.ErrInvalidCSV, missing)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}

	var out []core.OutputRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrInvalidCSV, err)
		}

		field := func(name string) string { return row[idx[name]] }
		out = append(out, core.OutputRecord{
			Char:          field(schema.OutChar),
			Name:          field(schema.OutName),
			RegionName:    core.TextOrNull(field(schema.OutRegionName)),
			SubRegionName: core.TextOrNull(field(schema.OutSubRegionName)),
			Alpha2:        core.TextOrNull(field(schema.OutAlpha2)),
			Alpha3:        core.TextOrNull(field(schema.OutAlpha3)),
			TLD:           core.TextOrNull(field(schema.OutTLD)),
		})
	}
	return out, nil
}

// ReadCSVFile opens path and reads it with ReadCSV.
func ReadCSVFile(path string) ([]core.OutputRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrDataAccess, err)
	}
	defer f.Close()

	return ReadCSV(f)
}
