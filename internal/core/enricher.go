package core

import (
	"log/slog"

	"github.com/JonMunkholm/cclookup/internal/core/tables"
	"github.com/JonMunkholm/cclookup/internal/logging"
	"github.com/jackc/pgx/v5/pgtype"
)

// Enricher looks up region, sub-region and TLD for resolved codes.
// Lookups never fail; absence is reported as null.
type Enricher struct {
	table  *Table
	logger *slog.Logger
}

// NewEnricher creates an enricher over table. A nil logger uses slog.Default.
func NewEnricher(table *Table, logger *slog.Logger) *Enricher {
	return &Enricher{table: table, logger: logging.OrDefault(logger)}
}

// RegionFor returns the region and sub-region of alpha3. Records with an
// exact alpha-3 match but an empty region are skipped. A null or empty key
// returns null without scanning.
func (e *Enricher) RegionFor(alpha3 pgtype.Text) (region, subRegion pgtype.Text) {
	if absent(alpha3) {
		return NullText(), NullText()
	}
	e.logger.Info("getting continent and region", "alpha3", alpha3.String)

	if e.table != nil {
		for _, rec := range e.table.Records {
			if rec.Alpha3() != alpha3.String || rec.Region() == "" {
				continue
			}
			return Text(rec.Region()), Text(rec.SubRegion())
		}
	}

	if pair, ok := tables.LookupRegion(alpha3.String); ok {
		return Text(pair.Region), Text(pair.SubRegion)
	}

	return NullText(), NullText()
}

// TLDFor returns the top-level domain of alpha2. The first record with an
// exact alpha-2 match decides, even when its TLD is empty. A null or empty
// key returns null without scanning.
func (e *Enricher) TLDFor(alpha2 pgtype.Text) pgtype.Text {
	if absent(alpha2) {
		return NullText()
	}
	e.logger.Info("getting TLD", "alpha2", alpha2.String)

	if e.table != nil {
		for _, rec := range e.table.Records {
			if rec.Alpha2() == alpha2.String {
				return Text(rec.TLD())
			}
		}
	}

	if tld, ok := tables.LookupTLD(alpha2.String); ok {
		return Text(tld)
	}

	return NullText()
}

// absent reports whether a lookup key is null or empty. Empty keys would
// otherwise match reference rows with blank codes.
func absent(key pgtype.Text) bool {
	return !key.Valid || key.String == ""
}
