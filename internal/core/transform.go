package core

import (
	"log/slog"
	"strings"

	"github.com/JonMunkholm/cclookup/internal/logging"
)

// flagMarker identifies country and territory flag entries in the catalog.
const flagMarker = "flag: "

// Transformer builds flag lookup records from the emoji catalog.
type Transformer struct {
	resolver *Resolver
	enricher *Enricher
	logger   *slog.Logger
}

// NewTransformer creates a transformer over the loaded reference table.
func NewTransformer(table *Table, logger *slog.Logger) *Transformer {
	logger = logging.OrDefault(logger)
	return &Transformer{
		resolver: NewResolver(table, logger),
		enricher: NewEnricher(table, logger),
		logger:   logger,
	}
}

// CountryName extracts the country portion of a flag entry name. It reports
// false for entries that are not flags.
//
//	"flag: South Africa" -> "South Africa", true
//	"flag in hole"       -> "", false
func CountryName(name string) (string, bool) {
	if !strings.Contains(name, flagMarker) {
		return "", false
	}
	_, country, _ := strings.Cut(name, ": ")
	return country, true
}

// Transform returns one record per flag entry, in catalog order. Every
// record goes through name resolution, region lookup and TLD lookup even
// when an earlier step came back null.
func (t *Transformer) Transform(entries []EmojiEntry) []OutputRecord {
	var out []OutputRecord
	unresolved := 0

	for _, entry := range entries {
		country, ok := CountryName(entry.Name)
		if !ok {
			continue
		}
		t.logger.Info("processing entry", "name", entry.Name)

		codes := t.resolver.Resolve(country)
		region, subRegion := t.enricher.RegionFor(codes.Alpha3)
		tld := t.enricher.TLDFor(codes.Alpha2)

		if !codes.Resolved() {
			unresolved++
		}

		out = append(out, OutputRecord{
			Char:          entry.Char,
			Name:          country,
			RegionName:    region,
			SubRegionName: subRegion,
			Alpha2:        codes.Alpha2,
			Alpha3:        codes.Alpha3,
			TLD:           tld,
		})
	}

	t.logger.Info("transformed emoji catalog",
		"entries", len(entries),
		"flags", len(out),
		"unresolved", unresolved,
	)
	return out
}
