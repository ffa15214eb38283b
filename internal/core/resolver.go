package core

import (
	"log/slog"
	"strings"

	"github.com/JonMunkholm/cclookup/internal/core/tables"
	"github.com/JonMunkholm/cclookup/internal/logging"
)

// Match strategies, reported in debug logs.
const (
	matchShortName     = "short_name"
	matchShortNameBare = "short_name_without_suffix"
	matchCurrencyName  = "currency_country_name"
	matchCLDRName      = "cldr_display_name"
	matchException     = "exception_table"
)

// Resolver maps free-text country names to ISO-3166 code pairs.
type Resolver struct {
	table  *Table
	logger *slog.Logger
}

// NewResolver creates a resolver over table. A nil logger uses slog.Default.
func NewResolver(table *Table, logger *slog.Logger) *Resolver {
	return &Resolver{table: table, logger: logging.OrDefault(logger)}
}

// NormalizeName prepares a name for comparison: "&" becomes "and", the
// result is lowercased, and a leading "st. " becomes "saint ".
func NormalizeName(name string) string {
	name = strings.ReplaceAll(name, "&", "and")
	name = strings.ToLower(name)
	if rest, ok := strings.CutPrefix(name, "st. "); ok {
		name = "saint " + rest
	}
	return name
}

// Resolve returns the codes for name. Reference records are scanned in order
// and the first match wins; the exception table is consulted only when no
// record matches. Unresolved names log one warning and return null codes.
func (r *Resolver) Resolve(name string) Codes {
	lookup := NormalizeName(name)

	if lookup != "" {
		if rec, how, ok := r.match(lookup); ok {
			r.logger.Debug("resolved country name", "name", name, "match", how, "alpha2", rec.Alpha2())
			return Codes{Alpha2: Text(rec.Alpha2()), Alpha3: Text(rec.Alpha3())}
		}

		if pair, ok := tables.LookupName(lookup); ok {
			r.logger.Debug("resolved country name", "name", name, "match", matchException, "alpha2", pair.Alpha2)
			return Codes{Alpha2: Text(pair.Alpha2), Alpha3: Text(pair.Alpha3)}
		}
	}

	r.logger.Warn("country code not found", "name", lookup)
	return Codes{}
}

// match returns the first record any of whose name columns equals lookup.
func (r *Resolver) match(lookup string) (Record, string, bool) {
	if r.table == nil {
		return nil, "", false
	}

	for _, rec := range r.table.Records {
		short := strings.ToLower(rec.ShortName())
		if short == lookup {
			return rec, matchShortName, true
		}

		// "Bahamas (the)" -> "bahamas"
		if bare, _, _ := strings.Cut(short, " ("); bare == lookup {
			return rec, matchShortNameBare, true
		}

		if strings.ToLower(rec.CurrencyName()) == lookup {
			return rec, matchCurrencyName, true
		}

		// Only the reference side is de-accented.
		if strings.ReplaceAll(strings.ToLower(rec.CLDRName()), "ü", "u") == lookup {
			return rec, matchCLDRName, true
		}
	}

	return nil, "", false
}
