// Package core provides the flag lookup domain: loading the reference table
// and the emoji catalog, resolving country names to ISO codes, enriching them
// with region and TLD data, and building the output records.
// This package has no transport dependencies and can be used by any frontend.
package core

import (
	"github.com/JonMunkholm/cclookup/internal/schema"
	"github.com/jackc/pgx/v5/pgtype"
)

// Record is one row of the country-codes reference table, keyed by column
// name. Absent columns read as the empty string.
type Record map[string]string

// Get returns the value of column col, or "" when the column is absent.
func (r Record) Get(col string) string {
	return r[col]
}

func (r Record) Alpha2() string       { return r[schema.ColAlpha2] }
func (r Record) Alpha3() string       { return r[schema.ColAlpha3] }
func (r Record) ShortName() string    { return r[schema.ColShortName] }
func (r Record) CurrencyName() string { return r[schema.ColCurrencyName] }
func (r Record) CLDRName() string     { return r[schema.ColCLDRName] }
func (r Record) Region() string       { return r[schema.ColRegion] }
func (r Record) SubRegion() string    { return r[schema.ColSubRegion] }
func (r Record) TLD() string          { return r[schema.ColTLD] }

// Table is the loaded reference table. Records keep file order; lookups
// return the first match.
type Table struct {
	Header  []string
	Records []Record
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// EmojiEntry is one element of the emoji.json catalog.
type EmojiEntry struct {
	Codes    string `json:"codes"`
	Char     string `json:"char"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Group    string `json:"group"`
	Subgroup string `json:"subgroup"`
}

// Codes is a resolved ISO-3166 code pair. Either side is invalid (null) when
// the name could not be resolved.
type Codes struct {
	Alpha2 pgtype.Text
	Alpha3 pgtype.Text
}

// Resolved reports whether both codes are present and non-empty.
func (c Codes) Resolved() bool {
	return c.Alpha2.Valid && c.Alpha2.String != "" && c.Alpha3.Valid && c.Alpha3.String != ""
}

// OutputRecord is one row of the flag lookup. Nullable fields use
// pgtype.Text with Valid=false for null; they marshal to JSON null.
type OutputRecord struct {
	Char          string      `json:"char"`
	Name          string      `json:"name"`
	RegionName    pgtype.Text `json:"region_name"`
	SubRegionName pgtype.Text `json:"sub_region_name"`
	Alpha2        pgtype.Text `json:"ISO3166-1-Alpha-2"`
	Alpha3        pgtype.Text `json:"ISO3166-1-Alpha-3"`
	TLD           pgtype.Text `json:"tld"`
}

// Values returns the record as strings in output column order, with null
// fields rendered as "".
func (o OutputRecord) Values() []string {
	return []string{
		o.Char,
		o.Name,
		TextValue(o.RegionName),
		TextValue(o.SubRegionName),
		TextValue(o.Alpha2),
		TextValue(o.Alpha3),
		TextValue(o.TLD),
	}
}
