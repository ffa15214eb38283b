package web

import (
	"strings"

	"github.com/JonMunkholm/cclookup/internal/core"
)

// Index answers code and region lookups over a fixed record list.
type Index struct {
	records []core.OutputRecord
	byCode  map[string]int
}

// NewIndex indexes records by alpha-2 and alpha-3 code, case-insensitively.
// When two records share a code the first one wins.
func NewIndex(records []core.OutputRecord) *Index {
	idx := &Index{
		records: records,
		byCode:  make(map[string]int, len(records)*2),
	}
	for i, rec := range records {
		for _, code := range []string{core.TextValue(rec.Alpha2), core.TextValue(rec.Alpha3)} {
			if code == "" {
				continue
			}
			key := strings.ToLower(code)
			if _, ok := idx.byCode[key]; !ok {
				idx.byCode[key] = i
			}
		}
	}
	return idx
}

// Len returns the number of records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Lookup returns the record for an alpha-2 or alpha-3 code.
func (idx *Index) Lookup(code string) (core.OutputRecord, bool) {
	i, ok := idx.byCode[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return core.OutputRecord{}, false
	}
	return idx.records[i], true
}

// Filter returns the records whose region or sub-region equals region,
// ignoring case. An empty region returns every record.
func (idx *Index) Filter(region string) []core.OutputRecord {
	if region == "" {
		return idx.records
	}

	out := []core.OutputRecord{}
	for _, rec := range idx.records {
		if strings.EqualFold(core.TextValue(rec.RegionName), region) ||
			strings.EqualFold(core.TextValue(rec.SubRegionName), region) {
			out = append(out, rec)
		}
	}
	return out
}
