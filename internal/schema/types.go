// Package schema describes the columns of the tables cclookup reads and
// writes: the country-codes reference table and the flag lookup output.
package schema

import "strings"

// FieldType represents the kind of value a column carries.
type FieldType int

const (
	FieldText FieldType = iota
	FieldCode
	FieldDomain
)

// FieldSpec describes a single column.
type FieldSpec struct {
	Name     string    // Column header name (must match the file exactly)
	DBColumn string    // Database column name (if different from Name, otherwise derived)
	Type     FieldType // Kind of value
	Required bool      // Column is consulted by the resolver or enricher
	Nullable bool      // Value may be absent in the output
}

// Names returns the column names of specs in order.
func Names(specs []FieldSpec) []string {
	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}
	return names
}

// DBColumns returns the database column names of specs in order.
func DBColumns(specs []FieldSpec) []string {
	cols := make([]string, len(specs))
	for i, spec := range specs {
		cols[i] = spec.Column()
	}
	return cols
}

// Column returns the database column for the field, deriving a snake_case
// name from Name when DBColumn is unset.
func (f FieldSpec) Column() string {
	if f.DBColumn != "" {
		return f.DBColumn
	}
	return toDBColumnName(f.Name)
}

// MissingColumns returns the required columns of specs absent from header.
// Header names are compared exactly.
func MissingColumns(header []string, specs []FieldSpec) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, spec := range specs {
		if spec.Required && !present[spec.Name] {
			missing = append(missing, spec.Name)
		}
	}
	return missing
}

// toDBColumnName lowercases name and replaces every run of characters that
// are not letters or digits with a single underscore.
func toDBColumnName(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}
