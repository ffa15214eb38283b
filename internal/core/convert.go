package core

// convert.go provides helpers between plain strings and the nullable
// pgtype.Text values carried by Codes and OutputRecord.

import "github.com/jackc/pgx/v5/pgtype"

// Text returns a valid pgtype.Text holding s. The empty string is a valid,
// present value.
func Text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// NullText returns an invalid (null) pgtype.Text.
func NullText() pgtype.Text {
	return pgtype.Text{}
}

// TextOrNull returns null for the empty string and a valid value otherwise.
// Used when reading tabular output back, where the two are indistinguishable.
func TextOrNull(s string) pgtype.Text {
	if s == "" {
		return NullText()
	}
	return Text(s)
}

// TextValue returns the string held by t, or "" when t is null.
func TextValue(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
