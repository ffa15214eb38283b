package core

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCountryName(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"flag: South Africa", "South Africa", true},
		{"flag: St. Kitts & Nevis", "St. Kitts & Nevis", true},
		{"flag: Scotland", "Scotland", true},
		{"flag in hole", "", false},
		{"chequered flag", "", false},
		{"flag:South Africa", "", false},
		{"flag: a: b", "a: b", true},
	}

	for _, tt := range tests {
		got, ok := CountryName(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CountryName(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTransform_EndToEnd(t *testing.T) {
	table := testTable(t)
	logger, _ := captureLogger()

	entries := []EmojiEntry{
		{Char: "🇿🇦", Name: "flag: South Africa"},
		{Char: "🏳️", Name: "flag unrelated"},
	}

	got := NewTransformer(table, logger).Transform(entries)

	want := []OutputRecord{{
		Char:          "🇿🇦",
		Name:          "South Africa",
		RegionName:    Text("Africa"),
		SubRegionName: Text("Sub-Saharan Africa"),
		Alpha2:        Text("ZA"),
		Alpha3:        Text("ZAF"),
		TLD:           Text(".za"),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Transform() mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_UnresolvedKeepsRecord(t *testing.T) {
	table := testTable(t)
	logger, buf := captureLogger()

	got := NewTransformer(table, logger).Transform([]EmojiEntry{
		{Char: "🏴", Name: "flag: Atlantis"},
		{Char: "🏴󠁧󠁢󠁷󠁬󠁳󠁿", Name: "flag: Wales"},
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	atlantis := got[0]
	if atlantis.Alpha2.Valid || atlantis.Alpha3.Valid || atlantis.RegionName.Valid || atlantis.TLD.Valid {
		t.Errorf("unresolved record should be all null, got %+v", atlantis)
	}

	wales := got[1]
	want := OutputRecord{
		Char:          "🏴󠁧󠁢󠁷󠁬󠁳󠁿",
		Name:          "Wales",
		RegionName:    Text("Europe"),
		SubRegionName: Text("Northern Europe"),
		Alpha2:        Text("GB-WLS"),
		Alpha3:        Text("GBW"),
		TLD:           Text(".wales"),
	}
	if diff := cmp.Diff(want, wales); diff != "" {
		t.Errorf("Wales mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(buf.String(), "unresolved=1") {
		t.Errorf("summary should count one unresolved entry: %q", buf.String())
	}
}

func TestTransform_Idempotent(t *testing.T) {
	table := testTable(t)
	entries := []EmojiEntry{
		{Char: "🇿🇦", Name: "flag: South Africa"},
		{Char: "🇧🇸", Name: "flag: Bahamas"},
		{Char: "🇽🇰", Name: "flag: Kosovo"},
		{Char: "🇦🇶", Name: "flag: Antarctica"},
		{Char: "🏁", Name: "chequered flag"},
	}

	render := func() []byte {
		logger, _ := captureLogger()
		b, err := json.Marshal(NewTransformer(table, logger).Transform(entries))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return b
	}

	first, second := render(), render()
	if !bytes.Equal(first, second) {
		t.Errorf("output differs between runs:\n%s\n%s", first, second)
	}
}

func TestTransform_NoFlags(t *testing.T) {
	logger, _ := captureLogger()
	got := NewTransformer(testTable(t), logger).Transform([]EmojiEntry{{Char: "😀", Name: "grinning face"}})
	if len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}
