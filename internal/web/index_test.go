package web

import (
	"testing"

	"github.com/JonMunkholm/cclookup/internal/core"
)

func TestIndex_FirstCodeWins(t *testing.T) {
	idx := NewIndex([]core.OutputRecord{
		{Name: "first", Alpha2: core.Text("GB"), Alpha3: core.Text("GBR")},
		{Name: "second", Alpha2: core.Text("GB"), Alpha3: core.Text("GBR")},
	})

	rec, ok := idx.Lookup(" gb ")
	if !ok || rec.Name != "first" {
		t.Errorf("Lookup(gb) = %v, %v", rec.Name, ok)
	}
}

func TestIndex_SkipsEmptyCodes(t *testing.T) {
	idx := NewIndex([]core.OutputRecord{
		{Name: "blank", Alpha2: core.Text(""), Alpha3: core.NullText()},
	})

	if _, ok := idx.Lookup(""); ok {
		t.Error("empty code should not match")
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d", idx.Len())
	}
}
