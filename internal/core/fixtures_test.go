package core

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// testReferenceCSV is a trimmed country-codes table. Extra columns are kept
// to mirror the real file layout.
const testReferenceCSV = `FIFA,ISO3166-1-Alpha-2,ISO3166-1-Alpha-3,UNTERM English Short,ISO4217-currency_country_name,CLDR display name,Region Name,Sub-region Name,TLD
RSA,ZA,ZAF,South Africa,SOUTH AFRICA,South Africa,Africa,Sub-Saharan Africa,.za
BAH,BS,BHS,Bahamas (the),BAHAMAS (THE),Bahamas,Americas,Latin America and the Caribbean,.bs
CUW,CW,CUW,Curaçao,CURAÇAO,Curaçao,Americas,Latin America and the Caribbean,.cw
TUR,TR,TUR,Türkiye,TURKEY,Türkiye,Asia,Western Asia,.tr
,AQ,ATA,Antarctica,ANTARCTICA,Antarctica,,,.aq
BIH,BA,BIH,Bosnia and Herzegovina,BOSNIA AND HERZEGOVINA,Bosnia & Herzegovina,Europe,Southern Europe,.ba
SKN,KN,KNA,Saint Kitts and Nevis,SAINT KITTS AND NEVIS,St. Kitts & Nevis,Americas,Latin America and the Caribbean,.kn
,UM,UMI,United States Minor Outlying Islands (the),UNITED STATES MINOR OUTLYING ISLANDS (THE),U.S. Outlying Islands,Oceania,Micronesia,
,,,Sark,,Sark,,,
`

// captureLogger returns a debug-level text logger writing to a buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// testTable parses testReferenceCSV or fails the test.
func testTable(t *testing.T) *Table {
	t.Helper()

	logger, _ := captureLogger()
	table, err := ParseReference(strings.NewReader(testReferenceCSV), logger)
	if err != nil {
		t.Fatalf("ParseReference: %v", err)
	}
	return table
}
