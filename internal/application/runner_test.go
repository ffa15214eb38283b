package application

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/JonMunkholm/cclookup/internal/config"
	"github.com/JonMunkholm/cclookup/internal/core"
	"github.com/JonMunkholm/cclookup/internal/logging"
)

const (
	testEmojiJSON = `[
  {"codes": "1F1FF 1F1E6", "char": "🇿🇦", "name": "flag: South Africa", "category": "Flags (country-flag)", "group": "Flags", "subgroup": "country-flag"},
  {"codes": "1F3F3 FE0F", "char": "🏳️", "name": "flag unrelated", "category": "Flags (flag)", "group": "Flags", "subgroup": "flag"},
  {"codes": "1F1FD 1F1F0", "char": "🇽🇰", "name": "flag: Kosovo", "category": "Flags (country-flag)", "group": "Flags", "subgroup": "country-flag"},
  {"codes": "1F3F4", "char": "🏴", "name": "flag: Atlantis", "category": "Flags (country-flag)", "group": "Flags", "subgroup": "country-flag"}
]`

	testCountryCodesCSV = "ISO3166-1-Alpha-2,ISO3166-1-Alpha-3,UNTERM English Short,ISO4217-currency_country_name,CLDR display name,Region Name,Sub-region Name,TLD\n" +
		"ZA,ZAF,South Africa,SOUTH AFRICA,South Africa,Africa,Sub-Saharan Africa,.za\n"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	return &config.Config{
		Source: config.SourceConfig{
			EmojiDownloadPath:        filepath.Join(dir, "npm-emoji.json"),
			CountryCodesDownloadPath: filepath.Join(dir, "country-codes.csv"),
			EmojiCachedPath:          filepath.Join(dir, "emoji.json"),
			CountryCodesCachedPath:   filepath.Join(dir, "cached-country-codes.csv"),
		},
		Fetch:    config.FetchConfig{Timeout: 5 * time.Second},
		Output:   config.OutputConfig{Path: filepath.Join(dir, "cc_lookup.csv"), Format: config.FormatCSV},
		Server:   config.ServerConfig{ShutdownTimeout: time.Second},
		Database: config.DatabaseConfig{Table: "flag_lookup", Timeout: time.Second},
	}
}

func sourceServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/emoji.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testEmojiJSON))
	})
	mux.HandleFunc("/country-codes.csv", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testCountryCodesCSV))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRun_FetchAndWriteCSV(t *testing.T) {
	srv := sourceServer(t)
	cfg := testConfig(t)
	cfg.Source.EmojiURL = srv.URL + "/emoji.json"
	cfg.Source.CountryCodesURL = srv.URL + "/country-codes.csv"

	res, err := New(cfg, logging.Discard()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Records) != 3 {
		t.Fatalf("expected 3 flag records, got %d", len(res.Records))
	}
	if res.Unresolved != 1 {
		t.Errorf("Unresolved = %d, want 1", res.Unresolved)
	}
	if res.RunID == uuid.Nil {
		t.Error("run ID not set")
	}

	got, err := os.ReadFile(cfg.OutputPath())
	if err != nil {
		t.Fatal(err)
	}
	want := "char,name,region_name,sub_region_name,ISO3166-1-Alpha-2,ISO3166-1-Alpha-3,tld\r\n" +
		"🇿🇦,South Africa,Africa,Sub-Saharan Africa,ZA,ZAF,.za\r\n" +
		"🇽🇰,Kosovo,Europe,Western Europe,XK,XKX,.xk\r\n" +
		"🏴,Atlantis,,,,,\r\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	if exists(cfg.Source.EmojiDownloadPath) || exists(cfg.Source.CountryCodesDownloadPath) {
		t.Error("downloaded files should be cleaned up")
	}
}

func TestRun_CachedJSONNoCleanup(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fetch.UseCached = true
	cfg.Fetch.NoCleanup = true
	cfg.Output.Format = config.FormatJSON
	writeFile(t, cfg.Source.EmojiCachedPath, testEmojiJSON)
	writeFile(t, cfg.Source.CountryCodesCachedPath, testCountryCodesCSV)

	r := New(cfg, logging.Discard())
	r.Fetcher = failingFetcher{t: t}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.HasSuffix(res.OutputPath, "cc_lookup.json") {
		t.Errorf("OutputPath = %q", res.OutputPath)
	}
	data, err := os.ReadFile(res.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"ISO3166-1-Alpha-2": null`) {
		t.Errorf("JSON output should carry nulls:\n%s", data)
	}

	if !exists(cfg.Source.EmojiCachedPath) || !exists(cfg.Source.CountryCodesCachedPath) {
		t.Error("--no-cleanup should keep the input files")
	}
}

func TestRun_CachedCleanupRemovesInputs(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fetch.UseCached = true
	writeFile(t, cfg.Source.EmojiCachedPath, testEmojiJSON)
	writeFile(t, cfg.Source.CountryCodesCachedPath, testCountryCodesCSV)

	if _, err := New(cfg, logging.Discard()).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if exists(cfg.Source.EmojiCachedPath) {
		t.Error("cached inputs are cleaned up unless --no-cleanup")
	}
}

func TestRun_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	cfg := testConfig(t)
	cfg.Source.EmojiURL = srv.URL + "/emoji.json"
	cfg.Source.CountryCodesURL = srv.URL + "/country-codes.csv"

	_, err := New(cfg, logging.Discard()).Run(context.Background())
	if !errors.Is(err, core.ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
	if exists(cfg.OutputPath()) {
		t.Error("no output should be written after a failed fetch")
	}
}

func TestRun_MissingCachedFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fetch.UseCached = true

	_, err := New(cfg, logging.Discard()).Run(context.Background())
	if got := core.MapError(err).Code; got != "FILE001" {
		t.Errorf("MapError code = %s, want FILE001 (%v)", got, err)
	}
}

func TestRun_Export(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fetch.UseCached = true
	cfg.Database.URL = "postgres://example.test/flags"
	writeFile(t, cfg.Source.EmojiCachedPath, testEmojiJSON)
	writeFile(t, cfg.Source.CountryCodesCachedPath, testCountryCodesCSV)

	exp := &fakeExporter{}
	released := false
	r := New(cfg, logging.Discard())
	r.NewExporter = func(context.Context, config.DatabaseConfig, *slog.Logger) (Exporter, func(), error) {
		return exp, func() { released = true }, nil
	}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Exported != 3 || exp.runID != res.RunID {
		t.Errorf("Exported = %d, runID = %v (want %v)", res.Exported, exp.runID, res.RunID)
	}
	if !released {
		t.Error("exporter not released")
	}
}

func TestRun_ExportFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fetch.UseCached = true
	cfg.Fetch.NoCleanup = true
	cfg.Database.URL = "postgres://example.test/flags"
	writeFile(t, cfg.Source.EmojiCachedPath, testEmojiJSON)
	writeFile(t, cfg.Source.CountryCodesCachedPath, testCountryCodesCSV)

	r := New(cfg, logging.Discard())
	r.NewExporter = func(context.Context, config.DatabaseConfig, *slog.Logger) (Exporter, func(), error) {
		return nil, nil, core.ErrExport
	}

	if _, err := r.Run(context.Background()); !errors.Is(err, core.ErrExport) {
		t.Errorf("expected ErrExport, got %v", err)
	}
	if !exists(cfg.OutputPath()) {
		t.Error("the output file is written before the export runs")
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	r := New(cfg, logging.Discard())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.serve(ctx, ln, &Result{RunID: uuid.New(), Records: []core.OutputRecord{{Char: "🇿🇦", Name: "South Africa"}}})
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}

type failingFetcher struct{ t *testing.T }

func (f failingFetcher) FetchInputs(context.Context, config.SourceConfig) error {
	f.t.Error("cached runs must not fetch")
	return nil
}

type fakeExporter struct {
	runID uuid.UUID
}

func (f *fakeExporter) Export(_ context.Context, runID uuid.UUID, records []core.OutputRecord) (int64, error) {
	f.runID = runID
	return int64(len(records)), nil
}
