package web

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/cclookup/internal/core"
	"github.com/JonMunkholm/cclookup/internal/logging"
	"github.com/JonMunkholm/cclookup/internal/web/templates"
)

// handleIndex renders the lookup table as HTML. ?region= filters rows.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")

	page := templates.Index(templates.IndexData{
		Title:    "Country flag lookup",
		RunID:    s.runID,
		Records:  s.index.Filter(region),
		Filtered: region != "",
	})
	templ.Handler(page).ServeHTTP(w, r)
}

// handleListFlags returns every record as JSON. ?region= matches region or
// sub-region, ignoring case.
func (s *Server) handleListFlags(w http.ResponseWriter, r *http.Request) {
	records := s.index.Filter(r.URL.Query().Get("region"))

	w.Header().Set("X-Run-ID", s.runID)
	s.writeJSON(w, r, records)
}

// handleGetFlag returns the record for an alpha-2 or alpha-3 code.
func (s *Server) handleGetFlag(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	rec, ok := s.index.Lookup(code)
	if !ok {
		s.respondError(w, r, fmt.Errorf("%w: %q", core.ErrNotFound, code), http.StatusNotFound)
		return
	}

	logging.FromContext(r.Context(), s.logger).Debug("flag lookup", "code", code, "name", rec.Name)
	s.writeJSON(w, r, rec)
}

// handleHealth reports liveness and the size of the served table.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, map[string]any{
		"status": "ok",
		"flags":  s.index.Len(),
		"run_id": s.runID,
	})
}
