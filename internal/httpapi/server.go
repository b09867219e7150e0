// Package httpapi exposes the assessment engine over HTTP: the catalog
// endpoints the questionnaire UI consumes and the results and report
// endpoints that run an evaluation from the answers in the query string.
package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zeustriton/iso-42001-eval-madurez/internal/catalog"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/evaluation"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/report"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/responses"
)

type Server struct {
	cat *catalog.Catalog
	now func() time.Time
}

func New(cat *catalog.Catalog) *Server {
	return &Server{cat: cat, now: time.Now}
}

// Routes returns a chi.Router with all API endpoints mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.getHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.getCatalog)
		r.Get("/organization-types", s.getOrganizationTypes)
		r.Get("/comparison", s.getComparison)
		r.Get("/results", s.getResults)
		r.Get("/report", s.getReport)
	})
	return r
}

func (s *Server) getHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cat)
}

func (s *Server) getOrganizationTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.OrganizationTypes)
}

func (s *Server) getComparison(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.Comparison)
}

// getResults evaluates the answers carried in the query string. Unknown
// parameters are tolerated so older result links keep working.
func (s *Server) getResults(w http.ResponseWriter, r *http.Request) {
	ans := responses.ParseQuery(r.URL.Query())
	writeJSON(w, http.StatusOK, evaluation.Evaluate(s.cat, ans, s.now()))
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ans := responses.ParseQuery(q)
	now := s.now()
	rep := report.New(evaluation.Evaluate(s.cat, ans, now), now)

	format := q.Get("format")
	switch format {
	case "", "json":
		writeJSON(w, http.StatusOK, rep)
	case "markdown":
		md := report.BuildMarkdown(rep, s.cat)
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="reporte.md"`)
		_, _ = w.Write([]byte(md))
	case "html":
		html, err := report.RenderHTML(report.BuildMarkdown(rep, s.cat))
		if err != nil {
			log.Printf("report render error: %v", err)
			writeError(w, http.StatusInternalServerError, "report rendering failed")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	default:
		writeError(w, http.StatusBadRequest, "unsupported format: "+format)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
