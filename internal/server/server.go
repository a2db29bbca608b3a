// Package server serves the dashboard shell and the JSON API the chart
// renderer reads from.
package server

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/internal/shell"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/analytics"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/config"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tabs"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tooltip"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/validation"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

// Server is the dashboard HTTP server. It owns the single tab controller.
type Server struct {
	cfg        *config.Config
	catalog    *series.Catalog
	registry   *view.Registry
	formatters *tooltip.Set
	shell      *shell.Shell
	findings   *analytics.KeyFindings
	report     *validation.Report
	metrics    *metrics

	// mu guards ctrl; net/http serves requests concurrently.
	mu   sync.Mutex
	ctrl *tabs.Controller

	now func() time.Time
}

// New creates a server over the catalog. The catalog and view bindings are
// validated once here; the report is served from /api/validation.
func New(cfg *config.Config, catalog *series.Catalog) (*Server, error) {
	registry := view.Default()
	ctrl, err := tabs.New(registry, catalog, cfg.Dashboard.DefaultTab)
	if err != nil {
		return nil, fmt.Errorf("creating tab controller: %w", err)
	}
	formatters := tooltip.NewSet(cfg.HeaderMode())

	findings, report := analytics.Resolve(catalog)
	report.Merge(validation.ValidateCatalog(catalog))
	report.Merge(validation.ValidateViews(registry, catalog, formatters))

	sh, err := shell.New(findings)
	if err != nil {
		return nil, fmt.Errorf("loading dashboard shell: %w", err)
	}

	return &Server{
		cfg:        cfg,
		catalog:    catalog,
		registry:   registry,
		formatters: formatters,
		shell:      sh,
		findings:   findings,
		report:     report,
		metrics:    newMetrics(),
		ctrl:       ctrl,
		now:        time.Now,
	}, nil
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /tabs/{id}", s.handleSelectForm)
	mux.HandleFunc("GET /api/tabs", s.handleTabs)
	mux.HandleFunc("PUT /api/tabs/active", s.handleSelect)
	mux.HandleFunc("GET /api/view", s.handleActiveView)
	mux.HandleFunc("GET /api/views/{id}", s.handleView)
	mux.HandleFunc("GET /api/series/{id}", s.handleSeries)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/investment", s.handleInvestment)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("POST /api/tooltip", s.handleTooltip)
	mux.HandleFunc("GET /api/export/{format}", s.handleExport)
	if s.cfg.Server.Metrics {
		mux.Handle("GET /metrics", s.metrics.handler())
	}

	return s.logRequests(mux)
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	read, write := s.cfg.Timeouts()
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  read,
		WriteTimeout: write,
	}

	log.Printf("Qualification model server starting on http://localhost%s", addr)
	log.Printf("Catalog: %s; validation: %s", s.catalog, s.report.Summary)

	return srv.ListenAndServe()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.observeRequest(route, rec.status, elapsed)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, elapsed.Round(time.Microsecond))
	})
}
