package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/export"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tabs"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tooltip"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}

// writeLookupError maps not-found errors to 404 and everything else to 500.
func writeLookupError(w http.ResponseWriter, err error) {
	var nf *series.NotFoundError
	if errors.As(err, &nf) {
		writeError(w, http.StatusNotFound, nf.Error())
		return
	}
	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

// selectTab moves the controller and returns the resulting navigation.
func (s *Server) selectTab(id string) ([]tabs.Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ctrl.Select(id); err != nil {
		return nil, err
	}
	s.metrics.tabSelections.WithLabelValues(id).Inc()
	return s.ctrl.Tabs(), nil
}

// activeView renders the active tab under the lock.
func (s *Server) activeView() ([]tabs.Tab, *view.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.ctrl.View()
	return s.ctrl.Tabs(), v, err
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	tabList, v, err := s.activeView()
	if err != nil {
		writeLookupError(w, err)
		return
	}
	page, err := s.shell.Page(tabList, v)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := s.shell.Render(&buf, page); err != nil {
		writeLookupError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// handleSelectForm serves the tab buttons of the HTML shell.
func (s *Server) handleSelectForm(w http.ResponseWriter, r *http.Request) {
	if _, err := s.selectTab(r.PathValue("id")); err != nil {
		writeLookupError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleTabs(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	tabList := s.ctrl.Tabs()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"tabs": tabList})
}

type selectRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, `body must be {"id": "<tab>"}`)
		return
	}
	tabList, err := s.selectTab(req.ID)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"active": req.ID, "tabs": tabList})
}

func (s *Server) handleActiveView(w http.ResponseWriter, _ *http.Request) {
	_, v, err := s.activeView()
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// handleView renders any registered tab without changing the selection.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	v, err := s.registry.Render(r.PathValue("id"), s.catalog)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	sr, err := s.catalog.Series(r.PathValue("id"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sr)
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.findings)
}

func (s *Server) handleInvestment(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.shell.Investment())
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.report)
}

type tooltipRequest struct {
	Chart     string      `json:"chart"`
	Key       string      `json:"key"`
	Formatter tooltip.Ref `json:"formatter,omitempty"`
}

type tooltipResponse struct {
	Visible bool             `json:"visible"`
	Display *tooltip.Display `json:"display,omitempty"`
	Text    string           `json:"text,omitempty"`
}

// handleTooltip formats the hover point for a key on a chart of the active
// view. The chart's own formatter is used unless the request names one.
func (s *Server) handleTooltip(w http.ResponseWriter, r *http.Request) {
	var req tooltipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Chart == "" {
		writeError(w, http.StatusBadRequest, `body must be {"chart": "<id>", "key": "<key>"}`)
		return
	}
	_, v, err := s.activeView()
	if err != nil {
		writeLookupError(w, err)
		return
	}
	c, err := v.Chart(req.Chart)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	ref := c.Tooltip
	if req.Formatter != "" {
		ref = req.Formatter
	}
	d, ok, err := s.formatters.Format(ref, c.Hover(req.Key))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	s.metrics.tooltips.WithLabelValues(string(ref)).Inc()
	if !ok {
		writeJSON(w, http.StatusOK, tooltipResponse{})
		return
	}
	writeJSON(w, http.StatusOK, tooltipResponse{Visible: true, Display: &d, Text: d.Text()})
}

// handleExport writes the active view. Image formats need ?chart=.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	f, err := export.ParseFormat(r.PathValue("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	_, v, err := s.activeView()
	if err != nil {
		writeLookupError(w, err)
		return
	}

	var buf bytes.Buffer
	if f.IsImage() {
		c, cerr := v.Chart(r.URL.Query().Get("chart"))
		if cerr != nil {
			writeLookupError(w, cerr)
			return
		}
		opts := export.ImageOptions{Width: s.cfg.Export.ImageWidth, Height: s.cfg.Export.ImageHeight}
		err = export.WriteImage(&buf, c, f, opts)
	} else {
		err = export.Write(&buf, f, export.NewSnapshot(v, s.now()))
	}
	if errors.Is(err, export.ErrUnsupported) {
		writeError(w, http.StatusNotImplemented, err.Error())
		return
	}
	if err != nil {
		writeLookupError(w, err)
		return
	}

	s.metrics.exports.WithLabelValues(string(f)).Inc()
	w.Header().Set("Content-Type", f.ContentType())
	if !f.IsImage() {
		w.Header().Set("Content-Disposition", `attachment; filename="`+v.ID+"."+string(f)+`"`)
	}
	_, _ = buf.WriteTo(w)
}
