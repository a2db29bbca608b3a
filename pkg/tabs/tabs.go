// Package tabs holds the tab-selection state machine. Every registered tab
// is reachable from every other with a single Select; exactly one is active.
package tabs

import (
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

// Tab is one navigation entry.
type Tab struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// Controller owns the active tab id. It is not safe for concurrent use;
// callers serialise access.
type Controller struct {
	registry   *view.Registry
	src        series.Source
	defaultID  string
	active     string
	rendered   *view.View
	renderErr  error
	transition int
}

// New starts the controller on defaultID, or view.DefaultTab when empty.
func New(registry *view.Registry, src series.Source, defaultID string) (*Controller, error) {
	if defaultID == "" {
		defaultID = view.DefaultTab
	}
	if !registry.Has(defaultID) {
		return nil, &series.NotFoundError{Kind: series.KindTab, ID: defaultID}
	}
	return &Controller{registry: registry, src: src, defaultID: defaultID, active: defaultID}, nil
}

// Active returns the active tab id. It is never empty.
func (c *Controller) Active() string { return c.active }

// Default returns the tab selected on reset.
func (c *Controller) Default() string { return c.defaultID }

// Transitions counts state changes since construction.
func (c *Controller) Transitions() int { return c.transition }

// Select makes id the active tab. An unregistered id leaves the state
// unchanged and returns a NotFoundError.
func (c *Controller) Select(id string) error {
	if !c.registry.Has(id) {
		return &series.NotFoundError{Kind: series.KindTab, ID: id}
	}
	if id == c.active {
		return nil
	}
	c.active = id
	c.rendered, c.renderErr = nil, nil
	c.transition++
	return nil
}

// Reset returns to the default tab.
func (c *Controller) Reset() {
	_ = c.Select(c.defaultID)
}

// View renders the active tab's descriptor. Other descriptors are never
// rendered; the result is reused until the next transition.
func (c *Controller) View() (*view.View, error) {
	if c.rendered == nil && c.renderErr == nil {
		c.rendered, c.renderErr = c.registry.Render(c.active, c.src)
	}
	return c.rendered, c.renderErr
}

// Tabs lists the navigation entries in order, marking the active one.
func (c *Controller) Tabs() []Tab {
	descs := c.registry.Descriptors()
	out := make([]Tab, 0, len(descs))
	for _, d := range descs {
		out = append(out, Tab{ID: d.ID, Title: d.Title, Active: d.ID == c.active})
	}
	return out
}
