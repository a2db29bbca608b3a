// Package view declares which series feed each dashboard section and how
// they are drawn, and renders those declarations into chart specs for an
// external renderer.
package view

import (
	"fmt"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
)

// Registry maps tab ids to descriptors. It is read-only after construction.
type Registry struct {
	order []string
	byID  map[string]Descriptor
}

// NewRegistry checks that tab ids and chart ids are unique and non-empty.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{byID: make(map[string]Descriptor, len(descs))}
	for _, d := range descs {
		if d.ID == "" {
			return nil, fmt.Errorf("descriptor %q has no id", d.Title)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate tab id %q", d.ID)
		}
		charts := map[string]bool{}
		for _, c := range d.Charts {
			if c.ID == "" {
				return nil, fmt.Errorf("tab %q: chart %q has no id", d.ID, c.Title)
			}
			if charts[c.ID] {
				return nil, fmt.Errorf("tab %q: duplicate chart id %q", d.ID, c.ID)
			}
			charts[c.ID] = true
		}
		r.order = append(r.order, d.ID)
		r.byID[d.ID] = d
	}
	return r, nil
}

// Default returns the registry of the eight dashboard sections.
func Default() *Registry {
	r, err := NewRegistry(Dashboard()...)
	if err != nil {
		panic(err)
	}
	return r
}

// IDs returns tab ids in navigation order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Descriptor returns the descriptor for a tab id.
func (r *Registry) Descriptor(id string) (Descriptor, error) {
	d, ok := r.byID[id]
	if !ok {
		return Descriptor{}, &series.NotFoundError{Kind: series.KindTab, ID: id}
	}
	return d, nil
}

// Descriptors returns every descriptor in navigation order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Render resolves the series of one descriptor. Only that descriptor's
// series are read from src.
func (r *Registry) Render(id string, src series.Source) (*View, error) {
	d, err := r.Descriptor(id)
	if err != nil {
		return nil, err
	}
	v := &View{ID: d.ID, Title: d.Title}
	for _, c := range d.Charts {
		spec, err := RenderChart(c, src)
		if err != nil {
			return nil, fmt.Errorf("tab %s: %w", d.ID, err)
		}
		v.Charts = append(v.Charts, *spec)
	}
	return v, nil
}
