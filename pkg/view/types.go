package view

import "github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tooltip"

// Kind is the chart geometry.
type Kind string

const (
	KindLine     Kind = "line"
	KindBar      Kind = "bar"
	KindComposed Kind = "composed"
	KindPie      Kind = "pie"
)

// Layout orients bar charts. Rows puts categories on the vertical axis.
type Layout string

const (
	LayoutColumns Layout = "columns"
	LayoutRows    Layout = "rows"
)

// AxisKind says how an axis is scaled.
type AxisKind string

const (
	AxisCategory AxisKind = "category"
	AxisTime     AxisKind = "time"
	AxisNumber   AxisKind = "number"
)

// Axis ids used by value marks.
const (
	AxisLeft  = "left"
	AxisRight = "right"
)

// Axis is one chart axis. Field is set on the key axis only.
type Axis struct {
	ID    string   `json:"id" yaml:"id"`
	Kind  AxisKind `json:"kind" yaml:"kind"`
	Field string   `json:"field,omitempty" yaml:"field,omitempty"`
	Label string   `json:"label,omitempty" yaml:"label,omitempty"`
}

// MarkKind is how one field is drawn.
type MarkKind string

const (
	MarkBar   MarkKind = "bar"
	MarkLine  MarkKind = "line"
	MarkSlice MarkKind = "slice"
)

// Mark binds a series field to a drawn element. Marks sharing a Stack value
// are stacked so their values visually sum.
type Mark struct {
	Field string   `json:"field" yaml:"field"`
	Label string   `json:"label" yaml:"label"`
	Kind  MarkKind `json:"kind" yaml:"kind"`
	Axis  string   `json:"axis,omitempty" yaml:"axis,omitempty"`
	Stack string   `json:"stack,omitempty" yaml:"stack,omitempty"`
	Color string   `json:"color,omitempty" yaml:"color,omitempty"`
}

// Sort is the row order contract for the renderer.
type Sort string

// SortAsAuthored tells the renderer to keep the series order.
const SortAsAuthored Sort = "as-authored"

// Chart declares one chart on a tab.
type Chart struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Series      string      `json:"series" yaml:"series"`
	Kind        Kind        `json:"kind" yaml:"kind"`
	Layout      Layout      `json:"layout,omitempty" yaml:"layout,omitempty"`
	KeyAxis     Axis        `json:"key_axis" yaml:"key_axis"`
	ValueAxes   []Axis      `json:"value_axes,omitempty" yaml:"value_axes,omitempty"`
	Marks       []Mark      `json:"marks" yaml:"marks"`
	Tooltip     tooltip.Ref `json:"tooltip" yaml:"tooltip"`
	Sort        Sort        `json:"sort" yaml:"sort"`
	SliceLabels bool        `json:"slice_labels,omitempty" yaml:"slice_labels,omitempty"`
}

// Stacked reports whether any marks share a stack group.
func (c Chart) Stacked() bool {
	for _, m := range c.Marks {
		if m.Stack != "" {
			return true
		}
	}
	return false
}

// Descriptor binds a tab id to its charts.
type Descriptor struct {
	ID     string  `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Charts []Chart `json:"charts" yaml:"charts"`
}

// SeriesRefs lists the series the descriptor reads, without duplicates.
func (d Descriptor) SeriesRefs() []string {
	var refs []string
	seen := map[string]bool{}
	for _, c := range d.Charts {
		if !seen[c.Series] {
			seen[c.Series] = true
			refs = append(refs, c.Series)
		}
	}
	return refs
}
