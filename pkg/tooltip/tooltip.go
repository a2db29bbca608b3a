// Package tooltip turns a hovered chart point into the lines shown in the
// overlay. Formatters are pure and never fail: a point without payload
// produces no display.
package tooltip

import (
	"strings"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
)

// Ref names a registered formatter.
type Ref string

const (
	RefSeries        Ref = "series"
	RefBreakdown     Ref = "breakdown"
	RefWorkforceFlow Ref = "workforce-flow"
	RefDefault       Ref = "default"
	RefPie           Ref = "pie"
)

// Entry is one plotted value under the pointer.
type Entry struct {
	Name    string         `json:"name"`
	Field   string         `json:"field"`
	Value   float64        `json:"value"`
	Unit    series.Unit    `json:"unit"`
	Color   string         `json:"color,omitempty"`
	Payload *series.Record `json:"payload,omitempty"`
}

// Point is the hover state handed to a formatter.
type Point struct {
	Active  bool    `json:"active"`
	Label   string  `json:"label"`
	Entries []Entry `json:"entries"`
}

func (p Point) empty() bool {
	return !p.Active || len(p.Entries) == 0
}

// Line is one row of tooltip text.
type Line struct {
	Text  string `json:"text"`
	Color string `json:"color,omitempty"`
}

// Display is the rendered overlay. Header is shown in bold above the lines.
type Display struct {
	Header string `json:"header"`
	Lines  []Line `json:"lines"`
}

// Text joins the header and lines with newlines, skipping an empty header.
func (d Display) Text() string {
	var b strings.Builder
	if d.Header != "" {
		b.WriteString(d.Header)
	}
	for _, l := range d.Lines {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.Text)
	}
	return b.String()
}

// Formatter renders a hover point. ok is false when nothing should be shown.
type Formatter interface {
	Format(p Point) (d Display, ok bool)
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(p Point) (Display, bool)

// Format calls f(p).
func (f FormatterFunc) Format(p Point) (Display, bool) { return f(p) }
