// Package export writes a rendered dashboard view as data files or chart
// previews.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/format"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

// Format is an export target.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatPDF  Format = "pdf"
)

// Formats lists every accepted format, including the unsupported PDF target.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML, FormatPNG, FormatSVG, FormatPDF}

// ErrUnsupported is returned for export targets that are accepted but not
// produced.
var ErrUnsupported = errors.New("export not supported")

// ParseFormat maps a name such as "csv" to its Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", name)
}

// ContentType is the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// IsImage reports whether f renders a single chart.
func (f Format) IsImage() bool {
	return f == FormatPNG || f == FormatSVG
}

// Snapshot is the exported content of one tab.
type Snapshot struct {
	Tab         string          `json:"tab" yaml:"tab"`
	Title       string          `json:"title" yaml:"title"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Charts      []ChartSnapshot `json:"charts" yaml:"charts"`
}

// ChartSnapshot holds the plotted values of one chart, one entry per mark.
type ChartSnapshot struct {
	ID     string  `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Series string  `json:"series" yaml:"series"`
	Points []Point `json:"points" yaml:"points"`
}

// Point is one plotted value with its display text.
type Point struct {
	Key     string  `json:"key" yaml:"key"`
	Field   string  `json:"field" yaml:"field"`
	Label   string  `json:"label" yaml:"label"`
	Value   float64 `json:"value" yaml:"value"`
	Display string  `json:"display" yaml:"display"`
}

// NewSnapshot flattens a rendered view. Only marked fields are exported,
// in mark order within each row.
func NewSnapshot(v *view.View, at time.Time) *Snapshot {
	s := &Snapshot{Tab: v.ID, Title: v.Title, GeneratedAt: at.UTC(), Charts: []ChartSnapshot{}}
	for i := range v.Charts {
		c := &v.Charts[i]
		cs := ChartSnapshot{ID: c.ID, Title: c.Title, Series: c.Series, Points: []Point{}}
		for _, row := range c.Data {
			for _, m := range c.Marks {
				val := row.Values[m.Field]
				label := m.Label
				if m.Kind == view.MarkSlice {
					label = row.Key
				}
				cs.Points = append(cs.Points, Point{
					Key:     row.Key,
					Field:   m.Field,
					Label:   label,
					Value:   val,
					Display: format.Value(val, c.Unit(m.Field)),
				})
			}
		}
		s.Charts = append(s.Charts, cs)
	}
	return s
}

// CSVHeader is the first record written by WriteCSV.
var CSVHeader = []string{"chart", "key", "field", "label", "value", "display"}

// WriteCSV writes one record per plotted value.
func WriteCSV(w io.Writer, s *Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, c := range s.Charts {
		for _, p := range c.Points {
			rec := []string{c.ID, p.Key, p.Field, p.Label, strconv.FormatFloat(p.Value, 'f', -1, 64), p.Display}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the snapshot as indented JSON.
func WriteJSON(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteYAML writes the snapshot as YAML.
func WriteYAML(w io.Writer, s *Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// WritePDF is accepted by the dashboard's export button but produces no
// document.
func WritePDF(io.Writer, *Snapshot) error {
	return fmt.Errorf("pdf: %w", ErrUnsupported)
}

// Write dispatches a data format. Image formats need a chart and go through
// WriteImage instead.
func Write(w io.Writer, f Format, s *Snapshot) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, s)
	case FormatJSON:
		return WriteJSON(w, s)
	case FormatYAML:
		return WriteYAML(w, s)
	case FormatPDF:
		return WritePDF(w, s)
	}
	return fmt.Errorf("%s is a chart image format: %w", f, ErrUnsupported)
}
