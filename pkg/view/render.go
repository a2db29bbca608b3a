package view

import (
	"fmt"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/format"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tooltip"
)

// MalformedPointError reports a record missing a field its chart draws.
// The record is left out of the chart; the rest of the chart still renders.
type MalformedPointError struct {
	Series string `json:"series"`
	Key    string `json:"key"`
	Field  string `json:"field"`
}

func (e *MalformedPointError) Error() string {
	return fmt.Sprintf("series %s: point %q has no %s", e.Series, e.Key, e.Field)
}

// Row is one plotted data point.
type Row struct {
	Key    string             `json:"key"`
	Values map[string]float64 `json:"values"`
	Color  string             `json:"color,omitempty"`
	Label  string             `json:"label,omitempty"`
}

// ChartSpec is a chart declaration with its data resolved, ready for the
// renderer. Rows carry every field of the series record, not only the
// marked ones, so tooltips can show decompositions.
type ChartSpec struct {
	Chart
	Fields  []series.Field         `json:"fields"`
	Data    []Row                  `json:"data"`
	Skipped []*MalformedPointError `json:"skipped,omitempty"`
}

// View is the rendered form of one tab.
type View struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Charts []ChartSpec `json:"charts"`
}

// Chart returns the rendered chart with the given id.
func (v *View) Chart(id string) (*ChartSpec, error) {
	for i := range v.Charts {
		if v.Charts[i].ID == id {
			return &v.Charts[i], nil
		}
	}
	return nil, &series.NotFoundError{Kind: series.KindChart, ID: id}
}

// RenderChart reads the chart's series and keeps the records that carry
// every marked field, in authored order.
func RenderChart(c Chart, src series.Source) (*ChartSpec, error) {
	s, err := src.Series(c.Series)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", c.ID, err)
	}

	spec := &ChartSpec{Chart: c, Fields: s.Fields, Data: []Row{}}

	total := 0.0
	for _, rec := range s.Records {
		if bad := missingField(s.ID, rec, c.Marks); bad != nil {
			spec.Skipped = append(spec.Skipped, bad)
			continue
		}
		row := Row{Key: rec.Key, Color: rec.Color, Values: rec.Values}
		if c.Kind == KindPie && len(c.Marks) > 0 {
			total += row.Values[c.Marks[0].Field]
		}
		spec.Data = append(spec.Data, row)
	}

	if c.Kind == KindPie && c.SliceLabels && len(c.Marks) > 0 {
		for i := range spec.Data {
			spec.Data[i].Label = format.SliceLabel(spec.Data[i].Key, spec.Data[i].Values[c.Marks[0].Field], total)
		}
	}
	return spec, nil
}

func missingField(seriesID string, rec series.Record, marks []Mark) *MalformedPointError {
	for _, m := range marks {
		if _, ok := rec.Value(m.Field); !ok {
			return &MalformedPointError{Series: seriesID, Key: rec.Key, Field: m.Field}
		}
	}
	return nil
}

// Hover builds the tooltip point for the row under key. A key with no
// plotted row yields an inactive point.
func (c *ChartSpec) Hover(key string) tooltip.Point {
	for i := range c.Data {
		row := &c.Data[i]
		if row.Key != key {
			continue
		}
		payload := &series.Record{Key: row.Key, Values: row.Values, Color: row.Color}
		p := tooltip.Point{Active: true, Label: row.Key}
		for _, m := range c.Marks {
			name, color := m.Label, m.Color
			if m.Kind == MarkSlice {
				name, color = row.Key, row.Color
			}
			p.Entries = append(p.Entries, tooltip.Entry{
				Name:    name,
				Field:   m.Field,
				Value:   row.Values[m.Field],
				Unit:    c.Unit(m.Field),
				Color:   color,
				Payload: payload,
			})
		}
		return p
	}
	return tooltip.Point{}
}

// Unit returns the declared unit of field, defaulting to a count.
func (c *ChartSpec) Unit(field string) series.Unit {
	for _, f := range c.Fields {
		if f.Name == field {
			return f.Unit
		}
	}
	return series.UnitCount
}
