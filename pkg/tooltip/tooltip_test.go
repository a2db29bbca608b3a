package tooltip

import (
	"errors"
	"testing"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
)

func populationPoint() Point {
	return Point{
		Active: true,
		Label:  "2051",
		Entries: []Entry{
			{Name: "Total Population", Field: "totalPopulation", Value: 435000, Unit: series.UnitCount, Color: "#8884d8"},
			{Name: "Working Age Population (15-60)", Field: "workingAgePopulation", Value: 247950, Unit: series.UnitCount, Color: "#82ca9d"},
		},
	}
}

func TestSeriesTooltip(t *testing.T) {
	d, ok := Series.Format(populationPoint())
	if !ok {
		t.Fatal("expected display")
	}
	if d.Header != "Year: 2051" {
		t.Errorf("header = %q, want %q", d.Header, "Year: 2051")
	}
	want := []string{"Total Population: 435,000", "Working Age Population (15-60): 247,950"}
	if len(d.Lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(d.Lines), len(want))
	}
	for i, w := range want {
		if d.Lines[i].Text != w {
			t.Errorf("line %d = %q, want %q", i, d.Lines[i].Text, w)
		}
	}
	if d.Lines[0].Color != "#8884d8" {
		t.Errorf("line color = %q, want #8884d8", d.Lines[0].Color)
	}
}

func TestSeriesTooltipScalesRatio(t *testing.T) {
	p := Point{Active: true, Label: "2024", Entries: []Entry{
		{Name: "Qualification Rate", Value: 0.55, Unit: series.UnitRatio},
	}}
	d, _ := Series.Format(p)
	if d.Lines[0].Text != "Qualification Rate: 55%" {
		t.Errorf("line = %q, want Qualification Rate: 55%%", d.Lines[0].Text)
	}
}

func TestNoPayloadNoDisplay(t *testing.T) {
	set := NewSet(HeaderCompat)
	for _, ref := range []Ref{RefSeries, RefBreakdown, RefWorkforceFlow, RefDefault, RefPie} {
		f, err := set.Lookup(ref)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", ref, err)
		}
		if _, ok := f.Format(Point{}); ok {
			t.Errorf("%s: inactive point should not display", ref)
		}
		if _, ok := f.Format(Point{Active: true, Label: "2026"}); ok {
			t.Errorf("%s: point without entries should not display", ref)
		}
	}
}

func TestBreakdownTooltip(t *testing.T) {
	row := &series.Record{Key: "Health Care & Social Assistance", Values: map[string]float64{
		"value": 15000, "growth": 8000, "retirements": 7000,
	}}
	p := Point{Active: true, Label: row.Key, Entries: []Entry{{Name: "Total New Workers Needed", Value: 15000, Payload: row}}}
	d, ok := Breakdown.Format(p)
	if !ok {
		t.Fatal("expected display")
	}
	if d.Header != "Health Care & Social Assistance" {
		t.Errorf("header = %q", d.Header)
	}
	want := []string{"Total new workers needed: 15,000", "From growth: 8,000", "From retirements: 7,000"}
	for i, w := range want {
		if d.Lines[i].Text != w {
			t.Errorf("line %d = %q, want %q", i, d.Lines[i].Text, w)
		}
	}
}

func TestBreakdownTooltipNegativeGrowth(t *testing.T) {
	row := &series.Record{Key: "Manufacturing", Values: map[string]float64{
		"value": 1800, "growth": -200, "retirements": 2000,
	}}
	d, ok := Breakdown.Format(Point{Active: true, Entries: []Entry{{Payload: row}}})
	if !ok {
		t.Fatal("expected display")
	}
	if d.Lines[1].Text != "From growth: -200" {
		t.Errorf("growth line = %q", d.Lines[1].Text)
	}
}

func TestBreakdownTooltipMissingField(t *testing.T) {
	row := &series.Record{Key: "Partial", Values: map[string]float64{"value": 10}}
	if _, ok := Breakdown.Format(Point{Active: true, Entries: []Entry{{Payload: row}}}); ok {
		t.Error("row without growth/retirements should not display")
	}
	if _, ok := Breakdown.Format(Point{Active: true, Entries: []Entry{{Name: "x"}}}); ok {
		t.Error("entry without payload should not display")
	}
}

func TestWorkforceFlowCompatHeader(t *testing.T) {
	f := WorkforceFlow(HeaderCompat)
	entries := []Entry{{Name: "New Entrants", Value: 18000, Unit: series.UnitCount}}

	d, _ := f.Format(Point{Active: true, Label: "Working Age Population", Entries: entries})
	if d.Header != "Total workers 2024-2034: 130,909" {
		t.Errorf("matching label header = %q", d.Header)
	}

	d, _ = f.Format(Point{Active: true, Label: "2026", Entries: entries})
	if d.Header != "Total workers 2024-2034: " {
		t.Errorf("other label header = %q", d.Header)
	}
	if d.Lines[0].Text != "New Entrants: 18,000" {
		t.Errorf("line = %q", d.Lines[0].Text)
	}
}

func TestWorkforceFlowContextualHeader(t *testing.T) {
	f := NewSet(HeaderContextual)
	d, ok, err := f.Format(RefWorkforceFlow, Point{Active: true, Label: "2031", Entries: []Entry{{Name: "Net Change", Value: 14100}}})
	if err != nil || !ok {
		t.Fatalf("Format: ok=%v err=%v", ok, err)
	}
	if d.Header != "Year: 2031" {
		t.Errorf("header = %q, want Year: 2031", d.Header)
	}
}

func TestDefaultAndPie(t *testing.T) {
	p := Point{Active: true, Label: "2035 Need", Entries: []Entry{
		{Name: "Upskill Existing Workers", Value: 10600},
		{Name: "Qualify New Entrants", Value: 15900},
	}}
	d, _ := Default.Format(p)
	if d.Header != "2035 Need" || d.Lines[0].Text != "Upskill Existing Workers : 10,600" {
		t.Errorf("default display = %+v", d)
	}
	d, _ = Pie.Format(Point{Active: true, Label: "Local Growth Can Provide", Entries: []Entry{{Name: "Local Growth Can Provide", Value: 4200}}})
	if d.Header != "" || d.Lines[0].Text != "Local Growth Can Provide : 4,200" {
		t.Errorf("pie display = %+v", d)
	}
}

func TestDisplayText(t *testing.T) {
	d, _ := Series.Format(populationPoint())
	want := "Year: 2051\nTotal Population: 435,000\nWorking Age Population (15-60): 247,950"
	if d.Text() != want {
		t.Errorf("Text() = %q, want %q", d.Text(), want)
	}
	d, _ = Pie.Format(Point{Active: true, Entries: []Entry{{Name: "a", Value: 1}}})
	if d.Text() != "a : 1" {
		t.Errorf("Text() = %q", d.Text())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := NewSet("").Lookup("sparkline")
	var nf *series.NotFoundError
	if !errors.As(err, &nf) || nf.Kind != series.KindFormatter {
		t.Errorf("expected formatter NotFoundError, got %v", err)
	}
}
