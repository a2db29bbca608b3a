package view

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tooltip"
)

// countingSource records which series were read.
type countingSource struct {
	series.Source
	reads []string
}

func (c *countingSource) Series(id string) (*series.Series, error) {
	c.reads = append(c.reads, id)
	return c.Source.Series(id)
}

// fixtureSource serves hand-built series.
type fixtureSource map[string]*series.Series

func (f fixtureSource) Series(id string) (*series.Series, error) {
	s, ok := f[id]
	if !ok {
		return nil, &series.NotFoundError{Kind: series.KindSeries, ID: id}
	}
	return s, nil
}

func (f fixtureSource) IDs() []string {
	var ids []string
	for id := range f {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func TestDefaultRegistryTabs(t *testing.T) {
	want := []string{
		TabSummary, TabPopulation, TabQualifications, TabAttainmentGap,
		TabUniversityGoal, TabIndustries, TabOccupations, TabRampUp,
	}
	if got := Default().IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(Descriptor{ID: "a"}, Descriptor{ID: "a"})
	if err == nil || !strings.Contains(err.Error(), "duplicate tab id") {
		t.Errorf("expected duplicate tab error, got %v", err)
	}
	_, err = NewRegistry(Descriptor{ID: "a", Charts: []Chart{{ID: "c"}, {ID: "c"}}})
	if err == nil || !strings.Contains(err.Error(), "duplicate chart id") {
		t.Errorf("expected duplicate chart error, got %v", err)
	}
	if _, err := NewRegistry(Descriptor{Title: "untitled"}); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestRenderPopulation(t *testing.T) {
	v, err := Default().Render(TabPopulation, series.Southern())
	if err != nil {
		t.Fatal(err)
	}
	c, err := v.Chart("population")
	if err != nil {
		t.Fatal(err)
	}
	if c.Kind != KindLine {
		t.Errorf("kind = %s, want line", c.Kind)
	}
	if c.Series != series.IDPopulation {
		t.Errorf("series = %s, want %s", c.Series, series.IDPopulation)
	}
	var fields []string
	for _, m := range c.Marks {
		if m.Kind != MarkLine {
			t.Errorf("mark %s kind = %s, want line", m.Field, m.Kind)
		}
		fields = append(fields, m.Field)
	}
	if !slices.Equal(fields, []string{"totalPopulation", "workingAgePopulation"}) {
		t.Errorf("lines = %v", fields)
	}
	var years []string
	for _, r := range c.Data {
		years = append(years, r.Key)
	}
	if !slices.Equal(years, []string{"2021", "2026", "2031", "2036", "2041", "2046", "2051"}) {
		t.Errorf("years = %v", years)
	}

	d, ok, err := tooltip.NewSet(tooltip.HeaderCompat).Format(c.Tooltip, c.Hover("2051"))
	if err != nil || !ok {
		t.Fatalf("tooltip: ok=%v err=%v", ok, err)
	}
	var lines []string
	for _, l := range d.Lines {
		lines = append(lines, l.Text)
	}
	want := []string{"Total Population: 435,000", "Working Age Population (15-60): 247,950"}
	if !slices.Equal(lines, want) {
		t.Errorf("tooltip lines = %v, want %v", lines, want)
	}
}

func TestRenderIndustries(t *testing.T) {
	v, err := Default().Render(TabIndustries, series.Southern())
	if err != nil {
		t.Fatal(err)
	}
	c, err := v.Chart("industries-total")
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Data) != 10 {
		t.Fatalf("rows = %d, want 10", len(c.Data))
	}
	first := c.Data[0]
	if first.Key != "Health Care & Social Assistance" || first.Values["value"] != 15000 {
		t.Errorf("first row = %s %v", first.Key, first.Values["value"])
	}
	if c.Layout != LayoutRows || c.Sort != SortAsAuthored {
		t.Errorf("layout/sort = %s/%s", c.Layout, c.Sort)
	}
	for i := 1; i < len(c.Data); i++ {
		if c.Data[i].Values["value"] > c.Data[i-1].Values["value"] {
			t.Errorf("row %d out of descending order", i)
		}
	}

	d, ok := tooltip.Breakdown.Format(c.Hover("Manufacturing"))
	if !ok {
		t.Fatal("expected breakdown tooltip")
	}
	if d.Text() != "Manufacturing\nTotal new workers needed: 1,800\nFrom growth: -200\nFrom retirements: 2,000" {
		t.Errorf("tooltip = %q", d.Text())
	}

	stacked, _ := v.Chart("industries-decomposition")
	if !stacked.Stacked() {
		t.Error("decomposition chart should be stacked")
	}
	for _, m := range stacked.Marks {
		if m.Stack != "a" {
			t.Errorf("mark %s stack = %q, want a", m.Field, m.Stack)
		}
	}
}

func TestRenderReadsOnlyDescriptorSeries(t *testing.T) {
	reg := Default()
	for _, id := range reg.IDs() {
		src := &countingSource{Source: series.Southern()}
		if _, err := reg.Render(id, src); err != nil {
			t.Fatalf("Render(%s): %v", id, err)
		}
		d, _ := reg.Descriptor(id)
		refs := d.SeriesRefs()
		for _, read := range src.reads {
			if !slices.Contains(refs, read) {
				t.Errorf("tab %s read series %s outside its descriptor", id, read)
			}
		}
	}
}

func TestRenderComposedAxes(t *testing.T) {
	v, err := Default().Render(TabQualifications, series.Southern())
	if err != nil {
		t.Fatal(err)
	}
	c, _ := v.Chart("qualification-requirements")
	if c.Kind != KindComposed || len(c.ValueAxes) != 2 {
		t.Fatalf("kind=%s axes=%d", c.Kind, len(c.ValueAxes))
	}
	axes := map[string]string{}
	for _, m := range c.Marks {
		axes[m.Field] = m.Axis
	}
	if axes["qualificationRate"] != AxisRight || axes["qualifiedWorkersNeeded"] != AxisLeft || axes["estimatedEmployment"] != AxisLeft {
		t.Errorf("axis bindings = %v", axes)
	}
	d, _ := tooltip.Series.Format(c.Hover("2024"))
	if d.Lines[2].Text != "Qualification Rate: 55%" {
		t.Errorf("rate line = %q", d.Lines[2].Text)
	}
}

func TestRenderPieSliceLabels(t *testing.T) {
	v, err := Default().Render(TabSummary, series.Southern())
	if err != nil {
		t.Fatal(err)
	}
	c := v.Charts[0]
	if c.Kind != KindPie || len(c.Data) != 2 {
		t.Fatalf("kind=%s rows=%d", c.Kind, len(c.Data))
	}
	if c.Data[0].Label != "Local Growth Can Provide: 78%" {
		t.Errorf("label = %q", c.Data[0].Label)
	}
	if c.Data[1].Label != "Migration & Additional Programs Required: 22%" {
		t.Errorf("label = %q", c.Data[1].Label)
	}
	d, ok := tooltip.Pie.Format(c.Hover("Local Growth Can Provide"))
	if !ok || d.Lines[0].Text != "Local Growth Can Provide : 4,200" || d.Lines[0].Color != "#0088FE" {
		t.Errorf("pie tooltip = %+v", d)
	}
}

func TestRenderSkipsMalformedPoint(t *testing.T) {
	src := fixtureSource{
		series.IDPopulation: {
			ID:     series.IDPopulation,
			Key:    series.Field{Name: "year"},
			Fields: []series.Field{{Name: "totalPopulation"}, {Name: "workingAgePopulation"}},
			Records: []series.Record{
				{Key: "2021", Values: map[string]float64{"totalPopulation": 1, "workingAgePopulation": 1}},
				{Key: "2026", Values: map[string]float64{"totalPopulation": 2}},
				{Key: "2031", Values: map[string]float64{"totalPopulation": 3, "workingAgePopulation": 2}},
			},
		},
		series.IDWorkforceFlow: {ID: series.IDWorkforceFlow},
	}
	v, err := Default().Render(TabPopulation, src)
	if err != nil {
		t.Fatal(err)
	}
	c, _ := v.Chart("population")
	if len(c.Data) != 2 {
		t.Errorf("rows = %d, want 2", len(c.Data))
	}
	if len(c.Skipped) != 1 {
		t.Fatalf("skipped = %d, want 1", len(c.Skipped))
	}
	want := &MalformedPointError{Series: series.IDPopulation, Key: "2026", Field: "workingAgePopulation"}
	if *c.Skipped[0] != *want {
		t.Errorf("skipped = %+v, want %+v", c.Skipped[0], want)
	}
	if _, ok := tooltip.Series.Format(c.Hover("2026")); ok {
		t.Error("malformed point should not produce a tooltip")
	}
}

func TestRenderUnknown(t *testing.T) {
	var nf *series.NotFoundError
	_, err := Default().Render("charts", series.Southern())
	if !errors.As(err, &nf) || nf.Kind != series.KindTab {
		t.Errorf("expected tab NotFoundError, got %v", err)
	}

	_, err = Default().Render(TabRampUp, fixtureSource{})
	if !errors.As(err, &nf) || nf.Kind != series.KindSeries {
		t.Errorf("expected series NotFoundError, got %v", err)
	}

	v, _ := Default().Render(TabRampUp, series.Southern())
	if _, err := v.Chart("nope"); !errors.As(err, &nf) || nf.Kind != series.KindChart {
		t.Errorf("expected chart NotFoundError, got %v", err)
	}
}

func TestHoverOutsidePlot(t *testing.T) {
	v, _ := Default().Render(TabRampUp, series.Southern())
	p := v.Charts[0].Hover("1999")
	if p.Active {
		t.Error("hover outside plotted rows should be inactive")
	}
}
