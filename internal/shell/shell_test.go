package shell

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/analytics"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/cost"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tabs"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

func renderTab(t *testing.T, tab string) *goquery.Document {
	t.Helper()
	catalog := series.Southern()
	findings, _ := analytics.Resolve(catalog)
	sh, err := New(findings)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctrl, err := tabs.New(view.Default(), catalog, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := ctrl.Select(tab); err != nil {
		t.Fatal(err)
	}
	v, err := ctrl.View()
	if err != nil {
		t.Fatal(err)
	}
	page, err := sh.Page(ctrl.Tabs(), v)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := sh.Render(&buf, page); err != nil {
		t.Fatal(err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}
	return doc
}

func TestContentCoversEveryTab(t *testing.T) {
	c, err := LoadContent()
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	for _, id := range view.Default().IDs() {
		if c.Tabs[id].Heading == "" {
			t.Errorf("tab %s has no heading", id)
		}
	}
	if c.Title != "Southern Region Qualification Attainment Model" {
		t.Errorf("Title = %q", c.Title)
	}
}

func TestParseContentRejectsRaggedTable(t *testing.T) {
	body := `tabs:
  rampup:
    sections:
      - table:
          headers: [a, b]
          rows:
            - [1, 2]
            - [3]
`
	if _, err := ParseContent([]byte(body)); err == nil || !strings.Contains(err.Error(), "has 1 cells, want 2") {
		t.Errorf("err = %v", err)
	}
}

func TestPageNavigation(t *testing.T) {
	doc := renderTab(t, view.TabPopulation)

	buttons := doc.Find("nav.tabs button")
	if buttons.Length() != 8 {
		t.Fatalf("tab buttons = %d, want 8", buttons.Length())
	}
	active := doc.Find("nav.tabs button.active")
	if active.Length() != 1 {
		t.Fatalf("active buttons = %d, want exactly 1", active.Length())
	}
	if id, _ := active.Attr("data-tab"); id != view.TabPopulation {
		t.Errorf("active tab = %q, want %q", id, view.TabPopulation)
	}
	if action, _ := active.Parent().Attr("action"); action != "/tabs/population" {
		t.Errorf("form action = %q", action)
	}
}

func TestPageShowsOnlyActiveCharts(t *testing.T) {
	doc := renderTab(t, view.TabPopulation)

	var ids []string
	doc.Find("figure.chart").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-chart")
		ids = append(ids, id)
	})
	if strings.Join(ids, ",") != "population,workforce-dynamics" {
		t.Errorf("charts = %v, want population,workforce-dynamics", ids)
	}
	if doc.Find(`figure[data-chart="university-gap-2035"]`).Length() != 0 {
		t.Error("summary chart rendered on the population tab")
	}

	raw, ok := doc.Find(`figure[data-chart="population"]`).Attr("data-spec")
	if !ok {
		t.Fatal("missing data-spec")
	}
	var spec view.ChartSpec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		t.Fatalf("decoding data-spec: %v", err)
	}
	if spec.Series != series.IDPopulation || len(spec.Data) != 7 {
		t.Errorf("spec = %s with %d rows", spec.Series, len(spec.Data))
	}
}

func TestSummaryFindingsAndNarrative(t *testing.T) {
	doc := renderTab(t, view.TabSummary)

	text := doc.Find(".findings").Text()
	for _, want := range []string{
		"608 per year (average)",
		"30 percentage points below target",
		"76,000 new qualifications",
		"30,400 qualifications (40% of total need)",
		"Annual qualification production needed by 2045:",
		"26,500 new qualifications (10,600 for existing gap, 15,900 for new entrants)",
		"Priority investments (2025-2028): $48M across 4 initiatives",
		"Total investment: $59M",
		"Per new university qualification: $3,734",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("findings missing %q", want)
		}
	}

	if got := doc.Find(".card h4").First().Text(); got != "Mixed-Purpose STEM and Science Laboratories ($30M)" {
		t.Errorf("first card = %q", got)
	}
	if rows := doc.Find("table tbody tr").Length(); rows != 4 {
		t.Errorf("timeline rows = %d, want 4", rows)
	}
	if doc.Find(".callout").Length() != 2 {
		t.Errorf("callouts = %d, want 2", doc.Find(".callout").Length())
	}
}

func TestExportLinks(t *testing.T) {
	doc := renderTab(t, view.TabRampUp)

	var hrefs []string
	doc.Find("a.export").Each(func(_ int, s *goquery.Selection) {
		h, _ := s.Attr("href")
		hrefs = append(hrefs, h)
	})
	if strings.Join(hrefs, " ") != "/api/export/csv /api/export/pdf" {
		t.Errorf("export links = %v", hrefs)
	}
	if src, _ := doc.Find(`figure[data-chart="rampup"] img`).Attr("src"); src != "/api/export/png?chart=rampup" {
		t.Errorf("preview src = %q", src)
	}
}

func TestIndustriesFindings(t *testing.T) {
	doc := renderTab(t, view.TabIndustries)
	text := doc.Find(".findings").Text()
	if !strings.Contains(text, "44,800") || !strings.Contains(text, "Contracting: Manufacturing") {
		t.Errorf("industry findings = %q", text)
	}
}

func TestInvestmentsFromPhasedSections(t *testing.T) {
	content, err := LoadContent()
	if err != nil {
		t.Fatal(err)
	}
	items := content.Investments()
	if len(items) != 7 {
		t.Fatalf("got %d investments, want 7 (unphased university-goal cards excluded)", len(items))
	}
	if items[0].Phase != cost.PhasePriority || items[6].Phase != cost.PhaseFuture {
		t.Errorf("phases = %s .. %s", items[0].Phase, items[6].Phase)
	}
}

func TestParseContentRejectsUnknownPhase(t *testing.T) {
	data := []byte(`
tabs:
  summary:
    sections:
      - title: Someday
        phase: later
`)
	if _, err := ParseContent(data); err == nil || !strings.Contains(err.Error(), `unknown phase "later"`) {
		t.Errorf("err = %v, want unknown phase", err)
	}
}
