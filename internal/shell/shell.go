// Package shell composes the dashboard page: the tab navigation, the
// active tab's chart containers and its narrative copy.
package shell

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/analytics"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/cost"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/export"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/format"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tabs"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

//go:embed page.html
var pageHTML string

// Shell renders dashboard pages.
type Shell struct {
	tmpl       *template.Template
	content    *Content
	findings   *analytics.KeyFindings
	investment *cost.Report
}

// New builds a shell over the embedded narrative. findings may be nil, in
// which case no key figures are shown.
func New(findings *analytics.KeyFindings) (*Shell, error) {
	content, err := LoadContent()
	if err != nil {
		return nil, err
	}
	return NewWithContent(content, findings)
}

// NewWithContent builds a shell over the given narrative.
func NewWithContent(content *Content, findings *analytics.KeyFindings) (*Shell, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"money": format.Money,
	}).Parse(pageHTML)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	sh := &Shell{tmpl: tmpl, content: content, findings: findings}
	if findings != nil {
		sh.investment = cost.Estimate(content.Investments(), findings.University)
	}
	return sh, nil
}

// Investment returns the rollup of the phased investment cards, or nil when
// the shell has no findings.
func (s *Shell) Investment() *cost.Report { return s.investment }

// Page is the data behind one rendered page.
type Page struct {
	Title    string
	Subtitle string
	Heading  string
	Footer   Footer
	Tabs     []tabs.Tab
	Active   string
	View     TabNarrative
	Findings []FindingGroup
	Charts   []ChartBlock
	Exports  []ExportLink
}

// ChartBlock is the container an external renderer fills in. Spec is the
// JSON chart spec.
type ChartBlock struct {
	ID      string
	Title   string
	Kind    view.Kind
	Spec    string
	Preview string
}

type ExportLink struct {
	Label string
	Href  string
}

// Page composes the page for the active view. Only v's charts are emitted.
func (s *Shell) Page(tabList []tabs.Tab, v *view.View) (*Page, error) {
	p := &Page{
		Title:    s.content.Title,
		Subtitle: s.content.Subtitle,
		Heading:  s.content.Heading,
		Footer:   s.content.Footer,
		Tabs:     tabList,
		Active:   v.ID,
		View:     s.content.Tabs[v.ID],
		Findings: findingsFor(v.ID, s.findings, s.investment),
		Exports: []ExportLink{
			{Label: "Download CSV", Href: "/api/export/" + string(export.FormatCSV)},
			{Label: "Download PDF", Href: "/api/export/" + string(export.FormatPDF)},
		},
	}
	if p.View.Heading == "" {
		p.View.Heading = v.Title
	}
	for i := range v.Charts {
		c := &v.Charts[i]
		spec, err := json.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("encoding chart %s: %w", c.ID, err)
		}
		p.Charts = append(p.Charts, ChartBlock{
			ID:      c.ID,
			Title:   c.Title,
			Kind:    c.Kind,
			Spec:    string(spec),
			Preview: "/api/export/" + string(export.FormatPNG) + "?chart=" + c.ID,
		})
	}
	return p, nil
}

// Render writes the page as HTML.
func (s *Shell) Render(w io.Writer, p *Page) error {
	if err := s.tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
