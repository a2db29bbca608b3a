package shell

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/cost"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

//go:embed content.yaml
var contentYAML []byte

// Content is the narrative copy shown around the charts.
type Content struct {
	Title    string                  `yaml:"title"`
	Subtitle string                  `yaml:"subtitle"`
	Heading  string                  `yaml:"heading"`
	Footer   Footer                  `yaml:"footer"`
	Tabs     map[string]TabNarrative `yaml:"tabs"`
}

type Footer struct {
	Copyright string `yaml:"copyright"`
	Sources   string `yaml:"sources"`
}

// TabNarrative is the copy for one tab.
type TabNarrative struct {
	Heading  string    `yaml:"heading"`
	Sections []Section `yaml:"sections"`
}

// Section is a titled block of paragraphs, bullet items, cards or a table.
// Style "callout" highlights the block. Cards of a section with a Phase are
// counted in the investment rollup.
type Section struct {
	Title      string   `yaml:"title"`
	Style      string   `yaml:"style"`
	Phase      string   `yaml:"phase"`
	Paragraphs []string `yaml:"paragraphs"`
	Items      []string `yaml:"items"`
	Cards      []Card   `yaml:"cards"`
	Table      *Table   `yaml:"table"`
}

// Card describes an investment or program. CostM is in millions of dollars;
// zero means no cost is shown.
type Card struct {
	Title  string   `yaml:"title"`
	CostM  float64  `yaml:"cost_m"`
	Body   string   `yaml:"body"`
	Points []string `yaml:"points"`
}

type Table struct {
	Headers []string   `yaml:"headers"`
	Rows    [][]string `yaml:"rows"`
}

// LoadContent parses the embedded narrative.
func LoadContent() (*Content, error) {
	return ParseContent(contentYAML)
}

// ParseContent parses narrative YAML.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing narrative YAML: %w", err)
	}
	for id, t := range c.Tabs {
		for i, row := range tableRows(t) {
			if row.want != row.got {
				return nil, fmt.Errorf("tab %s: table row %d has %d cells, want %d", id, i, row.got, row.want)
			}
		}
		for _, sec := range t.Sections {
			if sec.Phase != "" && !slices.Contains(cost.Phases, cost.Phase(sec.Phase)) {
				return nil, fmt.Errorf("tab %s: section %q has unknown phase %q", id, sec.Title, sec.Phase)
			}
		}
	}
	return &c, nil
}

// Investments collects the cards of phased sections in tab order.
func (c *Content) Investments() []cost.Item {
	var items []cost.Item
	for _, id := range view.Default().IDs() {
		for _, sec := range c.Tabs[id].Sections {
			if sec.Phase == "" {
				continue
			}
			for _, card := range sec.Cards {
				items = append(items, cost.Item{Title: card.Title, Phase: cost.Phase(sec.Phase), CostM: card.CostM})
			}
		}
	}
	return items
}

type rowWidth struct{ got, want int }

func tableRows(t TabNarrative) []rowWidth {
	var rows []rowWidth
	for _, s := range t.Sections {
		if s.Table == nil {
			continue
		}
		for _, r := range s.Table.Rows {
			rows = append(rows, rowWidth{got: len(r), want: len(s.Table.Headers)})
		}
	}
	return rows
}
