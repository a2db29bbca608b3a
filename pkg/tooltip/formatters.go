package tooltip

import (
	"fmt"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/format"
)

// HeaderMode selects how the workforce-flow tooltip fills its header.
type HeaderMode string

const (
	// HeaderCompat reproduces the published dashboard: the header carries a
	// figure only when the label is exactly flowHeaderMatch.
	HeaderCompat HeaderMode = "compat"
	// HeaderContextual always shows the hovered year.
	HeaderContextual HeaderMode = "contextual"
)

const (
	flowHeaderPrefix = "Total workers 2024-2034: "
	flowHeaderMatch  = "Working Age Population"
	flowHeaderTotal  = 130909
)

// Series shows a year header and one line per active series.
var Series = FormatterFunc(func(p Point) (Display, bool) {
	if p.empty() {
		return Display{}, false
	}
	return Display{Header: "Year: " + p.Label, Lines: entryLines(p, ": ")}, true
})

// Breakdown shows one category row and its growth/retirements decomposition.
var Breakdown = FormatterFunc(func(p Point) (Display, bool) {
	if p.empty() || p.Entries[0].Payload == nil {
		return Display{}, false
	}
	row := p.Entries[0].Payload
	value, ok1 := row.Value("value")
	growth, ok2 := row.Value("growth")
	retirements, ok3 := row.Value("retirements")
	if !ok1 || !ok2 || !ok3 {
		return Display{}, false
	}
	return Display{
		Header: row.Key,
		Lines: []Line{
			{Text: "Total new workers needed: " + format.Count(value)},
			{Text: "From growth: " + format.Count(growth)},
			{Text: "From retirements: " + format.Count(retirements)},
		},
	}, true
})

// Default mirrors the renderer's built-in tooltip: label header and
// "name : value" lines.
var Default = FormatterFunc(func(p Point) (Display, bool) {
	if p.empty() {
		return Display{}, false
	}
	return Display{Header: p.Label, Lines: entryLines(p, " : ")}, true
})

// Pie has no header; slices are identified by their own names.
var Pie = FormatterFunc(func(p Point) (Display, bool) {
	if p.empty() {
		return Display{}, false
	}
	return Display{Lines: entryLines(p, " : ")}, true
})

// WorkforceFlow is the series tooltip with the workforce header.
func WorkforceFlow(mode HeaderMode) Formatter {
	return FormatterFunc(func(p Point) (Display, bool) {
		if p.empty() {
			return Display{}, false
		}
		header := flowHeaderPrefix
		switch mode {
		case HeaderContextual:
			header = "Year: " + p.Label
		default:
			if p.Label == flowHeaderMatch {
				header += format.Count(flowHeaderTotal)
			}
		}
		return Display{Header: header, Lines: entryLines(p, ": ")}, true
	})
}

func entryLines(p Point, sep string) []Line {
	lines := make([]Line, 0, len(p.Entries))
	for _, e := range p.Entries {
		lines = append(lines, Line{
			Text:  fmt.Sprintf("%s%s%s", e.Name, sep, format.Value(e.Value, e.Unit)),
			Color: e.Color,
		})
	}
	return lines
}
