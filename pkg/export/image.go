package export

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/format"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

// ImageOptions sizes a chart preview in pixels.
type ImageOptions struct {
	Width  int
	Height int
}

// WriteImage renders a static preview of one chart. Composed charts are
// drawn as lines, with right-axis marks on the secondary axis.
func WriteImage(w io.Writer, c *view.ChartSpec, f Format, opts ImageOptions) error {
	var provider chart.RendererProvider
	switch f {
	case FormatPNG:
		provider = chart.PNG
	case FormatSVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("%s is not an image format: %w", f, ErrUnsupported)
	}
	if len(c.Data) == 0 || len(c.Marks) == 0 {
		return fmt.Errorf("chart %s has nothing to draw", c.ID)
	}

	var err error
	switch {
	case c.Kind == view.KindPie:
		err = pieChart(c, opts).Render(provider, w)
	case c.Kind == view.KindBar && c.Stacked():
		err = stackedBarChart(c, opts).Render(provider, w)
	case c.Kind == view.KindBar:
		err = barChart(c, opts).Render(provider, w)
	case c.Kind == view.KindLine || c.Kind == view.KindComposed:
		err = lineChart(c, opts).Render(provider, w)
	default:
		return fmt.Errorf("chart kind %q: %w", c.Kind, ErrUnsupported)
	}
	if err != nil {
		return fmt.Errorf("rendering chart %s: %w", c.ID, err)
	}
	return nil
}

func color(hex string) drawing.Color {
	if hex == "" {
		return chart.ColorBlue
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func fill(hex string) chart.Style {
	return chart.Style{FillColor: color(hex), StrokeColor: color(hex), StrokeWidth: 1}
}

func yearFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(f))
	}
	return ""
}

func countFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return format.Count(f)
	}
	return ""
}

// valueRange spans zero to just above the largest plotted value.
func valueRange(c *view.ChartSpec, marks []view.Mark) *chart.ContinuousRange {
	max := 0.0
	for _, row := range c.Data {
		for _, m := range marks {
			max = math.Max(max, row.Values[m.Field])
		}
	}
	if max == 0 {
		max = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: max * 1.1}
}

func lineChart(c *view.ChartSpec, opts ImageOptions) chart.Chart {
	xs := make([]float64, len(c.Data))
	for i, row := range c.Data {
		x, err := strconv.ParseFloat(row.Key, 64)
		if err != nil {
			x = float64(i)
		}
		xs[i] = x
	}

	var left, right []view.Mark
	var drawn []chart.Series
	for _, m := range c.Marks {
		ys := make([]float64, len(c.Data))
		for i, row := range c.Data {
			ys[i] = row.Values[m.Field]
		}
		s := chart.ContinuousSeries{
			Name:    m.Label,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: color(m.Color), StrokeWidth: 2},
		}
		if m.Axis == view.AxisRight {
			s.YAxis = chart.YAxisSecondary
			right = append(right, m)
		} else {
			left = append(left, m)
		}
		drawn = append(drawn, s)
	}

	ch := chart.Chart{
		Title:  c.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  chart.XAxis{ValueFormatter: yearFormatter},
		YAxis:  chart.YAxis{ValueFormatter: countFormatter, Range: valueRange(c, left)},
		Series: drawn,
	}
	if len(right) > 0 {
		ch.YAxisSecondary = chart.YAxis{Range: valueRange(c, right)}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

func barChart(c *view.ChartSpec, opts ImageOptions) chart.BarChart {
	m := c.Marks[0]
	bars := make([]chart.Value, 0, len(c.Data))
	for _, row := range c.Data {
		bars = append(bars, chart.Value{
			Label: row.Key,
			Value: row.Values[m.Field],
			Style: fill(m.Color),
		})
	}
	return chart.BarChart{
		Title:    c.Title,
		Width:    opts.Width,
		Height:   opts.Height,
		BarWidth: barWidth(opts.Width, len(bars)),
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{ValueFormatter: countFormatter, Range: valueRange(c, c.Marks[:1])},
		Bars:  bars,
	}
}

func stackedBarChart(c *view.ChartSpec, opts ImageOptions) chart.StackedBarChart {
	bars := make([]chart.StackedBar, 0, len(c.Data))
	for _, row := range c.Data {
		sb := chart.StackedBar{Name: row.Key, Width: barWidth(opts.Width, len(c.Data))}
		for _, m := range c.Marks {
			// Negative parts cannot be stacked; they are drawn as zero.
			v := math.Max(row.Values[m.Field], 0)
			sb.Values = append(sb.Values, chart.Value{Label: m.Label, Value: v, Style: fill(m.Color)})
		}
		bars = append(bars, sb)
	}
	return chart.StackedBarChart{
		Title:  c.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}
}

func pieChart(c *view.ChartSpec, opts ImageOptions) chart.PieChart {
	m := c.Marks[0]
	values := make([]chart.Value, 0, len(c.Data))
	for _, row := range c.Data {
		label := row.Label
		if label == "" {
			label = row.Key
		}
		values = append(values, chart.Value{Label: label, Value: row.Values[m.Field], Style: fill(row.Color)})
	}
	return chart.PieChart{
		Title:  c.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Values: values,
	}
}

// barWidth shares the canvas between n bars, leaving room for spacing.
func barWidth(width, n int) int {
	if n == 0 {
		return 0
	}
	w := width / (n * 2)
	if w < 8 {
		return 8
	}
	return w
}
