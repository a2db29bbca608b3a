// Package format renders numbers the way the dashboard displays them.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
)

// Count formats v as a rounded integer with comma group separators.
func Count(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// Scale converts a fraction to a whole percentage.
func Scale(fraction float64) float64 {
	return math.Round(fraction * 100)
}

// Percent formats a fraction as a whole percentage, e.g. 0.55 -> "55%".
func Percent(fraction float64) string {
	return Count(Scale(fraction)) + "%"
}

// Value formats v according to the unit declared for its field.
func Value(v float64, unit series.Unit) string {
	switch unit {
	case series.UnitRatio:
		return Percent(v)
	case series.UnitPercent:
		return Count(v) + "%"
	default:
		return Count(v)
	}
}

// SliceLabel is the pie slice label: the name and its share of total.
func SliceLabel(name string, value, total float64) string {
	if total == 0 {
		return fmt.Sprintf("%s: 0%%", name)
	}
	return fmt.Sprintf("%s: %.0f%%", name, value/total*100)
}

// Money formats a dollar amount in millions the way investment headings do.
func Money(millions float64) string {
	if millions >= 1000 {
		return fmt.Sprintf("$%.2fB", millions/1000)
	}
	return fmt.Sprintf("$%sM", humanize.Ftoa(millions))
}
