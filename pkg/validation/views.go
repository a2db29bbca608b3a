package validation

import (
	"fmt"
	"slices"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tooltip"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

// ValidateViews checks that every chart binds to a registered series,
// existing fields, declared axes, and a known tooltip formatter.
func ValidateViews(reg *view.Registry, src series.Source, formatters *tooltip.Set) *Report {
	r := NewReport()
	known := src.IDs()

	for _, d := range reg.Descriptors() {
		if len(d.Charts) == 0 {
			r.AddWarning(Result{
				Level:   LevelView,
				Message: fmt.Sprintf("tab %s has no charts", d.ID),
				Path:    d.ID,
			})
		}
		for _, c := range d.Charts {
			path := d.ID + "." + c.ID
			if !slices.Contains(known, c.Series) {
				r.AddError(Result{
					Level:       LevelView,
					Message:     fmt.Sprintf("chart %s reads unregistered series %q", c.ID, c.Series),
					Path:        path + ".series",
					ActualValue: c.Series,
				})
				continue
			}
			s, err := src.Series(c.Series)
			if err != nil {
				r.AddError(Result{Level: LevelView, Message: err.Error(), Path: path + ".series"})
				continue
			}
			validateChart(path, c, s, formatters, r)
		}
	}
	return r
}

func validateChart(path string, c view.Chart, s *series.Series, formatters *tooltip.Set, r *Report) {
	if c.KeyAxis.Field != s.Key.Name {
		r.AddError(Result{
			Level:       LevelView,
			Message:     fmt.Sprintf("key axis field %q does not match series key %q", c.KeyAxis.Field, s.Key.Name),
			Path:        path + ".key_axis.field",
			ActualValue: c.KeyAxis.Field,
			Expected:    s.Key.Name,
		})
	}
	if len(c.Marks) == 0 {
		r.AddError(Result{Level: LevelView, Message: "chart has no marks", Path: path + ".marks"})
	}
	if c.Kind == view.KindPie && len(c.Marks) != 1 {
		r.AddError(Result{
			Level:       LevelView,
			Message:     "pie charts draw exactly one value field",
			Path:        path + ".marks",
			ActualValue: len(c.Marks),
			Expected:    "1",
		})
	}
	if c.Sort != view.SortAsAuthored {
		r.AddWarning(Result{
			Level:       LevelView,
			Message:     "chart does not pin authored row order",
			Path:        path + ".sort",
			ActualValue: c.Sort,
			Expected:    string(view.SortAsAuthored),
		})
	}

	axes := map[string]bool{}
	for _, a := range c.ValueAxes {
		axes[a.ID] = true
	}
	for i, m := range c.Marks {
		mpath := fmt.Sprintf("%s.marks[%d]", path, i)
		if _, ok := s.Field(m.Field); !ok {
			r.AddError(Result{
				Level:       LevelView,
				Message:     fmt.Sprintf("field %q is not in series %s", m.Field, s.ID),
				Path:        mpath + ".field",
				ActualValue: m.Field,
			})
		}
		if c.Kind != view.KindPie && !axes[m.Axis] {
			r.AddError(Result{
				Level:       LevelView,
				Message:     fmt.Sprintf("mark %s uses undeclared axis %q", m.Field, m.Axis),
				Path:        mpath + ".axis",
				ActualValue: m.Axis,
			})
		}
	}

	if _, err := formatters.Lookup(c.Tooltip); err != nil {
		r.AddError(Result{
			Level:       LevelView,
			Message:     err.Error(),
			Path:        path + ".tooltip",
			ActualValue: c.Tooltip,
		})
	}
}
