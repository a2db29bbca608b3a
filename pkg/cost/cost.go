// Package cost rolls up the costed investments listed on the dashboard and
// relates them to the qualifications they are meant to deliver.
package cost

import (
	"math"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/analytics"
)

// Phase groups investments by when they are funded.
type Phase string

const (
	PhasePriority Phase = "priority"
	PhaseFuture   Phase = "future"
)

// Phases lists the phases in funding order.
var Phases = []Phase{PhasePriority, PhaseFuture}

// Item is one costed investment. CostM is in millions of dollars.
type Item struct {
	Title string  `json:"title" yaml:"title"`
	Phase Phase   `json:"phase" yaml:"phase"`
	CostM float64 `json:"cost_m" yaml:"cost_m"`
}

// Breakdown totals the items of one phase.
type Breakdown struct {
	Phase  Phase    `json:"phase" yaml:"phase"`
	Items  []string `json:"items" yaml:"items"`
	TotalM float64  `json:"total_m" yaml:"total_m"`
}

// Report is the complete investment rollup.
type Report struct {
	Phases []Breakdown `json:"phases" yaml:"phases"`

	Summary struct {
		TotalM           float64 `json:"total_m" yaml:"total_m"`
		// PerQualification is dollars per new university qualification.
		PerQualification float64 `json:"per_qualification" yaml:"per_qualification"`
		// PerAnnualPlace is dollars per place of average annual production.
		PerAnnualPlace   float64 `json:"per_annual_place" yaml:"per_annual_place"`
	} `json:"summary" yaml:"summary"`
}

// Estimate totals items by phase. Items with an unknown phase or no cost are
// skipped. Unit costs are left at zero when u has nothing to divide by.
func Estimate(items []Item, u analytics.UniversityFindings) *Report {
	report := &Report{}

	byPhase := make(map[Phase]*Breakdown, len(Phases))
	for _, p := range Phases {
		report.Phases = append(report.Phases, Breakdown{Phase: p, Items: []string{}})
	}
	for i := range report.Phases {
		byPhase[report.Phases[i].Phase] = &report.Phases[i]
	}

	for _, it := range items {
		b, ok := byPhase[it.Phase]
		if !ok || it.CostM <= 0 {
			continue
		}
		b.Items = append(b.Items, it.Title)
		b.TotalM += it.CostM
		report.Summary.TotalM += it.CostM
	}

	dollars := report.Summary.TotalM * 1_000_000
	if u.NewNeeded > 0 {
		report.Summary.PerQualification = math.Round(dollars / float64(u.NewNeeded))
	}
	if u.AnnualAverage > 0 {
		report.Summary.PerAnnualPlace = math.Round(dollars / float64(u.AnnualAverage))
	}
	return report
}

// Phase returns the breakdown for p.
func (r *Report) Phase(p Phase) (Breakdown, bool) {
	for _, b := range r.Phases {
		if b.Phase == p {
			return b, true
		}
	}
	return Breakdown{}, false
}
