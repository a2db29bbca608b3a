package shell

import (
	"fmt"
	"strings"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/analytics"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/cost"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/format"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

// Finding is one labelled key figure.
type Finding struct {
	Label string
	Value string
}

// FindingGroup is a titled list of key figures.
type FindingGroup struct {
	Title string
	Items []Finding
}

func count(n int) string { return format.Count(float64(n)) }

func universityGroup(title string, u analytics.UniversityFindings) FindingGroup {
	return FindingGroup{Title: title, Items: []Finding{
		{"Current university qualification rate (25-35 cohort)", fmt.Sprintf("%d%%", u.CurrentRate)},
		{fmt.Sprintf("Target university qualification rate (%d)", u.TargetYear), fmt.Sprintf("%d%% of 25-35 age cohort", u.TargetRate)},
		{"University qualification gap", fmt.Sprintf("%d percentage points below target", u.GapPoints)},
		{"Currently university-qualified young adults", fmt.Sprintf("%s (of %s in this age group)", count(u.CurrentQualified), count(u.CurrentCohort))},
		{fmt.Sprintf("Target university-qualified young adults (%d)", u.TargetYear), fmt.Sprintf("%s (of %s projected)", count(u.TargetQualified), count(u.TargetCohort))},
		{fmt.Sprintf("NEW university qualifications needed by %d", u.TargetYear), count(u.NewNeeded)},
		{"Annual NEW university qualifications required", fmt.Sprintf("%s per year (average)", count(u.AnnualAverage))},
	}}
}

func qualificationGroup(f *analytics.KeyFindings) FindingGroup {
	q := f.Qualifications
	target := f.University.TargetYear
	return FindingGroup{Title: "Overall Post-Secondary Qualification Targets", Items: []Finding{
		{fmt.Sprintf("Current qualification rate (%d)", f.University.BaseYear), fmt.Sprintf("%d%% post-secondary attainment", q.CurrentRate)},
		{fmt.Sprintf("Target qualification rate (%d)", target), fmt.Sprintf("%d%% post-secondary attainment", q.TargetRate)},
		{fmt.Sprintf("Total qualifications needed by %d", target), count(q.TotalNeeded) + " new qualifications"},
		{"Qualifications to close existing gap", fmt.Sprintf("%s qualifications (%d%% of total need)", count(q.ExistingGap), q.ExistingGapShare)},
		{"Qualifications for new workforce entrants", fmt.Sprintf("%s qualifications (%d%% of total need)", count(q.NewEntrants), q.NewEntrantsShare)},
		{fmt.Sprintf("Annual qualification production needed by %d", q.PeakYear), count(q.PeakAnnual) + " per year"},
		{fmt.Sprintf("%d milestone target", q.MilestoneYear), fmt.Sprintf("%s new qualifications (%s for existing gap, %s for new entrants)",
			count(q.MilestoneTotal), count(q.MilestoneExisting), count(q.MilestoneNewEntrant))},
	}}
}

func breakdownGroup(title string, t analytics.BreakdownTotals) FindingGroup {
	g := FindingGroup{Title: title, Items: []Finding{
		{fmt.Sprintf("Total new workers needed (top %d)", t.Categories), count(t.Total)},
		{"From growth", count(t.Growth)},
		{"From retirements", count(t.Retirements)},
	}}
	if len(t.Contracting) > 0 {
		g.Items = append(g.Items, Finding{"Contracting", strings.Join(t.Contracting, ", ")})
	}
	return g
}

var phaseLabels = map[cost.Phase]string{
	cost.PhasePriority: "Priority investments (2025-2028)",
	cost.PhaseFuture:   "Future phased investments",
}

func investmentGroup(r *cost.Report) FindingGroup {
	g := FindingGroup{Title: "Investment Overview"}
	for _, b := range r.Phases {
		g.Items = append(g.Items, Finding{phaseLabels[b.Phase], fmt.Sprintf("%s across %d initiatives", format.Money(b.TotalM), len(b.Items))})
	}
	g.Items = append(g.Items,
		Finding{"Total investment", format.Money(r.Summary.TotalM)},
		Finding{"Per new university qualification", "$" + count(int(r.Summary.PerQualification))},
	)
	return g
}

// findingsFor returns the key figures shown on a tab.
func findingsFor(tab string, f *analytics.KeyFindings, inv *cost.Report) []FindingGroup {
	if f == nil {
		return nil
	}
	switch tab {
	case view.TabSummary:
		groups := []FindingGroup{
			universityGroup("Key Findings: Higher Education Attainment", f.University),
			qualificationGroup(f),
		}
		if inv != nil {
			groups = append(groups, investmentGroup(inv))
		}
		return groups
	case view.TabPopulation:
		p := f.Population
		return []FindingGroup{{Title: "Population Analysis", Items: []Finding{
			{fmt.Sprintf("Population %d-%d", p.StartYear, p.EndYear),
				fmt.Sprintf("%s to %s (%d%% increase)", count(p.StartPopulation), count(p.EndPopulation), p.GrowthPercent)},
			{"Working age population (15-60)",
				fmt.Sprintf("%s to %s (about %d%% of the population)", count(p.StartWorkingAge), count(p.EndWorkingAge), p.WorkingAgeShare)},
			{"Net working age change", count(p.NetWorkforceChange)},
		}}}
	case view.TabQualifications, view.TabAttainmentGap:
		return []FindingGroup{qualificationGroup(f)}
	case view.TabUniversityGoal:
		return []FindingGroup{universityGroup("University Attainment Overview", f.University)}
	case view.TabIndustries:
		return []FindingGroup{breakdownGroup("Industry Totals", f.Industries)}
	case view.TabOccupations:
		return []FindingGroup{breakdownGroup("Occupation Totals", f.Occupations)}
	}
	return nil
}
