package validation

import (
	"fmt"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
)

// ValidateCatalog checks every dataset of c against the data-model
// invariants and the cross-series consistency the charts depend on.
func ValidateCatalog(c *series.Catalog) *Report {
	r := NewReport()

	validatePopulation(c.Population(), r)
	validateQualifications(c.Qualifications(), r)
	validateFlow(c, r)
	validateBreakdown(series.IDIndustries, c.Industries(), r)
	validateBreakdown(series.IDOccupations, c.Occupations(), r)
	for _, g := range c.Gaps() {
		validateGap(g, r)
	}
	validateRampUp(c.RampUp(), r)
	validateMix(c.Mix(), r)
	validateAttainment(c.Attainment(), r)
	validateMilestones(c, r)

	return r
}

func checkYears(id string, years []int, r *Report) {
	for i := 1; i < len(years); i++ {
		if years[i] <= years[i-1] {
			r.AddError(Result{
				Level:       LevelSeries,
				Message:     fmt.Sprintf("%s: year %d follows %d; years must be strictly increasing", id, years[i], years[i-1]),
				Path:        fmt.Sprintf("%s[%d].year", id, i),
				ActualValue: years[i],
				Expected:    fmt.Sprintf("> %d", years[i-1]),
			})
		}
	}
}

func checkNonNegative(path string, v int, r *Report) {
	if v < 0 {
		r.AddError(Result{
			Level:       LevelSeries,
			Message:     fmt.Sprintf("%s must be non-negative", path),
			Path:        path,
			ActualValue: v,
			Expected:    ">= 0",
		})
	}
}

func validatePopulation(points []series.PopulationPoint, r *Report) {
	years := make([]int, len(points))
	for i, p := range points {
		years[i] = p.Year
		path := fmt.Sprintf("%s[%d]", series.IDPopulation, p.Year)
		checkNonNegative(path+".totalPopulation", p.TotalPopulation, r)
		checkNonNegative(path+".workingAgePopulation", p.WorkingAgePopulation, r)
		if p.WorkingAgePopulation > p.TotalPopulation {
			r.AddError(Result{
				Level:        LevelSeries,
				Message:      fmt.Sprintf("working-age population %d exceeds total %d in %d", p.WorkingAgePopulation, p.TotalPopulation, p.Year),
				Path:         path + ".workingAgePopulation",
				ActualValue:  p.WorkingAgePopulation,
				Expected:     fmt.Sprintf("<= %d", p.TotalPopulation),
				ConflictWith: path + ".totalPopulation",
			})
		}
	}
	checkYears(series.IDPopulation, years, r)
}

func validateQualifications(points []series.QualificationPoint, r *Report) {
	years := make([]int, len(points))
	for i, p := range points {
		years[i] = p.Year
		path := fmt.Sprintf("%s[%d]", series.IDQualifications, p.Year)
		checkNonNegative(path+".qualifiedWorkersNeeded", p.QualifiedWorkersNeeded, r)
		checkNonNegative(path+".cumulativeQualifications", p.CumulativeQualifications, r)
		checkNonNegative(path+".estimatedEmployment", p.EstimatedEmployment, r)

		if p.QualificationRate < 0 || p.QualificationRate > 1 {
			r.AddError(Result{
				Level:       LevelSeries,
				Message:     fmt.Sprintf("qualification rate %.2f in %d is not a fraction", p.QualificationRate, p.Year),
				Path:        path + ".qualificationRate",
				ActualValue: p.QualificationRate,
				Expected:    "0 <= rate <= 1",
				Suggestions: []string{"Store rates as fractions; formatters scale them to whole percentages"},
			})
		}

		if i == 0 {
			continue
		}
		prev := points[i-1]
		if p.CumulativeQualifications < prev.CumulativeQualifications {
			r.AddError(Result{
				Level:       LevelSeries,
				Message:     fmt.Sprintf("cumulative qualifications fall from %d (%d) to %d (%d)", prev.CumulativeQualifications, prev.Year, p.CumulativeQualifications, p.Year),
				Path:        path + ".cumulativeQualifications",
				ActualValue: p.CumulativeQualifications,
				Expected:    fmt.Sprintf(">= %d", prev.CumulativeQualifications),
			})
		}
		if p.QualificationRate < prev.QualificationRate {
			r.AddWarning(Result{
				Level:       LevelSeries,
				Message:     fmt.Sprintf("qualification rate drops from %.2f (%d) to %.2f (%d)", prev.QualificationRate, prev.Year, p.QualificationRate, p.Year),
				Path:        path + ".qualificationRate",
				ActualValue: p.QualificationRate,
				Expected:    fmt.Sprintf(">= %.2f", prev.QualificationRate),
			})
		}
	}
	checkYears(series.IDQualifications, years, r)
}

// validateFlow checks the typed points and the rendered table, so a drift
// between the two is caught as well.
func validateFlow(c *series.Catalog, r *Report) {
	points := c.Flow()
	years := make([]int, len(points))
	for i, p := range points {
		years[i] = p.Year
		path := fmt.Sprintf("%s[%d]", series.IDWorkforceFlow, p.Year)
		checkNonNegative(path+".entrants", p.Entrants, r)
		checkNonNegative(path+".exits", p.Exits, r)
	}
	checkYears(series.IDWorkforceFlow, years, r)

	table, err := c.Series(series.IDWorkforceFlow)
	if err != nil {
		r.AddError(Result{Level: LevelSeries, Message: err.Error(), Path: series.IDWorkforceFlow})
		return
	}
	for _, rec := range table.Records {
		entrants, _ := rec.Value("entrants")
		exits, _ := rec.Value("exits")
		net, _ := rec.Value("netChange")
		if net != entrants-exits {
			r.AddError(Result{
				Level:       LevelSeries,
				Message:     fmt.Sprintf("net change %.0f in %s is not entrants - exits", net, rec.Key),
				Path:        fmt.Sprintf("%s[%s].netChange", series.IDWorkforceFlow, rec.Key),
				ActualValue: net,
				Expected:    fmt.Sprintf("%.0f", entrants-exits),
			})
		}
	}
}

func validateBreakdown(id string, rows []series.CategoryRow, r *Report) {
	for i, row := range rows {
		path := fmt.Sprintf("%s[%d]", id, i)
		checkNonNegative(path+".value", row.Value(), r)
		checkNonNegative(path+".retirements", row.Retirements, r)
		if row.Growth < 0 {
			r.AddInfo(Result{
				Level:       LevelSeries,
				Message:     fmt.Sprintf("%s: %s contracts; all new workers replace retirements", id, row.Name),
				Path:        path + ".growth",
				ActualValue: row.Growth,
			})
		}
	}
	if !series.IsSortedByValue(rows) {
		r.AddError(Result{
			Level:       LevelSeries,
			Message:     fmt.Sprintf("%s must be authored in descending value order", id),
			Path:        id,
			Suggestions: []string{"Reorder rows with series.SortByValue"},
		})
	}
}

func validateGap(g series.GapAnalysis, r *Report) {
	for i, s := range g.Slices {
		checkNonNegative(fmt.Sprintf("%s.slices[%d].value", g.ID, i), s.Value, r)
	}
	if sum := g.Sum(); sum != g.TotalNeed {
		r.AddError(Result{
			Level:       LevelSeries,
			Message:     fmt.Sprintf("%s slices sum to %d, stated %d need is %d", g.ID, sum, g.MilestoneYear, g.TotalNeed),
			Path:        g.ID + ".slices",
			ActualValue: sum,
			Expected:    fmt.Sprintf("%d", g.TotalNeed),
		})
	}
}

func validateRampUp(points []series.RampUpPoint, r *Report) {
	seen := map[int]bool{}
	for _, p := range points {
		checkNonNegative(fmt.Sprintf("%s[%d].annualQualificationsNeeded", series.IDRampUp, p.Year), p.AnnualQualificationsNeeded, r)
		if seen[p.Year] {
			r.AddError(Result{
				Level:       LevelSeries,
				Message:     fmt.Sprintf("planning year %d appears more than once", p.Year),
				Path:        fmt.Sprintf("%s[%d]", series.IDRampUp, p.Year),
				ActualValue: p.Year,
			})
		}
		seen[p.Year] = true
	}
}

func validateMix(rows []series.QualificationMix, r *Report) {
	for _, m := range rows {
		if sum := m.University + m.VET + m.NoQualification; sum != 100 {
			r.AddError(Result{
				Level:       LevelSeries,
				Message:     fmt.Sprintf("qualification mix for %d sums to %d%%", m.Year, sum),
				Path:        fmt.Sprintf("%s[%d]", series.IDQualificationMix, m.Year),
				ActualValue: sum,
				Expected:    "100",
			})
		}
	}
}

func validateAttainment(rows []series.AttainmentLevel, r *Report) {
	for _, a := range rows {
		if a.Percent < 0 || a.Percent > 100 {
			r.AddError(Result{
				Level:       LevelSeries,
				Message:     fmt.Sprintf("%s attainment %d%% is out of range", a.Category, a.Percent),
				Path:        fmt.Sprintf("%s[%s]", series.IDAttainment, a.Category),
				ActualValue: a.Percent,
				Expected:    "0-100",
			})
		}
	}
}

// validateMilestones ties the gap datasets to the qualification demand
// series they were authored from.
func validateMilestones(c *series.Catalog, r *Report) {
	gap := c.Gaps()[0]
	if q, ok := c.QualificationAt(gap.MilestoneYear); ok && q.CumulativeQualifications != gap.TotalNeed {
		r.AddError(Result{
			Level:        LevelCross,
			Message:      fmt.Sprintf("%s need %d differs from cumulative qualifications %d in %d", gap.ID, gap.TotalNeed, q.CumulativeQualifications, gap.MilestoneYear),
			Path:         gap.ID + ".total_need",
			ActualValue:  gap.TotalNeed,
			Expected:     fmt.Sprintf("%d", q.CumulativeQualifications),
			ConflictWith: fmt.Sprintf("%s[%d].cumulativeQualifications", series.IDQualifications, gap.MilestoneYear),
		})
	}

	splits := c.GapSplits()
	for _, s := range splits {
		if s.Year == gap.MilestoneYear && s.Total() != gap.TotalNeed {
			r.AddError(Result{
				Level:        LevelCross,
				Message:      fmt.Sprintf("%q totals %d but the %d need is %d", s.Category, s.Total(), s.Year, gap.TotalNeed),
				Path:         fmt.Sprintf("%s[%s]", series.IDGapSplit, s.Category),
				ActualValue:  s.Total(),
				Expected:     fmt.Sprintf("%d", gap.TotalNeed),
				ConflictWith: gap.ID + ".total_need",
			})
		}
	}

	q := c.Qualifications()
	if len(splits) == 0 || len(q) == 0 {
		return
	}
	final := splits[len(splits)-1]
	if want := q[len(q)-1].CumulativeQualifications; final.Total() != want {
		r.AddError(Result{
			Level:       LevelCross,
			Message:     fmt.Sprintf("%q totals %d but the projection ends at %d cumulative qualifications", final.Category, final.Total(), want),
			Path:        fmt.Sprintf("%s[%s]", series.IDGapSplit, final.Category),
			ActualValue: final.Total(),
			Expected:    fmt.Sprintf("%d", want),
		})
	}
}
