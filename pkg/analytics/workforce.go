package analytics

import "github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"

// resolveQualifications reads the overall targets off the qualification
// demand table and splits the final need using the gap split for the same
// year.
func resolveQualifications(points []series.QualificationPoint, splits []series.GapSplit, ramp []series.RampUpPoint, milestone series.GapAnalysis) QualificationFindings {
	var f QualificationFindings
	if len(points) > 0 {
		first, last := points[0], points[len(points)-1]
		f.CurrentRate = roundInt(first.QualificationRate * 100)
		f.TargetRate = roundInt(last.QualificationRate * 100)
		f.GapPoints = f.TargetRate - f.CurrentRate
		f.TargetYear = last.Year
		f.TotalNeeded = last.CumulativeQualifications
	}

	if len(splits) > 0 {
		final := splits[len(splits)-1]
		f.ExistingGap = final.ExistingWorkers
		f.NewEntrants = final.NewWorkers
		f.ExistingGapShare = percentOf(final.ExistingWorkers, final.Total())
		f.NewEntrantsShare = percentOf(final.NewWorkers, final.Total())
	}

	for _, p := range ramp {
		if p.AnnualQualificationsNeeded > f.PeakAnnual {
			f.PeakAnnual = p.AnnualQualificationsNeeded
			f.PeakYear = p.Year
		}
	}

	f.MilestoneYear = milestone.MilestoneYear
	f.MilestoneTotal = milestone.TotalNeed
	for _, s := range splits {
		if s.Year == milestone.MilestoneYear {
			f.MilestoneExisting = s.ExistingWorkers
			f.MilestoneNewEntrant = s.NewWorkers
		}
	}
	return f
}

func resolveBreakdown(id string, rows []series.CategoryRow) BreakdownTotals {
	t := BreakdownTotals{Series: id, Categories: len(rows)}
	for _, r := range rows {
		t.Total += r.Value()
		t.Growth += r.Growth
		t.Retirements += r.Retirements
		if r.Growth < 0 {
			t.Contracting = append(t.Contracting, r.Name)
		}
	}
	return t
}
