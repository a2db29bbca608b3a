package analytics

import (
	"math"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
)

func roundInt(v float64) int {
	return int(math.Round(v))
}

// resolvePopulation compares the first and last projection years.
func resolvePopulation(points []series.PopulationPoint, flow []series.FlowPoint) PopulationFindings {
	var f PopulationFindings
	for _, p := range flow {
		f.NetWorkforceChange += p.NetChange()
	}
	if len(points) == 0 {
		return f
	}
	first, last := points[0], points[len(points)-1]
	f.StartYear = first.Year
	f.EndYear = last.Year
	f.StartPopulation = first.TotalPopulation
	f.EndPopulation = last.TotalPopulation
	f.GrowthPercent = percentOf(last.TotalPopulation-first.TotalPopulation, first.TotalPopulation)
	f.StartWorkingAge = first.WorkingAgePopulation
	f.EndWorkingAge = last.WorkingAgePopulation
	f.WorkingAgeShare = percentOf(last.WorkingAgePopulation, last.TotalPopulation)
	return f
}

// resolveUniversity derives the cohort rates and the average annual number of
// new university qualifications needed to reach the target.
func resolveUniversity(c series.UniversityCohort) UniversityFindings {
	f := UniversityFindings{
		BaseYear:         c.BaseYear,
		TargetYear:       c.TargetYear,
		CurrentRate:      percentOf(c.CurrentQualified, c.CurrentSize),
		TargetRate:       percentOf(c.TargetQualified, c.TargetSize),
		CurrentQualified: c.CurrentQualified,
		CurrentCohort:    c.CurrentSize,
		TargetQualified:  c.TargetQualified,
		TargetCohort:     c.TargetSize,
		NewNeeded:        c.TargetQualified - c.CurrentQualified,
	}
	f.GapPoints = f.TargetRate - f.CurrentRate
	if years := c.TargetYear - c.BaseYear; years > 0 {
		f.AnnualAverage = roundInt(float64(f.NewNeeded) / float64(years))
	}
	return f
}
