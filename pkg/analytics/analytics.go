package analytics

import (
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/validation"
)

// KeyFindings holds the executive-summary figures derived from a catalog.
type KeyFindings struct {
	Region         string                `json:"region" yaml:"region"`
	Population     PopulationFindings    `json:"population" yaml:"population"`
	University     UniversityFindings    `json:"university" yaml:"university"`
	Qualifications QualificationFindings `json:"qualifications" yaml:"qualifications"`
	Industries     BreakdownTotals       `json:"industries" yaml:"industries"`
	Occupations    BreakdownTotals       `json:"occupations" yaml:"occupations"`
}

// Resolve derives the key findings from the catalog and cross-checks them
// against the authored summary datasets.
// Returns the findings and a validation report.
func Resolve(c *series.Catalog) (*KeyFindings, *validation.Report) {
	report := validation.NewReport()

	// 1. Population and workforce flow
	population := resolvePopulation(c.Population(), c.Flow())

	// 2. University sub-goal
	university := resolveUniversity(c.Cohort())

	// 3. Post-secondary qualifications
	quals := resolveQualifications(c.Qualifications(), c.GapSplits(), c.RampUp(), c.Gaps()[0])

	// 4. VSP breakdowns
	industries := resolveBreakdown(series.IDIndustries, c.Industries())
	occupations := resolveBreakdown(series.IDOccupations, c.Occupations())

	findings := &KeyFindings{
		Region:         c.Region(),
		Population:     population,
		University:     university,
		Qualifications: quals,
		Industries:     industries,
		Occupations:    occupations,
	}

	// 5. Cross-series consistency
	validateFindings(c, findings, report)

	return findings, report
}

// percentOf returns part/whole as a whole percentage, or 0 for an empty whole.
func percentOf(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return roundInt(float64(part) * 100 / float64(whole))
}
