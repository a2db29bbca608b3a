package analytics

import (
	"fmt"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/validation"
)

// validateFindings checks that the derived figures agree with the datasets
// that state the same numbers directly.
func validateFindings(c *series.Catalog, f *KeyFindings, report *validation.Report) {
	validateAttainmentRates(c.Attainment(), f, report)
	validateMixEndpoints(c.Mix(), f, report)
	validateUniversityShare(c, f, report)
	validateRampUpCoverage(c.RampUp(), f, report)
	validateContracting(f, report)
}

func validateAttainmentRates(levels []series.AttainmentLevel, f *KeyFindings, report *validation.Report) {
	if len(levels) < 2 {
		report.AddWarning(validation.Result{
			Level:    validation.LevelCross,
			Message:  "attainment comparison needs a current and a target level",
			Path:     series.IDAttainment,
			Expected: "2 levels",
		})
		return
	}
	checks := []struct {
		level   series.AttainmentLevel
		derived int
		field   string
	}{
		{levels[0], f.University.CurrentRate, "current"},
		{levels[len(levels)-1], f.University.TargetRate, "target"},
	}
	for _, ch := range checks {
		if ch.level.Percent != ch.derived {
			report.AddError(validation.Result{
				Level:        validation.LevelCross,
				Message:      fmt.Sprintf("%s university rate %d%% disagrees with cohort figures (%d%%)", ch.field, ch.level.Percent, ch.derived),
				Path:         fmt.Sprintf("%s[%s]", series.IDAttainment, ch.level.Category),
				ActualValue:  ch.level.Percent,
				Expected:     fmt.Sprintf("%d%%", ch.derived),
				ConflictWith: "university cohort",
			})
		}
	}
}

func validateMixEndpoints(mix []series.QualificationMix, f *KeyFindings, report *validation.Report) {
	if len(mix) == 0 {
		return
	}
	first, last := mix[0], mix[len(mix)-1]
	if first.University != f.University.CurrentRate || last.University != f.University.TargetRate {
		report.AddWarning(validation.Result{
			Level:       validation.LevelCross,
			Message:     fmt.Sprintf("qualification mix university share runs %d%%..%d%%, cohort figures give %d%%..%d%%", first.University, last.University, f.University.CurrentRate, f.University.TargetRate),
			Path:        series.IDQualificationMix,
			ActualValue: []int{first.University, last.University},
			Suggestions: []string{"Align the first and last mix rows with the university cohort rates"},
		})
	}
	post := first.University + first.VET
	if post != f.Qualifications.CurrentRate {
		report.AddWarning(validation.Result{
			Level:        validation.LevelCross,
			Message:      fmt.Sprintf("%d post-secondary share %d%% differs from the qualification rate %d%%", first.Year, post, f.Qualifications.CurrentRate),
			Path:         fmt.Sprintf("%s[%d]", series.IDQualificationMix, first.Year),
			ActualValue:  post,
			Expected:     fmt.Sprintf("%d%%", f.Qualifications.CurrentRate),
			ConflictWith: series.IDQualifications,
		})
	}
}

// validateUniversityShare flags a university gap larger than the overall
// qualification gap for the same milestone.
func validateUniversityShare(c *series.Catalog, f *KeyFindings, report *validation.Report) {
	gaps := c.Gaps()
	qual, uni := gaps[0], gaps[1]
	if qual.MilestoneYear == uni.MilestoneYear && uni.TotalNeed > qual.TotalNeed {
		report.AddError(validation.Result{
			Level:        validation.LevelCross,
			Message:      fmt.Sprintf("university need %d exceeds total qualification need %d for %d", uni.TotalNeed, qual.TotalNeed, uni.MilestoneYear),
			Path:         series.IDUniversityGap,
			ActualValue:  uni.TotalNeed,
			Expected:     fmt.Sprintf("<= %d", qual.TotalNeed),
			ConflictWith: series.IDQualificationGap,
		})
	}
	if f.University.NewNeeded > f.Qualifications.TotalNeeded {
		report.AddError(validation.Result{
			Level:       validation.LevelCross,
			Message:     fmt.Sprintf("new university qualifications %d exceed total qualifications needed %d", f.University.NewNeeded, f.Qualifications.TotalNeeded),
			Path:        "university cohort",
			ActualValue: f.University.NewNeeded,
			Expected:    fmt.Sprintf("<= %d", f.Qualifications.TotalNeeded),
		})
	}
}

// validateRampUpCoverage warns when the planned annual production cannot
// reach the milestone need in the years available.
func validateRampUpCoverage(ramp []series.RampUpPoint, f *KeyFindings, report *validation.Report) {
	if len(ramp) == 0 || f.Qualifications.MilestoneYear == 0 {
		return
	}
	start := ramp[0].Year
	years := f.Qualifications.MilestoneYear - start
	if years <= 0 {
		return
	}
	capacity := years * f.Qualifications.PeakAnnual
	if capacity < f.Qualifications.MilestoneTotal {
		report.AddWarning(validation.Result{
			Level:       validation.LevelCross,
			Message:     fmt.Sprintf("peak production of %d per year over %d years cannot reach the %d milestone of %d", f.Qualifications.PeakAnnual, years, f.Qualifications.MilestoneYear, f.Qualifications.MilestoneTotal),
			Path:        series.IDRampUp,
			ActualValue: capacity,
			Expected:    fmt.Sprintf(">= %d", f.Qualifications.MilestoneTotal),
			Suggestions: []string{"Bring the ramp-up forward or raise annual production"},
		})
	}
}

func validateContracting(f *KeyFindings, report *validation.Report) {
	for _, t := range []BreakdownTotals{f.Industries, f.Occupations} {
		for _, name := range t.Contracting {
			report.AddInfo(validation.Result{
				Level:   validation.LevelCross,
				Message: fmt.Sprintf("%s contracts; all of its demand comes from retirements", name),
				Path:    fmt.Sprintf("%s[%s]", t.Series, name),
			})
		}
	}
}
