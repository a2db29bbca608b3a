package analytics

import (
	"slices"
	"strings"
	"testing"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
)

func TestResolveSouthern(t *testing.T) {
	f, report := Resolve(series.Southern())

	if !report.Valid {
		t.Fatalf("report not valid: %+v", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("warnings = %+v, want none", report.Warnings)
	}
	if len(report.Info) != 1 || !strings.Contains(report.Info[0].Message, "Manufacturing") {
		t.Errorf("info = %+v, want one Manufacturing note", report.Info)
	}
	if f.Region != "Southern Region" {
		t.Errorf("Region = %q", f.Region)
	}
}

func TestPopulationFindings(t *testing.T) {
	f, _ := Resolve(series.Southern())
	p := f.Population

	if p.StartYear != 2021 || p.EndYear != 2051 {
		t.Errorf("years = %d..%d, want 2021..2051", p.StartYear, p.EndYear)
	}
	if p.GrowthPercent != 55 {
		t.Errorf("GrowthPercent = %d, want 55", p.GrowthPercent)
	}
	if p.WorkingAgeShare != 57 {
		t.Errorf("WorkingAgeShare = %d, want 57", p.WorkingAgeShare)
	}
	if p.StartWorkingAge != 159600 || p.EndWorkingAge != 247950 {
		t.Errorf("working age = %d..%d", p.StartWorkingAge, p.EndWorkingAge)
	}
	// 13500 + 14100 + 15200 + 16300 + 16800 + 17000
	if p.NetWorkforceChange != 92900 {
		t.Errorf("NetWorkforceChange = %d, want 92900", p.NetWorkforceChange)
	}
}

func TestUniversityFindings(t *testing.T) {
	f, _ := Resolve(series.Southern())
	u := f.University

	tests := []struct {
		name      string
		got, want int
	}{
		{"CurrentRate", u.CurrentRate, 25},
		{"TargetRate", u.TargetRate, 55},
		{"GapPoints", u.GapPoints, 30},
		{"NewNeeded", u.NewNeeded, 15800},
		{"AnnualAverage", u.AnnualAverage, 608},
		{"CurrentCohort", u.CurrentCohort, 28400},
		{"TargetCohort", u.TargetCohort, 41700},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestQualificationFindings(t *testing.T) {
	f, _ := Resolve(series.Southern())
	q := f.Qualifications

	tests := []struct {
		name      string
		got, want int
	}{
		{"CurrentRate", q.CurrentRate, 55},
		{"TargetRate", q.TargetRate, 80},
		{"GapPoints", q.GapPoints, 25},
		{"TotalNeeded", q.TotalNeeded, 76000},
		{"ExistingGap", q.ExistingGap, 30400},
		{"ExistingGapShare", q.ExistingGapShare, 40},
		{"NewEntrants", q.NewEntrants, 45600},
		{"NewEntrantsShare", q.NewEntrantsShare, 60},
		{"PeakAnnual", q.PeakAnnual, 3300},
		{"PeakYear", q.PeakYear, 2045},
		{"MilestoneYear", q.MilestoneYear, 2035},
		{"MilestoneTotal", q.MilestoneTotal, 26500},
		{"MilestoneExisting", q.MilestoneExisting, 10600},
		{"MilestoneNewEntrant", q.MilestoneNewEntrant, 15900},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestBreakdownTotals(t *testing.T) {
	f, _ := Resolve(series.Southern())

	ind := f.Industries
	if ind.Categories != 10 {
		t.Errorf("industries Categories = %d, want 10", ind.Categories)
	}
	if ind.Total != 44800 || ind.Growth != 18700 || ind.Retirements != 26100 {
		t.Errorf("industries totals = %d/%d/%d, want 44800/18700/26100", ind.Total, ind.Growth, ind.Retirements)
	}
	if ind.Total != ind.Growth+ind.Retirements {
		t.Error("industries total is not growth + retirements")
	}
	if !slices.Equal(ind.Contracting, []string{"Manufacturing"}) {
		t.Errorf("Contracting = %v, want [Manufacturing]", ind.Contracting)
	}

	occ := f.Occupations
	if occ.Total != 14400 {
		t.Errorf("occupations Total = %d, want 14400", occ.Total)
	}
	if len(occ.Contracting) != 0 {
		t.Errorf("occupations Contracting = %v, want none", occ.Contracting)
	}
}

func fixtureData() series.Data {
	return series.Data{
		Region:     "Fixture",
		Population: []series.PopulationPoint{{Year: 2020, TotalPopulation: 100, WorkingAgePopulation: 60}, {Year: 2030, TotalPopulation: 150, WorkingAgePopulation: 90}},
		Qualifications: []series.QualificationPoint{
			{Year: 2020, QualifiedWorkersNeeded: 50, CumulativeQualifications: 0, QualificationRate: 0.5, EstimatedEmployment: 100},
			{Year: 2030, QualifiedWorkersNeeded: 80, CumulativeQualifications: 30, QualificationRate: 0.8, EstimatedEmployment: 100},
		},
		QualificationGap: series.GapAnalysis{ID: series.IDQualificationGap, MilestoneYear: 2030, TotalNeed: 30},
		UniversityGap:    series.GapAnalysis{ID: series.IDUniversityGap, MilestoneYear: 2030, TotalNeed: 10},
		RampUp:           []series.RampUpPoint{{Year: 2020, AnnualQualificationsNeeded: 0}, {Year: 2025, AnnualQualificationsNeeded: 2}},
		GapSplits:        []series.GapSplit{{Category: "Total", Year: 2030, ExistingWorkers: 10, NewWorkers: 20}},
		Attainment:       []series.AttainmentLevel{{Category: "Current", Percent: 20}, {Category: "Target", Percent: 40}},
		Mix:              []series.QualificationMix{{Year: 2020, University: 20, VET: 30, NoQualification: 50}, {Year: 2030, University: 40, VET: 30, NoQualification: 30}},
		Cohort: series.UniversityCohort{
			BaseYear: 2020, TargetYear: 2030,
			CurrentSize: 100, CurrentQualified: 20,
			TargetSize: 100, TargetQualified: 40,
		},
	}
}

func TestResolveFixtureRampUpShortfall(t *testing.T) {
	_, report := Resolve(series.NewCatalog(fixtureData()))

	if !report.Valid {
		t.Fatalf("fixture should be valid: %+v", report.Errors)
	}
	// 10 years at 2 per year falls short of 30.
	if len(report.Warnings) != 1 || report.Warnings[0].Path != series.IDRampUp {
		t.Errorf("warnings = %+v, want one rampup shortfall", report.Warnings)
	}
}

func TestResolveAttainmentMismatch(t *testing.T) {
	d := fixtureData()
	d.RampUp = []series.RampUpPoint{{Year: 2020, AnnualQualificationsNeeded: 0}, {Year: 2025, AnnualQualificationsNeeded: 10}}
	d.Attainment[1].Percent = 45
	_, report := Resolve(series.NewCatalog(d))

	if report.Valid {
		t.Fatal("expected mismatched target rate to fail")
	}
	if len(report.Errors) != 1 {
		t.Fatalf("errors = %+v, want 1", report.Errors)
	}
	if !strings.Contains(report.Errors[0].Message, "target university rate 45%") {
		t.Errorf("message = %q", report.Errors[0].Message)
	}
}

func TestResolveUniversityGapTooLarge(t *testing.T) {
	d := fixtureData()
	d.RampUp = []series.RampUpPoint{{Year: 2020, AnnualQualificationsNeeded: 0}, {Year: 2025, AnnualQualificationsNeeded: 10}}
	d.UniversityGap.TotalNeed = 31
	_, report := Resolve(series.NewCatalog(d))

	if len(report.Errors) != 1 || report.Errors[0].ConflictWith != series.IDQualificationGap {
		t.Errorf("errors = %+v, want one university gap conflict", report.Errors)
	}
}

func TestPercentOfEmptyWhole(t *testing.T) {
	if got := percentOf(5, 0); got != 0 {
		t.Errorf("percentOf(5, 0) = %d, want 0", got)
	}
	if got := percentOf(1, 3); got != 33 {
		t.Errorf("percentOf(1, 3) = %d, want 33", got)
	}
}
