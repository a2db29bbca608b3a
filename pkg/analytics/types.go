package analytics

// PopulationFindings summarises the population projection.
type PopulationFindings struct {
	StartYear          int `json:"start_year" yaml:"start_year"`
	EndYear            int `json:"end_year" yaml:"end_year"`
	StartPopulation    int `json:"start_population" yaml:"start_population"`
	EndPopulation      int `json:"end_population" yaml:"end_population"`
	GrowthPercent      int `json:"growth_percent" yaml:"growth_percent"`
	StartWorkingAge    int `json:"start_working_age" yaml:"start_working_age"`
	EndWorkingAge      int `json:"end_working_age" yaml:"end_working_age"`
	WorkingAgeShare    int `json:"working_age_share_percent" yaml:"working_age_share_percent"`
	NetWorkforceChange int `json:"net_workforce_change" yaml:"net_workforce_change"`
}

// UniversityFindings covers the 25-35 cohort university sub-goal.
type UniversityFindings struct {
	BaseYear         int `json:"base_year" yaml:"base_year"`
	TargetYear       int `json:"target_year" yaml:"target_year"`
	CurrentRate      int `json:"current_rate_percent" yaml:"current_rate_percent"`
	TargetRate       int `json:"target_rate_percent" yaml:"target_rate_percent"`
	GapPoints        int `json:"gap_points" yaml:"gap_points"`
	CurrentQualified int `json:"current_qualified" yaml:"current_qualified"`
	CurrentCohort    int `json:"current_cohort" yaml:"current_cohort"`
	TargetQualified  int `json:"target_qualified" yaml:"target_qualified"`
	TargetCohort     int `json:"target_cohort" yaml:"target_cohort"`
	NewNeeded        int `json:"new_needed" yaml:"new_needed"`
	AnnualAverage    int `json:"annual_average" yaml:"annual_average"`
}

// QualificationFindings covers the overall post-secondary target.
type QualificationFindings struct {
	CurrentRate         int `json:"current_rate_percent" yaml:"current_rate_percent"`
	TargetRate          int `json:"target_rate_percent" yaml:"target_rate_percent"`
	GapPoints           int `json:"gap_points" yaml:"gap_points"`
	TargetYear          int `json:"target_year" yaml:"target_year"`
	TotalNeeded         int `json:"total_needed" yaml:"total_needed"`
	ExistingGap         int `json:"existing_gap" yaml:"existing_gap"`
	ExistingGapShare    int `json:"existing_gap_share_percent" yaml:"existing_gap_share_percent"`
	NewEntrants         int `json:"new_entrants" yaml:"new_entrants"`
	NewEntrantsShare    int `json:"new_entrants_share_percent" yaml:"new_entrants_share_percent"`
	PeakAnnual          int `json:"peak_annual_production" yaml:"peak_annual_production"`
	PeakYear            int `json:"peak_year" yaml:"peak_year"`
	MilestoneYear       int `json:"milestone_year" yaml:"milestone_year"`
	MilestoneTotal      int `json:"milestone_total" yaml:"milestone_total"`
	MilestoneExisting   int `json:"milestone_existing" yaml:"milestone_existing"`
	MilestoneNewEntrant int `json:"milestone_new_entrants" yaml:"milestone_new_entrants"`
}

// BreakdownTotals adds up a ranked industry or occupation breakdown.
type BreakdownTotals struct {
	Series      string   `json:"series" yaml:"series"`
	Categories  int      `json:"categories" yaml:"categories"`
	Total       int      `json:"total" yaml:"total"`
	Growth      int      `json:"growth" yaml:"growth"`
	Retirements int      `json:"retirements" yaml:"retirements"`
	Contracting []string `json:"contracting,omitempty" yaml:"contracting,omitempty"`
}
