package series

// Unit tells formatters how a field's raw value is meant to be read.
type Unit string

const (
	UnitCount   Unit = "count"
	UnitRatio   Unit = "ratio"   // fraction in [0,1], displayed as a whole percentage
	UnitPercent Unit = "percent" // already a whole percentage
	UnitLabel   Unit = "label"
)

// Field describes one column of a Series.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
	Unit  Unit   `json:"unit" yaml:"unit"`
}

// Record is one row of a Series, keyed by year or category name.
type Record struct {
	Key    string             `json:"key" yaml:"key"`
	Values map[string]float64 `json:"values" yaml:"values"`
	Color  string             `json:"color,omitempty" yaml:"color,omitempty"`
}

// Value returns the named metric and whether the record carries it.
func (r Record) Value(field string) (float64, bool) {
	v, ok := r.Values[field]
	return v, ok
}

// Series is the uniform tabular view of a dataset handed to charts and
// exporters.
type Series struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Key     Field    `json:"key" yaml:"key"`
	Fields  []Field  `json:"fields" yaml:"fields"`
	Records []Record `json:"records" yaml:"records"`
}

// Field returns the field definition with the given name.
func (s *Series) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Record returns the record with the given key.
func (s *Series) Record(key string) (Record, bool) {
	for _, r := range s.Records {
		if r.Key == key {
			return r, true
		}
	}
	return Record{}, false
}

// Source is a read-only lookup of series by id.
type Source interface {
	Series(id string) (*Series, error)
	IDs() []string
}

// PopulationPoint is one projection year of total and working-age population.
type PopulationPoint struct {
	Year                 int `json:"year" yaml:"year"`
	TotalPopulation      int `json:"total_population" yaml:"total_population"`
	WorkingAgePopulation int `json:"working_age_population" yaml:"working_age_population"`
}

// QualificationPoint is one model year of qualification demand.
// CumulativeQualifications is derived by NewCatalog as the demand above the
// first year's; an authored value is overwritten.
type QualificationPoint struct {
	Year                     int     `json:"year" yaml:"year"`
	QualifiedWorkersNeeded   int     `json:"qualified_workers_needed" yaml:"qualified_workers_needed"`
	CumulativeQualifications int     `json:"cumulative_qualifications" yaml:"cumulative_qualifications"`
	QualificationRate        float64 `json:"qualification_rate" yaml:"qualification_rate"`
	EstimatedEmployment      int     `json:"estimated_employment" yaml:"estimated_employment"`
}

// FlowPoint is one year of working-age entrants and exits.
type FlowPoint struct {
	Year     int `json:"year" yaml:"year"`
	Entrants int `json:"entrants" yaml:"entrants"`
	Exits    int `json:"exits" yaml:"exits"`
}

// NetChange is entrants minus exits.
func (p FlowPoint) NetChange() int {
	return p.Entrants - p.Exits
}

// CategoryRow is one industry or occupation in a ranked breakdown.
// Growth may be negative for contracting categories.
type CategoryRow struct {
	Name        string `json:"name" yaml:"name"`
	Growth      int    `json:"growth" yaml:"growth"`
	Retirements int    `json:"retirements" yaml:"retirements"`
	Color       string `json:"color" yaml:"color"`
}

// Value is the total new workers needed: growth plus retirements.
func (r CategoryRow) Value() int {
	return r.Growth + r.Retirements
}

// GapSlice is one part of a gap decomposition.
type GapSlice struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
	Color string `json:"color" yaml:"color"`
}

// GapAnalysis decomposes the need stated for a milestone year.
type GapAnalysis struct {
	ID            string     `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	MilestoneYear int        `json:"milestone_year" yaml:"milestone_year"`
	TotalNeed     int        `json:"total_need" yaml:"total_need"`
	Slices        []GapSlice `json:"slices" yaml:"slices"`
}

// Sum adds up the slice values.
func (g GapAnalysis) Sum() int {
	total := 0
	for _, s := range g.Slices {
		total += s.Value
	}
	return total
}

// RampUpPoint is the planned annual production of new qualifications.
type RampUpPoint struct {
	Year                       int `json:"year" yaml:"year"`
	AnnualQualificationsNeeded int `json:"annual_qualifications_needed" yaml:"annual_qualifications_needed"`
}

// GapSplit divides a milestone need between upskilling existing workers and
// qualifying new entrants.
type GapSplit struct {
	Category        string `json:"category" yaml:"category"`
	Year            int    `json:"year" yaml:"year"`
	ExistingWorkers int    `json:"existing_workers" yaml:"existing_workers"`
	NewWorkers      int    `json:"new_workers" yaml:"new_workers"`
}

// Total is the combined need.
func (g GapSplit) Total() int {
	return g.ExistingWorkers + g.NewWorkers
}

// AttainmentLevel is a university qualification rate for the 25-35 cohort.
type AttainmentLevel struct {
	Category string `json:"category" yaml:"category"`
	Percent  int    `json:"percent" yaml:"percent"`
}

// QualificationMix is the share of the cohort by highest qualification.
// The three shares are whole percentages summing to 100.
type QualificationMix struct {
	Year            int `json:"year" yaml:"year"`
	University      int `json:"university" yaml:"university"`
	VET             int `json:"vet" yaml:"vet"`
	NoQualification int `json:"no_qualification" yaml:"no_qualification"`
}

// UniversityCohort is the 25-35 age cohort behind the university sub-goal.
type UniversityCohort struct {
	BaseYear         int `json:"base_year" yaml:"base_year"`
	TargetYear       int `json:"target_year" yaml:"target_year"`
	CurrentSize      int `json:"current_size" yaml:"current_size"`
	CurrentQualified int `json:"current_qualified" yaml:"current_qualified"`
	TargetSize       int `json:"target_size" yaml:"target_size"`
	TargetQualified  int `json:"target_qualified" yaml:"target_qualified"`
}
