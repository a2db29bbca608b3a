package series

import (
	"fmt"
	"slices"
	"strconv"
)

// Series ids registered by every catalog.
const (
	IDPopulation       = "population"
	IDQualifications   = "qualification-demand"
	IDWorkforceFlow    = "workforce-flow"
	IDIndustries       = "top-industries"
	IDOccupations      = "top-occupations"
	IDQualificationGap = "qualification-gap-2035"
	IDUniversityGap    = "university-gap-2035"
	IDRampUp           = "rampup"
	IDGapSplit         = "gap-split"
	IDAttainment       = "university-attainment"
	IDQualificationMix = "qualification-mix"
)

// Data is the authored content of a catalog.
type Data struct {
	Region           string
	Population       []PopulationPoint
	Qualifications   []QualificationPoint
	Flow             []FlowPoint
	Industries       []CategoryRow
	Occupations      []CategoryRow
	QualificationGap GapAnalysis
	UniversityGap    GapAnalysis
	RampUp           []RampUpPoint
	GapSplits        []GapSplit
	Attainment       []AttainmentLevel
	Mix              []QualificationMix
	Cohort           UniversityCohort
}

// Catalog holds the fixed datasets and their table views. It is built once
// and never mutated; accessors hand out copies.
type Catalog struct {
	data   Data
	ids    []string
	tables map[string]*Series
}

// NewCatalog copies d and builds the table view of every dataset.
func NewCatalog(d Data) *Catalog {
	c := &Catalog{data: cloneData(d), tables: make(map[string]*Series)}
	deriveCumulative(c.data.Qualifications)

	c.register(populationTable(c.data.Population))
	c.register(qualificationTable(c.data.Qualifications))
	c.register(flowTable(c.data.Flow))
	c.register(breakdownTable(IDIndustries, "Top 10 Industries by New Workers Needed", c.data.Industries))
	c.register(breakdownTable(IDOccupations, "Top 10 Occupations by New Workers Needed", c.data.Occupations))
	c.register(gapTable(IDQualificationGap, c.data.QualificationGap))
	c.register(gapTable(IDUniversityGap, c.data.UniversityGap))
	c.register(rampUpTable(c.data.RampUp))
	c.register(gapSplitTable(c.data.GapSplits))
	c.register(attainmentTable(c.data.Attainment))
	c.register(mixTable(c.data.Mix))

	return c
}

// deriveCumulative fills the running count of new qualifications from the
// demand in each year.
func deriveCumulative(points []QualificationPoint) {
	if len(points) == 0 {
		return
	}
	base := points[0].QualifiedWorkersNeeded
	for i := range points {
		points[i].CumulativeQualifications = points[i].QualifiedWorkersNeeded - base
	}
}

func (c *Catalog) register(s *Series) {
	c.ids = append(c.ids, s.ID)
	c.tables[s.ID] = s
}

// Series returns a copy of the table registered under id.
func (c *Catalog) Series(id string) (*Series, error) {
	s, ok := c.tables[id]
	if !ok {
		return nil, &NotFoundError{Kind: KindSeries, ID: id}
	}
	return cloneSeries(s), nil
}

// IDs returns the registered series ids in registration order.
func (c *Catalog) IDs() []string {
	return slices.Clone(c.ids)
}

// Region names the area the projections describe.
func (c *Catalog) Region() string { return c.data.Region }

func (c *Catalog) Population() []PopulationPoint { return slices.Clone(c.data.Population) }
func (c *Catalog) Qualifications() []QualificationPoint { return slices.Clone(c.data.Qualifications) }
func (c *Catalog) Flow() []FlowPoint { return slices.Clone(c.data.Flow) }
func (c *Catalog) Industries() []CategoryRow { return slices.Clone(c.data.Industries) }
func (c *Catalog) Occupations() []CategoryRow { return slices.Clone(c.data.Occupations) }
func (c *Catalog) RampUp() []RampUpPoint { return slices.Clone(c.data.RampUp) }
func (c *Catalog) GapSplits() []GapSplit { return slices.Clone(c.data.GapSplits) }
func (c *Catalog) Attainment() []AttainmentLevel { return slices.Clone(c.data.Attainment) }
func (c *Catalog) Mix() []QualificationMix { return slices.Clone(c.data.Mix) }

// Cohort returns the university sub-goal cohort.
func (c *Catalog) Cohort() UniversityCohort { return c.data.Cohort }

// Gaps returns the gap analyses, qualification gap first.
func (c *Catalog) Gaps() []GapAnalysis {
	return []GapAnalysis{cloneGap(c.data.QualificationGap), cloneGap(c.data.UniversityGap)}
}

// QualificationAt returns the qualification demand point for year.
func (c *Catalog) QualificationAt(year int) (QualificationPoint, bool) {
	for _, q := range c.data.Qualifications {
		if q.Year == year {
			return q, true
		}
	}
	return QualificationPoint{}, false
}

var (
	yearKey     = Field{Name: "year", Label: "Year", Unit: UnitLabel}
	nameKey     = Field{Name: "name", Label: "Name", Unit: UnitLabel}
	categoryKey = Field{Name: "category", Label: "Category", Unit: UnitLabel}
)

func year(y int) string { return strconv.Itoa(y) }

func populationTable(points []PopulationPoint) *Series {
	s := &Series{
		ID:    IDPopulation,
		Title: "Population Projections",
		Key:   yearKey,
		Fields: []Field{
			{Name: "totalPopulation", Label: "Total Population", Unit: UnitCount},
			{Name: "workingAgePopulation", Label: "Working Age Population (15-60)", Unit: UnitCount},
		},
	}
	for _, p := range points {
		s.Records = append(s.Records, Record{Key: year(p.Year), Values: map[string]float64{
			"totalPopulation":      float64(p.TotalPopulation),
			"workingAgePopulation": float64(p.WorkingAgePopulation),
		}})
	}
	return s
}

func qualificationTable(points []QualificationPoint) *Series {
	s := &Series{
		ID:    IDQualifications,
		Title: "Projected Qualification Requirements",
		Key:   yearKey,
		Fields: []Field{
			{Name: "qualifiedWorkersNeeded", Label: "Qualified Workers Needed", Unit: UnitCount},
			{Name: "cumulativeQualifications", Label: "Cumulative New Qualifications", Unit: UnitCount},
			{Name: "qualificationRate", Label: "Qualification Rate", Unit: UnitRatio},
			{Name: "estimatedEmployment", Label: "Total Employment", Unit: UnitCount},
		},
	}
	for _, p := range points {
		s.Records = append(s.Records, Record{Key: year(p.Year), Values: map[string]float64{
			"qualifiedWorkersNeeded":   float64(p.QualifiedWorkersNeeded),
			"cumulativeQualifications": float64(p.CumulativeQualifications),
			"qualificationRate":        p.QualificationRate,
			"estimatedEmployment":      float64(p.EstimatedEmployment),
		}})
	}
	return s
}

func flowTable(points []FlowPoint) *Series {
	s := &Series{
		ID:    IDWorkforceFlow,
		Title: "Working Age Population Dynamics",
		Key:   yearKey,
		Fields: []Field{
			{Name: "entrants", Label: "New Entrants", Unit: UnitCount},
			{Name: "exits", Label: "Exits (Retirements etc.)", Unit: UnitCount},
			{Name: "netChange", Label: "Net Change", Unit: UnitCount},
		},
	}
	for _, p := range points {
		s.Records = append(s.Records, Record{Key: year(p.Year), Values: map[string]float64{
			"entrants":  float64(p.Entrants),
			"exits":     float64(p.Exits),
			"netChange": float64(p.NetChange()),
		}})
	}
	return s
}

func breakdownTable(id, title string, rows []CategoryRow) *Series {
	s := &Series{
		ID:    id,
		Title: title,
		Key:   nameKey,
		Fields: []Field{
			{Name: "value", Label: "Total New Workers Needed", Unit: UnitCount},
			{Name: "growth", Label: "From Industry Growth", Unit: UnitCount},
			{Name: "retirements", Label: "From Retirements", Unit: UnitCount},
		},
	}
	for _, r := range rows {
		s.Records = append(s.Records, Record{Key: r.Name, Color: r.Color, Values: map[string]float64{
			"value":       float64(r.Value()),
			"growth":      float64(r.Growth),
			"retirements": float64(r.Retirements),
		}})
	}
	return s
}

func gapTable(id string, g GapAnalysis) *Series {
	s := &Series{
		ID:     id,
		Title:  g.Title,
		Key:    nameKey,
		Fields: []Field{{Name: "value", Label: "Qualifications", Unit: UnitCount}},
	}
	for _, sl := range g.Slices {
		s.Records = append(s.Records, Record{Key: sl.Label, Color: sl.Color, Values: map[string]float64{
			"value": float64(sl.Value),
		}})
	}
	return s
}

func rampUpTable(points []RampUpPoint) *Series {
	s := &Series{
		ID:     IDRampUp,
		Title:  "Phased Implementation Timeline",
		Key:    yearKey,
		Fields: []Field{{Name: "annualQualificationsNeeded", Label: "Annual Qualifications Needed", Unit: UnitCount}},
	}
	for _, p := range points {
		s.Records = append(s.Records, Record{Key: year(p.Year), Values: map[string]float64{
			"annualQualificationsNeeded": float64(p.AnnualQualificationsNeeded),
		}})
	}
	return s
}

func gapSplitTable(rows []GapSplit) *Series {
	s := &Series{
		ID:    IDGapSplit,
		Title: "Closing the Gap: Existing vs. New Workers",
		Key:   categoryKey,
		Fields: []Field{
			{Name: "existingWorkers", Label: "Upskill Existing Workers", Unit: UnitCount},
			{Name: "newWorkers", Label: "Qualify New Entrants", Unit: UnitCount},
		},
	}
	for _, r := range rows {
		s.Records = append(s.Records, Record{Key: r.Category, Values: map[string]float64{
			"existingWorkers": float64(r.ExistingWorkers),
			"newWorkers":      float64(r.NewWorkers),
		}})
	}
	return s
}

func attainmentTable(rows []AttainmentLevel) *Series {
	s := &Series{
		ID:     IDAttainment,
		Title:  "Current vs. Target University Attainment",
		Key:    categoryKey,
		Fields: []Field{{Name: "value", Label: "University Qualification Rate (%)", Unit: UnitPercent}},
	}
	for _, r := range rows {
		s.Records = append(s.Records, Record{Key: r.Category, Values: map[string]float64{
			"value": float64(r.Percent),
		}})
	}
	return s
}

func mixTable(rows []QualificationMix) *Series {
	s := &Series{
		ID:    IDQualificationMix,
		Title: "Qualification Mix Evolution",
		Key:   yearKey,
		Fields: []Field{
			{Name: "university", Label: "University Qualification", Unit: UnitPercent},
			{Name: "vet", Label: "VET Qualification", Unit: UnitPercent},
			{Name: "noQual", Label: "No Post-Secondary Qual", Unit: UnitPercent},
		},
	}
	for _, r := range rows {
		s.Records = append(s.Records, Record{Key: year(r.Year), Values: map[string]float64{
			"university": float64(r.University),
			"vet":        float64(r.VET),
			"noQual":     float64(r.NoQualification),
		}})
	}
	return s
}

func cloneData(d Data) Data {
	return Data{
		Region:           d.Region,
		Population:       slices.Clone(d.Population),
		Qualifications:   slices.Clone(d.Qualifications),
		Flow:             slices.Clone(d.Flow),
		Industries:       slices.Clone(d.Industries),
		Occupations:      slices.Clone(d.Occupations),
		QualificationGap: cloneGap(d.QualificationGap),
		UniversityGap:    cloneGap(d.UniversityGap),
		RampUp:           slices.Clone(d.RampUp),
		GapSplits:        slices.Clone(d.GapSplits),
		Attainment:       slices.Clone(d.Attainment),
		Mix:              slices.Clone(d.Mix),
		Cohort:           d.Cohort,
	}
}

func cloneGap(g GapAnalysis) GapAnalysis {
	g.Slices = slices.Clone(g.Slices)
	return g
}

func cloneSeries(s *Series) *Series {
	out := *s
	out.Fields = slices.Clone(s.Fields)
	out.Records = make([]Record, len(s.Records))
	for i, r := range s.Records {
		values := make(map[string]float64, len(r.Values))
		for k, v := range r.Values {
			values[k] = v
		}
		out.Records[i] = Record{Key: r.Key, Values: values, Color: r.Color}
	}
	return &out
}

// String implements fmt.Stringer for log lines.
func (c *Catalog) String() string {
	return fmt.Sprintf("catalog(%s, %d series)", c.data.Region, len(c.ids))
}
