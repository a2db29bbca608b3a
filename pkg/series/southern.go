package series

// Southern returns the catalog for the Southern Region projections
// (VIF2023 population projections, VSP 2024-2034 workforce data).
func Southern() *Catalog {
	return NewCatalog(southernData())
}

func qualification(year, needed int, rate float64, employment int) QualificationPoint {
	return QualificationPoint{Year: year, QualifiedWorkersNeeded: needed, QualificationRate: rate, EstimatedEmployment: employment}
}

func southernData() Data {
	return Data{
		Region: "Southern Region",
		Population: []PopulationPoint{
			{2021, 280000, 159600},
			{2026, 304000, 173280},
			{2031, 329000, 187530},
			{2036, 354000, 201780},
			{2041, 380000, 216600},
			{2046, 407000, 232000},
			{2051, 435000, 247950},
		},
		Qualifications: []QualificationPoint{
			qualification(2024, 72000, 0.55, 130909),
			qualification(2026, 76800, 0.57, 134700),
			qualification(2031, 88000, 0.61, 144200),
			qualification(2035, 98500, 0.65, 151500),
			qualification(2041, 116000, 0.71, 163400),
			qualification(2046, 132000, 0.75, 176000),
			qualification(2050, 145000, 0.79, 183500),
			qualification(2051, 148000, 0.80, 185000),
		},
		Flow: []FlowPoint{
			{2026, 18000, 4500},
			{2031, 19000, 4900},
			{2036, 20500, 5300},
			{2041, 22000, 5700},
			{2046, 23000, 6200},
			{2051, 23500, 6500},
		},
		Industries: []CategoryRow{
			{"Health Care & Social Assistance", 8000, 7000, "#8884d8"},
			{"Construction", 3000, 3500, "#83a6ed"},
			{"Education & Training", 2100, 3200, "#8dd1e1"},
			{"Retail Trade", 1400, 2400, "#82ca9d"},
			{"Accommodation & Food Services", 1300, 1900, "#a4de6c"},
			{"Professional Services", 1500, 1400, "#ffc658"},
			{"Public Administration", 800, 1700, "#f28cb1"},
			{"Transport & Warehousing", 700, 1500, "#b5a8f9"},
			{"Manufacturing", -200, 2000, "#ffb347"},
			{"Agriculture, Forestry & Fishing", 100, 1500, "#d0ed57"},
		},
		Occupations: []CategoryRow{
			{"Aged & Disabled Carers", 950, 1650, "#8884d8"},
			{"Registered Nurses", 1100, 1200, "#8dd1e1"},
			{"Sales Assistants", 1000, 1200, "#83a6ed"},
			{"Primary School Teachers", 700, 700, "#a4de6c"},
			{"Commercial Cleaners", 250, 850, "#d0ed57"},
			{"General Clerks", 300, 750, "#82ca9d"},
			{"Secondary School Teachers", 450, 550, "#f28cb1"},
			{"Receptionists", 450, 530, "#ffc658"},
			{"Truck Drivers", 270, 650, "#b5a8f9"},
			{"Child Carers", 500, 350, "#ffb347"},
		},
		QualificationGap: GapAnalysis{
			ID:            IDQualificationGap,
			Title:         "2035 Qualification Gap Analysis",
			MilestoneYear: 2035,
			TotalNeed:     26500,
			Slices: []GapSlice{
				{"Population Growth Can Provide", 21000, "#0088FE"},
				{"Migration Required", 5500, "#FF8042"},
			},
		},
		UniversityGap: GapAnalysis{
			ID:            IDUniversityGap,
			Title:         "2035 University Qualification Gap Analysis",
			MilestoneYear: 2035,
			TotalNeed:     5369,
			Slices: []GapSlice{
				{"Local Growth Can Provide", 4200, "#0088FE"},
				{"Migration & Additional Programs Required", 1169, "#FF8042"},
			},
		},
		// Production lags enrolment by three years, so 2024 carries no output.
		RampUp: []RampUpPoint{
			{2024, 0},
			{2027, 2400},
			{2030, 2400},
			{2035, 2650},
			{2040, 2950},
			{2045, 3300},
			{2050, 2100},
		},
		GapSplits: []GapSplit{
			{"2035 Need", 2035, 10600, 15900},
			{"Total 2050 Need", 2050, 30400, 45600},
		},
		Attainment: []AttainmentLevel{
			{"Current (2024)", 25},
			{"Target (2050)", 55},
		},
		Mix: []QualificationMix{
			{2024, 25, 30, 45},
			{2035, 37, 28, 35},
			{2050, 55, 25, 20},
		},
		Cohort: UniversityCohort{
			BaseYear:         2024,
			TargetYear:       2050,
			CurrentSize:      28400,
			CurrentQualified: 7100,
			TargetSize:       41700,
			TargetQualified:  22900,
		},
	}
}
