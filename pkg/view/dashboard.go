package view

import (
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tooltip"
)

// Tab ids, in navigation order.
const (
	TabSummary        = "summary"
	TabPopulation     = "population"
	TabQualifications = "qualifications"
	TabAttainmentGap  = "attainment-gap"
	TabUniversityGoal = "university-goal"
	TabIndustries     = "vsp-industries"
	TabOccupations    = "vsp-occupations"
	TabRampUp         = "rampup"
)

// DefaultTab is selected on startup and after a reset.
const DefaultTab = TabSummary

var (
	yearAxis     = Axis{ID: "x", Kind: AxisTime, Field: "year"}
	categoryAxis = Axis{ID: "x", Kind: AxisCategory, Field: "category"}
	nameAxis     = Axis{ID: "y", Kind: AxisCategory, Field: "name"}
	countAxis    = Axis{ID: AxisLeft, Kind: AxisNumber}
	percentAxis  = Axis{ID: AxisLeft, Kind: AxisNumber, Label: "Percentage (%)"}
)

// Dashboard returns the descriptors for the eight dashboard sections.
func Dashboard() []Descriptor {
	return []Descriptor{
		{
			ID:    TabSummary,
			Title: "Executive Summary",
			Charts: []Chart{{
				ID:          "university-gap-2035",
				Title:       "2035 University Qualification Gap Analysis",
				Series:      series.IDUniversityGap,
				Kind:        KindPie,
				KeyAxis:     Axis{ID: "slice", Kind: AxisCategory, Field: "name"},
				Marks:       []Mark{{Field: "value", Label: "value", Kind: MarkSlice}},
				Tooltip:     tooltip.RefPie,
				Sort:        SortAsAuthored,
				SliceLabels: true,
			}},
		},
		{
			ID:    TabPopulation,
			Title: "Population",
			Charts: []Chart{
				{
					ID:        "population",
					Title:     "Southern Region Population (2021-2051)",
					Series:    series.IDPopulation,
					Kind:      KindLine,
					KeyAxis:   yearAxis,
					ValueAxes: []Axis{countAxis},
					Marks: []Mark{
						{Field: "totalPopulation", Label: "Total Population", Kind: MarkLine, Axis: AxisLeft, Color: "#8884d8"},
						{Field: "workingAgePopulation", Label: "Working Age Population (15-60)", Kind: MarkLine, Axis: AxisLeft, Color: "#82ca9d"},
					},
					Tooltip: tooltip.RefSeries,
					Sort:    SortAsAuthored,
				},
				{
					ID:        "workforce-dynamics",
					Title:     "Working Age Population Dynamics",
					Series:    series.IDWorkforceFlow,
					Kind:      KindBar,
					Layout:    LayoutColumns,
					KeyAxis:   yearAxis,
					ValueAxes: []Axis{countAxis},
					Marks: []Mark{
						{Field: "entrants", Label: "New Entrants", Kind: MarkBar, Axis: AxisLeft, Color: "#8884d8"},
						{Field: "exits", Label: "Exits (Retirements etc.)", Kind: MarkBar, Axis: AxisLeft, Color: "#FF8042"},
						{Field: "netChange", Label: "Net Change", Kind: MarkBar, Axis: AxisLeft, Color: "#82ca9d"},
					},
					Tooltip: tooltip.RefSeries,
					Sort:    SortAsAuthored,
				},
			},
		},
		{
			ID:    TabQualifications,
			Title: "Qualification Needs",
			Charts: []Chart{
				{
					ID:      "qualification-requirements",
					Title:   "Projected Qualification Requirements",
					Series:  series.IDQualifications,
					Kind:    KindComposed,
					KeyAxis: yearAxis,
					ValueAxes: []Axis{
						countAxis,
						{ID: AxisRight, Kind: AxisNumber, Label: "Qualification Rate"},
					},
					Marks: []Mark{
						{Field: "qualifiedWorkersNeeded", Label: "Qualified Workers Needed", Kind: MarkBar, Axis: AxisLeft, Color: "#8884d8"},
						{Field: "estimatedEmployment", Label: "Total Employment", Kind: MarkLine, Axis: AxisLeft, Color: "#FF8042"},
						{Field: "qualificationRate", Label: "Qualification Rate", Kind: MarkLine, Axis: AxisRight, Color: "#82ca9d"},
					},
					Tooltip: tooltip.RefSeries,
					Sort:    SortAsAuthored,
				},
				{
					ID:        "cumulative-qualifications",
					Title:     "Cumulative New Qualifications Needed",
					Series:    series.IDQualifications,
					Kind:      KindLine,
					KeyAxis:   yearAxis,
					ValueAxes: []Axis{countAxis},
					Marks: []Mark{
						{Field: "cumulativeQualifications", Label: "Cumulative New Qualifications", Kind: MarkLine, Axis: AxisLeft, Color: "#8884d8"},
					},
					Tooltip: tooltip.RefSeries,
					Sort:    SortAsAuthored,
				},
			},
		},
		{
			ID:    TabAttainmentGap,
			Title: "Closing Attainment Gap",
			Charts: []Chart{
				{
					ID:        "gap-split",
					Title:     "Closing the Gap: Existing vs. New Workers",
					Series:    series.IDGapSplit,
					Kind:      KindBar,
					Layout:    LayoutColumns,
					KeyAxis:   categoryAxis,
					ValueAxes: []Axis{countAxis},
					Marks: []Mark{
						{Field: "existingWorkers", Label: "Upskill Existing Workers", Kind: MarkBar, Axis: AxisLeft, Stack: "a", Color: "#8884d8"},
						{Field: "newWorkers", Label: "Qualify New Entrants", Kind: MarkBar, Axis: AxisLeft, Stack: "a", Color: "#82ca9d"},
					},
					Tooltip: tooltip.RefDefault,
					Sort:    SortAsAuthored,
				},
				{
					ID:          "qualification-gap-2035",
					Title:       "2035 Qualification Gap: Local Growth vs. Migration",
					Series:      series.IDQualificationGap,
					Kind:        KindPie,
					KeyAxis:     Axis{ID: "slice", Kind: AxisCategory, Field: "name"},
					Marks:       []Mark{{Field: "value", Label: "value", Kind: MarkSlice}},
					Tooltip:     tooltip.RefPie,
					Sort:        SortAsAuthored,
					SliceLabels: true,
				},
			},
		},
		{
			ID:    TabUniversityGoal,
			Title: "University Qualification Goal",
			Charts: []Chart{
				{
					ID:        "attainment-comparison",
					Title:     "Current vs. Target University Attainment",
					Series:    series.IDAttainment,
					Kind:      KindBar,
					Layout:    LayoutColumns,
					KeyAxis:   categoryAxis,
					ValueAxes: []Axis{percentAxis},
					Marks: []Mark{
						{Field: "value", Label: "University Qualification Rate (%)", Kind: MarkBar, Axis: AxisLeft, Color: "#8884d8"},
					},
					Tooltip: tooltip.RefDefault,
					Sort:    SortAsAuthored,
				},
				{
					ID:        "qualification-mix",
					Title:     "Qualification Mix Evolution",
					Series:    series.IDQualificationMix,
					Kind:      KindBar,
					Layout:    LayoutColumns,
					KeyAxis:   Axis{ID: "x", Kind: AxisCategory, Field: "year"},
					ValueAxes: []Axis{percentAxis},
					Marks: []Mark{
						{Field: "university", Label: "University Qualification", Kind: MarkBar, Axis: AxisLeft, Stack: "a", Color: "#8884d8"},
						{Field: "vet", Label: "VET Qualification", Kind: MarkBar, Axis: AxisLeft, Stack: "a", Color: "#82ca9d"},
						{Field: "noQual", Label: "No Post-Secondary Qual", Kind: MarkBar, Axis: AxisLeft, Stack: "a", Color: "#ffc658"},
					},
					Tooltip: tooltip.RefDefault,
					Sort:    SortAsAuthored,
				},
			},
		},
		{
			ID:    TabIndustries,
			Title: "Top Industries (VSP)",
			Charts: []Chart{
				{
					ID:        "industries-total",
					Title:     "Top 10 Industries by New Workers Needed",
					Series:    series.IDIndustries,
					Kind:      KindBar,
					Layout:    LayoutRows,
					KeyAxis:   nameAxis,
					ValueAxes: []Axis{{ID: AxisLeft, Kind: AxisNumber}},
					Marks: []Mark{
						{Field: "value", Label: "Total New Workers Needed", Kind: MarkBar, Axis: AxisLeft, Color: "#8884d8"},
					},
					Tooltip: tooltip.RefBreakdown,
					Sort:    SortAsAuthored,
				},
				{
					ID:        "industries-decomposition",
					Title:     "Breakdown of New Workers by Growth vs. Replacement",
					Series:    series.IDIndustries,
					Kind:      KindBar,
					Layout:    LayoutRows,
					KeyAxis:   nameAxis,
					ValueAxes: []Axis{{ID: AxisLeft, Kind: AxisNumber}},
					Marks: []Mark{
						{Field: "growth", Label: "From Industry Growth", Kind: MarkBar, Axis: AxisLeft, Stack: "a", Color: "#82ca9d"},
						{Field: "retirements", Label: "From Retirements", Kind: MarkBar, Axis: AxisLeft, Stack: "a", Color: "#8884d8"},
					},
					Tooltip: tooltip.RefDefault,
					Sort:    SortAsAuthored,
				},
			},
		},
		{
			ID:    TabOccupations,
			Title: "Top Occupations (VSP)",
			Charts: []Chart{{
				ID:        "occupations-total",
				Title:     "Top 10 Occupations by New Workers Needed",
				Series:    series.IDOccupations,
				Kind:      KindBar,
				Layout:    LayoutRows,
				KeyAxis:   nameAxis,
				ValueAxes: []Axis{{ID: AxisLeft, Kind: AxisNumber}},
				Marks: []Mark{
					{Field: "value", Label: "Total New Workers Needed", Kind: MarkBar, Axis: AxisLeft, Color: "#8884d8"},
				},
				Tooltip: tooltip.RefDefault,
				Sort:    SortAsAuthored,
			}},
		},
		{
			ID:    TabRampUp,
			Title: "Implementation Plan",
			Charts: []Chart{{
				ID:        "rampup",
				Title:     "Phased Implementation Timeline",
				Series:    series.IDRampUp,
				Kind:      KindBar,
				Layout:    LayoutColumns,
				KeyAxis:   yearAxis,
				ValueAxes: []Axis{countAxis},
				Marks: []Mark{
					{Field: "annualQualificationsNeeded", Label: "Annual Qualifications Needed", Kind: MarkBar, Axis: AxisLeft, Color: "#8884d8"},
				},
				Tooltip: tooltip.RefSeries,
				Sort:    SortAsAuthored,
			}},
		},
	}
}
