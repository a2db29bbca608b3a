package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/analytics"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/cost"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/format"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tabs"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Fprintf(w, "    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, wr := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", wr.Level, wr.Message)
			if wr.Path != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", wr.Path, wr.ActualValue)
			}
			if wr.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", wr.Expected)
			}
			for _, s := range wr.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printTabs(w io.Writer, list []tabs.Tab) {
	for _, t := range list {
		marker := " "
		if t.Active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-18s %s\n", marker, t.ID, t.Title)
	}
}

// printSeriesTable prints one row per record with values formatted by unit.
func printSeriesTable(w io.Writer, s *series.Series) {
	fmt.Fprintf(w, "%s (%s)\n", s.Title, s.ID)
	fmt.Fprintln(w, strings.Repeat("=", len(s.Title)+len(s.ID)+3))

	fmt.Fprintf(w, "%-34s", s.Key.Label)
	for _, f := range s.Fields {
		fmt.Fprintf(w, " %14s", truncate(f.Label, 14))
	}
	fmt.Fprintln(w)

	for _, r := range s.Records {
		fmt.Fprintf(w, "%-34s", truncate(r.Key, 34))
		for _, f := range s.Fields {
			cell := "-"
			if v, ok := r.Value(f.Name); ok {
				cell = format.Value(v, f.Unit)
			}
			fmt.Fprintf(w, " %14s", cell)
		}
		fmt.Fprintln(w)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "~"
}

func printFindings(w io.Writer, f *analytics.KeyFindings) {
	fmt.Fprintf(w, "Key Findings: %s\n", f.Region)
	fmt.Fprintln(w, "==========================")

	p := f.Population
	fmt.Fprintf(w, "\nPopulation %d-%d\n", p.StartYear, p.EndYear)
	fmt.Fprintf(w, "  Total:                %s -> %s (+%d%%)\n", humanize.Comma(int64(p.StartPopulation)), humanize.Comma(int64(p.EndPopulation)), p.GrowthPercent)
	fmt.Fprintf(w, "  Working age:          %s -> %s (%d%% of total)\n", humanize.Comma(int64(p.StartWorkingAge)), humanize.Comma(int64(p.EndWorkingAge)), p.WorkingAgeShare)
	fmt.Fprintf(w, "  Net workforce change: %s\n", humanize.Comma(int64(p.NetWorkforceChange)))

	u := f.University
	fmt.Fprintf(w, "\nUniversity (25-35 cohort)\n")
	fmt.Fprintf(w, "  Rate:                 %d%% -> %d%% (+%d points by %d)\n", u.CurrentRate, u.TargetRate, u.GapPoints, u.TargetYear)
	fmt.Fprintf(w, "  Qualified:            %s of %s -> %s of %s\n",
		humanize.Comma(int64(u.CurrentQualified)), humanize.Comma(int64(u.CurrentCohort)),
		humanize.Comma(int64(u.TargetQualified)), humanize.Comma(int64(u.TargetCohort)))
	fmt.Fprintf(w, "  New needed:           %s (about %s a year)\n", humanize.Comma(int64(u.NewNeeded)), humanize.Comma(int64(u.AnnualAverage)))

	q := f.Qualifications
	fmt.Fprintf(w, "\nPost-secondary qualifications\n")
	fmt.Fprintf(w, "  Rate:                 %d%% -> %d%% by %d\n", q.CurrentRate, q.TargetRate, q.TargetYear)
	fmt.Fprintf(w, "  Total needed:         %s\n", humanize.Comma(int64(q.TotalNeeded)))
	fmt.Fprintf(w, "  Upskill existing:     %s (%d%%)\n", humanize.Comma(int64(q.ExistingGap)), q.ExistingGapShare)
	fmt.Fprintf(w, "  Qualify new entrants: %s (%d%%)\n", humanize.Comma(int64(q.NewEntrants)), q.NewEntrantsShare)
	fmt.Fprintf(w, "  Peak production:      %s a year in %d\n", humanize.Comma(int64(q.PeakAnnual)), q.PeakYear)
	fmt.Fprintf(w, "  %d milestone:       %s (%s existing, %s new)\n", q.MilestoneYear,
		humanize.Comma(int64(q.MilestoneTotal)), humanize.Comma(int64(q.MilestoneExisting)), humanize.Comma(int64(q.MilestoneNewEntrant)))

	printBreakdownTotals(w, "Industries", f.Industries)
	printBreakdownTotals(w, "Occupations", f.Occupations)
}

func printBreakdownTotals(w io.Writer, title string, b analytics.BreakdownTotals) {
	fmt.Fprintf(w, "\n%s (top %d)\n", title, b.Categories)
	fmt.Fprintf(w, "  New workers needed:   %s\n", humanize.Comma(int64(b.Total)))
	fmt.Fprintf(w, "  From growth:          %s\n", humanize.Comma(int64(b.Growth)))
	fmt.Fprintf(w, "  From retirements:     %s\n", humanize.Comma(int64(b.Retirements)))
	if len(b.Contracting) > 0 {
		fmt.Fprintf(w, "  Contracting:          %s\n", strings.Join(b.Contracting, ", "))
	}
}

func printCostReport(w io.Writer, r *cost.Report) {
	fmt.Fprintln(w, "\nInvestment")
	for _, b := range r.Phases {
		fmt.Fprintf(w, "  %-22s%s\n", string(b.Phase)+":", format.Money(b.TotalM))
		for _, item := range b.Items {
			fmt.Fprintf(w, "    - %s\n", item)
		}
	}
	fmt.Fprintf(w, "  Total:                %s\n", format.Money(r.Summary.TotalM))
	fmt.Fprintf(w, "  Per qualification:    $%s\n", humanize.Comma(int64(r.Summary.PerQualification)))
	fmt.Fprintf(w, "  Per annual place:     $%s\n", humanize.Comma(int64(r.Summary.PerAnnualPlace)))
}
