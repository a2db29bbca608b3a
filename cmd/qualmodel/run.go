package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/internal/shell"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/analytics"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/cost"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/config"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/export"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tabs"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tooltip"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/validation"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

// loadConfig reads path, or returns the defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openTab starts a controller on tab, or the configured default when empty.
func openTab(cfg *config.Config, catalog *series.Catalog, tab string) (*tabs.Controller, error) {
	ctrl, err := tabs.New(view.Default(), catalog, cfg.Dashboard.DefaultTab)
	if err != nil {
		return nil, err
	}
	if tab != "" {
		if err := ctrl.Select(tab); err != nil {
			return nil, err
		}
	}
	return ctrl, nil
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runValidate(w io.Writer) error {
	catalog := series.Southern()

	_, report := analytics.Resolve(catalog)
	report.Merge(validation.ValidateCatalog(catalog))
	report.Merge(validation.ValidateViews(view.Default(), catalog, tooltip.NewSet(tooltip.HeaderCompat)))

	printValidationReport(w, report)

	if !report.Valid {
		return fmt.Errorf("validation failed: %s", report.Summary)
	}
	return nil
}

func runTabs(w io.Writer) error {
	ctrl, err := openTab(config.Default(), series.Southern(), "")
	if err != nil {
		return err
	}
	printTabs(w, ctrl.Tabs())
	return nil
}

func runView(w io.Writer, tab string) error {
	ctrl, err := openTab(config.Default(), series.Southern(), tab)
	if err != nil {
		return err
	}
	v, err := ctrl.View()
	if err != nil {
		return fmt.Errorf("rendering %s: %w", ctrl.Active(), err)
	}
	return writeIndented(w, v)
}

func runSeriesList(w io.Writer) error {
	catalog := series.Southern()
	for _, id := range catalog.IDs() {
		s, err := catalog.Series(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-24s %s (%d rows)\n", id, s.Title, len(s.Records))
	}
	return nil
}

func runSeries(w io.Writer, id string) error {
	s, err := series.Southern().Series(id)
	if err != nil {
		return err
	}
	printSeriesTable(w, s)
	return nil
}

func runTooltip(w io.Writer, cfg *config.Config, tab, chartID, key, formatter string) error {
	ctrl, err := openTab(cfg, series.Southern(), tab)
	if err != nil {
		return err
	}
	v, err := ctrl.View()
	if err != nil {
		return err
	}
	c, err := v.Chart(chartID)
	if err != nil {
		return err
	}
	ref := c.Tooltip
	if formatter != "" {
		ref = tooltip.Ref(formatter)
	}
	d, ok, err := tooltip.NewSet(cfg.HeaderMode()).Format(ref, c.Hover(key))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(w, "No tooltip for %q on %s.\n", key, chartID)
		return nil
	}
	fmt.Fprintln(w, d.Text())
	return nil
}

func runExport(w io.Writer, cfg *config.Config, name, tab, chartID, output string) error {
	f, err := export.ParseFormat(name)
	if err != nil {
		return err
	}
	ctrl, err := openTab(cfg, series.Southern(), tab)
	if err != nil {
		return err
	}
	v, err := ctrl.View()
	if err != nil {
		return err
	}

	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer file.Close()
		w = file
	}

	if f.IsImage() {
		if chartID == "" {
			return fmt.Errorf("%s export needs --chart", f)
		}
		c, err := v.Chart(chartID)
		if err != nil {
			return err
		}
		opts := export.ImageOptions{Width: cfg.Export.ImageWidth, Height: cfg.Export.ImageHeight}
		return export.WriteImage(w, c, f, opts)
	}
	return export.Write(w, f, export.NewSnapshot(v, time.Now()))
}

func runSummary(w io.Writer) error {
	findings, report := analytics.Resolve(series.Southern())
	printFindings(w, findings)

	content, err := shell.LoadContent()
	if err != nil {
		return err
	}
	printCostReport(w, cost.Estimate(content.Investments(), findings.University))

	if len(report.Errors) > 0 || len(report.Warnings) > 0 {
		fmt.Fprintln(w)
		printValidationReport(w, report)
	}
	return nil
}
