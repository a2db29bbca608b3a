// Package config loads the dashboard configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/tooltip"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/view"
)

// FileName is the configuration file looked up by LoadDir.
const FileName = "qualmodel.yaml"

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: Server{
			Port:         3000,
			Metrics:      true,
			ReadTimeout:  "10s",
			WriteTimeout: "30s",
		},
		Dashboard: Dashboard{
			DefaultTab: view.DefaultTab,
			Title:      "Southern Region Qualification Attainment Model",
		},
		Tooltips: Tooltips{WorkforceHeader: string(tooltip.HeaderCompat)},
		Export:   Export{ImageWidth: 960, ImageHeight: 540},
	}
}

// Load reads a configuration from a YAML file. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDir loads qualmodel.yaml from dir.
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port))
	}
	for name, v := range map[string]string{
		"server.read_timeout":  c.Server.ReadTimeout,
		"server.write_timeout": c.Server.WriteTimeout,
	} {
		if v == "" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if c.Dashboard.DefaultTab != "" && !view.Default().Has(c.Dashboard.DefaultTab) {
		errs = append(errs, fmt.Errorf("dashboard.default_tab %q is not a dashboard tab", c.Dashboard.DefaultTab))
	}
	switch tooltip.HeaderMode(c.Tooltips.WorkforceHeader) {
	case "", tooltip.HeaderCompat, tooltip.HeaderContextual:
	default:
		errs = append(errs, fmt.Errorf("tooltips.workforce_header %q must be %q or %q",
			c.Tooltips.WorkforceHeader, tooltip.HeaderCompat, tooltip.HeaderContextual))
	}
	if c.Export.ImageWidth <= 0 || c.Export.ImageHeight <= 0 {
		errs = append(errs, fmt.Errorf("export image size %dx%d must be positive", c.Export.ImageWidth, c.Export.ImageHeight))
	}
	return errors.Join(errs...)
}

// Timeouts parses the server read and write timeouts. Empty values are zero.
func (c *Config) Timeouts() (read, write time.Duration) {
	read, _ = time.ParseDuration(c.Server.ReadTimeout)
	write, _ = time.ParseDuration(c.Server.WriteTimeout)
	return read, write
}

// HeaderMode returns the workforce-flow tooltip header mode.
func (c *Config) HeaderMode() tooltip.HeaderMode {
	return tooltip.HeaderMode(c.Tooltips.WorkforceHeader)
}
