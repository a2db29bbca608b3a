package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimedeAnoWork/Southern-Metropolitan/internal/server"
	"github.com/JaimedeAnoWork/Southern-Metropolitan/pkg/series"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "qualmodel",
		Short:        "Southern Region qualification attainment dashboard",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to qualmodel.yaml (defaults are used when empty)")

	root.AddCommand(serveCmd(&configPath))
	root.AddCommand(validateCmd())
	root.AddCommand(tabsCmd())
	root.AddCommand(viewCmd())
	root.AddCommand(seriesCmd())
	root.AddCommand(tooltipCmd(&configPath))
	root.AddCommand(exportCmd(&configPath))
	root.AddCommand(summaryCmd())
	return root
}

func serveCmd(configPath *string) *cobra.Command {
	var (
		port       int
		defaultTab string
		header     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("default-tab") {
				cfg.Dashboard.DefaultTab = defaultTab
			}
			if cmd.Flags().Changed("workforce-header") {
				cfg.Tooltips.WorkforceHeader = header
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			srv, err := server.New(cfg, series.Southern())
			if err != nil {
				return err
			}
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	cmd.Flags().StringVar(&defaultTab, "default-tab", "", "tab selected on startup")
	cmd.Flags().StringVar(&header, "workforce-header", "", "workforce tooltip header: compat or contextual")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the datasets and chart bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.OutOrStdout())
		},
	}
}

func tabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List the dashboard tabs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTabs(cmd.OutOrStdout())
		},
	}
}

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [tab]",
		Short: "Print the rendered chart specs of a tab as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab := ""
			if len(args) == 1 {
				tab = args[0]
			}
			return runView(cmd.OutOrStdout(), tab)
		},
	}
}

func seriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "series [id]",
		Short: "List series ids, or print one series as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runSeriesList(cmd.OutOrStdout())
			}
			return runSeries(cmd.OutOrStdout(), args[0])
		},
	}
}

func tooltipCmd(configPath *string) *cobra.Command {
	var formatter string

	cmd := &cobra.Command{
		Use:   "tooltip [tab] [chart] [key]",
		Short: "Print the tooltip shown when hovering key on a chart",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runTooltip(cmd.OutOrStdout(), cfg, args[0], args[1], args[2], formatter)
		},
	}

	cmd.Flags().StringVarP(&formatter, "formatter", "f", "", "formatter ref overriding the chart's own")
	return cmd
}

func exportCmd(configPath *string) *cobra.Command {
	var (
		tab    string
		chart  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [format]",
		Short: "Export a tab as csv, json or yaml, or one chart as png or svg",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runExport(cmd.OutOrStdout(), cfg, args[0], tab, chart, output)
		},
	}

	cmd.Flags().StringVarP(&tab, "tab", "t", "", "tab to export (default tab when empty)")
	cmd.Flags().StringVar(&chart, "chart", "", "chart id for image formats")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout when empty)")
	return cmd
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the executive-summary key findings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd.OutOrStdout())
		},
	}
}
