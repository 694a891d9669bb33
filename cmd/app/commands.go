package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/ecoweek/internal/catalog"
	"github.com/akyairhashvil/ecoweek/internal/config"
	"github.com/akyairhashvil/ecoweek/internal/models"
	"github.com/akyairhashvil/ecoweek/internal/report"
	"github.com/akyairhashvil/ecoweek/internal/schedule"
	"github.com/akyairhashvil/ecoweek/internal/tui"
	"github.com/akyairhashvil/ecoweek/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("ecoweek needs an interactive terminal; try the week or report subcommands")

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// appEnv is the state shared by every command once flags are parsed.
type appEnv struct {
	v         *viper.Viper
	cfgFile   string
	settings  config.Settings
	store     *schedule.Store
	templates []models.ChallengeTemplate
	closer    io.Closer
}

func (r *appEnv) setup(ctx context.Context) error {
	s, err := config.Load(r.v, r.cfgFile)
	if err != nil {
		return err
	}
	r.settings = s

	closer, err := util.InitLogger(s.LogFile, s.LogLevel)
	if err != nil {
		return err
	}
	r.closer = closer

	r.templates = catalog.Default()
	if s.CatalogDB != "" {
		loaded, err := catalog.LoadSQLite(ctx, s.CatalogDB)
		if err != nil {
			return err
		}
		r.templates = loaded
		util.Logger.Info("catalog loaded", "path", s.CatalogDB, "count", len(loaded))
	}

	r.store = schedule.New()
	if s.Seed {
		r.store.Seed(catalog.Seed())
	}
	return nil
}

func (r *appEnv) close() {
	if r.closer != nil {
		util.LogError("close log", r.closer.Close())
	}
}

func newRootCommand() *cobra.Command {
	r := &appEnv{v: viper.New()}

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Plan a week of sustainability challenges.",
		Version:       versionLabel(),
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.setup(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			r.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runPlanner(r)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&r.cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/ecoweek/config.yaml)")
	flags.String("theme", "default", "colour theme: default, forest or ocean")
	flags.Bool("seed", true, "start with the demo schedule")
	flags.String("catalog-db", "", "sqlite file to read the challenge catalog from")
	flags.String("today", "", "pretend today is this YYYY-MM-DD date")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Duration("alert-timeout", config.DefaultAlertTimeout, "auto-dismiss success alerts after this long (0 keeps them open)")
	flags.String("report-dir", "", "directory for PDF reports")
	for key, name := range map[string]string{
		"theme":         "theme",
		"seed":          "seed",
		"catalog_db":    "catalog-db",
		"today":         "today",
		"log_file":      "log-file",
		"log_level":     "log-level",
		"alert_timeout": "alert-timeout",
		"report_dir":    "report-dir",
	} {
		if err := r.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	addWeek(cmd, r)
	addCatalog(cmd, r)
	addReport(cmd, r)
	return cmd
}

func runPlanner(r *appEnv) error {
	if !isTerminal() {
		return errNotTerminal
	}
	s := r.settings
	if s.LogFile == "" {
		closer, err := util.InitLogger(filepath.Join(util.DataDir(config.AppName), config.LogFileName), s.LogLevel)
		if err != nil {
			return err
		}
		r.closer = closer
	}

	model := tui.NewModel(r.store, r.templates, tui.Options{
		Theme:        s.Theme,
		Now:          s.Clock(),
		AlertTimeout: s.AlertTimeout,
		ReportDir:    s.ReportDir,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if s.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	util.Logger.Info("planner started", "theme", s.Theme, "templates", len(r.templates))
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run planner: %w", err)
	}
	return nil
}

func addWeek(topLevel *cobra.Command, r *appEnv) {
	var offset int

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the challenges scheduled for a week",
		Long: `Week prints one row per scheduled challenge for the week containing today.

Examples:
  ecoweek week
  ecoweek week --offset -1
  ecoweek week --today 2025-06-11`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			w := report.BuildWeek(r.store, r.settings.Clock()(), offset)
			return report.WriteWeekTable(cmd.OutOrStdout(), w)
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "weeks relative to the current one")
	topLevel.AddCommand(cmd)
}

func addCatalog(topLevel *cobra.Command, r *appEnv) {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the challenge catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return report.WriteCatalogTable(cmd.OutOrStdout(), r.templates)
		},
	}

	export := &cobra.Command{
		Use:   "export <path>",
		Short: "Write the current catalog to a sqlite file usable with --catalog-db",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := catalog.WriteSQLite(cmd.Context(), args[0], r.templates); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d challenges to %s\n", len(r.templates), args[0])
			return err
		},
	}
	cmd.AddCommand(export)
	topLevel.AddCommand(cmd)
}

func addReport(topLevel *cobra.Command, r *appEnv) {
	var (
		offset int
		out    string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF report of a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			w := report.BuildWeek(r.store, r.settings.Clock()(), offset)
			path := out
			if path == "" {
				path = report.DefaultPath(r.settings.ReportDir, w)
			}
			if err := report.WritePDF(path, w); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "PDF Report generated: %s\n", path)
			return err
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "weeks relative to the current one")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <report-dir>/ecoweek-week-<monday>.pdf)")
	topLevel.AddCommand(cmd)
}
