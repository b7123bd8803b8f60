package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gridline/internal/config"
	"github.com/javiermolinar/gridline/internal/importer"
	"github.com/javiermolinar/gridline/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging

	loadPath string
	loadOpts importer.Options
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "gridline",
		Short: "A terminal grid editor",
		Long: `Gridline is a terminal grid editor for large sparse tables.

It opens a scrollable grid with sticky headers, resizable rows and
columns, in-place editing and undo. Tables can be loaded from JSON,
XLSX and SQLite files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 && a.loadPath == "" {
				a.loadPath = args[0]
			}
			return tui.RunWithDebug(a.config, a.debug, a.modelOptions()...)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")
	a.root.Flags().StringVarP(&a.loadPath, "load", "l", "", "Load a JSON, XLSX or SQLite file on start")
	addImportFlags(a.root, &a.loadOpts)

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.inspectCmd())

	return a
}

// addImportFlags registers the flags that select what to read from a source.
func addImportFlags(cmd *cobra.Command, opts *importer.Options) {
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	cmd.Flags().StringVar(&opts.Table, "table", "", "SQLite table name (default: first table)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum number of records to read (0 = all)")
}

func (a *App) modelOptions() []tui.ModelOption {
	if a.loadPath == "" {
		return nil
	}
	return []tui.ModelOption{tui.WithLoad(a.loadPath, a.loadOpts)}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridline %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
