// Package cmd wires the tasklist command line.
package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tasklist/internal/column"
	"github.com/oakwood-commons/tasklist/internal/config"
	"github.com/oakwood-commons/tasklist/internal/i18n"
	"github.com/oakwood-commons/tasklist/pkg/logger"
	"github.com/oakwood-commons/tasklist/pkg/settings"
)

type rootOptions struct {
	configFile string
	debug      bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   settings.CliBinaryName,
		Short: "Render task lists as column reports",
		Long: `tasklist reads tasks from JSON, NDJSON, YAML or TOML and renders them as a
report of configurable columns. Columns are named "name" or "name.style",
for example "urgency" or "urgency.integer".`,
		Version:       cliVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// debug => zap.DebugLevel (-1), else zap.InfoLevel (0)
			var level int8
			if opts.debug {
				level = -1
			}
			run := settings.NewCliParams()
			run.MinLogLevel = level
			run.ConfigFile = opts.configFile
			run.NoColor = opts.noColor

			lgr := logger.ForCommand(logger.Get(run.MinLogLevel), settings.CliBinaryName, cmd.Name())
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = logger.WithLogger(ctx, lgr)
			cmd.SetContext(settings.IntoContext(ctx, run))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config-file", "", "path to a YAML config file (default $XDG_CONFIG_HOME/tasklist/config.yaml)")
	pf.BoolVar(&opts.debug, "debug", false, "write debug logs to stderr")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable color output")

	root.AddCommand(newReportCmd(), newColumnsCmd(), newVersionCmd())
	return root
}

// Execute runs the root command with a background context.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func cliVersionString() string {
	return fmt.Sprintf("%s %s (go %s)", settings.CliBinaryName, settings.VersionInformation.BuildVersion, runtime.Version())
}

// environment is what every subcommand needs from the config file.
type environment struct {
	cfg      config.Config
	catalog  *i18n.Catalog
	registry *column.Registry
}

func loadEnvironment(ctx context.Context) (*environment, error) {
	lgr := logger.FromContext(ctx)

	explicit := ""
	if run, ok := settings.FromContext(ctx); ok {
		explicit = run.ConfigFile
	}
	path := config.ResolvePath(explicit)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cat := i18n.Default()
	if cfg.Messages != "" {
		cat, err = i18n.LoadFile(cfg.Messages)
		if err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
	}
	lgr.V(1).Info("loaded configuration", "path", path, "locale", cat.Locale().String(), "columns", cfg.Report.Columns)

	return &environment{
		cfg:      cfg,
		catalog:  cat,
		registry: column.NewRegistry(cat),
	}, nil
}

func runSettings(cmd *cobra.Command) *settings.Run {
	if run, ok := settings.FromContext(cmd.Context()); ok {
		return run
	}
	return settings.NewCliParams()
}
