package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/oakwood-commons/tasklist/internal/color"
	"github.com/oakwood-commons/tasklist/internal/filter"
	"github.com/oakwood-commons/tasklist/internal/limiter"
	"github.com/oakwood-commons/tasklist/internal/report"
	"github.com/oakwood-commons/tasklist/pkg/loader"
	"github.com/oakwood-commons/tasklist/pkg/logger"
)

// errNoInput is returned when no file is named and stdin is a terminal.
var errNoInput = errors.New("no input provided: pass a file or pipe tasks on stdin")

type reportOptions struct {
	columns  []string
	filter   string
	limits   limiter.Config
	noHeader bool
}

func newReportCmd() *cobra.Command {
	opts := &reportOptions{}
	c := &cobra.Command{
		Use:   "report [file]",
		Short: "Render tasks as a column report",
		Example: `  tasklist report tasks.json
  tasklist report tasks.yaml -c urgency.integer
  tasklist report tasks.json -f 'task.urgency > 5.0' --limit 10
  cat tasks.ndjson | tasklist report -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args)
		},
	}

	f := c.Flags()
	f.StringSliceVarP(&opts.columns, "columns", "c", nil, "columns to show as name or name.style (overrides config)")
	f.StringVarP(&opts.filter, "filter", "f", "", "CEL expression over 'task', e.g. 'task.urgency > 5.0'")
	f.BoolVar(&opts.noHeader, "no-header", false, "omit the label row")
	addLimitFlags(f, &opts.limits)
	return c
}

func addLimitFlags(fs *pflag.FlagSet, cfg *limiter.Config) {
	fs.IntVar(&cfg.Limit, "limit", 0, "Limit total number of records displayed")
	fs.IntVar(&cfg.Offset, "offset", 0, "Skip the first N records")
	fs.IntVar(&cfg.Tail, "tail", 0, "Show the last N records (mutually exclusive with --limit; ignores --offset)")
}

func runReport(cmd *cobra.Command, opts *reportOptions, args []string) error {
	ctx := cmd.Context()
	lgr := logger.FromContext(ctx)

	if err := opts.limits.Validate(); err != nil {
		return fmt.Errorf("record limiting error: %w", err)
	}

	env, err := loadEnvironment(ctx)
	if err != nil {
		return err
	}
	cfg := env.cfg
	if len(opts.columns) > 0 {
		cfg.Report.Columns = opts.columns
	}
	if opts.noHeader {
		cfg.Report.Header = false
	}

	// Column and colour mistakes are reported before any input is read.
	cols, err := cfg.Columns(env.registry)
	if err != nil {
		return err
	}
	colors, headerColor, err := cfg.Colors()
	if err != nil {
		return err
	}
	flt, err := filter.New(opts.filter)
	if err != nil {
		return err
	}

	path := loader.StdinPath
	if len(args) == 1 {
		path = args[0]
	} else if isTerminal(cmd.InOrStdin()) {
		return errNoInput
	}
	tasks, err := loader.LoadFile(path, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	loaded := len(tasks)

	tasks, err = flt.Apply(tasks)
	if err != nil {
		return err
	}
	tasks = limiter.Apply(opts.limits, tasks)
	lgr.V(1).Info("selected tasks", "loaded", loaded, "shown", len(tasks), "filter", flt.String())

	rep := &report.Report{
		Columns:   cols,
		Header:    cfg.Report.Header,
		Separator: cfg.Report.Separator,
	}
	out := cmd.OutOrStdout()
	if colorOutput(runSettings(cmd).NoColor, out) {
		rep.Colors = colors
		rep.HeaderColor = headerColor
	}

	lines, err := rep.Render(ctx, report.Records(tasks))
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func colorOutput(noColor bool, w io.Writer) bool {
	f, _ := w.(*os.File)
	return color.Enabled(noColor, f)
}
