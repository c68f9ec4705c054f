package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"column-mover/internal/batch"
	"column-mover/internal/remap"
	"column-mover/internal/transform"
)

func newRunCmd(opts *cliOptions, clk clockwork.Clock) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Convert every matched input file",
		Long: `Convert every file matched by the input pattern.

Files with failing rows are discarded under the all-or-nothing policy, or
written with a blank record per failing row under skip-row. Data errors do
not change the exit status; only an unusable configuration, mapping table
or output directory does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, opts, clk)
		},
	}
}

func runConvert(cmd *cobra.Command, opts *cliOptions, clk clockwork.Clock) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	if cfg.Pause {
		defer waitForEnter(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	log := logger.WithField("run_id", uuid.NewString())

	table, err := cfg.Table()
	if err != nil {
		return err
	}

	tr, err := remap.New(table, transform.Builtins(clk))
	if err != nil {
		return err
	}

	bopts, err := cfg.BatchOptions()
	if err != nil {
		return err
	}

	driver, err := batch.NewDriver(tr, bopts, log)
	if err != nil {
		return err
	}

	report, err := driver.Run(cmd.Context())
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), report)

	return nil
}

func printSummary(w io.Writer, report *batch.Report) {
	for _, f := range report.Files {
		line := fmt.Sprintf("%-9s %s", f.Status, f.Input)
		if f.Err != nil {
			line += ": " + f.Err.Error()
		}

		fmt.Fprintln(w, line)
	}

	s := report.Summary()
	fmt.Fprintf(w, "files: %d, written: %d, partial: %d, discarded: %d, failed: %d\n",
		s.Files, s.Written, s.Partial, s.Discarded, s.Failed)
}

func waitForEnter(r io.Reader, w io.Writer) {
	fmt.Fprint(w, "Press ENTER to exit...")
	_, _ = bufio.NewReader(r).ReadString('\n')
}
