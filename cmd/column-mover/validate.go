package main

import (
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"column-mover/internal/mapping"
	"column-mover/internal/transform"
)

var errInvalidMapping = errors.New("mapping table is invalid")

func newValidateCmd(opts *cliOptions, clk clockwork.Clock) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and mapping table without touching any file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			table, err := cfg.Table()
			if err != nil {
				return err
			}

			registry := transform.Builtins(clk)
			diags := mapping.Validate(table, registry)

			out := cmd.OutOrStdout()
			for _, d := range diags.Errors {
				fmt.Fprintln(out, d.String())
			}
			for _, d := range diags.Warnings {
				fmt.Fprintln(out, d.String())
			}

			if diags.HasErrors() {
				return errInvalidMapping
			}

			fmt.Fprintf(out, "ok: %d columns, transforms: %v\n", len(table.Columns), registry.Names())

			return nil
		},
	}
}
