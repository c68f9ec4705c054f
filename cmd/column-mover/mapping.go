package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"column-mover/internal/mapping"
)

func newMappingCmd(opts *cliOptions) *cobra.Command {
	var write, column string

	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Print the effective mapping table as YAML",
		Long: `Print the mapping table a run would use.

The output can be edited and passed back with --mapping. With --column
only that output column is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			table, err := cfg.Table()
			if err != nil {
				return err
			}

			if column != "" {
				c := table.Column(column)
				if c == nil {
					return fmt.Errorf("mapping table has no column %q", column)
				}

				table = &mapping.Table{Version: table.Version, Columns: []mapping.ColumnSpec{*c}}
			}

			if write != "" {
				return mapping.WriteFile(table, write)
			}

			data, err := mapping.Marshal(table)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&write, "write", "w", "", "write the table to this file instead of stdout")
	cmd.Flags().StringVar(&column, "column", "", "print only the named output column")

	return cmd
}
