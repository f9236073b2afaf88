package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/banshee-data/asteroid.report/internal/sky/batch"
	"github.com/banshee-data/asteroid.report/internal/sky/pipeline"
)

func newBatchCmd(opts *options) *cobra.Command {
	var (
		dir   string
		level string
		count int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Process a level directory of numbered input files",
		Long: `Reads <dir>/level-N/lvlN-K.inp for K = 0..count-1 and writes the text
output of pass N to <dir>/level-N/levN-K.out. With --count 0 every input
file present is processed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := pipeline.ParseLevel(level)
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			a, err := pipeline.NewAnalyzer(cfg)
			if err != nil {
				return err
			}

			written, err := batch.NewRunner(a).Run(dir, lvl, count)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files\n", len(written))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory holding the level-N folders")
	cmd.Flags().StringVar(&level, "level", "", "pass to run: 1-3 or detect|cluster|periodic")
	cmd.Flags().IntVar(&count, "count", 0, "number of cases (0 processes every input found)")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}
