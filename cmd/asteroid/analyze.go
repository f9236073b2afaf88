package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/banshee-data/asteroid.report/internal/sky/l1frames"
	"github.com/banshee-data/asteroid.report/internal/sky/pipeline"
)

func newLevelCmd(opts *options, level pipeline.Level, short string) *cobra.Command {
	var (
		asJSON         bool
		checkRotations bool
	)
	cmd := &cobra.Command{
		Use:   level.String() + " <input|->",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("check-rotations") {
				cfg = cfg.WithCheckRotations(checkRotations)
			}
			a, err := pipeline.NewAnalyzer(cfg)
			if err != nil {
				return err
			}

			rec, err := readRecording(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				rep, err := a.Report(level, rec)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}

			text, err := a.Format(level, rec)
			if err != nil {
				return err
			}
			_, err = io.WriteString(out, text)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit a JSON report instead of text")
	if level == pipeline.LevelPeriodic {
		cmd.Flags().BoolVar(&checkRotations, "check-rotations", false, "require a constant rotation between sightings")
	}
	return cmd
}

// readRecording parses the recording at path, or stdin for "-".
func readRecording(cmd *cobra.Command, path string) (*l1frames.Recording, error) {
	if path == "-" {
		return l1frames.ParseRecording(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return l1frames.ParseRecording(f)
}
