package main

import (
	"github.com/spf13/cobra"

	"github.com/banshee-data/asteroid.report/internal/config"
	"github.com/banshee-data/asteroid.report/internal/monitoring"
	"github.com/banshee-data/asteroid.report/internal/sky/pipeline"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "asteroid",
		Short: "Detect, cluster and time objects in sky frame recordings",
		Long: `asteroid reads a recording (start, end, frame count, then per frame a
timestamp, dimensions and cells) and runs one of three passes:

  detect    timestamps of frames holding any nonzero cell
  cluster   cropped objects grouped into shapes ("start end count")
  periodic  shapes recurring at a fixed interval up to the end ("first last length")`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			monitoring.SetDebug(opts.debug)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "analysis config file, .json or .yaml (defaults apply when empty)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log per-pass diagnostics")

	root.AddCommand(
		newLevelCmd(opts, pipeline.LevelDetect, "Print timestamps of frames that contain an object"),
		newLevelCmd(opts, pipeline.LevelCluster, "Group cropped objects into shapes"),
		newLevelCmd(opts, pipeline.LevelPeriodic, "Find shapes that recur at a fixed interval"),
		newBatchCmd(opts),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads the --config file, or returns the defaults.
func (o *options) loadConfig() (*config.AnalysisConfig, error) {
	if o.configPath == "" {
		return config.DefaultAnalysisConfig(), nil
	}
	return config.LoadAnalysisConfig(o.configPath)
}
