// Package cli implements the shape-detector command line interface.
//
// Four subcommands cover the tool's surfaces: detect (run the pipeline on
// one image), annotate (write the detections back onto the image), score
// (evaluate a ground-truth corpus), and serve (expose the pipeline as an
// MCP stdio server). All of them accept an optional --config YAML file for
// detection tuning and preprocessing.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/config"
)

// Execute runs the root command and exits nonzero on error.
func Execute(version string) {
	cmd := newRootCmd(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(version string) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "shape-detector",
		Short:        "Detect and classify geometric shapes in raster images",
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file with detection tuning")

	cmd.AddCommand(
		detectCmd(&configPath),
		annotateCmd(&configPath),
		scoreCmd(&configPath),
		serveCmd(&configPath),
	)
	return cmd
}

// loadFileConfig loads the optional config file. An empty path means pure
// defaults; a *config.File nil result is valid everywhere it is consumed.
func loadFileConfig(path string) (*config.File, error) {
	if path == "" {
		return nil, nil
	}
	return config.Load(path)
}
