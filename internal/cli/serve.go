package cli

import (
	"github.com/spf13/cobra"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/server"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the detection pipeline as an MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := loadFileConfig(*configPath)
			if err != nil {
				return err
			}

			srv := server.NewWithConfig(cfgFile.DetectionConfig(), cfgFile.PreprocessOptions())
			return srv.Run()
		},
	}
}
