package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/detection"
	"github.com/lvrreddy-3122005/shape-detector-solution/internal/imaging"
	"github.com/lvrreddy-3122005/shape-detector-solution/internal/store"
)

func detectCmd(configPath *string) *cobra.Command {
	var format string
	var dbPath string

	c := &cobra.Command{
		Use:   "detect <image>",
		Short: "Run the shape detection pipeline on an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := loadFileConfig(*configPath)
			if err != nil {
				return err
			}

			img, err := imaging.NewImageCache().Load(args[0])
			if err != nil {
				return err
			}

			processed := imaging.Preprocess(img, cfgFile.PreprocessOptions())
			result := detection.DetectImage(processed, cfgFile.DetectionConfig())
			if result.TruncatedContours > 0 {
				log.Printf("warning: %d contour walk(s) hit the step cap; input may be noise or texture",
					result.TruncatedContours)
			}

			if dbPath != "" {
				s, err := store.Open(dbPath)
				if err != nil {
					return err
				}
				defer s.Close()

				runID, err := s.RecordRun(args[0], result)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "recorded run %s\n", runID)
			}

			return printResult(cmd.OutOrStdout(), result, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&dbPath, "db", "", "SQLite database to record the run in (optional)")
	return c
}

func printResult(w io.Writer, result *detection.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "pretty", "":
		fmt.Fprintf(w, "%d shape(s) in %dx%d image\n",
			result.Count, result.ImageWidth, result.ImageHeight)
		for i, s := range result.Shapes {
			fmt.Fprintf(w, "  %d. %-9s conf %.2f  center (%.0f, %.0f)  area %.0f\n",
				i+1, s.Type, s.Confidence, s.Center.X, s.Center.Y, s.Area)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want pretty or json)", format)
	}
}
