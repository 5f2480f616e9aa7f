package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/detection"
	"github.com/lvrreddy-3122005/shape-detector-solution/internal/imaging"
)

func annotateCmd(configPath *string) *cobra.Command {
	var outPath string

	c := &cobra.Command{
		Use:   "annotate <image>",
		Short: "Detect shapes and write the image with detections drawn on top",
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

			if outPath == "" {
				outPath = annotatedPath(args[0])
			}
			if err := imaging.SaveAnnotated(processed, result.Shapes, outPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d shape(s) annotated -> %s\n", result.Count, outPath)
			return nil
		},
	}

	c.Flags().StringVar(&outPath, "out", "", "Output image path (default: <image>_annotated.png)")
	return c
}

// annotatedPath derives the default output path next to the input image.
func annotatedPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_annotated.png"
}
