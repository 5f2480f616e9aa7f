package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/imaging"
	"github.com/lvrreddy-3122005/shape-detector-solution/internal/score"
	"github.com/lvrreddy-3122005/shape-detector-solution/internal/store"
)

func scoreCmd(configPath *string) *cobra.Command {
	var reportPath string
	var dbPath string

	c := &cobra.Command{
		Use:   "score <corpus.yaml>",
		Short: "Evaluate detection against a ground-truth corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := loadFileConfig(*configPath)
			if err != nil {
				return err
			}

			corpus, err := score.LoadCorpus(args[0])
			if err != nil {
				return err
			}

			ev := &score.Evaluator{
				Cache:      imaging.NewImageCache(),
				Config:     cfgFile.DetectionConfig(),
				Preprocess: cfgFile.PreprocessOptions(),
			}

			if dbPath != "" {
				s, err := store.Open(dbPath)
				if err != nil {
					return err
				}
				defer s.Close()
				ev.Store = s
			}

			report, err := ev.Run(corpus)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, img := range report.Images {
				fmt.Fprintf(out, "%-30s expected %d  detected %d  matched %d  F1 %.3f\n",
					img.Image, img.Expected, img.Detected, img.Matched, img.F1)
			}
			fmt.Fprintln(out)
			for _, ts := range report.Types {
				fmt.Fprintf(out, "%-10s precision %.3f  recall %.3f  F1 %.3f\n",
					ts.Type, ts.Precision, ts.Recall, ts.F1)
			}
			fmt.Fprintf(out, "\nmean F1 %.3f (stddev %.3f) over %d image(s)\n",
				report.MeanF1, report.StdDevF1, len(report.Images))

			if reportPath != "" {
				if err := score.WriteHTMLFile(report, reportPath); err != nil {
					return err
				}
				fmt.Fprintf(out, "report written to %s\n", reportPath)
			}
			return nil
		},
	}

	c.Flags().StringVar(&reportPath, "report", "", "Write an HTML chart report to this path (optional)")
	c.Flags().StringVar(&dbPath, "db", "", "SQLite database to record per-image runs in (optional)")
	return c
}
