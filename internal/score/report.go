package score

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML writes the report as a standalone HTML page with a bar chart
// of per-class precision, recall, and F1, plus the aggregate F1 in the
// subtitle.
func RenderHTML(report *Report, w io.Writer) error {
	classes := make([]string, 0, len(report.Types))
	precision := make([]opts.BarData, 0, len(report.Types))
	recall := make([]opts.BarData, 0, len(report.Types))
	f1 := make([]opts.BarData, 0, len(report.Types))
	for _, ts := range report.Types {
		classes = append(classes, ts.Type)
		precision = append(precision, opts.BarData{Value: ts.Precision})
		recall = append(recall, opts.BarData{Value: ts.Recall})
		f1 = append(f1, opts.BarData{Value: ts.F1})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "720px"}),
		charts.WithTitleOpts(opts.Title{
			Title: "Shape Detection Scores",
			Subtitle: fmt.Sprintf("%d images, mean F1 %.3f (stddev %.3f)",
				len(report.Images), report.MeanF1, report.StdDevF1),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(classes).
		AddSeries("precision", precision).
		AddSeries("recall", recall).
		AddSeries("f1", f1,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	page := components.NewPage()
	page.AddCharts(bar)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// WriteHTMLFile renders the report to an HTML file at path.
func WriteHTMLFile(report *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	return RenderHTML(report, f)
}
