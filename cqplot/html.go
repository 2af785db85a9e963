package cqplot

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/kclab/qpcr/cq"
)

// WriteHTMLReport writes a standalone HTML report to path: an interactive bar
// chart of per-sample mean Cqs with the individual replicate wells overlaid
// as scatter points, so outliers are visible next to the averages they moved.
func WriteHTMLReport(path, target string, sums []cq.Summary, rows []cq.Measurement, dist cq.Distribution) error {
	if len(sums) == 0 {
		return fmt.Errorf("No summaries to report")
	}

	names := make([]string, 0, len(sums))
	means := make([]opts.BarData, 0, len(sums))
	for _, s := range sums {
		names = append(names, s.BaseSample)
		means = append(means, opts.BarData{Value: s.MeanCq})
	}

	wells := make([]opts.ScatterData, 0, len(rows))
	for _, row := range rows {
		wells = append(wells, opts.ScatterData{Value: []interface{}{row.BaseSample(), row.Cq}})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("qPCR summary: %s", target),
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Mean Cq by sample (%s)", target),
			Subtitle: fmt.Sprintf("%d wells, Cq %.2f-%.2f, median %.2f", dist.N, dist.Min, dist.Max, dist.Median),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).AddSeries("mean Cq", means)

	scatter := charts.NewScatter()
	scatter.SetXAxis(names).
		AddSeries("wells", wells, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))

	bar.Overlap(scatter)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return bar.Render(f)
}
