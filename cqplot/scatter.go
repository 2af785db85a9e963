package cqplot

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/kclab/qpcr/cq"
	"github.com/wcharczuk/go-chart/v2"
)

// ReplicateScatter writes a PNG dot plot of every well's Cq, with wells of a
// base sample stacked at the same x position. A discordant replicate stands
// out here where the averaged bars would hide it.
func ReplicateScatter(path, target string, rows []cq.Measurement) error {
	if len(rows) == 0 {
		return fmt.Errorf("No measurements to plot")
	}

	// One x slot per base sample, in sorted order to match the summary table.
	slots := make(map[string]int)
	for _, row := range rows {
		slots[row.BaseSample()] = 0
	}
	names := make([]string, 0, len(slots))
	for base := range slots {
		names = append(names, base)
	}
	sort.Strings(names)
	for i, base := range names {
		slots[base] = i
	}

	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for _, row := range rows {
		xs = append(xs, float64(slots[row.BaseSample()]))
		ys = append(ys, row.Cq)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Cq per well (%s)", target),
		Width:  512,
		Height: 256,
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
			// Explicit range keeps a one-sample plate from collapsing the
			// x domain to a point.
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(names)) - 0.5},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return err
	}

	return nil
}
