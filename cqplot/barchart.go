package cqplot

import (
	"fmt"

	"github.com/icza/gox/imagex/colorx"
	"github.com/kclab/qpcr/cq"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultBarColor is the bar fill used when the caller does not pick one.
const DefaultBarColor = "#4682b4"

type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// BarChart writes a PNG bar chart of mean Cq per base sample to path. Each
// bar carries a ±1 sample SD error bar; singleton samples get a bar without
// one. hexColor selects the bar fill ("#rrggbb").
func BarChart(path, target string, sums []cq.Summary, hexColor string) error {
	if len(sums) == 0 {
		return fmt.Errorf("No summaries to plot")
	}

	if hexColor == "" {
		hexColor = DefaultBarColor
	}
	fill, err := colorx.ParseHexColor(hexColor)
	if err != nil {
		return fmt.Errorf("Bar color %q is not a hex color: %w", hexColor, err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Mean Cq by sample (%s)", target)
	p.Y.Label.Text = "Cq"

	values := make(plotter.Values, 0, len(sums))
	names := make([]string, 0, len(sums))
	for _, s := range sums {
		values = append(values, s.MeanCq)
		names = append(names, s.BaseSample)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return err
	}
	bars.Color = fill
	p.Add(bars)
	p.NominalX(names...)

	// Error bar i sits at x=i, which is where NominalX centers bar i.
	var errs errorPoints
	for i, s := range sums {
		if !s.StdCq.Valid {
			continue
		}
		errs.XYs = append(errs.XYs, plotter.XY{X: float64(i), Y: s.MeanCq})
		errs.YErrors = append(errs.YErrors, struct{ Low, High float64 }{s.StdCq.Float64, s.StdCq.Float64})
	}
	if len(errs.XYs) > 0 {
		whiskers, err := plotter.NewYErrorBars(errs)
		if err != nil {
			return err
		}
		p.Add(whiskers)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
