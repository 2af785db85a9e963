package cq

import (
	"sort"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summarize collapses technical duplicates. Rows are grouped by base sample
// name, and each group reduces to its mean Cq, its sample standard deviation
// (n-1 denominator; undefined for singleton groups), and its replicate count.
// Summaries come back sorted by base sample so output is stable run to run.
func Summarize(rows []Measurement) ([]Summary, error) {
	groups := make(map[string][]float64)
	for _, row := range rows {
		base := row.BaseSample()
		groups[base] = append(groups[base], row.Cq)
	}

	out := make([]Summary, 0, len(groups))
	for base, cqs := range groups {
		mean, err := stats.Mean(cqs)
		if err != nil {
			return nil, pfx.Err(err)
		}

		summary := Summary{
			BaseSample: base,
			MeanCq:     mean,
			N:          len(cqs),
		}

		if len(cqs) >= 2 {
			sd, err := stats.StandardDeviationSample(cqs)
			if err != nil {
				return nil, pfx.Err(err)
			}
			summary.StdCq = NullFloatFrom(sd)
		}

		out = append(out, summary)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].BaseSample < out[j].BaseSample
	})

	return out, nil
}

// Distribution describes the spread of raw Cq values across a set of wells.
// It feeds QC log lines and report subtitles, not the summary table itself.
type Distribution struct {
	N      int
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
	Q25    float64
	Median float64
	Q75    float64
}

// Describe computes the Cq distribution over every well in rows. An empty
// input yields the zero Distribution.
func Describe(rows []Measurement) Distribution {
	if len(rows) == 0 {
		return Distribution{}
	}

	cqs := make([]float64, 0, len(rows))
	for _, row := range rows {
		cqs = append(cqs, row.Cq)
	}
	sort.Float64s(cqs)

	d := Distribution{
		N:      len(cqs),
		Mean:   stat.Mean(cqs, nil),
		Min:    cqs[0],
		Max:    cqs[len(cqs)-1],
		Q25:    stat.Quantile(0.25, stat.LinInterp, cqs, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, cqs, nil),
		Q75:    stat.Quantile(0.75, stat.LinInterp, cqs, nil),
	}

	if len(cqs) >= 2 {
		d.Std = stat.StdDev(cqs, nil)
	}

	return d
}
