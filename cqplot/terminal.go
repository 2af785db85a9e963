package cqplot

import (
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/kclab/qpcr/cq"
)

// PrintHistogram writes a text histogram of the raw Cq values to w, for
// eyeballing a plate from the terminal without opening an image. Writes
// nothing when there are no measurements.
func PrintHistogram(w io.Writer, rows []cq.Measurement, bins int) error {
	if len(rows) == 0 {
		return nil
	}

	cqs := make([]float64, 0, len(rows))
	for _, row := range rows {
		cqs = append(cqs, row.Cq)
	}

	hist := histogram.Hist(bins, cqs)

	return histogram.Fprint(w, hist, histogram.Linear(5))
}
