package cq

import "regexp"

// Measurement is a single well's reading: which physical sample was loaded,
// which target was assayed, and the quantification cycle the instrument
// called for it.
type Measurement struct {
	Sample string
	Target string
	Cq     float64
}

// replicateSuffix matches the trailing _1, _2, ... that plate layouts append
// to distinguish technical duplicate wells of the same biological sample.
var replicateSuffix = regexp.MustCompile(`_\d+$`)

// CleanSampleName strips the technical-replicate suffix from a sample name, so
// KC_sample1_1 and KC_sample1_2 both collapse to KC_sample1. Names without a
// trailing _<digits> group come back unchanged.
func CleanSampleName(sample string) string {
	return replicateSuffix.ReplaceAllString(sample, "")
}

// BaseSample is the measurement's sample name with the replicate suffix removed.
func (m Measurement) BaseSample() string {
	return CleanSampleName(m.Sample)
}

// FilterTarget returns the subset of rows assaying the named target. The match
// is exact and case-sensitive. An unknown target yields an empty, non-nil
// slice rather than an error, since "no wells for this gene" is an answer.
func FilterTarget(rows []Measurement, target string) []Measurement {
	out := make([]Measurement, 0, len(rows))

	for _, row := range rows {
		if row.Target == target {
			out = append(out, row)
		}
	}

	return out
}
