package qpcr

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune delimiting the values
// in the reader. Thermocycler software disagrees on export formats (comma vs
// tab, usually), so we sniff rather than assume. Falls back to comma when the
// detector is unsure.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
