package cq

import (
	"strconv"

	"gopkg.in/guregu/null.v3"
)

// Summary describes one biological sample's Cq statistics across its
// technical-duplicate wells, within a single target.
type Summary struct {
	BaseSample string    `csv:"base_sample"`
	MeanCq     float64   `csv:"mean_cq"`
	StdCq      NullFloat `csv:"std_cq"`
	N          int       `csv:"n"`
}

// NullFloat is a float that may be undefined, like the standard deviation of a
// singleton group. Its zero value is undefined.
type NullFloat struct {
	null.Float
}

// NullFloatFrom returns a defined NullFloat holding v.
func NullFloatFrom(v float64) NullFloat {
	return NullFloat{null.FloatFrom(v)}
}

// String renders the value, or the empty string when undefined, so an absent
// standard deviation never masquerades as 0.
func (f NullFloat) String() string {
	if !f.Valid {
		return ""
	}

	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}

// MarshalCSV implements gocsv's TypeMarshaller.
func (f NullFloat) MarshalCSV() (string, error) {
	return f.String(), nil
}

// UnmarshalCSV implements gocsv's TypeUnmarshaller. An empty cell is a valid
// undefined value, anything else must parse as a float.
func (f *NullFloat) UnmarshalCSV(field string) error {
	if field == "" {
		f.Float = null.Float{}
		return nil
	}

	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return err
	}

	f.Float = null.FloatFrom(v)

	return nil
}
