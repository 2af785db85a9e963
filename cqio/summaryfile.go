package cqio

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"github.com/kclab/qpcr"
	"github.com/kclab/qpcr/cq"
)

// summaryDelimiter picks the output delimiter from the file extension: tab
// for .tsv and .txt, comma otherwise.
func summaryDelimiter(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt":
		return '\t'
	}
	return ','
}

// WriteSummaries writes the summary table (base_sample, mean_cq, std_cq, n)
// to path. An undefined std_cq serializes as an empty field. An empty summary
// still writes the header row.
func WriteSummaries(path string, sums []cq.Summary) error {
	f, err := os.Create(qpcr.ExpandHome(path))
	if err != nil {
		return err
	}
	defer f.Close()

	comma := summaryDelimiter(path)
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = comma
		return gocsv.NewSafeCSVWriter(w)
	})

	if err := gocsv.MarshalFile(&sums, f); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// ReadSummaries loads a summary table written by WriteSummaries. The
// delimiter is sniffed, so comma and tab variants both load. Rows whose
// std_cq field is empty come back with an invalid StdCq.
func ReadSummaries(path string) ([]cq.Summary, error) {
	fileBytes, err := qpcr.OpenFileOrURL(path)
	if err != nil {
		return nil, err
	}

	comma := qpcr.DetermineDelimiter(bytes.NewReader(fileBytes))
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = comma
		r.LazyQuotes = true
		return r
	})

	records := []*cq.Summary{}
	if err := gocsv.UnmarshalBytes(fileBytes, &records); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]cq.Summary, 0, len(records))
	for _, record := range records {
		out = append(out, *record)
	}

	return out, nil
}
