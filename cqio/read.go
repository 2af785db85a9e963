package cqio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/carbocation/pfx"
	"github.com/kclab/qpcr"
	"github.com/kclab/qpcr/cq"
	"gopkg.in/guregu/null.v3"
)

// Columns names the header fields that hold each well's sample name, target
// gene, and Cq value. Vendor software disagrees on header naming ("Sample
// Name", "Target Name", "CT", ...), so callers can override the defaults.
// Matching is exact and case sensitive.
type Columns struct {
	Sample string
	Target string
	Cq     string
}

func DefaultColumns() Columns {
	return Columns{Sample: "Sample", Target: "Target", Cq: "Cq"}
}

// FileInfo reports where a set of measurements came from and what the loader
// skipped along the way. Delimiter is set for delimited text only, Sheet for
// workbooks only. Metadata holds key/value pairs from "# Key: Value" comment
// lines (text) or from key/value rows above the header (workbooks); RunDate is
// filled from the first date-like metadata entry that parses.
type FileInfo struct {
	Path      string
	Delimiter rune
	Sheet     string
	Metadata  map[string]string
	RunDate   null.Time
	Wells     int
	WellsNoCq int
}

func (info *FileInfo) addMetadata(key, value string) {
	if info.Metadata == nil {
		info.Metadata = make(map[string]string)
	}
	info.Metadata[key] = value

	if !info.RunDate.Valid && dateLikeKey(key) {
		if when, err := dateparse.ParseAny(value); err == nil {
			info.RunDate = null.TimeFrom(when)
		}
	}
}

func dateLikeKey(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "date") || strings.Contains(key, "start") || strings.Contains(key, "time")
}

// Markers various thermocyclers write into the Cq column when a well never
// crossed threshold.
var noCqMarkers = []string{"NA", "N/A", "NaN", "Undetermined", "Undet.", "-"}

func isNoCq(field string) bool {
	if field == "" {
		return true
	}
	for _, marker := range noCqMarkers {
		if strings.EqualFold(field, marker) {
			return true
		}
	}
	return false
}

// ReadMeasurements loads per-well measurements from path, which may be
// delimited text (delimiter sniffed), a legacy .xls workbook, or an .xlsx
// workbook. Delimited text may also come from an http(s) URL.
func ReadMeasurements(path string, cols Columns) ([]cq.Measurement, FileInfo, error) {
	return ReadMeasurementsSheet(path, "", cols)
}

// ReadMeasurementsSheet is ReadMeasurements with an explicit workbook sheet
// name. An empty sheet means the workbook's first sheet. The sheet is ignored
// for delimited text.
func ReadMeasurementsSheet(path, sheet string, cols Columns) ([]cq.Measurement, FileInfo, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return readXLS(path, sheet, cols)
	case ".xlsx":
		return readXLSX(path, sheet, cols)
	}

	return readDelimited(path, cols)
}

func readDelimited(path string, cols Columns) ([]cq.Measurement, FileInfo, error) {
	info := FileInfo{Path: path}

	fileBytes, err := qpcr.OpenFileOrURL(path)
	if err != nil {
		return nil, info, err
	}

	// Exports aimed at Excel often lead with a UTF-8 byte order mark.
	fileBytes = bytes.TrimPrefix(fileBytes, []byte("\xef\xbb\xbf"))

	scanMetadata(fileBytes, &info)

	info.Delimiter = qpcr.DetermineDelimiter(bytes.NewReader(stripComments(fileBytes)))

	r := csv.NewReader(bytes.NewReader(fileBytes))
	r.Comma = info.Delimiter
	r.Comment = '#'
	r.LazyQuotes = true
	// Vendor exports pad metadata rows above the header with fewer cells than
	// the table itself, so field counts vary per record.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, info, pfx.Err(err)
	}

	rows, err := measurementsFromRecords(records, cols, &info)
	if err != nil {
		return nil, info, err
	}

	return rows, info, nil
}

// stripComments removes full-line # comments so metadata lines cannot skew
// delimiter detection.
func stripComments(fileBytes []byte) []byte {
	var out bytes.Buffer
	scanner := bufio.NewScanner(bytes.NewReader(fileBytes))
	for scanner.Scan() {
		if line := scanner.Text(); !strings.HasPrefix(line, "#") {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}
	return out.Bytes()
}

// scanMetadata collects "# Key: Value" comment lines. Only the first colon
// splits, so timestamp values keep theirs.
func scanMetadata(fileBytes []byte, info *FileInfo) {
	scanner := bufio.NewScanner(bytes.NewReader(fileBytes))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "#") {
			continue
		}

		keyval := strings.SplitN(strings.TrimLeft(line, "# "), ":", 2)
		if len(keyval) != 2 {
			continue
		}

		key, value := strings.TrimSpace(keyval[0]), strings.TrimSpace(keyval[1])
		if key == "" || value == "" {
			continue
		}

		info.addMetadata(key, value)
	}
}

// measurementsFromRecords parses a rectangular table into measurements. The
// header is the first row containing all three required column names; rows
// above it are treated as export metadata when they look like key/value
// pairs. Wells without a Cq value are dropped and counted rather than failing
// the load.
func measurementsFromRecords(records [][]string, cols Columns, info *FileInfo) ([]cq.Measurement, error) {
	required := []string{cols.Sample, cols.Target, cols.Cq}

	headerAt := -1
	var idx columnIndex
	var bestMissing []string
	for i, row := range records {
		if emptyRow(row) || commentRow(row) {
			continue
		}

		candidate, missing := headerIndices(row, cols)
		if len(missing) == 0 {
			headerAt, idx = i, candidate
			break
		}
		if bestMissing == nil || len(missing) < len(bestMissing) {
			bestMissing = missing
		}
	}

	if headerAt < 0 {
		if bestMissing == nil {
			return nil, fmt.Errorf("No header row found in %s", info.Path)
		}
		return nil, fmt.Errorf("Header is missing column(s) %q; required columns are %q", bestMissing, required)
	}

	for _, row := range records[:headerAt] {
		if key, value, ok := metadataCells(row); ok {
			info.addMetadata(key, value)
		}
	}

	out := make([]cq.Measurement, 0, len(records)-headerAt-1)
	for i, row := range records[headerAt+1:] {
		if emptyRow(row) || commentRow(row) {
			continue
		}

		cqField := strings.TrimSpace(cell(row, idx.cq))
		if isNoCq(cqField) {
			info.WellsNoCq++
			continue
		}

		cqValue, err := strconv.ParseFloat(cqField, 64)
		if err != nil {
			return nil, fmt.Errorf("Row %d: unparseable Cq value %q", headerAt+i+2, cqField)
		}

		out = append(out, cq.Measurement{
			Sample: cell(row, idx.sample),
			Target: cell(row, idx.target),
			Cq:     cqValue,
		})
		info.Wells++
	}

	return out, nil
}

type columnIndex struct {
	sample int
	target int
	cq     int
}

func headerIndices(header []string, cols Columns) (idx columnIndex, missing []string) {
	idx = columnIndex{sample: -1, target: -1, cq: -1}
	for i, name := range header {
		switch name {
		case cols.Sample:
			idx.sample = i
		case cols.Target:
			idx.target = i
		case cols.Cq:
			idx.cq = i
		}
	}

	for _, v := range []struct {
		name string
		col  int
	}{
		{cols.Sample, idx.sample},
		{cols.Target, idx.target},
		{cols.Cq, idx.cq},
	} {
		if v.col < 0 {
			missing = append(missing, v.name)
		}
	}

	return idx, missing
}

// cell indexes leniently. Workbook readers omit trailing empty cells, so an
// index past the row's end reads as empty.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func emptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func commentRow(row []string) bool {
	return len(row) > 0 && strings.HasPrefix(row[0], "#")
}

// metadataCells recognizes a workbook metadata row: exactly two non-empty
// cells, read as key and value.
func metadataCells(row []string) (key, value string, ok bool) {
	var filled []string
	for _, v := range row {
		if s := strings.TrimSpace(v); s != "" {
			filled = append(filled, s)
		}
	}

	if len(filled) != 2 {
		return "", "", false
	}

	return strings.TrimSuffix(filled[0], ":"), filled[1], true
}
