package cqplot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kclab/qpcr/cq"
)

func testSummaries() []cq.Summary {
	return []cq.Summary{
		{BaseSample: "S1", MeanCq: 20.2, StdCq: cq.NullFloatFrom(0.282842712474619), N: 2},
		{BaseSample: "S2", MeanCq: 22.0, N: 1},
	}
}

func testRows() []cq.Measurement {
	return []cq.Measurement{
		{Sample: "S1_1", Target: "ACTB", Cq: 20.0},
		{Sample: "S1_2", Target: "ACTB", Cq: 20.4},
		{Sample: "S2_1", Target: "ACTB", Cq: 22.0},
	}
}

func TestBarChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.png")

	if err := BarChart(path, "ACTB", testSummaries(), ""); err != nil {
		t.Fatal(err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if stat.Size() == 0 {
		t.Error("Expected a non-empty PNG")
	}
}

func TestBarChartBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.png")

	if err := BarChart(path, "ACTB", testSummaries(), "notacolor"); err == nil {
		t.Error("Expected an error for a bad hex color")
	}

	if err := BarChart(path, "ACTB", nil, ""); err == nil {
		t.Error("Expected an error for an empty summary")
	}
}

func TestReplicateScatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wells.png")

	if err := ReplicateScatter(path, "ACTB", testRows()); err != nil {
		t.Fatal(err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if stat.Size() == 0 {
		t.Error("Expected a non-empty PNG")
	}
}

func TestReplicateScatterSingleSample(t *testing.T) {
	rows := []cq.Measurement{
		{Sample: "S1_1", Target: "ACTB", Cq: 20.0},
		{Sample: "S1_2", Target: "ACTB", Cq: 20.4},
	}

	path := filepath.Join(t.TempDir(), "wells.png")
	if err := ReplicateScatter(path, "ACTB", rows); err != nil {
		t.Fatal(err)
	}
}

func TestWriteHTMLReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	dist := cq.Describe(testRows())
	if err := WriteHTMLReport(path, "ACTB", testSummaries(), testRows(), dist); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	html := string(raw)
	for _, want := range []string{"S1", "S2", "mean Cq", "wells"} {
		if !strings.Contains(html, want) {
			t.Errorf("Report does not mention %q", want)
		}
	}
}

func TestPrintHistogram(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintHistogram(&buf, testRows(), 5); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("Expected histogram output")
	}

	buf.Reset()
	if err := PrintHistogram(&buf, nil, 5); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Error("Expected no output for no measurements")
	}
}
