package cqio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kclab/qpcr/cq"
)

func TestSummaryRoundTrip(t *testing.T) {
	sums := []cq.Summary{
		{BaseSample: "S1", MeanCq: 20.2, StdCq: cq.NullFloatFrom(0.282842712474619), N: 2},
		{BaseSample: "S2", MeanCq: 22.0, N: 1},
	}

	path := filepath.Join(t.TempDir(), "summary.csv")
	if err := WriteSummaries(path, sums); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "base_sample,mean_cq,std_cq,n" {
		t.Errorf("Header mismatch: %q", lines[0])
	}

	// An undefined standard deviation serializes as an empty field.
	if !strings.Contains(lines[2], "S2,22,,1") {
		t.Errorf("Singleton row mismatch: %q", lines[2])
	}

	back, err := ReadSummaries(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sums, back); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryRoundTripTSV(t *testing.T) {
	sums := []cq.Summary{
		{BaseSample: "Mock", MeanCq: 30.5, StdCq: cq.NullFloatFrom(0.5), N: 3},
	}

	path := filepath.Join(t.TempDir(), "summary.tsv")
	if err := WriteSummaries(path, sums); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "base_sample\tmean_cq\tstd_cq\tn") {
		t.Errorf("Expected tab-delimited output, got %q", string(raw))
	}

	back, err := ReadSummaries(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sums, back); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSummariesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	if err := WriteSummaries(path, []cq.Summary{}); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(raw)) != "base_sample,mean_cq,std_cq,n" {
		t.Errorf("Expected a header-only file, got %q", string(raw))
	}

	back, err := ReadSummaries(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 0 {
		t.Errorf("Expected no summaries, got %+v", back)
	}
}
