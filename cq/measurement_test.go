package cq

import "testing"

type cleanExpectations struct {
	In  string
	Out string
}

func TestCleanSampleName(t *testing.T) {
	for _, v := range []cleanExpectations{
		{"Sample_1", "Sample"},
		{"Sample_12", "Sample"},
		{"Control", "Control"},
		{"S1", "S1"},
		{"_1", ""},
		{"Sample_1a", "Sample_1a"},
		{"X_1_2", "X_1"},
		{"Treated_A_3", "Treated_A"},
		{"trailing_", "trailing_"},
		{"", ""},
	} {
		if cleaned := CleanSampleName(v.In); cleaned != v.Out {
			t.Errorf("CleanSampleName(%q): got %q, expected %q", v.In, cleaned, v.Out)
		}
	}
}

func TestFilterTarget(t *testing.T) {
	rows := []Measurement{
		{Sample: "S1_1", Target: "ACTB", Cq: 20.0},
		{Sample: "S1_1", Target: "GAPDH", Cq: 25.0},
		{Sample: "S1_2", Target: "ACTB", Cq: 20.4},
		{Sample: "S2_1", Target: "actb", Cq: 30.0},
	}

	kept := FilterTarget(rows, "ACTB")
	if len(kept) != 2 {
		t.Fatalf("Expected 2 ACTB rows, got %d", len(kept))
	}
	for _, row := range kept {
		if row.Target != "ACTB" {
			t.Error("Mismatch")
		}
	}

	// Case matters; "actb" is a different target.
	if kept := FilterTarget(rows, "actb"); len(kept) != 1 {
		t.Errorf("Expected 1 actb row, got %d", len(kept))
	}

	// Unknown targets filter to empty, not to an error.
	if kept := FilterTarget(rows, "GUSB"); len(kept) != 0 {
		t.Errorf("Expected 0 GUSB rows, got %d", len(kept))
	}
}
