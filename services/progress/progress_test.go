package progress

import "testing"

func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		facts Facts
		want  Stage
	}{
		{"nothing done", Facts{}, StageSignedUp},
		{"profile only", Facts{ProfileComplete: true}, StageProfileComplete},
		{
			"uploaded",
			Facts{ProfileComplete: true, DocumentsUploaded: true},
			StageDocsUploaded,
		},
		{
			"verified",
			Facts{ProfileComplete: true, DocumentsUploaded: true, DocumentsVerified: true},
			StageDocsVerified,
		},
		{
			"finalized",
			Facts{ProfileComplete: true, DocumentsUploaded: true, DocumentsVerified: true, Finalized: true},
			StageFinalized,
		},
		{
			"verification without profile does not skip ahead",
			Facts{DocumentsUploaded: true, DocumentsVerified: true},
			StageSignedUp,
		},
		{
			"finalized flag alone means nothing",
			Facts{Finalized: true},
			StageSignedUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.facts); got != tt.want {
				t.Errorf("Derive(%+v) = %q, want %q", tt.facts, got, tt.want)
			}
		})
	}
}

func TestIndexMatchesOrder(t *testing.T) {
	stages := Stages()
	if len(stages) != 5 {
		t.Fatalf("expected 5 stages, got %d", len(stages))
	}
	for i, s := range stages {
		if Index(s) != i {
			t.Errorf("Index(%q) = %d, want %d", s, Index(s), i)
		}
	}
}
