package slug

import "testing"

// TestGenerate exercises the slug generator with typical titles, special
// characters, and edge cases.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "title with year",
			input: "Best Auto Insurance 2026",
			want:  "best-auto-insurance-2026",
		},
		{
			name:  "punctuation",
			input: "Liability, Collision & Comprehensive!",
			want:  "liability-collision-comprehensive",
		},
		{
			name:  "apostrophe dropped without split",
			input: "What's Covered?",
			want:  "whats-covered",
		},
		{
			name:  "underscores treated as separators",
			input: "state_minimum_coverage",
			want:  "state-minimum-coverage",
		},
		{
			name:  "existing hyphens preserved",
			input: "SR-22 Insurance",
			want:  "sr-22-insurance",
		},
		{
			name:  "consecutive separators collapsed",
			input: "New   Hampshire -- Rates",
			want:  "new-hampshire-rates",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  Trimmed Title  ",
			want:  "trimmed-title",
		},
		{
			name:  "only punctuation yields empty",
			input: "!?&%",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCandidate(t *testing.T) {
	if got := Candidate("hello-world", 0); got != "hello-world" {
		t.Errorf("Candidate n=0: got %q", got)
	}
	if got := Candidate("hello-world", 1); got != "hello-world-1" {
		t.Errorf("Candidate n=1: got %q", got)
	}
	if got := Candidate("hello-world", 12); got != "hello-world-12" {
		t.Errorf("Candidate n=12: got %q", got)
	}
}
