package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{name: "non-positive limit", input: "hello world", limit: 0, expect: ""},
		{name: "shorter than limit", input: "hello", limit: 10, expect: "hello"},
		{name: "cut with ellipsis", input: "hello world", limit: 5, expect: "hello..."},
		{name: "surrounding whitespace", input: "  spaced  ", limit: 5, expect: "space..."},
		{name: "multiline prompt", input: "Role:\n\n  Data\tAnalyst\n", limit: 50, expect: "Role: Data Analyst"},
		{name: "counts runes", input: "résumé écrit", limit: 6, expect: "résumé..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
