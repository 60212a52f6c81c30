package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: ""},
		{name: "keeps plus and dot", input: "C++ / Node.js!!", expect: "c++ node.js"},
		{name: "keeps hash and dash", input: "C#, scikit-learn", expect: "c# scikit-learn"},
		{name: "collapses whitespace", input: "  Go\t\tand\n\nRust  ", expect: "go and rust"},
		{name: "punctuation only", input: "!!! ???", expect: ""},
		{name: "unicode letters survive", input: "Café (Zürich)", expect: "café zürich"},
		{name: "underscore is a word char", input: "snake_case", expect: "snake_case"},
		{name: "superscript digits are word chars", input: "x²y, ½ cup", expect: "x²y ½ cup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"C++ / Node.js!!",
		"  Machine-Learning (ML) & AI; 2019–2021 ",
		"•  Python • Go • SQL",
		"",
		"ÄÖÜ résumé — [draft]",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
