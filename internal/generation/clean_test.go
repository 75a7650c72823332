package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSentence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "quoted_with_outer_whitespace", raw: `  "A cat sat on the mat."  `, want: "A cat sat on the mat."},
		{name: "single_quotes", raw: "'Rain fell softly.'", want: "Rain fell softly."},
		{name: "plain", raw: "Plain text.", want: "Plain text."},
		{name: "trailing_newline", raw: "Line one.\n", want: "Line one."},
		{name: "only_one_layer_removed", raw: `""Nested.""`, want: `"Nested."`},
		{name: "leading_quote_only", raw: `"Half quoted.`, want: "Half quoted."},
		{name: "whitespace_inside_quotes", raw: `" padded "`, want: "padded"},
		{name: "empty", raw: "", want: ""},
		{name: "only_quotes", raw: `""`, want: ""},
		{name: "single_quote_char", raw: `"`, want: ""},
		{name: "inner_quotes_kept", raw: `She said "hi" twice.`, want: `She said "hi" twice.`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanSentence(tc.raw))
		})
	}
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   "))
	assert.Equal(t, 6, CountWords("A cat sat on the mat."))
	assert.Equal(t, 3, CountWords(" spaced   out\twords "))
}
