package generation

import "strings"

// CleanSentence strips surrounding whitespace and then one layer of leading
// and trailing quote characters (" or ') from a raw completion.
func CleanSentence(raw string) string {
	s := strings.TrimSpace(raw)
	if s != "" && isQuote(s[0]) {
		s = s[1:]
	}
	if s != "" && isQuote(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}

func isQuote(b byte) bool {
	return b == '"' || b == '\''
}

// CountWords returns the number of whitespace separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
