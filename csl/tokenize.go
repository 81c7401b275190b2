package csl

import (
	"strings"
	"unicode"
)

// Tokenize splits a line on commas, trims every token and drops empty ones.
func Tokenize(line string) []string {
	var tokens []string
	for part := range strings.SplitSeq(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tokens = append(tokens, part)
	}
	return tokens
}

func hasSpace(s string) bool {
	return strings.ContainsFunc(s, unicode.IsSpace)
}

// headerName reports whether text is a function header: one word, no comma.
func headerName(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" ||
		strings.ContainsRune(text, ',') ||
		hasSpace(text) {
		return "", false
	}
	return text, true
}
