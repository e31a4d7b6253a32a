// Package textutil provides text processing helpers shared by the tokenizer
// and the dataset loader.
package textutil

import (
	"regexp"
	"strings"
)

var (
	newlineRe    = regexp.MustCompile(`[\n\r]`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
	urlRe        = regexp.MustCompile(`https?://[^\s"'<>]+`)
	wordRe       = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// CollapseWhitespace replaces runs of two or more whitespace characters with
// a single space.
func CollapseWhitespace(text string) string {
	return multiSpaceRe.ReplaceAllString(text, " ")
}

// StripNewlines removes newline and carriage return characters.
func StripNewlines(text string) string {
	return newlineRe.ReplaceAllString(text, "")
}

// FindURLs returns all http/https URLs contained in the text.
func FindURLs(text string) []string {
	return urlRe.FindAllString(text, -1)
}

// Words extracts lowercased word tokens from text (Unicode-aware).
func Words(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}
