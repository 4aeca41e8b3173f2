package util

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Wrap breaks text into lines no wider than width characters, splitting on whitespace.
// A word longer than width gets a line of its own. A width of zero or less disables
// wrapping and returns text as a single line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	joined := strings.Join(words, " ")
	if width <= 0 {
		return []string{joined}
	}

	return strings.Split(wordwrap.WrapString(joined, uint(width)), "\n")
}

// Indent prefixes every line with indent and joins them with newlines
func Indent(lines []string, indent string) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(indent)
		sb.WriteString(l)
	}

	return sb.String()
}
