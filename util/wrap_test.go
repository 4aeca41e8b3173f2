package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"no wrapping", "input file to process", 0, []string{"input file to process"}},
		{"collapses whitespace", "  input   file  ", 0, []string{"input file"}},
		{"fits", "input file", 20, []string{"input file"}},
		{"exact fit", "input file", 10, []string{"input file"}},
		{"wraps", "the input file to process", 10, []string{"the input", "file to", "process"}},
		{"long word", "a supercalifragilistic word", 8, []string{"a", "supercalifragilistic", "word"}},
		{"empty", "", 10, nil},
		{"runes counted", "ééé ééé", 7, []string{"ééé ééé"}},
		{"newlines collapsed", "input\nfile to\tprocess", 11, []string{"input file", "to process"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "    a\n    b", Indent([]string{"a", "b"}, "    "))
	assert.Equal(t, "", Indent(nil, "  "))
}
