package argsparser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserConfigFuncs(t *testing.T) {
	var out bytes.Buffer
	term := &fakeTerminal{width: 60}

	p, err := NewParserWith(
		WithProgramName("convert"),
		WithProgramDescription("converts files between formats"),
		WithOutput(&out),
		WithHelpWidth(40),
		WithNameConverter(ToSnakeCase),
		WithTerminal(term))
	require.NoError(t, err)

	assert.Equal(t, "convert", p.ProgramName())
	assert.Equal(t, "converts files between formats", p.Description())
	assert.Same(t, &out, p.output)
	assert.Equal(t, 40, p.helpWidthFor(p.output))
	assert.Same(t, term, p.terminal)

	a := Add(p, "OutputFormat", "f", "", false, "")
	assert.Equal(t, "output_format", a.Name())
}

func TestNewParserWith_Defaults(t *testing.T) {
	p, err := NewParserWith()
	require.NoError(t, err)

	assert.NotEmpty(t, p.ProgramName(), "falls back to the executable name")
	assert.Empty(t, p.Description())
	assert.IsType(t, &DefaultRenderer{}, p.renderer)
	assert.Empty(t, p.Warnings())
	assert.Equal(t, Success, p.Parse(nil))
}

func TestArgumentConfigFuncs(t *testing.T) {
	var decl Declaration
	var err error
	for _, config := range []ConfigureArgumentFunc{
		WithShortName("o"),
		WithDescription("output file"),
		SetRequired(true),
	} {
		config(&decl, &err)
	}

	require.NoError(t, err)
	assert.Equal(t, Declaration{Short: "o", Description: "output file", Required: true}, decl)
}
