package argsparser

import (
	"io"

	"github.com/napalu/argsparser/util"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithProgramName("convert"),
//		WithProgramDescription("converts files between formats"),
//		WithHelpWidth(80),
//		WithNameConverter(ToKebabCase))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	p := NewParser("", "")

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// WithProgramName sets the program name shown in the usage line and used in completion scripts
func WithProgramName(name string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.programName = name
	}
}

// WithProgramDescription sets the description printed below the usage line
func WithProgramDescription(description string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.description = description
	}
}

// WithOutput sets the writer PrintHelp uses when called with a nil writer. Defaults to os.Stdout.
func WithOutput(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if w == nil {
			*err = ErrNilWriter
			return
		}
		p.output = w
	}
}

// WithHelpWidth wraps argument descriptions to width columns. Zero restores the default:
// the terminal width when the output is a terminal, no wrapping otherwise.
func WithHelpWidth(width int) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if width < 0 {
			*err = ErrInvalidHelpWidth
			return
		}
		p.helpWidth = width
	}
}

// WithRenderer replaces the DefaultRenderer
func WithRenderer(r Renderer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if r == nil {
			*err = ErrNilRenderer
			return
		}
		p.renderer = r
	}
}

// WithNameConverter converts every declared argument name, and every name passed to IsSet, Get
// and Lookup, with fn. The converted name is the one matched on the command line.
func WithNameConverter(fn NameConversionFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.nameConverter = fn
	}
}

// WithTerminal replaces the terminal used to detect the help width
func WithTerminal(t util.Terminal) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.terminal = t
	}
}
