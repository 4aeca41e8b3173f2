package argsparser

import (
	"strings"

	"github.com/napalu/argsparser/util"
)

// Renderer composes help output. Parser.Help arranges what it returns into sections.
type Renderer interface {
	// Usage returns the usage line, e.g. "Usage: prog [OPTIONS] <input> [<output>]"
	Usage() string
	// ArgumentHeader returns the first line of an argument's help block
	ArgumentHeader(a ArgumentInfo) string
	// ArgumentUsage returns the complete help block of an argument, without trailing newline.
	// A width of zero or less disables wrapping.
	ArgumentUsage(a ArgumentInfo, width int) string
}

type DefaultRenderer struct {
	parser *Parser
}

func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// Usage lists the program name, an [OPTIONS] marker when named arguments exist, and every
// positional argument in declaration order. Optional positionals are bracketed.
func (r *DefaultRenderer) Usage() string {
	var sb strings.Builder
	sb.WriteString("Usage: ")
	sb.WriteString(r.parser.ProgramName())
	if r.parser.named.Len() > 0 {
		sb.WriteString(" [OPTIONS]")
	}
	for _, a := range r.parser.positionals {
		sb.WriteByte(' ')
		if a.Required() {
			sb.WriteString("<" + a.Name() + ">")
		} else {
			sb.WriteString("[<" + a.Name() + ">]")
		}
	}

	return sb.String()
}

// ArgumentHeader returns "-s, --name", "--name" or "<name>" followed by "(required)" when
// the argument must be supplied
func (r *DefaultRenderer) ArgumentHeader(a ArgumentInfo) string {
	return argumentHeader(a)
}

// ArgumentUsage returns the header followed by the description line. The description is
// wrapped to width.
func (r *DefaultRenderer) ArgumentUsage(a ArgumentInfo, width int) string {
	return renderArgument(a, width)
}

func renderArgument(a ArgumentInfo, width int) string {
	header := argumentHeader(a)
	details := argumentDetails(a)
	if details == "" {
		return header
	}

	if width <= 0 {
		return header + "\n" + helpDescriptionIndent + details
	}

	width -= len(helpDescriptionIndent)
	if width < 1 {
		width = 1
	}

	return header + "\n" + util.Indent(util.Wrap(details, width), helpDescriptionIndent)
}
