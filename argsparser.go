// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package argsparser provides typed command-line argument parsing.
//
// Arguments are declared against a Parser with a Go type which fixes their kind:
//
//	bool - a flag, set by presence alone (-v, --verbose, or grouped as -vdq)
//	string - text taken verbatim
//	int8 ... int64, int, uint8 ... uint64, uint - base-10 integers checked against their exact width
//	float32, float64 - decimal or scientific notation
//	time.Time - a date or timestamp
//
// Named arguments accept --name value, --name=value, -n value and -nvalue. Values which are
// not options bind to positional arguments in declaration order. Parse never panics and
// never prints: it returns a ParseResult, and LastError describes any failure.
package argsparser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/argsparser/completion"
	"github.com/napalu/argsparser/internal/convert"
	"github.com/napalu/argsparser/parse"
	"github.com/napalu/argsparser/util"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Parser owns every declared argument. Handles returned by Add, AddPositional, Declare and
// DeclarePositional stay valid for the lifetime of the Parser. A Parser is not safe for
// concurrent use.
type Parser struct {
	programName   string
	description   string
	named         *orderedmap.OrderedMap[string, argument]
	short         map[string]argument
	positionals   []argument
	lastError     string
	lastResult    ParseResult
	warnings      []string
	output        io.Writer
	helpWidth     int
	terminal      util.Terminal
	renderer      Renderer
	nameConverter NameConversionFunc
}

// NewParser returns a Parser for programName. The description is printed below the usage line.
func NewParser(programName, description string) *Parser {
	p := &Parser{
		programName: programName,
		description: description,
		named:       orderedmap.New[string, argument](),
		short:       map[string]argument{},
		positionals: []argument{},
		output:      os.Stdout,
		terminal:    util.DefaultTerminal,
	}
	p.renderer = NewRenderer(p)

	return p
}

// Add declares a named argument of type T and returns its handle. The short name may be
// empty. Add panics when name is empty; use Declare to get an error instead.
func Add[T Value](p *Parser, name, short, description string, required bool, def T) *Argument[T] {
	a, err := Declare(p, name, def, WithShortName(short), WithDescription(description), SetRequired(required))
	if err != nil {
		panic(err)
	}

	return a
}

// AddPositional declares a positional argument of type T. Positional arguments bind to
// non-option values in the order they are declared. AddPositional panics when name is empty.
func AddPositional[T Value](p *Parser, name, description string, required bool, def T) *Argument[T] {
	a, err := DeclarePositional(p, name, def, WithDescription(description), SetRequired(required))
	if err != nil {
		panic(err)
	}

	return a
}

// Declare declares a named argument of type T configured with configs.
//
// Example:
//
//	count, err := Declare(p, "count", int32(10),
//		WithShortName("c"),
//		WithDescription("number of items"))
func Declare[T Value](p *Parser, name string, def T, configs ...ConfigureArgumentFunc) (*Argument[T], error) {
	return declare(p, Declaration{Name: name}, def, configs)
}

// DeclarePositional declares a positional argument of type T configured with configs.
// Positional arguments are required unless configured with SetRequired(false).
func DeclarePositional[T Value](p *Parser, name string, def T, configs ...ConfigureArgumentFunc) (*Argument[T], error) {
	return declare(p, Declaration{Name: name, Positional: true, Required: true}, def, configs)
}

// Parse processes the argument vector. A first element exactly equal to the executable path is
// ignored, so both os.Args and os.Args[1:] may be passed. Every declared argument is reset to
// its default before the arguments are processed, unless help is requested.
func (p *Parser) Parse(args []string) ParseResult {
	pruneExecPathFromArgs(&args)

	return p.parse(args)
}

// ParseArgv processes argv, always skipping its first element (the program name)
func (p *Parser) ParseArgv(argv []string) ParseResult {
	if len(argv) > 0 {
		argv = argv[1:]
	}

	return p.parse(argv)
}

// ParseString splits cmdLine using shell quoting rules and processes the result like Parse.
// A malformed command line, such as an unterminated quote, yields InvalidValue.
func (p *Parser) ParseString(cmdLine string) ParseResult {
	args, err := parse.Split(cmdLine)
	if err != nil {
		return p.fail(InvalidValue, "Invalid command line: %s", err)
	}

	return p.Parse(args)
}

// LastError describes the failure of the last Parse call. It is empty after success.
func (p *Parser) LastError() string {
	return p.lastError
}

// Err returns nil when the last Parse call succeeded. Otherwise the returned error wraps the
// sentinel matching the ParseResult (ErrUnknownOption, ErrMissingValue, ErrInvalidValue or
// ErrHelpRequested).
func (p *Parser) Err() error {
	var sentinel error
	switch p.lastResult {
	case Success:
		return nil
	case UnknownOption:
		sentinel = ErrUnknownOption
	case MissingValue:
		sentinel = ErrMissingValue
	case InvalidValue:
		sentinel = ErrInvalidValue
	case HelpRequested:
		sentinel = ErrHelpRequested
	}

	if p.lastError == "" {
		return sentinel
	}

	return fmt.Errorf(FmtErrorWithString, sentinel, p.lastError)
}

// IsSet reports whether the named or positional argument was supplied. Unknown names report false.
func (p *Parser) IsSet(name string) bool {
	a, found := p.lookup(name)
	if !found {
		return false
	}

	return a.IsSet()
}

// Get returns the value of the argument called name. It fails with ErrArgumentNotFound when no
// such argument exists, and with ErrTypeMismatch when the argument does not hold a T.
func Get[T Value](p *Parser, name string) (T, error) {
	a, err := Lookup[T](p, name)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.Value(), nil
}

// Lookup returns the handle of the argument called name, with the same failure modes as Get
func Lookup[T Value](p *Parser, name string) (*Argument[T], error) {
	a, found := p.lookup(name)
	if !found {
		return nil, fmt.Errorf(FmtErrorWithString, ErrArgumentNotFound, name)
	}

	typed, ok := a.(*Argument[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %s, not %s", ErrTypeMismatch, name, a.Kind(), convert.DescriptorOf[T]())
	}

	return typed, nil
}

// Names returns the names of all named arguments in declaration order
func (p *Parser) Names() []string {
	names := make([]string, 0, p.named.Len())
	for pair := p.named.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// PositionalNames returns the names of all positional arguments in declaration order
func (p *Parser) PositionalNames() []string {
	names := make([]string, 0, len(p.positionals))
	for _, a := range p.positionals {
		names = append(names, a.Name())
	}

	return names
}

// Arguments returns a read-only view of every declared argument: named arguments first, then
// positional ones, each in declaration order
func (p *Parser) Arguments() []ArgumentInfo {
	infos := make([]ArgumentInfo, 0, p.named.Len()+len(p.positionals))
	for pair := p.named.Oldest(); pair != nil; pair = pair.Next() {
		infos = append(infos, pair.Value)
	}
	for _, a := range p.positionals {
		infos = append(infos, a)
	}

	return infos
}

// Warnings returns the declaration problems found so far, such as a redeclared name or a
// required flag. They are meant for the developer using the library rather than the end user.
func (p *Parser) Warnings() []string {
	return append([]string(nil), p.warnings...)
}

// ProgramName returns the program name shown in the usage line. It defaults to the base name of
// the executable.
func (p *Parser) ProgramName() string {
	if p.programName == "" {
		return filepath.Base(os.Args[0])
	}

	return p.programName
}

// Description returns the program description
func (p *Parser) Description() string {
	return p.description
}

// Usage returns the usage line
func (p *Parser) Usage() string {
	return p.renderer.Usage()
}

// Help returns the complete help text: usage line, description, options, positional arguments
// and the built-in help switch. Descriptions wrap to the width of the configured output.
func (p *Parser) Help() string {
	return p.help(p.helpWidthFor(p.output))
}

func (p *Parser) help(width int) string {
	var sb strings.Builder
	sb.WriteString(p.renderer.Usage())
	sb.WriteByte('\n')

	if p.description != "" {
		sb.WriteString(p.description)
		sb.WriteString("\n\n")
	}

	if p.named.Len() > 0 {
		sb.WriteString("Options:\n")
		for pair := p.named.Oldest(); pair != nil; pair = pair.Next() {
			sb.WriteString(p.renderer.ArgumentUsage(pair.Value, width))
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	if len(p.positionals) > 0 {
		sb.WriteString("Positional arguments:\n")
		for _, a := range p.positionals {
			sb.WriteString(p.renderer.ArgumentUsage(a, width))
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(helpIndent + "-h, --help\n")
	sb.WriteString(helpDescriptionIndent + "Show this help message\n")

	return sb.String()
}

// PrintHelp writes the help text to w, or to the configured output when w is nil.
// Descriptions wrap to the width of the writer actually printed to.
func (p *Parser) PrintHelp(w io.Writer) {
	if w == nil {
		w = p.output
	}
	_, _ = io.WriteString(w, p.help(p.helpWidthFor(w)))
}

// CompletionData describes every declared argument, plus the built-in help switch, for the
// completion generators
func (p *Parser) CompletionData() completion.CompletionData {
	data := completion.CompletionData{
		Flags:       make([]completion.FlagData, 0, p.named.Len()+1),
		Positionals: make([]completion.PositionalData, 0, len(p.positionals)),
	}

	for pair := p.named.Oldest(); pair != nil; pair = pair.Next() {
		a := pair.Value
		data.Flags = append(data.Flags, completion.FlagData{
			Long:        a.Name(),
			Short:       p.reachableShortName(a),
			Description: a.Description(),
			TakesValue:  a.Kind().Kind.TakesValue(),
			ValueHint:   a.Kind().ValueHint(),
		})
	}
	data.Flags = append(data.Flags, completion.FlagData{
		Long:        "help",
		Short:       "h",
		Description: "Show this help message",
	})

	for _, a := range p.positionals {
		data.Positionals = append(data.Positionals, completion.PositionalData{
			Name:        a.Name(),
			Description: a.Description(),
			Required:    a.Required(),
			ValueHint:   a.Kind().ValueHint(),
		})
	}

	return data
}

// Completion returns the completion script for shell ("bash", "zsh", "fish" or "powershell")
func (p *Parser) Completion(shell string) (string, error) {
	return completion.Generate(shell, p.ProgramName(), p.CompletionData())
}
