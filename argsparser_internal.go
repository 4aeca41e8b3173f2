package argsparser

import (
	"fmt"
	"io"
	"os"

	"github.com/ef-ds/deque"
	"github.com/napalu/argsparser/parse"
	"github.com/napalu/argsparser/types"
	"github.com/napalu/argsparser/util"
)

func declare[T Value](p *Parser, decl Declaration, def T, configs []ConfigureArgumentFunc) (*Argument[T], error) {
	var err error
	for _, config := range configs {
		config(&decl, &err)
		if err != nil {
			return nil, err
		}
	}

	if decl.Name != "" && p.nameConverter != nil {
		decl.Name = p.nameConverter(decl.Name)
	}
	if decl.Name == "" {
		return nil, ErrEmptyName
	}

	a := newArgument(decl, def)
	if a.kind.Kind == types.Flag && decl.Required {
		p.warn("Flag '%s' is declared required. Flags are always optional and the requirement is ignored.", decl.Name)
	}

	if decl.Positional {
		if decl.Short != "" {
			p.warn("Positional argument '%s' has short name '%s' which is ignored.", decl.Name, decl.Short)
			a.decl.Short = ""
		}
		p.registerPositional(a)
	} else {
		p.registerNamed(a)
	}

	return a, nil
}

func (p *Parser) registerNamed(a argument) {
	name := a.Name()
	if prev, found := p.named.Get(name); found {
		p.warn("Argument '--%s' is declared more than once. The last declaration wins.", name)
		if short := prev.ShortName(); short != "" && p.short[short] == prev {
			delete(p.short, short)
		}
		p.named.Delete(name)
	}
	p.named.Set(name, a)

	short := a.ShortName()
	if short == "" {
		return
	}
	if prev, found := p.short[short]; found {
		p.warn("Short name '-%s' of '--%s' is already used by '--%s'. The last declaration wins.",
			short, name, prev.Name())
	}
	p.short[short] = a
}

func (p *Parser) registerPositional(a argument) {
	for i, prev := range p.positionals {
		if prev.Name() == a.Name() {
			p.warn("Positional argument '%s' is declared more than once. The last declaration wins.", a.Name())
			p.positionals = append(p.positionals[:i], p.positionals[i+1:]...)
			break
		}
	}
	p.positionals = append(p.positionals, a)
}

func (p *Parser) warn(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *Parser) lookup(name string) (argument, bool) {
	if p.nameConverter != nil {
		name = p.nameConverter(name)
	}
	if a, found := p.named.Get(name); found {
		return a, true
	}
	for _, a := range p.positionals {
		if a.Name() == name {
			return a, true
		}
	}

	return nil, false
}

// reachableShortName returns the short name of a unless a later declaration took it over
func (p *Parser) reachableShortName(a argument) string {
	short := a.ShortName()
	if short == "" || p.short[short] != a {
		return ""
	}

	return short
}

func (p *Parser) parse(args []string) ParseResult {
	p.lastError = ""
	p.lastResult = Success

	for _, arg := range args {
		if parse.IsHelp(arg) {
			p.lastResult = HelpRequested
			return HelpRequested
		}
	}

	p.reset()

	values := deque.New()
	state := parse.NewState(args)
	for state.Advance() {
		tok := parse.Classify(state.CurrentArg())
		if tok.Form == parse.Value {
			values.PushBack(tok.Value)
			continue
		}
		if result := p.processOption(state, tok); result != Success {
			return result
		}
	}

	if result := p.bindPositionals(values); result != Success {
		return result
	}

	return p.checkRequired()
}

func (p *Parser) reset() {
	for pair := p.named.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.reset()
	}
	for _, a := range p.positionals {
		a.reset()
	}
}

func (p *Parser) processOption(state parse.State, tok parse.Token) ParseResult {
	if tok.Form == parse.ShortGroup {
		first, rest := tok.Head()
		if a, found := p.short[first]; found && !isFlag(a) {
			// -c123: option c with inline value 123
			tok.Name, tok.Value, tok.HasValue = first, rest, true
		} else if cluster, ok := p.flagCluster(tok); ok {
			for _, c := range cluster {
				if err := p.short[c].parse("true"); err != nil {
					return p.fail(InvalidValue, "Invalid value for flag: -%s", c)
				}
			}
			return Success
		}
	}

	a, found := p.resolve(tok)
	if !found {
		return p.fail(UnknownOption, "Unknown option: %s", tok.Option())
	}

	if isFlag(a) {
		if err := a.parse("true"); err != nil {
			return p.fail(InvalidValue, "Invalid value for flag: %s", tok.Option())
		}
		return Success
	}

	value := tok.Value
	if !tok.HasValue {
		next, ok := state.Next()
		if !ok {
			return p.fail(MissingValue, "Missing value for option: %s", tok.Option())
		}
		value = next
	}

	if err := a.parse(value); err != nil {
		return p.fail(InvalidValue, "Invalid value for option: %s = %s", tok.Option(), value)
	}

	return Success
}

// flagCluster returns the short names of a grouped token when every one of them is a flag
func (p *Parser) flagCluster(tok parse.Token) ([]string, bool) {
	chars := tok.Chars()
	for _, c := range chars {
		a, found := p.short[c]
		if !found || !isFlag(a) {
			return nil, false
		}
	}

	return chars, true
}

func (p *Parser) resolve(tok parse.Token) (argument, bool) {
	if tok.Form == parse.Long {
		return p.named.Get(tok.Name)
	}
	a, found := p.short[tok.Name]

	return a, found
}

func (p *Parser) bindPositionals(values *deque.Deque) ParseResult {
	for _, a := range p.positionals {
		v, ok := values.PopFront()
		if !ok {
			if a.Required() {
				return p.fail(MissingValue, "Missing required positional argument: %s", a.Name())
			}
			continue
		}

		raw := v.(string)
		if err := a.parse(raw); err != nil {
			return p.fail(InvalidValue, "Invalid value for positional argument: %s = %s", a.Name(), raw)
		}
	}

	if values.Len() > 0 {
		return p.fail(InvalidValue, "Too many positional arguments")
	}

	return Success
}

func (p *Parser) checkRequired() ParseResult {
	for pair := p.named.Oldest(); pair != nil; pair = pair.Next() {
		a := pair.Value
		if a.Required() && !a.IsSet() {
			return p.fail(MissingValue, "Missing required option: --%s", a.Name())
		}
	}

	return Success
}

func (p *Parser) fail(result ParseResult, format string, args ...any) ParseResult {
	p.lastError = fmt.Sprintf(format, args...)
	p.lastResult = result

	return result
}

func (p *Parser) helpWidthFor(w io.Writer) int {
	if p.helpWidth > 0 {
		return p.helpWidth
	}
	if width, ok := util.TerminalWidth(w, p.terminal); ok {
		return width
	}

	return 0
}

func isFlag(a argument) bool {
	return a.Kind().Kind == types.Flag
}

func pruneExecPathFromArgs(args *[]string) {
	if len(*args) > 0 {
		if (*args)[0] == os.Args[0] {
			*args = (*args)[1:]
		}
	}
}
