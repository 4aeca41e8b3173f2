package parse

import (
	"strings"
	"unicode/utf8"
)

// Form is the syntactic shape of a raw command-line token
type Form uint8

const (
	Value      Form = iota // Value denotes a positional value: empty, or not starting with '-'
	Long                   // Long denotes --name or --name=value
	Short                  // Short denotes -n, a single character after one dash
	ShortGroup             // ShortGroup denotes -abc: several characters after one dash
)

// String returns the string representation of a Form
func (f Form) String() string {
	switch f {
	case Long:
		return "long"
	case Short:
		return "short"
	case ShortGroup:
		return "short-group"
	}
	return "value"
}

const (
	LongPrefix  = "--"
	ShortPrefix = "-"
)

// Token is a classified command-line token. Classification is purely syntactic;
// resolving a ShortGroup against declared arguments is left to the caller.
type Token struct {
	Raw      string
	Form     Form
	Name     string // option name without its prefix; for ShortGroup the whole body
	Value    string // inline value (after '=' in the long form)
	HasValue bool
}

// Classify determines the Form of arg and splits out its name and inline value.
// Only the long form splits on '=', at the first occurrence.
func Classify(arg string) Token {
	tok := Token{Raw: arg}
	switch {
	case arg == "" || !strings.HasPrefix(arg, ShortPrefix):
		tok.Form = Value
		tok.Value = arg
		tok.HasValue = true
	case strings.HasPrefix(arg, LongPrefix):
		tok.Form = Long
		body := arg[len(LongPrefix):]
		if name, value, found := strings.Cut(body, "="); found {
			tok.Name = name
			tok.Value = value
			tok.HasValue = true
		} else {
			tok.Name = body
		}
	default:
		tok.Name = arg[len(ShortPrefix):]
		if utf8.RuneCountInString(tok.Name) > 1 {
			tok.Form = ShortGroup
		} else {
			tok.Form = Short
		}
	}

	return tok
}

// Prefix returns the dash prefix the token was written with
func (t Token) Prefix() string {
	switch t.Form {
	case Long:
		return LongPrefix
	case Short, ShortGroup:
		return ShortPrefix
	}
	return ""
}

// Option returns the option name with its prefix restored, e.g. "--input" or "-v"
func (t Token) Option() string {
	return t.Prefix() + t.Name
}

// Head splits a ShortGroup body into its first character and the remainder
func (t Token) Head() (first, rest string) {
	if t.Name == "" {
		return "", ""
	}
	_, size := utf8.DecodeRuneInString(t.Name)

	return t.Name[:size], t.Name[size:]
}

// Chars returns each character of the token name as its own string
func (t Token) Chars() []string {
	chars := make([]string, 0, utf8.RuneCountInString(t.Name))
	for _, r := range t.Name {
		chars = append(chars, string(r))
	}

	return chars
}

// IsHelp reports whether arg is one of the built-in help switches
func IsHelp(arg string) bool {
	return arg == "--help" || arg == "-h"
}
