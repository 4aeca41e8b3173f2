package argsparser

import (
	"errors"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/argsparser/internal/convert"
	"github.com/napalu/argsparser/types"
)

// Value is the closed set of Go types an Argument can hold: bool, string, every fixed-width
// signed and unsigned integer plus int and uint, float32, float64 and time.Time.
// Declaring an argument of any other type does not compile.
type Value interface {
	convert.Value
}

// ParseResult is the outcome of a Parse call. Exactly one is returned per call.
type ParseResult uint8

const (
	// Success denotes that every token was consumed and every requirement met
	Success ParseResult = iota
	// UnknownOption denotes a --name or -n which matches no declared argument
	UnknownOption
	// MissingValue denotes an option without its value, or a required argument never supplied
	MissingValue
	// InvalidValue denotes a conversion, range or validation failure, or too many positional values
	InvalidValue
	// HelpRequested denotes that --help or -h was present; nothing else was processed
	HelpRequested
)

// String returns the string representation of a ParseResult
func (r ParseResult) String() string {
	switch r {
	case Success:
		return "SUCCESS"
	case UnknownOption:
		return "UNKNOWN_OPTION"
	case MissingValue:
		return "MISSING_VALUE"
	case InvalidValue:
		return "INVALID_VALUE"
	case HelpRequested:
		return "HELP_REQUESTED"
	}

	return "UNKNOWN"
}

// ArgumentInfo is the read-only view of a declared argument shared by every value type.
// Renderers and completion generators work from it.
type ArgumentInfo interface {
	Name() string
	ShortName() string
	Description() string
	Required() bool
	Positional() bool
	Kind() types.Descriptor
	IsSet() bool
	// DefaultString returns the formatted default and whether it is worth showing
	DefaultString() (string, bool)
}

// argument is the registry's handle on an Argument of any value type
type argument interface {
	ArgumentInfo
	parse(raw string) error
	reset()
}

// Declaration holds the metadata of an argument before it is registered
type Declaration struct {
	Name        string
	Short       string
	Description string
	Required    bool
	Positional  bool
}

// ConfigureArgumentFunc is used when declaring arguments with Declare and DeclarePositional
type ConfigureArgumentFunc func(decl *Declaration, err *error)

// ConfigureParserFunc is used when creating a Parser with NewParserWith
type ConfigureParserFunc func(p *Parser, err *error)

// NameConversionFunc converts a declared name to the long name matched on the command line
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-option-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_option_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myOptionName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "myoptionname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}
)

var (
	ErrUnknownOption    = errors.New("unknown option")
	ErrMissingValue     = errors.New("missing value")
	ErrInvalidValue     = errors.New("invalid value")
	ErrHelpRequested    = errors.New("help requested")
	ErrValidationFailed = errors.New("validation failed")
	ErrArgumentNotFound = errors.New("argument not found")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrEmptyName        = errors.New("argument name must not be empty")
	ErrNilWriter        = errors.New("output writer must not be nil")
	ErrNilRenderer      = errors.New("renderer must not be nil")
	ErrInvalidHelpWidth = errors.New("help width must not be negative")
)

const (
	FmtErrorWithString = "%w: %s"
)

const (
	helpIndent            = "  "
	helpDescriptionIndent = "    "
)
