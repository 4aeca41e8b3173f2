package argsparser

import (
	"fmt"
	"strings"

	"github.com/napalu/argsparser/internal/convert"
	"github.com/napalu/argsparser/types"
)

// Argument is a declared option or positional parameter holding a value of type T.
// The handle returned on declaration stays valid for the lifetime of its Parser.
type Argument[T Value] struct {
	decl      Declaration
	kind      types.Descriptor
	def       T
	value     T
	isSet     bool
	validator func(T) bool
}

func newArgument[T Value](decl Declaration, def T) *Argument[T] {
	return &Argument[T]{
		decl:  decl,
		kind:  convert.DescriptorOf[T](),
		def:   def,
		value: def,
	}
}

// Parse converts raw to T and validates it. The value and set state only change when both
// succeed. Flags ignore raw and always parse to true.
func (a *Argument[T]) Parse(raw string) error {
	v, err := convert.Parse[T](raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if !a.Validate(v) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidValue, ErrValidationFailed, raw)
	}

	a.value = v
	a.isSet = true

	return nil
}

// Validate runs the validator against v. Without a validator every value is valid.
func (a *Argument[T]) Validate(v T) bool {
	if a.validator == nil {
		return true
	}

	return a.validator(v)
}

// SetValidator installs fn as the validator and returns the argument for chaining
func (a *Argument[T]) SetValidator(fn func(T) bool) *Argument[T] {
	a.validator = fn
	return a
}

// Value returns the parsed value, or the default when the argument was not supplied
func (a *Argument[T]) Value() T {
	return a.value
}

// Default returns the declared default
func (a *Argument[T]) Default() T {
	return a.def
}

// IsSet is true once a value was supplied and accepted. A supplied value equal to the
// default still counts.
func (a *Argument[T]) IsSet() bool {
	return a.isSet
}

func (a *Argument[T]) Name() string {
	return a.decl.Name
}

func (a *Argument[T]) ShortName() string {
	return a.decl.Short
}

func (a *Argument[T]) Description() string {
	return a.decl.Description
}

// Required reports whether the argument must be supplied. Flags are never required.
func (a *Argument[T]) Required() bool {
	return a.decl.Required && a.kind.Kind != types.Flag
}

func (a *Argument[T]) Positional() bool {
	return a.decl.Positional
}

func (a *Argument[T]) Kind() types.Descriptor {
	return a.kind
}

// DefaultString returns the formatted default. The boolean is false for trivial defaults
// (false, zero, empty, the zero time), which help output leaves out.
func (a *Argument[T]) DefaultString() (string, bool) {
	return convert.Format(a.def), !convert.IsTrivial(a.def)
}

// Help renders the argument's help block: header line, then an indented line with the
// description, the type annotation and any non-trivial default.
func (a *Argument[T]) Help() string {
	return renderArgument(a, 0)
}

func (a *Argument[T]) parse(raw string) error {
	return a.Parse(raw)
}

func (a *Argument[T]) reset() {
	a.value = a.def
	a.isSet = false
}

func argumentHeader(a ArgumentInfo) string {
	var sb strings.Builder
	sb.WriteString(helpIndent)
	switch {
	case a.Positional():
		sb.WriteString("<" + a.Name() + ">")
	case a.ShortName() != "":
		sb.WriteString("-" + a.ShortName() + ", --" + a.Name())
	default:
		sb.WriteString("--" + a.Name())
	}
	if a.Required() {
		sb.WriteString(" (required)")
	}

	return sb.String()
}

func argumentDetails(a ArgumentInfo) string {
	parts := make([]string, 0, 3)
	if a.Description() != "" {
		parts = append(parts, a.Description())
	}
	if typeName := a.Kind().TypeName(); typeName != "" {
		parts = append(parts, typeName)
	}
	if def, ok := a.DefaultString(); ok {
		parts = append(parts, "(default: "+def+")")
	}

	return strings.Join(parts, " ")
}
