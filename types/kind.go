package types

import (
	"fmt"
	"math"
)

// Kind is the semantic type of a declared argument. The set is closed: every
// argument belongs to exactly one Kind, fixed at declaration.
type Kind uint8

const (
	Invalid     Kind = iota // Invalid denotes an undeclared or unsupported kind
	Flag                    // Flag denotes a boolean argument set by presence alone
	Text                    // Text denotes a verbatim string value
	SignedInt               // SignedInt denotes a base-10 signed integer of a fixed width
	UnsignedInt             // UnsignedInt denotes a base-10 unsigned integer of a fixed width
	Float                   // Float denotes a single precision floating point value
	Double                  // Double denotes a double precision floating point value
	Timestamp               // Timestamp denotes a point in time
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case Flag:
		return "flag"
	case Text:
		return "text"
	case SignedInt:
		return "signed"
	case UnsignedInt:
		return "unsigned"
	case Float:
		return "float"
	case Double:
		return "double"
	case Timestamp:
		return "timestamp"
	case Invalid:
		fallthrough
	default:
		return "invalid"
	}
}

// TakesValue reports whether arguments of this kind consume a value. Only flags don't.
func (k Kind) TakesValue() bool {
	return k != Flag && k != Invalid
}

// Descriptor describes the value an argument holds: its Kind and, for numeric kinds,
// the bit width. It carries everything the help renderer and the converters need to know
// about a type without inspecting the Go type itself.
type Descriptor struct {
	Kind Kind
	Bits int
}

// Signed returns a Descriptor for a signed integer of the given width
func Signed(bits int) Descriptor {
	return Descriptor{Kind: SignedInt, Bits: bits}
}

// Unsigned returns a Descriptor for an unsigned integer of the given width
func Unsigned(bits int) Descriptor {
	return Descriptor{Kind: UnsignedInt, Bits: bits}
}

// IsInteger is true for both signed and unsigned integer kinds
func (d Descriptor) IsInteger() bool {
	return d.Kind == SignedInt || d.Kind == UnsignedInt
}

// TypeName returns the help annotation for the descriptor, such as "(32-bit integer)" or "(float)".
// Flags and text have no annotation.
func (d Descriptor) TypeName() string {
	switch d.Kind {
	case SignedInt:
		return fmt.Sprintf("(%d-bit integer)", d.Bits)
	case UnsignedInt:
		return fmt.Sprintf("(%d-bit unsigned integer)", d.Bits)
	case Float:
		return "(float)"
	case Double:
		return "(double)"
	case Timestamp:
		return "(timestamp)"
	}

	return ""
}

// ValueHint is a short placeholder naming the value an argument expects, used by
// completion scripts. Flags have none.
func (d Descriptor) ValueHint() string {
	switch d.Kind {
	case Text:
		return "string"
	case SignedInt, UnsignedInt:
		return "integer"
	case Float, Double:
		return "number"
	case Timestamp:
		return "timestamp"
	}

	return ""
}

// MinInt returns the smallest value representable by a signed integer descriptor
func (d Descriptor) MinInt() int64 {
	if d.Kind != SignedInt || d.Bits <= 0 || d.Bits > 64 {
		return 0
	}

	return math.MinInt64 >> (64 - d.Bits)
}

// MaxInt returns the largest value representable by a signed integer descriptor
func (d Descriptor) MaxInt() int64 {
	if d.Kind != SignedInt || d.Bits <= 0 || d.Bits > 64 {
		return 0
	}

	return math.MaxInt64 >> (64 - d.Bits)
}

// MaxUint returns the largest value representable by an unsigned integer descriptor
func (d Descriptor) MaxUint() uint64 {
	if d.Kind != UnsignedInt || d.Bits <= 0 || d.Bits > 64 {
		return 0
	}

	return math.MaxUint64 >> (64 - d.Bits)
}

// String returns a compact representation such as "signed32" or "text"
func (d Descriptor) String() string {
	if d.IsInteger() {
		return fmt.Sprintf("%s%d", d.Kind, d.Bits)
	}

	return d.Kind.String()
}
