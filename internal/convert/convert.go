// Package convert holds the per-kind parse and format strategies shared by every
// typed argument. Conversions always consume the whole input: trailing garbage is an
// error, never a truncated success.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/argsparser/types"
)

// Value is the closed set of Go types an argument can hold
type Value interface {
	bool | string |
		int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint |
		float32 | float64 |
		time.Time
}

var (
	ErrSyntax   = errors.New("invalid syntax")
	ErrRange    = errors.New("value out of range")
	ErrNegative = errors.New("negative value for unsigned type")
)

const (
	FmtErrorWithString = "%w: %q"
	FmtErrorWithRange  = "%w: %q not in %s"
)

// Parse converts raw to T. Flags always succeed and yield true.
func Parse[T Value](raw string) (T, error) {
	var (
		out T
		err error
	)

	switch t := any(&out).(type) {
	case *bool:
		*t = true
	case *string:
		*t = raw
	case *int:
		var v int64
		v, err = parseSigned(raw, strconv.IntSize)
		*t = int(v)
	case *int8:
		var v int64
		v, err = parseSigned(raw, 8)
		*t = int8(v)
	case *int16:
		var v int64
		v, err = parseSigned(raw, 16)
		*t = int16(v)
	case *int32:
		var v int64
		v, err = parseSigned(raw, 32)
		*t = int32(v)
	case *int64:
		*t, err = parseSigned(raw, 64)
	case *uint:
		var v uint64
		v, err = parseUnsigned(raw, strconv.IntSize)
		*t = uint(v)
	case *uint8:
		var v uint64
		v, err = parseUnsigned(raw, 8)
		*t = uint8(v)
	case *uint16:
		var v uint64
		v, err = parseUnsigned(raw, 16)
		*t = uint16(v)
	case *uint32:
		var v uint64
		v, err = parseUnsigned(raw, 32)
		*t = uint32(v)
	case *uint64:
		*t, err = parseUnsigned(raw, 64)
	case *float32:
		var v float64
		v, err = parseFloat(raw, 32)
		*t = float32(v)
	case *float64:
		*t, err = parseFloat(raw, 64)
	case *time.Time:
		*t, err = dateparse.ParseStrict(raw)
		if err != nil {
			err = fmt.Errorf(FmtErrorWithString, ErrSyntax, raw)
		}
	}

	if err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}

// Format renders v the way help text shows default values
func Format[T Value](v T) string {
	switch t := any(v).(type) {
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	case int:
		return strconv.FormatInt(int64(t), 10)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', 6, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', 15, 64)
	case time.Time:
		return t.Format(time.RFC3339)
	}

	return ""
}

// IsTrivial reports whether v is the "nothing to show" value of its kind: false, the
// empty string, zero, or the zero time. Help output hides trivial defaults.
func IsTrivial[T Value](v T) bool {
	switch t := any(v).(type) {
	case bool:
		return !t
	case string:
		return t == ""
	case time.Time:
		return t.IsZero()
	}

	var zero T
	return v == zero
}

// DescriptorOf returns the kind descriptor of T
func DescriptorOf[T Value]() types.Descriptor {
	var zero T
	switch any(zero).(type) {
	case bool:
		return types.Descriptor{Kind: types.Flag}
	case string:
		return types.Descriptor{Kind: types.Text}
	case int:
		return types.Signed(strconv.IntSize)
	case int8:
		return types.Signed(8)
	case int16:
		return types.Signed(16)
	case int32:
		return types.Signed(32)
	case int64:
		return types.Signed(64)
	case uint:
		return types.Unsigned(strconv.IntSize)
	case uint8:
		return types.Unsigned(8)
	case uint16:
		return types.Unsigned(16)
	case uint32:
		return types.Unsigned(32)
	case uint64:
		return types.Unsigned(64)
	case float32:
		return types.Descriptor{Kind: types.Float, Bits: 32}
	case float64:
		return types.Descriptor{Kind: types.Double, Bits: 64}
	case time.Time:
		return types.Descriptor{Kind: types.Timestamp}
	}

	return types.Descriptor{}
}

func parseSigned(raw string, bits int) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, bits)
	if err != nil {
		d := types.Signed(bits)
		return 0, numError(raw, err, fmt.Sprintf("%d..%d", d.MinInt(), d.MaxInt()))
	}

	return v, nil
}

func parseUnsigned(raw string, bits int) (uint64, error) {
	if strings.HasPrefix(raw, "-") {
		return 0, fmt.Errorf(FmtErrorWithString, ErrNegative, raw)
	}

	v, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		return 0, numError(raw, err, fmt.Sprintf("0..%d", types.Unsigned(bits).MaxUint()))
	}

	return v, nil
}

// parseFloat rejects overflow and underflow alike: a non-zero input which rounds to zero
// is a range error, not a silent 0
func parseFloat(raw string, bits int) (float64, error) {
	bounds := fmt.Sprintf("float%d", bits)
	v, err := strconv.ParseFloat(raw, bits)
	if err != nil {
		return 0, numError(raw, err, bounds)
	}
	if v == 0 && hasNonZeroMantissa(raw) {
		return 0, fmt.Errorf(FmtErrorWithRange, ErrRange, raw, bounds)
	}

	return v, nil
}

// hasNonZeroMantissa reports whether the significand of a syntactically valid float
// literal has any non-zero digit
func hasNonZeroMantissa(raw string) bool {
	m := strings.TrimLeft(raw, "+-")
	if len(m) > 1 && m[0] == '0' && (m[1] == 'x' || m[1] == 'X') {
		m = m[2:]
		if i := strings.IndexAny(m, "pP"); i >= 0 {
			m = m[:i]
		}
		return strings.ContainsAny(m, "123456789abcdefABCDEF")
	}
	if i := strings.IndexAny(m, "eE"); i >= 0 {
		m = m[:i]
	}

	return strings.ContainsAny(m, "123456789")
}

func numError(raw string, err error, bounds string) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf(FmtErrorWithRange, ErrRange, raw, bounds)
	}

	return fmt.Errorf(FmtErrorWithString, ErrSyntax, raw)
}
