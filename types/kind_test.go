package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptor_TypeName(t *testing.T) {
	tests := []struct {
		desc     Descriptor
		expected string
	}{
		{Descriptor{Kind: Flag}, ""},
		{Descriptor{Kind: Text}, ""},
		{Signed(16), "(16-bit integer)"},
		{Signed(32), "(32-bit integer)"},
		{Unsigned(32), "(32-bit unsigned integer)"},
		{Unsigned(64), "(64-bit unsigned integer)"},
		{Descriptor{Kind: Float}, "(float)"},
		{Descriptor{Kind: Double}, "(double)"},
		{Descriptor{Kind: Timestamp}, "(timestamp)"},
	}

	for _, tt := range tests {
		t.Run(tt.desc.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.desc.TypeName())
		})
	}
}

func TestDescriptor_Bounds(t *testing.T) {
	assert.Equal(t, int64(math.MinInt8), Signed(8).MinInt())
	assert.Equal(t, int64(math.MaxInt8), Signed(8).MaxInt())
	assert.Equal(t, int64(math.MinInt16), Signed(16).MinInt())
	assert.Equal(t, int64(math.MaxInt32), Signed(32).MaxInt())
	assert.Equal(t, int64(math.MinInt64), Signed(64).MinInt())
	assert.Equal(t, int64(math.MaxInt64), Signed(64).MaxInt())
	assert.Equal(t, uint64(math.MaxUint8), Unsigned(8).MaxUint())
	assert.Equal(t, uint64(math.MaxUint32), Unsigned(32).MaxUint())
	assert.Equal(t, uint64(math.MaxUint64), Unsigned(64).MaxUint())

	assert.Zero(t, Unsigned(32).MaxInt(), "unsigned descriptors have no signed bound")
	assert.Zero(t, Descriptor{Kind: Float}.MaxUint())
}

func TestKind_TakesValue(t *testing.T) {
	assert.False(t, Flag.TakesValue())
	assert.False(t, Invalid.TakesValue())
	for _, k := range []Kind{Text, SignedInt, UnsignedInt, Float, Double, Timestamp} {
		assert.True(t, k.TakesValue(), "%s should take a value", k)
	}
}

func TestDescriptor_String(t *testing.T) {
	assert.Equal(t, "signed32", Signed(32).String())
	assert.Equal(t, "unsigned8", Unsigned(8).String())
	assert.Equal(t, "double", Descriptor{Kind: Double}.String())
	assert.Equal(t, "invalid", Descriptor{}.String())
}
