package wire

import (
	"math"
	"testing"
)

func TestVarintSize(t *testing.T) {
	tests := []struct {
		value uint64
		want  int
	}{
		{0, 1},
		{1, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{1<<21 - 1, 3},
		{1 << 21, 4},
		{1<<28 - 1, 4},
		{1 << 28, 5},
		{1<<35 - 1, 5},
		{1 << 35, 6},
		{1 << 42, 7},
		{1 << 49, 8},
		{1 << 56, 9},
		{1<<63 - 1, 9},
		{1 << 63, 10},
		{math.MaxUint64, 10},
	}

	for _, tt := range tests {
		if got := VarintSize(tt.value); got != tt.want {
			t.Errorf("VarintSize(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestVarint32Size(t *testing.T) {
	tests := []struct {
		value uint32
		want  int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{1<<28 - 1, 4},
		{1 << 28, 5},
		{math.MaxUint32, 5},
	}

	for _, tt := range tests {
		if got := Varint32Size(tt.value); got != tt.want {
			t.Errorf("Varint32Size(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestZigZag32(t *testing.T) {
	// The mapping interleaves negative and non-negative values.
	tests := []struct {
		value   int32
		encoded uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MaxInt32, 0xfffffffe},
		{math.MinInt32, 0xffffffff},
	}

	for _, tt := range tests {
		if got := EncodeZigZag32(tt.value); got != tt.encoded {
			t.Errorf("EncodeZigZag32(%d) = %d, want %d", tt.value, got, tt.encoded)
		}
		if got := DecodeZigZag32(tt.encoded); got != tt.value {
			t.Errorf("DecodeZigZag32(%d) = %d, want %d", tt.encoded, got, tt.value)
		}
	}
}

func TestZigZag64(t *testing.T) {
	tests := []struct {
		value   int64
		encoded uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	}

	for _, tt := range tests {
		if got := EncodeZigZag64(tt.value); got != tt.encoded {
			t.Errorf("EncodeZigZag64(%d) = %d, want %d", tt.value, got, tt.encoded)
		}
		if got := DecodeZigZag64(tt.encoded); got != tt.value {
			t.Errorf("DecodeZigZag64(%d) = %d, want %d", tt.encoded, got, tt.value)
		}
	}
}

func TestZigZagSize(t *testing.T) {
	// Small magnitudes stay short regardless of sign.
	if got := ZigZag32Size(-1); got != 1 {
		t.Errorf("ZigZag32Size(-1) = %d, want 1", got)
	}
	if got := ZigZag32Size(-64); got != 1 {
		t.Errorf("ZigZag32Size(-64) = %d, want 1", got)
	}
	if got := ZigZag32Size(64); got != 2 {
		t.Errorf("ZigZag32Size(64) = %d, want 2", got)
	}
	if got := ZigZag64Size(-1); got != 1 {
		t.Errorf("ZigZag64Size(-1) = %d, want 1", got)
	}
	if got := ZigZag64Size(math.MinInt64); got != 10 {
		t.Errorf("ZigZag64Size(MinInt64) = %d, want 10", got)
	}
}
