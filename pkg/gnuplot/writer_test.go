package gnuplot

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{2.0, "2.000000000000e0"},
		{0.5, "5.000000000000e-1"},
		{0.0, "0.000000000000e0"},
		{-3.25, "-3.250000000000e0"},
		{1e10, "1.000000000000e10"},
		{1.5e-5, "1.500000000000e-5"},
		{10.0, "1.000000000000e1"},
	}

	for _, tt := range tests {
		result := formatFloat(tt.input)
		if result != tt.expected {
			t.Errorf("formatFloat(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestWriteFloat64RoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, 1e300, -2.5e-10}

	var buf bytes.Buffer
	for _, v := range values {
		writeFloat64(&buf, v)
	}

	encoded := buf.Bytes()
	if len(encoded) != 8*len(values) {
		t.Fatalf("Expected %d bytes, got %d", 8*len(values), len(encoded))
	}

	for i, v := range values {
		bits := binary.LittleEndian.Uint64(encoded[8*i:])
		got := math.Float64frombits(bits)
		if got != v {
			t.Errorf("Value %d round-tripped to %v, expected %v", i, got, v)
		}
	}
}

func TestWriteFloat64NaN(t *testing.T) {
	var buf bytes.Buffer
	writeFloat64(&buf, math.NaN())

	bits := binary.LittleEndian.Uint64(buf.Bytes())
	if !math.IsNaN(math.Float64frombits(bits)) {
		t.Errorf("NaN did not survive encoding")
	}
}

func TestFloat64s(t *testing.T) {
	got := Float64s([]int{1, 2, 3})
	expected := []float64{1, 2, 3}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d values, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Float64s[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}
