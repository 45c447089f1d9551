package gnuplot

import (
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
	"strings"
)

// formatFloat renders v the way the renderer protocol expects directive
// values: lowercase scientific notation with 12 fractional digits and an
// exponent without plus sign or leading zeros, e.g. "2.000000000000e0".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'e', 12, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		// NaN and infinities have no exponent part.
		return s
	}
	mant, exp := s[:i], s[i+1:]
	sign := ""
	switch exp[0] {
	case '+':
		exp = exp[1:]
	case '-':
		sign = "-"
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + sign + exp
}

// writeFloat64 appends the IEEE-754 double-precision little-endian
// encoding of v to data. Domain values such as NaN pass through
// unmodified.
func writeFloat64(data *bytes.Buffer, v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	data.Write(b[:])
}

// Number covers the built-in numeric types accepted by Float64s.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float64s converts a numeric slice into the float64 series consumed by
// the plot calls.
func Float64s[T Number](vs []T) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}
