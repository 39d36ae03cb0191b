// Package cell formats native column values as VOTable TABLEDATA cell text.
//
// Formatting is deterministic and round-trippable within the precision of
// the declared datatype: integers use the shortest decimal form, floats the
// shortest representation that recovers the value, and complex values emit
// the real and imaginary components separated by a single space.
package cell

import (
	"strconv"
	"strings"
)

// Bool renders a boolean cell as the literal "true" or "false".
func Bool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// Bit renders a single bit.
func Bit(v uint8) string {
	return strconv.FormatUint(uint64(v), 10)
}

// UnsignedByte renders an unsignedByte cell.
func UnsignedByte(v uint8) string {
	return strconv.FormatUint(uint64(v), 10)
}

// Short renders a short cell.
func Short(v int16) string {
	return strconv.FormatInt(int64(v), 10)
}

// Int renders an int cell.
func Int(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// Long renders a long cell.
func Long(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Float renders a float cell with the shortest representation that parses
// back to the same single-precision value.
func Float(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Double renders a double cell with the shortest representation that parses
// back to the same double-precision value.
func Double(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FloatComplex renders a floatComplex cell as "re im".
func FloatComplex(v complex64) string {
	return Float(real(v)) + " " + Float(imag(v))
}

// DoubleComplex renders a doubleComplex cell as "re im".
func DoubleComplex(v complex128) string {
	return Double(real(v)) + " " + Double(imag(v))
}

// Join renders an array-valued cell by applying format to every element and
// separating the results with single spaces.
func Join[T any](values []T, format func(T) string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(format(v))
	}
	return b.String()
}
