package cell_test

import (
	"strconv"
	"testing"

	"github.com/johnveitch/votable/internal/cell"
)

func TestBool(t *testing.T) {
	if got := cell.Bool(true); got != "true" {
		t.Errorf("Bool(true) = %q, want %q", got, "true")
	}
	if got := cell.Bool(false); got != "false" {
		t.Errorf("Bool(false) = %q, want %q", got, "false")
	}
}

func TestIntegers(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{cell.Bit(1), "1"},
		{cell.Bit(0), "0"},
		{cell.UnsignedByte(255), "255"},
		{cell.Short(-32768), "-32768"},
		{cell.Int(-2147483648), "-2147483648"},
		{cell.Long(9223372036854775807), "9223372036854775807"},
		{cell.Long(-42), "-42"},
	}

	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("integer cell = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestDoubleRoundTrips(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 10.5, 1.0 / 3.0, 1e-300, 6.02214076e23, -2.5e-8}
	for _, v := range values {
		s := cell.Double(v)
		back, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("ParseFloat(Double(%v)) error = %v", v, err)
		}
		if back != v {
			t.Errorf("Double(%v) = %q does not round-trip, got %v", v, s, back)
		}
	}
}

func TestFloatRoundTrips(t *testing.T) {
	values := []float32{0, 3.5, 4.25, 0.1, -1e-30, 1.1754944e-38}
	for _, v := range values {
		s := cell.Float(v)
		back, err := strconv.ParseFloat(s, 32)
		if err != nil {
			t.Fatalf("ParseFloat(Float(%v)) error = %v", v, err)
		}
		if float32(back) != v {
			t.Errorf("Float(%v) = %q does not round-trip, got %v", v, s, float32(back))
		}
	}
}

func TestComplex(t *testing.T) {
	if got := cell.DoubleComplex(complex(1.5, -2.25)); got != "1.5 -2.25" {
		t.Errorf("DoubleComplex(1.5-2.25i) = %q, want %q", got, "1.5 -2.25")
	}
	if got := cell.FloatComplex(complex(0, 1)); got != "0 1" {
		t.Errorf("FloatComplex(1i) = %q, want %q", got, "0 1")
	}
}

func TestJoin(t *testing.T) {
	if got := cell.Join([]uint8{1, 0, 1}, cell.Bit); got != "1 0 1" {
		t.Errorf("Join(bits) = %q, want %q", got, "1 0 1")
	}
	if got := cell.Join(nil, cell.Bit); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
	if got := cell.Join([]float64{0.5}, cell.Double); got != "0.5" {
		t.Errorf("Join(single) = %q, want %q", got, "0.5")
	}
}
