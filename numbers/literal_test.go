package numbers

import (
	"errors"
	"testing"
)

func TestParseIntegers(t *testing.T) {
	tests := []struct {
		text   string
		radix  int
		suffix rune
		value  int64
	}{
		{"0", Dec, 0, 0},
		{"1_234", Dec, 0, 1234},
		{"10L", Dec, 'L', 10},
		{"0b10_11", Bin, 0, 11},
		{"0B1L", Bin, 'L', 1},
		{"0231", Oct, 0, 0o231},
		{"0_231", Oct, 0, 0o231},
		{"0x1F", Hex, 0, 31},
		{"0xabc_defl", Hex, 'l', 0xabcdef},
		{"0xFD", Hex, 0, 0xfd},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			lit, err := Parse(test.text)
			if err != nil {
				t.Fatal(err)
			}
			if lit.Radix != test.radix {
				t.Fatalf("got radix %d", lit.Radix)
			}
			if lit.Suffix != test.suffix {
				t.Fatalf("got suffix %q", lit.Suffix)
			}
			if lit.Floating {
				t.Fatal("should not be floating")
			}
			v, err := lit.Int64()
			if err != nil {
				t.Fatal(err)
			}
			if v != test.value {
				t.Fatalf("got %d", v)
			}
			if lit.String() != test.text {
				t.Fatalf("got %s", lit)
			}
		})
	}
}

func TestParseFloats(t *testing.T) {
	tests := []struct {
		text   string
		suffix rune
		value  float64
	}{
		{"1.5e-3", 0, 0.0015},
		{".1", 0, 0.1},
		{"1.", 0, 1},
		{"1.f", 'f', 1},
		{"1234.56F", 'F', 1234.56},
		{"1.234e+3", 0, 1234},
		{"1E5", 0, 100000},
		{"10d", 'd', 10},
		{"1_0.2_5", 0, 10.25},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			lit, err := Parse(test.text)
			if err != nil {
				t.Fatal(err)
			}
			if !lit.Floating {
				t.Fatal("should be floating")
			}
			if lit.Suffix != test.suffix {
				t.Fatalf("got suffix %q", lit.Suffix)
			}
			v, err := lit.Float64()
			if err != nil {
				t.Fatal(err)
			}
			if v != test.value {
				t.Fatalf("got %v", v)
			}
		})
	}
}

func TestParseLarge(t *testing.T) {
	lit, err := Parse("0xFFFF_FFFF_FFFF_FFFF_FFFF")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := lit.Int64(); err == nil {
		t.Fatal("should overflow int64")
	}
	if str := lit.Value.String(); str != "1208925819614629174706175" {
		t.Fatalf("got %s", str)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, text := range []string{"1234_", "0b1012", "12.34e", "0x"} {
		_, err := Parse(text)
		if !errors.Is(err, ErrInvalidLiteral) {
			t.Fatalf("%q: got %v", text, err)
		}
	}
}

func TestLiteralEqual(t *testing.T) {
	a, err := Parse("0x10")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("0x10")
	if err != nil {
		t.Fatal(err)
	}
	c, err := Parse("16")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal()
	}
	if a.Equal(c) {
		t.Fatal("raw text differs")
	}
	if a.Value.Cmp(c.Value) != 0 {
		t.Fatal("values should be equal")
	}
	var nilLit *Literal
	if a.Equal(nil) || !nilLit.Equal(nil) {
		t.Fatal()
	}
}
