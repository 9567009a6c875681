package numbers

import "testing"

func TestIsNumberLiteral(t *testing.T) {
	valid := []string{
		// decimal
		"0", "1234", "1_234", "1234l", "1234L", "10L",
		".1f", "1.f", "1234.56f", "1234.56F",
		".1", "1.", ".1d", "1.d", "1.D", "0.1", "1234.56",
		"1.234e3", "1.234e+3", "1.234e-3", "1.5e-3", "1E5", "1e5f",
		// binary
		"0b1011", "0B1011", "0b10_11", "0b00001011", "0b1L",
		// octal
		"0231", "0_231", "02_31", "0000231",
		// hexadecimal
		"0x99", "0xabcdef", "0xABCDEF", "0xabc_def", "0x1F", "0x1FL",
	}
	for _, text := range valid {
		if !IsNumberLiteral(text) {
			t.Errorf("should be valid: %q", text)
		}
	}

	invalid := []string{
		"", ".", "_", "e5",
		"1234_", "1234a", "1234😀", "1__2",
		"12e3L", "12._34", "12_.34", "12.34e", "12.34e+", "12.34e++1",
		"1.2.3", "1e5.", "1ef", "1_e5", "1f2", "1.5L",
		"0b_1011", "0b1012", "0b1011😀", "0b", "0bL",
		"0238", "0338😀", "0_", "01.5",
		"0x_99", "0x9g", "0x99😀", "0x", "0xL", "0x1.5",
	}
	for _, text := range invalid {
		if IsNumberLiteral(text) {
			t.Errorf("should be invalid: %q", text)
		}
	}
}

func TestDigitValue(t *testing.T) {
	tests := []struct {
		r     rune
		radix int
		value int
	}{
		{'0', Bin, 0},
		{'1', Bin, 1},
		{'2', Bin, -1},
		{'7', Oct, 7},
		{'8', Oct, -1},
		{'9', Dec, 9},
		{'a', Dec, -1},
		{'a', Hex, 10},
		{'F', Hex, 15},
		{'g', Hex, -1},
		{'z', 36, 35},
		{'Z', 36, 35},
		{'_', Hex, -1},
		{-1, Dec, -1},
	}
	for _, test := range tests {
		if v := DigitValue(test.r, test.radix); v != test.value {
			t.Errorf("DigitValue(%q, %d) = %d, want %d", test.r, test.radix, v, test.value)
		}
		if IsDigit(test.r, test.radix) != (test.value >= 0) {
			t.Errorf("IsDigit(%q, %d)", test.r, test.radix)
		}
	}
}

func TestDigitRanges(t *testing.T) {
	ranges := []struct {
		min, max rune
		radix    int
	}{
		{'0', '1', Bin},
		{'0', '7', Oct},
		{'0', '9', Dec},
		{'0', '9', Hex},
		{'a', 'f', Hex},
		{'A', 'F', Hex},
		{'0', '9', 36},
		{'a', 'z', 36},
		{'A', 'Z', 36},
	}
	for _, r := range ranges {
		if !IsDigit(r.min, r.radix) || !IsDigit(r.max, r.radix) {
			t.Errorf("%q-%q should be digits of %d", r.min, r.max, r.radix)
		}
		if IsDigit(r.min-1, r.radix) || IsDigit(r.max+1, r.radix) {
			t.Errorf("%q-%q bounds of %d", r.min, r.max, r.radix)
		}
	}
}

func TestBadRadix(t *testing.T) {
	for _, radix := range []int{-1, 0, 1, 37} {
		func() {
			defer func() {
				if p := recover(); p == nil {
					t.Errorf("radix %d should panic", radix)
				}
			}()
			IsDigit('0', radix)
		}()
	}
}
