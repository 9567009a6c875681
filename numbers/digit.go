package numbers

import "fmt"

const (
	Bin = 2
	Oct = 8
	Dec = 10
	Hex = 16
)

func checkRadix(radix int) {
	if radix < 2 || radix > 36 {
		panic(fmt.Errorf("unsupported radix: %d", radix))
	}
}

// DigitValue returns the value of r as a digit of radix, or -1 if r is not one.
func DigitValue(r rune, radix int) int {
	checkRadix(radix)
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	default:
		return -1
	}
	if v >= radix {
		return -1
	}
	return v
}

func IsDigit(r rune, radix int) bool {
	return DigitValue(r, radix) >= 0
}
