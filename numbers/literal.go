package numbers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

var ErrInvalidLiteral = errors.New("invalid number literal")

// Literal is a decoded number literal.
type Literal struct {
	Raw      string
	Radix    int
	Floating bool
	Suffix   rune
	Value    *apd.Decimal
}

func Parse(text string) (*Literal, error) {
	if !IsNumberLiteral(text) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, text)
	}

	lit := &Literal{
		Raw:   text,
		Radix: radixOf(text),
	}

	body := strings.ReplaceAll(text, "_", "")
	switch c := body[len(body)-1]; c {
	case 'l', 'L':
		lit.Suffix = rune(c)
		body = body[:len(body)-1]
	case 'f', 'F', 'd', 'D':
		if lit.Radix == Dec {
			lit.Suffix = rune(c)
			lit.Floating = true
			body = body[:len(body)-1]
		}
	}
	if lit.Radix == Dec && strings.ContainsAny(body, ".eE") {
		lit.Floating = true
	}

	if lit.Floating {
		value, _, err := apd.NewFromString(normalizeFloat(body))
		if err != nil {
			return nil, fmt.Errorf("decode %q: %w", text, err)
		}
		lit.Value = value
		return lit, nil
	}

	digits := body
	switch lit.Radix {
	case Bin, Hex:
		digits = body[2:]
	case Oct:
		digits = body[1:]
	}
	coeff, ok := new(apd.BigInt).SetString(digits, lit.Radix)
	if !ok {
		return nil, fmt.Errorf("decode %q: %w", text, ErrInvalidLiteral)
	}
	lit.Value = apd.NewWithBigInt(coeff, 0)

	return lit, nil
}

func radixOf(text string) int {
	if len(text) < 2 || text[0] != '0' {
		return Dec
	}
	switch c := rune(text[1]); {
	case c == 'b' || c == 'B':
		return Bin
	case c == 'x' || c == 'X':
		return Hex
	case c == '_' || IsDigit(c, Oct):
		return Oct
	}
	return Dec
}

// normalizeFloat makes leading or trailing points explicit: ".5" -> "0.5", "1." -> "1.0".
func normalizeFloat(body string) string {
	mantissa, exponent := body, ""
	if i := strings.IndexAny(body, "eE"); i >= 0 {
		mantissa, exponent = body[:i], body[i:]
	}
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}
	if strings.HasSuffix(mantissa, ".") {
		mantissa += "0"
	}
	return mantissa + exponent
}

func (l *Literal) Int64() (int64, error) {
	return l.Value.Int64()
}

func (l *Literal) Float64() (float64, error) {
	return l.Value.Float64()
}

// Equal compares raw text and decoded value.
func (l *Literal) Equal(o *Literal) bool {
	if l == nil || o == nil {
		return l == o
	}
	return l.Raw == o.Raw && l.Value.Cmp(o.Value) == 0
}

func (l *Literal) String() string {
	return l.Raw
}
