package numbers

// IsNumberLiteral reports whether text is a well formed integer or floating point literal.
func IsNumberLiteral(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}

	radix := Dec
	floating := false
	scientific := false
	mantissaDigits := 0
	exponentDigits := 0

	for i, r := range runes {
		prev := rune(-1)
		if i > 0 {
			prev = runes[i-1]
		}
		last := i == len(runes)-1

		if i == 1 && prev == '0' {
			switch {
			case r == 'b' || r == 'B':
				radix = Bin
				mantissaDigits = 0
				continue
			case r == 'x' || r == 'X':
				radix = Hex
				mantissaDigits = 0
				continue
			case r == '_' || IsDigit(r, Oct):
				radix = Oct
			}
		}

		if IsDigit(r, radix) {
			if scientific {
				exponentDigits++
			} else {
				mantissaDigits++
			}
			continue
		}

		switch r {

		case '_':
			if IsDigit(prev, radix) && !last && IsDigit(runes[i+1], radix) {
				continue
			}

		case '.':
			if prev != '_' && radix == Dec && !scientific && !floating {
				floating = true
				continue
			}

		case 'e', 'E':
			if radix == Dec && !scientific && !last && mantissaDigits > 0 {
				scientific = true
				continue
			}

		case '+', '-':
			if (prev == 'e' || prev == 'E') && scientific && !last {
				continue
			}

		case 'f', 'F', 'd', 'D':
			if last && radix == Dec && mantissaDigits > 0 && (!scientific || exponentDigits > 0) {
				continue
			}

		case 'l', 'L':
			if last && !floating && !scientific && mantissaDigits > 0 {
				continue
			}

		}

		return false
	}

	if mantissaDigits == 0 {
		return false
	}
	if scientific && exponentDigits == 0 {
		return false
	}
	return true
}
