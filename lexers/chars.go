package lexers

import "unicode"

func isWhitespace(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f':
		// non-breaking spaces
		return false
	}
	return unicode.IsSpace(r)
}

func isIdentifierStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
