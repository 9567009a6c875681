package tokens

import "fmt"

type Separator uint8

const (
	SeparatorOpeningBrace Separator = iota + 1
	SeparatorClosingBrace
	SeparatorOpeningBracket
	SeparatorClosingBracket
	SeparatorOpeningParen
	SeparatorClosingParen
	SeparatorAnnotation
	SeparatorDot
	SeparatorVararg
	SeparatorElementDelimiter
	SeparatorMethodReference
	SeparatorSemicolon
	numSeparators
)

var separatorSpellings = [numSeparators]string{
	SeparatorOpeningBrace:     "{",
	SeparatorClosingBrace:     "}",
	SeparatorOpeningBracket:   "[",
	SeparatorClosingBracket:   "]",
	SeparatorOpeningParen:     "(",
	SeparatorClosingParen:     ")",
	SeparatorAnnotation:       "@",
	SeparatorDot:              ".",
	SeparatorVararg:           "...",
	SeparatorElementDelimiter: ",",
	SeparatorMethodReference:  "::",
	SeparatorSemicolon:        ";",
}

var separatorNames = [numSeparators]string{
	SeparatorOpeningBrace:     "OPENING_BRACE",
	SeparatorClosingBrace:     "CLOSING_BRACE",
	SeparatorOpeningBracket:   "OPENING_BRACKET",
	SeparatorClosingBracket:   "CLOSING_BRACKET",
	SeparatorOpeningParen:     "OPENING_PAREN",
	SeparatorClosingParen:     "CLOSING_PAREN",
	SeparatorAnnotation:       "ANNOTATION",
	SeparatorDot:              "DOT",
	SeparatorVararg:           "VARARG",
	SeparatorElementDelimiter: "ELEMENT_DELIMITER",
	SeparatorMethodReference:  "METHOD_REFERENCE",
	SeparatorSemicolon:        "SEMICOLON",
}

var separators = func() map[string]Separator {
	ret := make(map[string]Separator, numSeparators)
	for v := SeparatorOpeningBrace; v < numSeparators; v++ {
		ret[separatorSpellings[v]] = v
	}
	return ret
}()

// maxSeparatorLen is the length in characters of the longest spelling.
var maxSeparatorLen = func() int {
	ret := 0
	for v := SeparatorOpeningBrace; v < numSeparators; v++ {
		ret = max(ret, len(separatorSpellings[v]))
	}
	return ret
}()

// LookupSeparator matches the exact spelling; a lone ":" is not a separator.
func LookupSeparator(spelling string) (Separator, bool) {
	v, ok := separators[spelling]
	return v, ok
}

func MaxSeparatorLen() int {
	return maxSeparatorLen
}

func Separators() []Separator {
	ret := make([]Separator, 0, numSeparators-1)
	for v := SeparatorOpeningBrace; v < numSeparators; v++ {
		ret = append(ret, v)
	}
	return ret
}

// String returns the spelling.
func (s Separator) String() string {
	if s >= SeparatorOpeningBrace && s < numSeparators {
		return separatorSpellings[s]
	}
	return fmt.Sprintf("Separator(%d)", s)
}

func (s Separator) Name() string {
	if s >= SeparatorOpeningBrace && s < numSeparators {
		return separatorNames[s]
	}
	return s.String()
}
