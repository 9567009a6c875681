package lexers

import (
	"github.com/reusee/jlex/numbers"
	"github.com/reusee/jlex/texts"
	"github.com/reusee/jlex/tokens"
)

// Recognizer either consumes at least one character and returns a token, or
// leaves the buffer untouched and returns false.
type Recognizer func(buf *texts.Buffer) (tokens.Token, bool)

func recognizeWhitespace(buf *texts.Buffer) (tokens.Token, bool) {
	if !isWhitespace(buf.Peek(0)) {
		return tokens.Token{}, false
	}
	pos := buf.Position()
	text, _ := buf.ConsumeWhile(isWhitespace)
	return tokens.New(tokens.KindWhitespace, text, pos), true
}

func recognizeComment(buf *texts.Buffer) (tokens.Token, bool) {
	if buf.Peek(0) != '/' {
		return tokens.Token{}, false
	}
	pos := buf.Position()

	switch buf.Peek(1) {

	case '/':
		// newline not included
		buf.ConsumeExactString("//")
		text, _ := buf.ConsumeWhile(func(r rune) bool {
			return r != '\n'
		})
		return tokens.New(tokens.KindLineComment, "//"+text, pos), true

	case '*':
		buf.ConsumeExactString("/*")
		text, closed := buf.ConsumeWhileAt(func(p texts.Peeker) bool {
			return p.Peek(0) != '*' || p.Peek(1) != '/'
		})
		if !closed {
			return tokens.New(tokens.KindInvalid, "/*"+text, pos), true
		}
		buf.ConsumeExactString("*/")
		return tokens.New(tokens.KindBlockComment, "/*"+text+"*/", pos), true

	}

	return tokens.Token{}, false
}

func recognizeSimpleLiteral(buf *texts.Buffer) (tokens.Token, bool) {
	pos := buf.Position()
	match := func(spelling string) bool {
		n := len(spelling)
		return buf.PeekString(n) == spelling && !isIdentifierPart(buf.Peek(n))
	}
	switch {
	case match("null"):
		buf.ConsumeExactString("null")
		return tokens.NewNull(pos), true
	case match("true"):
		buf.ConsumeExactString("true")
		return tokens.NewBoolean(true, pos), true
	case match("false"):
		buf.ConsumeExactString("false")
		return tokens.NewBoolean(false, pos), true
	}
	return tokens.Token{}, false
}

func recognizeNumber(buf *texts.Buffer) (tokens.Token, bool) {
	r := buf.Peek(0)
	if !isDecimalDigit(r) && (r != '.' || !isDecimalDigit(buf.Peek(1))) {
		return tokens.Token{}, false
	}
	pos := buf.Position()

	hex := r == '0' && (buf.Peek(1) == 'x' || buf.Peek(1) == 'X')
	var prev rune
	text, _ := buf.ConsumeWhile(func(r rune) bool {
		ok := isIdentifierPart(r) ||
			r == '.' ||
			(r == '+' || r == '-') && !hex && (prev == 'e' || prev == 'E')
		prev = r
		return ok
	})

	lit, err := numbers.Parse(text)
	if err != nil {
		return tokens.New(tokens.KindInvalid, text, pos), true
	}
	return tokens.NewNumber(lit, pos), true
}

func recognizeQuoted(raw bool) Recognizer {
	return func(buf *texts.Buffer) (tokens.Token, bool) {
		quote := buf.Peek(0)
		var kind tokens.Kind
		switch quote {
		case '\'':
			kind = tokens.KindCharacterLiteral
		case '"':
			kind = tokens.KindStringLiteral
		default:
			return tokens.Token{}, false
		}
		pos := buf.Position()
		buf.ConsumeExact(quote)

		escaped := false
		text, _ := buf.ConsumeWhile(func(r rune) bool {
			if r == '\n' {
				return false
			}
			if escaped {
				escaped = false
				return true
			}
			if r == '\\' && !raw {
				escaped = true
				return true
			}
			return r != quote
		})
		if buf.Peek(0) != quote {
			// unclosed
			return tokens.New(tokens.KindInvalid, string(quote)+text, pos), true
		}
		buf.ConsumeExact(quote)
		return tokens.New(kind, string(quote)+text+string(quote), pos), true
	}
}

func recognizeKeywordOrIdentifier(buf *texts.Buffer) (tokens.Token, bool) {
	if !isIdentifierStart(buf.Peek(0)) {
		return tokens.Token{}, false
	}
	pos := buf.Position()
	text, _ := buf.ConsumeWhile(isIdentifierPart)
	if keyword, ok := tokens.LookupKeyword(text); ok {
		return tokens.NewKeyword(keyword, pos), true
	}
	return tokens.New(tokens.KindIdentifier, text, pos), true
}

// longest returns the longest spelling of at most limit characters accepted by lookup.
func longest[T any](buf *texts.Buffer, limit int, lookup func(string) (T, bool)) (value T, spelling string, ok bool) {
	for n := limit; n > 0; n-- {
		if !buf.HasRemaining(n) {
			continue
		}
		spelling = buf.PeekString(n)
		if value, ok = lookup(spelling); ok {
			return
		}
	}
	return value, "", false
}

func recognizeSeparator(buf *texts.Buffer) (tokens.Token, bool) {
	sep, spelling, ok := longest(buf, tokens.MaxSeparatorLen(), tokens.LookupSeparator)
	if !ok {
		return tokens.Token{}, false
	}
	pos := buf.Position()
	buf.ConsumeExactString(spelling)
	return tokens.NewSeparator(sep, pos), true
}

func recognizeOperator(buf *texts.Buffer) (tokens.Token, bool) {
	op, spelling, ok := longest(buf, tokens.MaxOperatorLen(), tokens.LookupOperator)
	if !ok {
		return tokens.Token{}, false
	}
	pos := buf.Position()
	buf.ConsumeExactString(spelling)
	return tokens.NewOperator(op, pos), true
}

func recognizeInvalid(buf *texts.Buffer) (tokens.Token, bool) {
	if !buf.HasRemaining(1) {
		return tokens.Token{}, false
	}
	pos := buf.Position()
	return tokens.New(tokens.KindInvalid, string(buf.Consume()), pos), true
}
