package tokens

import (
	"fmt"
	"unicode/utf8"

	"github.com/reusee/jlex/numbers"
	"github.com/reusee/jlex/texts"
)

// Token is one classified lexeme. Text is always the raw source text; the other
// payload fields are set according to Kind.
type Token struct {
	Kind      Kind
	Position  texts.Position
	Text      string
	Keyword   Keyword
	Operator  Operator
	Separator Separator
	Bool      bool
	Number    *numbers.Literal
}

func New(kind Kind, text string, pos texts.Position) Token {
	return Token{
		Kind:     kind,
		Position: pos,
		Text:     text,
	}
}

func NewKeyword(keyword Keyword, pos texts.Position) Token {
	return Token{
		Kind:     KindKeyword,
		Position: pos,
		Text:     keyword.String(),
		Keyword:  keyword,
	}
}

func NewOperator(op Operator, pos texts.Position) Token {
	return Token{
		Kind:     KindOperator,
		Position: pos,
		Text:     op.String(),
		Operator: op,
	}
}

func NewSeparator(sep Separator, pos texts.Position) Token {
	return Token{
		Kind:      KindSeparator,
		Position:  pos,
		Text:      sep.String(),
		Separator: sep,
	}
}

func NewNull(pos texts.Position) Token {
	return Token{
		Kind:     KindNullLiteral,
		Position: pos,
		Text:     "null",
	}
}

func NewBoolean(value bool, pos texts.Position) Token {
	text := "false"
	if value {
		text = "true"
	}
	return Token{
		Kind:     KindBooleanLiteral,
		Position: pos,
		Text:     text,
		Bool:     value,
	}
}

func NewNumber(lit *numbers.Literal, pos texts.Position) Token {
	return Token{
		Kind:     KindNumberLiteral,
		Position: pos,
		Text:     lit.Raw,
		Number:   lit,
	}
}

func (t Token) IsValid() bool {
	return t.Kind != KindInvalid
}

// Len is the number of characters consumed.
func (t Token) Len() int {
	return utf8.RuneCountInString(t.Text)
}

// End is the position right after the last consumed character.
func (t Token) End() texts.Position {
	pos := t.Position
	for _, r := range t.Text {
		pos = pos.Advance(r)
	}
	return pos
}

func (t Token) Equal(o Token) bool {
	return t.Kind == o.Kind &&
		t.Position == o.Position &&
		t.Text == o.Text &&
		t.Keyword == o.Keyword &&
		t.Operator == o.Operator &&
		t.Separator == o.Separator &&
		t.Bool == o.Bool &&
		t.Number.Equal(o.Number)
}

// Payload returns the kind specific value.
func (t Token) Payload() any {
	switch t.Kind {
	case KindKeyword:
		return t.Keyword
	case KindOperator:
		return t.Operator
	case KindSeparator:
		return t.Separator
	case KindNullLiteral:
		return nil
	case KindBooleanLiteral:
		return t.Bool
	case KindNumberLiteral:
		return t.Number
	}
	return t.Text
}

func (t Token) String() string {
	switch t.Kind {
	case KindNullLiteral:
		return fmt.Sprintf("Token[%v %v]", t.Position, t.Kind)
	case KindKeyword:
		return fmt.Sprintf("Token[%v %v %s]", t.Position, t.Kind, t.Keyword.Name())
	case KindOperator:
		return fmt.Sprintf("Token[%v %v %s]", t.Position, t.Kind, t.Operator.Name())
	case KindSeparator:
		return fmt.Sprintf("Token[%v %v %s]", t.Position, t.Kind, t.Separator.Name())
	}
	return fmt.Sprintf("Token[%v %v %q]", t.Position, t.Kind, t.Text)
}
