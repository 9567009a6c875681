package tokens

import "fmt"

type Kind uint8

const (
	KindInvalid Kind = iota
	KindWhitespace
	KindLineComment
	KindBlockComment
	KindIdentifier
	KindKeyword
	KindOperator
	KindSeparator
	KindNullLiteral
	KindBooleanLiteral
	KindCharacterLiteral
	KindStringLiteral
	KindNumberLiteral
	numKinds
)

var kindNames = [numKinds]string{
	KindInvalid:          "Invalid",
	KindWhitespace:       "Whitespace",
	KindLineComment:      "LineComment",
	KindBlockComment:     "BlockComment",
	KindIdentifier:       "Identifier",
	KindKeyword:          "Keyword",
	KindOperator:         "Operator",
	KindSeparator:        "Separator",
	KindNullLiteral:      "NullLiteral",
	KindBooleanLiteral:   "BooleanLiteral",
	KindCharacterLiteral: "CharacterLiteral",
	KindStringLiteral:    "StringLiteral",
	KindNumberLiteral:    "NumberLiteral",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) IsComment() bool {
	return k == KindLineComment || k == KindBlockComment
}

// IsTrivia reports whether tokens of this kind carry no meaning for a parser.
func (k Kind) IsTrivia() bool {
	return k == KindWhitespace || k.IsComment()
}

func (k Kind) IsLiteral() bool {
	switch k {
	case KindNullLiteral, KindBooleanLiteral, KindCharacterLiteral, KindStringLiteral, KindNumberLiteral:
		return true
	}
	return false
}

func (k Kind) IsValid() bool {
	return k != KindInvalid && k < numKinds
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindInvalid, false
}
