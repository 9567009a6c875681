package scripts

import (
	"math/big"

	"github.com/reusee/jlex/numbers"
	"github.com/reusee/jlex/tokens"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// TokenValue converts a token to a starlark struct.
// Line and column are one-based, offset is the zero-based character index.
func TokenValue(token tokens.Token) starlark.Value {
	fields := starlark.StringDict{
		"kind":      starlark.String(token.Kind.String()),
		"text":      starlark.String(token.Text),
		"line":      starlark.MakeUint(token.Position.Line + 1),
		"column":    starlark.MakeUint(token.Position.Column + 1),
		"offset":    starlark.MakeUint(token.Position.CharIndex),
		"keyword":   starlark.None,
		"operator":  starlark.None,
		"separator": starlark.None,
		"value":     starlark.None,
	}

	switch token.Kind {
	case tokens.KindKeyword:
		fields["keyword"] = starlark.String(token.Keyword.String())
	case tokens.KindOperator:
		fields["operator"] = starlark.String(token.Operator.Name())
	case tokens.KindSeparator:
		fields["separator"] = starlark.String(token.Separator.Name())
	case tokens.KindBooleanLiteral:
		fields["value"] = starlark.Bool(token.Bool)
	case tokens.KindNumberLiteral:
		fields["value"] = numberValue(token.Number)
	case tokens.KindCharacterLiteral, tokens.KindStringLiteral:
		// quotes stripped, escapes kept
		text := []rune(token.Text)
		fields["value"] = starlark.String(string(text[1 : len(text)-1]))
	}

	return starlarkstruct.FromStringDict(starlark.String("token"), fields)
}

func numberValue(lit *numbers.Literal) starlark.Value {
	if lit == nil {
		return starlark.None
	}
	if lit.Floating {
		f, err := lit.Float64()
		if err != nil {
			return starlark.String(lit.Value.String())
		}
		return starlark.Float(f)
	}
	if i, err := lit.Int64(); err == nil {
		return starlark.MakeInt64(i)
	}
	// exceeds int64
	i, ok := new(big.Int).SetString(lit.Value.String(), 10)
	if !ok {
		return starlark.String(lit.Value.String())
	}
	return starlark.MakeBigInt(i)
}

func tokenList(toks []tokens.Token) *starlark.List {
	elems := make([]starlark.Value, 0, len(toks))
	for _, token := range toks {
		elems = append(elems, TokenValue(token))
	}
	return starlark.NewList(elems)
}
