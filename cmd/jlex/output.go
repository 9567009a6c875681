package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/reusee/jlex/tokens"
)

type Printer func(w io.Writer, source string, token tokens.Token) error

func newPrinter(format string) (Printer, error) {
	switch format {
	case "text":
		return printText, nil
	case "json":
		return printJSON, nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}

func payloadString(token tokens.Token) string {
	switch token.Kind {
	case tokens.KindKeyword:
		return token.Keyword.String()
	case tokens.KindOperator:
		return token.Operator.Name()
	case tokens.KindSeparator:
		return token.Separator.Name()
	case tokens.KindNullLiteral:
		return "null"
	case tokens.KindBooleanLiteral:
		return strconv.FormatBool(token.Bool)
	case tokens.KindNumberLiteral:
		return token.Text + " = " + token.Number.Value.String()
	}
	return strconv.Quote(token.Text)
}

func printText(w io.Writer, source string, token tokens.Token) error {
	_, err := fmt.Fprintf(w, "%s:%d:%d\t%v\t%s\n",
		source,
		token.Position.Line+1,
		token.Position.Column+1,
		token.Kind,
		payloadString(token),
	)
	return err
}

type jsonToken struct {
	Source string `json:"source"`
	Line   uint   `json:"line"`
	Column uint   `json:"column"`
	Offset uint   `json:"offset"`
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Name   string `json:"name,omitempty"`
	Value  any    `json:"value,omitempty"`
}

func printJSON(w io.Writer, source string, token tokens.Token) error {
	v := jsonToken{
		Source: source,
		Line:   token.Position.Line + 1,
		Column: token.Position.Column + 1,
		Offset: token.Position.CharIndex,
		Kind:   token.Kind.String(),
		Text:   token.Text,
	}
	switch token.Kind {
	case tokens.KindKeyword:
		v.Name = token.Keyword.Name()
	case tokens.KindOperator:
		v.Name = token.Operator.Name()
	case tokens.KindSeparator:
		v.Name = token.Separator.Name()
	case tokens.KindBooleanLiteral:
		v.Value = token.Bool
	case tokens.KindNumberLiteral:
		// exact decimal text
		v.Value = json.Number(token.Number.Value.String())
	}
	return json.NewEncoder(w).Encode(v)
}
