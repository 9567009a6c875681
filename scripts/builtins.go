package scripts

import (
	"github.com/reusee/jlex/tokens"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func isOperator(text string) bool {
	_, ok := tokens.LookupOperator(text)
	return ok
}

func isSeparator(text string) bool {
	_, ok := tokens.LookupSeparator(text)
	return ok
}

func isTrivia(kind string) bool {
	k, ok := tokens.ParseKind(kind)
	return ok && k.IsTrivia()
}

var builtins = starlark.StringDict{
	"is_keyword":   starlarkutil.MakeFunc("is_keyword", tokens.IsKeyword),
	"is_operator":  starlarkutil.MakeFunc("is_operator", isOperator),
	"is_separator": starlarkutil.MakeFunc("is_separator", isSeparator),
	"is_trivia":    starlarkutil.MakeFunc("is_trivia", isTrivia),
}

func predeclared(extra starlark.StringDict) starlark.StringDict {
	ret := make(starlark.StringDict, len(builtins)+len(extra))
	for name, value := range builtins {
		ret[name] = value
	}
	for name, value := range extra {
		ret[name] = value
	}
	return ret
}
