package scripts

import (
	"fmt"
	"iter"

	"github.com/reusee/jlex/tokens"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Filter is a compiled boolean starlark expression over a token.
// It is safe for concurrent use.
type Filter struct {
	expr string
	keep starlark.Callable
}

func NewFilter(expr string) (*Filter, error) {
	src := "def keep(token):\n    return (" + expr + ")\n"
	thread := &starlark.Thread{
		Name: "filter",
	}
	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, "where", src, predeclared(nil))
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expr, err)
	}
	globals.Freeze()
	keep, ok := globals["keep"].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("compile filter %q: no function", expr)
	}
	return &Filter{
		expr: expr,
		keep: keep,
	}, nil
}

func (f *Filter) String() string {
	return f.expr
}

func (f *Filter) Match(token tokens.Token) (bool, error) {
	thread := &starlark.Thread{
		Name: "filter",
	}
	ret, err := starlark.Call(thread, f.keep, starlark.Tuple{TokenValue(token)}, nil)
	if err != nil {
		return false, fmt.Errorf("filter %q at %v: %w", f.expr, token.Position, err)
	}
	return bool(ret.Truth()), nil
}

// Apply keeps the tokens matched by f. A match error ends the sequence.
func (f *Filter) Apply(seq iter.Seq2[tokens.Token, error]) iter.Seq2[tokens.Token, error] {
	return func(yield func(tokens.Token, error) bool) {
		for token, err := range seq {
			if err != nil {
				yield(token, err)
				return
			}
			ok, err := f.Match(token)
			if err != nil {
				yield(token, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(token, nil) {
				return
			}
		}
	}
}
