package scripts

import (
	"context"

	"github.com/reusee/jlex/logs"
	"github.com/reusee/jlex/texts"
	"github.com/reusee/jlex/tokens"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Explore opens an interactive starlark session on stdin with the text of a
// source bound to `source`, its name to `name` and its tokens to `tokens`.
type Explore func(ctx context.Context, source *texts.Source, toks []tokens.Token)

func (Module) Explore(
	logger logs.Logger,
) Explore {
	return func(ctx context.Context, source *texts.Source, toks []tokens.Token) {
		logger.InfoContext(ctx, "explore",
			"source", source.Name,
			"tokens", len(toks),
		)
		defer func() {
			logger.InfoContext(ctx, "explore end",
				"source", source.Name,
			)
		}()

		thread := &starlark.Thread{
			Name: "explore",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, exploreGlobals(source, toks))
	}
}

func exploreGlobals(source *texts.Source, toks []tokens.Token) starlark.StringDict {
	return predeclared(starlark.StringDict{
		"name":   starlark.String(source.Name),
		"source": starlark.String(source.Content),
		"tokens": tokenList(toks),
	})
}
