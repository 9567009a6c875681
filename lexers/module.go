package lexers

import (
	"context"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/jlex/configs"
	"github.com/reusee/jlex/logs"
	"github.com/reusee/jlex/tokens"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

type Config struct {
	RawQuotes     bool `json:"raw_quotes"`
	ReportInvalid bool `json:"report_invalid"`
}

func (Module) Config(
	loader configs.Loader,
) Config {
	return configs.First[Config](loader, "lexer")
}

// NewTokenizer creates a Tokenizer for the named source.
type NewTokenizer func(ctx context.Context, name string, source io.RuneReader) *Tokenizer

func (Module) NewTokenizer(
	config Config,
	logger logs.Logger,
	newSpan logs.NewSpan,
) NewTokenizer {
	return func(ctx context.Context, name string, source io.RuneReader) *Tokenizer {
		options := Options{
			RawQuotes: config.RawQuotes,
		}
		if config.ReportInvalid {
			ctx, _ = newSpan(ctx, name)
			options.OnInvalid = func(token tokens.Token) {
				logger.WarnContext(ctx, "invalid token",
					"source", name,
					"line", token.Position.Line+1,
					"column", token.Position.Column+1,
					"text", token.Text,
				)
			}
		}
		return New(source, options)
	}
}
