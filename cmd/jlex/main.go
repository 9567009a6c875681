package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/jlex/cmds"
	"github.com/reusee/jlex/configs"
	"github.com/reusee/jlex/lexers"
	"github.com/reusee/jlex/logs"
	"github.com/reusee/jlex/modes"
	"github.com/reusee/jlex/scripts"
	"github.com/reusee/jlex/syncs"
	"github.com/reusee/jlex/texts"
	"github.com/reusee/jlex/tokens"
	"golang.org/x/term"
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func(loader configs.Loader) lexers.Config {
			config := configs.First[lexers.Config](loader, "lexer")
			if *rawQuotes {
				config.RawQuotes = true
			}
			return config
		},
	)

	os.Exit(execute(context.Background(), scope, os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command in scope and returns the exit status.
func execute(ctx context.Context, scope dscope.Scope, stdin io.Reader, stdout, stderr io.Writer) (exitCode int) {
	// config errors must surface before any provider decodes the config
	var loadErr error
	scope.Call(func(
		loader configs.Loader,
	) {
		loadErr = loader.Err()
	})
	if loadErr != nil {
		fmt.Fprintf(stderr, "%v\n", loadErr)
		return 2
	}

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		run Run,
	) {
		ctx, _ := newSpan(ctx, "jlex")
		code, err := run(ctx, stdin, stdout, stderr)
		if err != nil {
			err = logs.WrapSpan(ctx, err)
			logger.ErrorContext(ctx, "jlex", "error", err)
			fmt.Fprintf(stderr, "%v\n", err)
			code = 1
		}
		exitCode = code
	})
	return
}

// result is the outcome of tokenizing one source.
type result struct {
	source  *texts.Source
	tokens  []tokens.Token
	invalid int
	err     error
}

// Run executes the command and returns the process exit status.
type Run func(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) (int, error)

func (Module) Run(
	logger logs.Logger,
	options Options,
	newTokenizer lexers.NewTokenizer,
	explore scripts.Explore,
) Run {
	return func(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
		var filter *scripts.Filter
		if options.Where != "" {
			var err error
			filter, err = scripts.NewFilter(options.Where)
			if err != nil {
				return 0, wrap(err)
			}
		}
		printer, err := newPrinter(options.Format)
		if err != nil {
			return 0, wrap(err)
		}

		files, err := expandFiles(logger, options.Files)
		if err != nil {
			return 0, err
		}

		var sources []func() (*texts.Source, error)
		for _, path := range files {
			sources = append(sources, func() (*texts.Source, error) {
				content, err := os.ReadFile(path)
				if err != nil {
					return nil, wrap(err)
				}
				return texts.NewSource(path, string(content)), nil
			})
		}

		if len(options.Files) == 0 {
			if options.REPL || isTerminal(stdin) {
				return 0, runREPL(ctx, newTokenizer, printer, filter, *options.Trivia, stderr)
			}
			sources = append(sources, func() (*texts.Source, error) {
				content, err := io.ReadAll(bufio.NewReader(stdin))
				if err != nil {
					return nil, wrap(err)
				}
				return texts.NewSource("<stdin>", string(content)), nil
			})
		}

		results := make([]result, len(sources))
		sem := syncs.NewSemaphore(options.Jobs)
		wg := new(sync.WaitGroup)
		for i, load := range sources {
			if err := sem.Acquire(ctx); err != nil {
				wg.Wait()
				return 0, err
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()
				results[i] = tokenize(ctx, newTokenizer, load)
			}()
		}
		wg.Wait()

		out := bufio.NewWriter(stdout)
		defer out.Flush()
		exitCode := 0
		for _, res := range results {
			if res.err != nil {
				return 0, res.err
			}
			name := res.source.Name

			if options.Explore {
				out.Flush()
				explore(ctx, res.source, res.tokens)
				continue
			}

			for _, token := range res.tokens {
				if options.Strict {
					if err := lexers.Check(token, res.source); err != nil {
						out.Flush()
						fmt.Fprint(stderr, err.Error())
						exitCode = 1
					}
				}
				if !*options.Trivia && token.Kind.IsTrivia() {
					continue
				}
				if filter != nil {
					ok, err := filter.Match(token)
					if err != nil {
						return 0, wrap(err)
					}
					if !ok {
						continue
					}
				}
				if err := printer(out, name, token); err != nil {
					return 0, wrap(err)
				}
			}

			logger.DebugContext(ctx, "tokenized",
				"source", name,
				"tokens", len(res.tokens),
				"invalid", res.invalid,
			)
		}

		return exitCode, nil
	}
}

func tokenize(
	ctx context.Context,
	newTokenizer lexers.NewTokenizer,
	load func() (*texts.Source, error),
) (res result) {
	res.source, res.err = load()
	if res.err != nil {
		return
	}
	tokenizer := newTokenizer(ctx, res.source.Name, res.source.Runes())
	for token, err := range tokenizer.All() {
		if err != nil {
			res.err = wrap(err)
			return
		}
		if token.Kind == tokens.KindInvalid {
			res.invalid++
		}
		res.tokens = append(res.tokens, token)
	}
	return
}

func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
