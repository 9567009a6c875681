package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/jlex/lexers"
	"github.com/reusee/jlex/scripts"
	"github.com/reusee/jlex/texts"
)

func runREPL(
	ctx context.Context,
	newTokenizer lexers.NewTokenizer,
	printer Printer,
	filter *scripts.Filter,
	trivia bool,
	stderr io.Writer,
) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".jlex_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return wrap(err)
	}
	defer rl.Close()

	for n := 1; ; n++ {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return nil
		}
		if line == "" {
			continue
		}
		name := fmt.Sprintf("<line %d>", n)
		source := texts.NewSource(name, line)
		for token, err := range newTokenizer(ctx, name, source.Runes()).All() {
			if err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				break
			}
			if err := lexers.Check(token, source); err != nil {
				fmt.Fprint(stderr, err.Error())
			}
			if !trivia && token.Kind.IsTrivia() {
				continue
			}
			if filter != nil {
				ok, err := filter.Match(token)
				if err != nil {
					fmt.Fprintf(stderr, "error: %v\n", err)
					break
				}
				if !ok {
					continue
				}
			}
			if err := printer(rl.Stdout(), name, token); err != nil {
				return wrap(err)
			}
		}
	}
}
