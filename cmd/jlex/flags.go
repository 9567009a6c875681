package main

import (
	"github.com/reusee/jlex/cmds"
	"github.com/reusee/jlex/configs"
)

var (
	whereFlag   = cmds.Var[string]("-where", "print only tokens for which the starlark expression over token is true")
	formatFlag  = cmds.Var[string]("-format", "output format, text or json")
	jobsFlag    = cmds.Var[int]("-jobs", "number of files tokenized concurrently")
	strictFlag  = cmds.Switch("-strict", "print a diagnostic for each invalid token and exit with status 1 if any")
	rawQuotes   = cmds.Switch("-raw-quotes", "end character and string literals at the first matching quote")
	replFlag    = cmds.Switch("-repl", "tokenize lines read interactively")
	exploreFlag = cmds.Switch("-explore", "open a starlark session with the tokens of each source")
	filesFlag   = cmds.Collect[string]("-file", "tokenize matching files, directories are walked for .java files")
)

var triviaFlag *bool

func init() {
	cmds.Define("-trivia", cmds.Func(func() {
		v := true
		triviaFlag = &v
	}).Desc("print whitespace and comments"))
	cmds.Define("!-trivia", cmds.Func(func() {
		v := false
		triviaFlag = &v
	}).Desc("omit whitespace and comments"))
}

// Options are the effective command line settings, flags taking precedence over the cli config section.
type Options struct {
	Where  string `json:"where"`
	Format string `json:"format"`
	Jobs   int    `json:"jobs"`
	Trivia *bool  `json:"trivia"`

	Files   []string `json:"-"`
	Strict  bool     `json:"-"`
	Explore bool     `json:"-"`
	REPL    bool     `json:"-"`
}

func (Module) Options(
	loader configs.Loader,
) Options {
	options := configs.First[Options](loader, "cli")
	if *whereFlag != "" {
		options.Where = *whereFlag
	}
	if *formatFlag != "" {
		options.Format = *formatFlag
	}
	if options.Format == "" {
		options.Format = "text"
	}
	if *jobsFlag > 0 {
		options.Jobs = *jobsFlag
	}
	if options.Jobs <= 0 {
		options.Jobs = 4
	}
	if triviaFlag != nil {
		options.Trivia = triviaFlag
	}
	if options.Trivia == nil {
		v := true
		options.Trivia = &v
	}
	options.Files = *filesFlag
	options.Strict = *strictFlag
	options.Explore = *exploreFlag
	options.REPL = *replFlag
	return options
}
