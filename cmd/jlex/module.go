package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/jlex/lexers"
	"github.com/reusee/jlex/scripts"
)

type Module struct {
	dscope.Module
	Lexers  lexers.Module
	Scripts scripts.Module
}
