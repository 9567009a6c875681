package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage(w io.Writer) {
	names := slices.Clone(p.names)
	slices.Sort(names)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		command := p.commands[name]
		words := name
		if params := command.Params(); params != "" {
			words += " " + params
		}
		if len(command.Aliases) > 0 {
			words += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		fmt.Fprintf(tw, "  %s\t%s\n", words, command.Description)
	}
	tw.Flush()
}
