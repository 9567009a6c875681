package texts

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// StateError reports a recognizer calling the buffer against its contract.
type StateError struct {
	Expected string
	Actual   rune
	Position Position
}

func (s *StateError) Error() string {
	actual := "EOF"
	if s.Actual != EOF {
		actual = fmt.Sprintf("%q", s.Actual)
	}
	return fmt.Sprintf("expected %q but was %s at %v", s.Expected, actual, s.Position)
}

type PosError struct {
	Err    error
	Pos    Position
	Source *Source
}

func (p PosError) Error() string {
	if p.Source == nil {
		return fmt.Sprintf("%s at %d:%d", p.Err.Error(), p.Pos.Line+1, p.Pos.Column+1)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Source.Name, p.Pos.Line+1, p.Pos.Column+1))

	lines := p.Source.Lines
	idx := int(p.Pos.Line)
	if idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		col := int(p.Pos.Column)
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runeWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Position, source *Source) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
