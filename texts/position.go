package texts

import (
	"cmp"
	"fmt"
)

// Position is the zero-based location of a character in the source text.
type Position struct {
	Line      uint
	Column    uint
	CharIndex uint
}

// Start is the position of the first character.
var Start = Position{}

// Advance returns the position following the consumed character r.
func (p Position) Advance(r rune) Position {
	if r == '\n' {
		return Position{
			Line:      p.Line + 1,
			Column:    0,
			CharIndex: p.CharIndex + 1,
		}
	}
	return Position{
		Line:      p.Line,
		Column:    p.Column + 1,
		CharIndex: p.CharIndex + 1,
	}
}

func (p Position) Compare(q Position) int {
	return cmp.Compare(p.CharIndex, q.CharIndex)
}

func (p Position) IsStart() bool {
	return p.Line == 0 && p.Column == 0
}

func (p Position) String() string {
	return fmt.Sprintf("[%d, %d, %d]", p.Line, p.Column, p.CharIndex)
}
