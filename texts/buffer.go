package texts

import (
	"io"
	"strings"
)

// EOF is returned by peeks and consumes past the end of the text.
const EOF rune = -1

// Peeker is the read-only view of a Buffer.
type Peeker interface {
	Position() Position
	HasRemaining(count int) bool
	Peek(offset int) rune
}

// Buffer is a lookahead buffer over a forward-only code point source.
// Characters are read from the source at most once.
type Buffer struct {
	source io.RuneReader
	queue  []rune
	head   int
	pos    Position
	eof    bool
	err    error
}

var _ Peeker = new(Buffer)

func NewBuffer(source io.RuneReader) *Buffer {
	return &Buffer{
		source: source,
	}
}

// Position is the position of the current character, the one Peek(0) returns.
func (b *Buffer) Position() Position {
	return b.pos
}

// Err returns the first read error other than io.EOF.
func (b *Buffer) Err() error {
	return b.err
}

func (b *Buffer) buffered() int {
	return len(b.queue) - b.head
}

func (b *Buffer) fill(count int) {
	for b.buffered() < count && !b.eof {
		r, _, err := b.source.ReadRune()
		if err != nil {
			if err != io.EOF {
				b.err = err
			}
			b.eof = true
			return
		}
		if b.head > 0 && len(b.queue) == cap(b.queue) {
			// reclaim consumed space
			n := copy(b.queue, b.queue[b.head:])
			b.queue = b.queue[:n]
			b.head = 0
		}
		b.queue = append(b.queue, r)
	}
}

func (b *Buffer) HasRemaining(count int) bool {
	if count < 0 {
		panic(&StateError{
			Expected: "non-negative count",
			Actual:   EOF,
			Position: b.pos,
		})
	}
	b.fill(count)
	return b.buffered() >= count
}

func (b *Buffer) Peek(offset int) rune {
	if offset < 0 {
		panic(&StateError{
			Expected: "non-negative offset",
			Actual:   EOF,
			Position: b.pos,
		})
	}
	b.fill(offset + 1)
	if b.buffered() <= offset {
		return EOF
	}
	return b.queue[b.head+offset]
}

// PeekString returns up to n characters ahead of the cursor.
func (b *Buffer) PeekString(n int) string {
	var sb strings.Builder
	for i := range n {
		r := b.Peek(i)
		if r == EOF {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (b *Buffer) Consume() rune {
	b.fill(1)
	if b.buffered() == 0 {
		return EOF
	}
	r := b.queue[b.head]
	b.head++
	if b.head == len(b.queue) {
		b.queue = b.queue[:0]
		b.head = 0
	}
	b.pos = b.pos.Advance(r)
	return r
}

// ConsumeExact consumes the current character, which must be expected.
func (b *Buffer) ConsumeExact(expected rune) {
	if actual := b.Peek(0); actual != expected {
		panic(&StateError{
			Expected: string(expected),
			Actual:   actual,
			Position: b.pos,
		})
	}
	b.Consume()
}

// ConsumeExactString consumes all of expected or, on mismatch, nothing.
func (b *Buffer) ConsumeExactString(expected string) {
	i := 0
	for _, r := range expected {
		if actual := b.Peek(i); actual != r {
			panic(&StateError{
				Expected: expected,
				Actual:   actual,
				Position: b.pos,
			})
		}
		i++
	}
	for range i {
		b.Consume()
	}
}

// ConsumeWhile consumes characters while predicate holds for the current one.
// The returned bool is true if the predicate failed before the end of the text.
func (b *Buffer) ConsumeWhile(predicate func(rune) bool) (string, bool) {
	return b.ConsumeWhileAt(func(p Peeker) bool {
		return predicate(p.Peek(0))
	})
}

// ConsumeWhileAt is ConsumeWhile with access to further lookahead.
func (b *Buffer) ConsumeWhileAt(predicate func(Peeker) bool) (string, bool) {
	var sb strings.Builder
	for {
		if b.Peek(0) == EOF {
			return sb.String(), false
		}
		if !predicate(b) {
			return sb.String(), true
		}
		sb.WriteRune(b.Consume())
	}
}
