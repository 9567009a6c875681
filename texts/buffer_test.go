package texts

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
)

type countingReader struct {
	io.RuneReader
	reads int
}

func (c *countingReader) ReadRune() (rune, int, error) {
	c.reads++
	return c.RuneReader.ReadRune()
}

func expectStateError(t *testing.T, fn func()) *StateError {
	t.Helper()
	var stateErr *StateError
	func() {
		defer func() {
			p := recover()
			if p == nil {
				t.Fatal("should panic")
			}
			err, ok := p.(error)
			if !ok || !errors.As(err, &stateErr) {
				t.Fatalf("got %v", p)
			}
		}()
		fn()
	}()
	return stateErr
}

func TestBufferPeek(t *testing.T) {
	source := &countingReader{RuneReader: FromString("abc")}
	buf := NewBuffer(source)
	if r := buf.Peek(2); r != 'c' {
		t.Fatalf("got %q", r)
	}
	if source.reads != 3 {
		t.Fatalf("got %d", source.reads)
	}
	if r := buf.Peek(0); r != 'a' {
		t.Fatalf("got %q", r)
	}
	if r := buf.Peek(1); r != 'b' {
		t.Fatalf("got %q", r)
	}
	if source.reads != 3 {
		t.Fatalf("re-read: %d", source.reads)
	}
	if r := buf.Peek(3); r != EOF {
		t.Fatalf("got %q", r)
	}
	if r := buf.Peek(100); r != EOF {
		t.Fatalf("got %q", r)
	}
	if buf.Position() != Start {
		t.Fatalf("got %v", buf.Position())
	}
}

func TestBufferHasRemaining(t *testing.T) {
	buf := NewBuffer(FromString("ab"))
	if !buf.HasRemaining(0) || !buf.HasRemaining(1) || !buf.HasRemaining(2) {
		t.Fatal()
	}
	if buf.HasRemaining(3) {
		t.Fatal()
	}
	buf.Consume()
	buf.Consume()
	if buf.HasRemaining(1) {
		t.Fatal()
	}
	if r := buf.Consume(); r != EOF {
		t.Fatalf("got %q", r)
	}
	if buf.Position().CharIndex != 2 {
		t.Fatalf("got %v", buf.Position())
	}
}

func TestBufferNegative(t *testing.T) {
	buf := NewBuffer(FromString("ab"))
	expectStateError(t, func() {
		buf.Peek(-1)
	})
	expectStateError(t, func() {
		buf.HasRemaining(-1)
	})
}

func TestBufferConsume(t *testing.T) {
	buf := NewBuffer(FromString("a\nb"))
	if r := buf.Consume(); r != 'a' {
		t.Fatalf("got %q", r)
	}
	if pos := buf.Position(); pos != (Position{Line: 0, Column: 1, CharIndex: 1}) {
		t.Fatalf("got %v", pos)
	}
	buf.Consume()
	if pos := buf.Position(); pos != (Position{Line: 1, Column: 0, CharIndex: 2}) {
		t.Fatalf("got %v", pos)
	}
	if r := buf.Consume(); r != 'b' {
		t.Fatalf("got %q", r)
	}
}

func TestBufferSupplementaryPlane(t *testing.T) {
	buf := NewBuffer(FromString("😀x"))
	if r := buf.Peek(0); r != '😀' {
		t.Fatalf("got %q", r)
	}
	if r := buf.Peek(1); r != 'x' {
		t.Fatalf("got %q", r)
	}
	buf.Consume()
	if pos := buf.Position(); pos.CharIndex != 1 || pos.Column != 1 {
		t.Fatalf("got %v", pos)
	}
}

func TestBufferConsumeExact(t *testing.T) {
	buf := NewBuffer(FromString("ab"))
	buf.ConsumeExact('a')
	err := expectStateError(t, func() {
		buf.ConsumeExact('x')
	})
	if err.Actual != 'b' || err.Expected != "x" {
		t.Fatalf("got %v", err)
	}
	if buf.Position().CharIndex != 1 || buf.Peek(0) != 'b' {
		t.Fatal("cursor moved")
	}
	buf.ConsumeExact('b')
	err = expectStateError(t, func() {
		buf.ConsumeExact('b')
	})
	if err.Actual != EOF {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "EOF") {
		t.Fatalf("got %v", err)
	}
}

func TestBufferConsumeExactString(t *testing.T) {
	buf := NewBuffer(FromString(">>>=;"))
	expectStateError(t, func() {
		buf.ConsumeExactString(">>>>")
	})
	if buf.Position() != Start {
		t.Fatalf("partial consume: %v", buf.Position())
	}
	buf.ConsumeExactString(">>>=")
	if r := buf.Peek(0); r != ';' {
		t.Fatalf("got %q", r)
	}
	expectStateError(t, func() {
		buf.ConsumeExactString(";;")
	})
	if r := buf.Peek(0); r != ';' {
		t.Fatalf("got %q", r)
	}
}

func TestBufferConsumeWhile(t *testing.T) {
	buf := NewBuffer(FromString("aaab"))
	text, closed := buf.ConsumeWhile(func(r rune) bool {
		return r == 'a'
	})
	if text != "aaa" || !closed {
		t.Fatalf("got %q %v", text, closed)
	}
	if r := buf.Peek(0); r != 'b' {
		t.Fatalf("got %q", r)
	}

	text, closed = buf.ConsumeWhile(func(r rune) bool {
		return true
	})
	if text != "b" || closed {
		t.Fatalf("got %q %v", text, closed)
	}

	text, closed = buf.ConsumeWhile(func(r rune) bool {
		return true
	})
	if text != "" || closed {
		t.Fatalf("got %q %v", text, closed)
	}
}

func TestBufferConsumeWhileAt(t *testing.T) {
	buf := NewBuffer(FromString("a*b*/c"))
	text, closed := buf.ConsumeWhileAt(func(p Peeker) bool {
		return p.Peek(0) != '*' || p.Peek(1) != '/'
	})
	if text != "a*b" || !closed {
		t.Fatalf("got %q %v", text, closed)
	}
	if s := buf.PeekString(10); s != "*/c" {
		t.Fatalf("got %q", s)
	}
}

func TestBufferLongInput(t *testing.T) {
	input := strings.Repeat("abcdefgh\n", 1000)
	buf := NewBuffer(FromString(input))
	var got []rune
	for buf.HasRemaining(1) {
		buf.Peek(7)
		got = append(got, buf.Consume())
	}
	if string(got) != input {
		t.Fatal("mismatch")
	}
	if pos := buf.Position(); pos.Line != 1000 || pos.CharIndex != uint(len(input)) {
		t.Fatalf("got %v", pos)
	}
}

type failingReader struct {
	runes []rune
	err   error
}

func (f *failingReader) ReadRune() (rune, int, error) {
	if len(f.runes) == 0 {
		return 0, 0, f.err
	}
	r := f.runes[0]
	f.runes = f.runes[1:]
	return r, 1, nil
}

func TestBufferReadError(t *testing.T) {
	readErr := errors.New("boom")
	buf := NewBuffer(&failingReader{
		runes: []rune("ab"),
		err:   readErr,
	})
	text, closed := buf.ConsumeWhile(func(rune) bool {
		return true
	})
	if text != "ab" || closed {
		t.Fatalf("got %q %v", text, closed)
	}
	if !errors.Is(buf.Err(), readErr) {
		t.Fatalf("got %v", buf.Err())
	}
}

func TestFromSeq(t *testing.T) {
	seq := slices.Values([]rune("x😀y"))
	reader := FromSeq(seq)
	buf := NewBuffer(reader)
	text, _ := buf.ConsumeWhile(func(rune) bool {
		return true
	})
	if text != "x😀y" {
		t.Fatalf("got %q", text)
	}
	if _, _, err := reader.ReadRune(); err != io.EOF {
		t.Fatalf("got %v", err)
	}
	if err := reader.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestFromReader(t *testing.T) {
	buf := NewBuffer(FromReader(io.MultiReader(
		strings.NewReader("ab"),
		strings.NewReader("c"),
	)))
	if s := buf.PeekString(5); s != "abc" {
		t.Fatalf("got %q", s)
	}
}
