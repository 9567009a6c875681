package texts

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

func (s *Source) Runes() io.RuneReader {
	return FromString(s.Content)
}

func FromString(str string) io.RuneReader {
	return strings.NewReader(str)
}

func FromReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// SeqReader adapts a code point sequence to io.RuneReader.
type SeqReader struct {
	next func() (rune, bool)
	stop func()
	done bool
}

var _ io.RuneReader = new(SeqReader)

// FromSeq pulls code points from seq. The pull iterator is released at the end
// of seq or by Close; a reader abandoned before either leaks it.
func FromSeq(seq iter.Seq[rune]) *SeqReader {
	next, stop := iter.Pull(seq)
	return &SeqReader{
		next: next,
		stop: stop,
	}
}

func (s *SeqReader) ReadRune() (r rune, size int, err error) {
	if s.done {
		return 0, 0, io.EOF
	}
	r, ok := s.next()
	if !ok {
		s.Close()
		return 0, 0, io.EOF
	}
	return r, 1, nil
}

// Close releases the underlying pull iterator.
func (s *SeqReader) Close() error {
	if !s.done {
		s.done = true
		s.stop()
	}
	return nil
}
