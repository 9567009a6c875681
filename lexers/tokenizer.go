package lexers

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/reusee/jlex/texts"
	"github.com/reusee/jlex/tokens"
)

var ErrInvalidToken = errors.New("invalid token")

type Options struct {
	// RawQuotes ends character and string literals at the first matching quote,
	// without backslash escapes.
	RawQuotes bool
	// OnInvalid is called for every Invalid token emitted.
	OnInvalid func(tokens.Token)
}

type Tokenizer struct {
	source      io.RuneReader
	buffer      *texts.Buffer
	recognizers []Recognizer
	onInvalid   func(tokens.Token)
}

func New(source io.RuneReader, options Options) *Tokenizer {
	return &Tokenizer{
		source: source,
		buffer: texts.NewBuffer(source),
		recognizers: []Recognizer{
			recognizeWhitespace,
			recognizeComment,
			recognizeSimpleLiteral,
			recognizeNumber,
			recognizeQuoted(options.RawQuotes),
			recognizeKeywordOrIdentifier,
			recognizeSeparator,
			recognizeOperator,
			recognizeInvalid,
		},
		onInvalid: options.OnInvalid,
	}
}

// Position is the position of the next token.
func (t *Tokenizer) Position() texts.Position {
	return t.buffer.Position()
}

func (t *Tokenizer) HasMore() bool {
	return t.buffer.HasRemaining(1)
}

// Next returns the next token, or io.EOF when the input is exhausted.
// A read error of the source is returned after all characters read before it.
func (t *Tokenizer) Next() (tokens.Token, error) {
	if !t.buffer.HasRemaining(1) {
		if err := t.buffer.Err(); err != nil {
			return tokens.Token{}, fmt.Errorf("read source at %v: %w", t.buffer.Position(), err)
		}
		return tokens.Token{}, io.EOF
	}

	start := t.buffer.Position()
	for i, recognize := range t.recognizers {
		token, ok := recognize(t.buffer)
		end := t.buffer.Position()
		if !ok {
			if end != start {
				panic(fmt.Sprintf("recognizer %d declined after consuming from %v to %v", i, start, end))
			}
			continue
		}
		if end.CharIndex <= start.CharIndex {
			panic(fmt.Sprintf("recognizer %d made no progress at %v", i, start))
		}
		if token.Kind == tokens.KindInvalid && t.onInvalid != nil {
			t.onInvalid(token)
		}
		return token, nil
	}

	panic("no recognizer accepted input")
}

// Close closes the source if it is an io.Closer.
func (t *Tokenizer) Close() error {
	if closer, ok := t.source.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// All returns the remaining tokens as a lazy sequence.
// The sequence ends at the end of input or after yielding an error.
// The tokenizer is closed when the sequence ends, including early stops.
func (t *Tokenizer) All() iter.Seq2[tokens.Token, error] {
	return func(yield func(tokens.Token, error) bool) {
		defer t.Close()
		for {
			token, err := t.Next()
			if err == io.EOF {
				return
			}
			if !yield(token, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Tokenize returns all tokens of str.
func Tokenize(str string, options Options) []tokens.Token {
	var ret []tokens.Token
	for token, err := range New(texts.FromString(str), options).All() {
		if err != nil {
			// strings.Reader never fails
			panic(err)
		}
		ret = append(ret, token)
	}
	return ret
}

// Significant drops whitespace and comments.
func Significant(seq iter.Seq2[tokens.Token, error]) iter.Seq2[tokens.Token, error] {
	return func(yield func(tokens.Token, error) bool) {
		for token, err := range seq {
			if err == nil && token.Kind.IsTrivia() {
				continue
			}
			if !yield(token, err) {
				return
			}
		}
	}
}

// Check returns an error positioned at token if it is Invalid.
func Check(token tokens.Token, source *texts.Source) error {
	if token.Kind != tokens.KindInvalid {
		return nil
	}
	return texts.WithPos(
		fmt.Errorf("%w %q", ErrInvalidToken, token.Text),
		token.Position,
		source,
	)
}
