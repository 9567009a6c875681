package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/jlex/modes"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("test", "hello", "world!")
		logger.With("foo", "bar").Info("with")
	})
	out := buf.String()
	if !strings.Contains(out, "level=DEBUG msg=test hello=world!") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "msg=with foo=bar") {
		t.Fatalf("got %q", out)
	}
}

func TestProductionLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForProduction()).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("hidden")
		logger.Warn("shown")
	})
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Fatalf("got %q", out)
	}
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("logs.span"); key != "LOGS_SPAN" {
		t.Fatalf("got %s", key)
	}
}

func TestWrapSpan(t *testing.T) {
	errFoo := errors.New("foo")
	if err := WrapSpan(context.Background(), errFoo); err != errFoo {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err := WrapSpan(ctx, errFoo)
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span: abc") {
		t.Fatalf("got %v", err)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}
