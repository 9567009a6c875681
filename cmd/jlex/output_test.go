package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/jlex/configs"
	"github.com/reusee/jlex/lexers"
	"github.com/reusee/jlex/modes"
)

func TestPrintText(t *testing.T) {
	buf := new(bytes.Buffer)
	for _, token := range lexers.Tokenize("int x = 0x10;\n\"a\"", lexers.Options{}) {
		if err := printText(buf, "a.java", token); err != nil {
			t.Fatal(err)
		}
	}
	expected := strings.Join([]string{
		"a.java:1:1\tKeyword\tint",
		"a.java:1:4\tWhitespace\t\" \"",
		"a.java:1:5\tIdentifier\t\"x\"",
		"a.java:1:6\tWhitespace\t\" \"",
		"a.java:1:7\tOperator\tASSIGNMENT",
		"a.java:1:8\tWhitespace\t\" \"",
		"a.java:1:9\tNumberLiteral\t0x10 = 16",
		"a.java:1:13\tSeparator\tSEMICOLON",
		"a.java:1:14\tWhitespace\t\"\\n\"",
		"a.java:2:1\tStringLiteral\t\"\\\"a\\\"\"",
	}, "\n") + "\n"
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}
}

func TestPrintJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	for _, token := range lexers.Tokenize("if (false) 1.5", lexers.Options{}) {
		if err := printJSON(buf, "a.java", token); err != nil {
			t.Fatal(err)
		}
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %q", lines)
	}
	var v map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &v); err != nil {
		t.Fatal(err)
	}
	if v["kind"] != "Keyword" || v["name"] != "IF" || v["source"] != "a.java" {
		t.Fatalf("got %v", v)
	}
	if lines[3] != `{"source":"a.java","line":1,"column":5,"offset":4,"kind":"BooleanLiteral","text":"false","value":false}` {
		t.Fatalf("got %s", lines[3])
	}
	if lines[6] != `{"source":"a.java","line":1,"column":12,"offset":11,"kind":"NumberLiteral","text":"1.5","value":1.5}` {
		t.Fatalf("got %s", lines[6])
	}
}

func TestNewPrinter(t *testing.T) {
	if _, err := newPrinter("text"); err != nil {
		t.Fatal(err)
	}
	if _, err := newPrinter("yaml"); err == nil {
		t.Fatal("should error")
	}
}

func TestOptions(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/cli.cue"}, configs.Schema)
		},
	).Call(func(
		options Options,
	) {
		if options.Format != "json" || options.Jobs != 2 || options.Where != `token.kind == "Keyword"` {
			t.Fatalf("got %+v", options)
		}
		if *options.Trivia {
			t.Fatal()
		}
	})
}
