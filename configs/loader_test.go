package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
lexer?: {
	raw_quotes?: bool
	report_invalid?: bool
}
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("str", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
	if loader.Err() == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"not-exists.cue"}, "")
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestEmbeddedSchema(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, Schema)
	// test.cue has fields outside the embedded schema
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
	loader = NewLoader(nil, Schema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
}
