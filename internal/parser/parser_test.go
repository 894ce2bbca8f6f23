package parser

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zoren/go-wuns/internal/form"
	"github.com/zoren/go-wuns/internal/lexer"
)

func parseAll(t *testing.T, input string) []form.Form {
	t.Helper()
	p := New(lexer.New(strings.NewReader(input)))
	forms, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error for %q: %v", input, err)
	}
	return forms
}

func parseOne(t *testing.T, input string) form.Form {
	t.Helper()
	forms := parseAll(t, input)
	if len(forms) != 1 {
		t.Fatalf("got %d forms for %q, want 1", len(forms), input)
	}
	return forms[0]
}

func TestParseWord(t *testing.T) {
	got := parseOne(t, "hello")
	if diff := cmp.Diff(form.Form(form.Word("hello")), got); diff != "" {
		t.Errorf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		input    string
		expected form.Form
	}{
		{"[]", form.List{}},
		{"[a]", form.List{form.Word("a")}},
		{"[add 2 3]", form.List{form.Word("add"), form.Word("2"), form.Word("3")}},
		{
			"[a [b c] d]",
			form.List{form.Word("a"), form.List{form.Word("b"), form.Word("c")}, form.Word("d")},
		},
		{"[[][[]]]", form.List{form.List{}, form.List{form.List{}}}},
		{"[ a\n b ]", form.List{form.Word("a"), form.Word("b")}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseOne(t, tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("form mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseProgramOrder(t *testing.T) {
	forms := parseAll(t, "a [b c]\nd")
	want := []form.Form{
		form.Word("a"),
		form.List{form.Word("b"), form.Word("c")},
		form.Word("d"),
	}
	if diff := cmp.Diff(want, forms); diff != "" {
		t.Errorf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestNextReturnsEOF(t *testing.T) {
	p := New(lexer.New(strings.NewReader("a")))
	if _, err := p.Next(); err != nil {
		t.Fatalf("first Next: %v", err)
	}
	if _, err := p.Next(); err != io.EOF {
		t.Fatalf("second Next err = %v, want io.EOF", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bare close", "]"},
		{"close after form", "a ] b"},
		{"eof in list", "[a b"},
		{"eof in nested list", "[a [b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(lexer.New(strings.NewReader(tt.input)))
			_, err := p.ParseProgram()
			if err == nil {
				t.Fatalf("expected parse error for %q", tt.input)
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Errorf("error %v is not a *parser.Error", err)
			}
		})
	}
}

func TestLexErrorAfterCompleteFormIsDeferred(t *testing.T) {
	// A bad byte after a complete top-level form must not swallow the
	// form: it surfaces on the following Next call.
	p := New(lexer.New(strings.NewReader("abc !")))
	f, err := p.Next()
	if err != nil {
		t.Fatalf("first Next: %v", err)
	}
	if f != form.Word("abc") {
		t.Fatalf("first form = %s, want abc", f)
	}
	_, err = p.Next()
	var le *lexer.Error
	if !errors.As(err, &le) {
		t.Fatalf("second Next err = %v, want *lexer.Error", err)
	}
}

func TestLexErrorPropagates(t *testing.T) {
	p := New(lexer.New(strings.NewReader("[a !]")))
	_, err := p.ParseProgram()
	if err == nil {
		t.Fatal("expected lex error")
	}
	var le *lexer.Error
	if !errors.As(err, &le) {
		t.Errorf("error %v is not a *lexer.Error", err)
	}
}

// TestPrintParseRoundTrip: printing a parsed form and re-parsing the
// output yields the same form, and printing is a fixpoint.
func TestPrintParseRoundTrip(t *testing.T) {
	inputs := []string{
		"abc",
		"[]",
		"[a b c]",
		"[a [b c] d]",
		"[quote [a [b [c [d]]]]]",
		"[ a\n\n[ b ]c ]",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := parseOne(t, input)
			printed := first.String()
			second := parseOne(t, printed)
			if !form.Equal(first, second) {
				t.Fatalf("round trip changed form: %s vs %s", first, second)
			}
			if second.String() != printed {
				t.Errorf("printing is not a fixpoint: %q vs %q", second.String(), printed)
			}
		})
	}
}
