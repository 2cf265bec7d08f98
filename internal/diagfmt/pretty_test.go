package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/heshpdx/cppcheck/internal/diag"
	"github.com/heshpdx/cppcheck/internal/diagfmt"
	"github.com/heshpdx/cppcheck/internal/dialect"
	"github.com/heshpdx/cppcheck/internal/lexer"
	"github.com/heshpdx/cppcheck/internal/source"
)

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("test.cpp", []byte("int x;\nint y = ;\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.StreamUnmatchedClose,
		Message:  "unexpected token",
		Primary:  diag.Pos{File: "test.cpp", Line: 2, Column: 9},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{Context: 1})

	want := "test.cpp:2:9: ERROR CHK2002: unexpected token\n" +
		"    1 | int x;\n" +
		"    2 | int y = ;\n" +
		"      |         ^\n"
	if got := buf.String(); got != want {
		t.Fatalf("pretty output:\ngot  %q\nwant %q", got, want)
	}
}

func TestPrettyWithoutFileSet(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LexUnknownChar,
		Message:  "odd byte",
		Primary:  diag.Pos{File: "x.cpp", Line: 1, Column: 1},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, nil, diagfmt.PrettyOpts{})
	want := "x.cpp:1:1: WARNING CHK1001: odd byte\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrettyClampsCaret(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("t.cpp", []byte("ab\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "m",
		Primary:  diag.Pos{File: "t.cpp", Line: 1, Column: 99},
	})

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	// the caret lands just past the end of the short line
	if !strings.Contains(buf.String(), "      |   ^\n") {
		t.Fatalf("caret not clamped:\n%s", buf.String())
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("snippet.cpp", []byte("x = 1;"))
	bag := diag.NewBag(16)
	list := lexer.Tokenize(fs.Get(id), dialect.Default(), bag)

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, list); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("rows: %v", lines)
	}
	if !strings.Contains(lines[0], `"x"`) || !strings.Contains(lines[0], "snippet.cpp:1:1") {
		t.Errorf("first row: %q", lines[0])
	}
	if !strings.Contains(lines[1], "assignment") {
		t.Errorf("kind column: %q", lines[1])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("snippet.cpp", []byte("f(x)"))
	bag := diag.NewBag(16)
	list := lexer.Tokenize(fs.Get(id), dialect.Default(), bag)
	list.CreateLinks(bag)

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, list); err != nil {
		t.Fatal(err)
	}

	var rows []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(rows) != 4 {
		t.Fatalf("rows: %+v", rows)
	}
	if rows[0].Text != "f" || rows[0].File != "snippet.cpp" || rows[0].Line != 1 {
		t.Errorf("first row: %+v", rows[0])
	}
	// the parens link to each other by stream index
	if rows[1].Text != "(" || rows[1].Link == 0 {
		t.Errorf("open paren: %+v", rows[1])
	}
	if rows[3].Text != ")" || rows[3].Link != 2 {
		t.Errorf("close paren: %+v", rows[3])
	}
}
