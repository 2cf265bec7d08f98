package token_test

import (
	"strings"
	"testing"

	"github.com/heshpdx/cppcheck/internal/diag"
	"github.com/heshpdx/cppcheck/internal/dialect"
	"github.com/heshpdx/cppcheck/internal/token"
)

// makeList builds a token list from space-separated code on one line.
func makeList(t *testing.T, code string) *token.List {
	t.Helper()
	list := token.NewList(dialect.Default())
	list.AddFile("test.cpp")
	col := 1
	for _, word := range strings.Fields(code) {
		list.Append(word, 0, 1, col)
		col += len(word) + 1
	}
	return list
}

// makeLinkedList is makeList plus bracket linking; the code must have
// balanced brackets.
func makeLinkedList(t *testing.T, code string) *token.List {
	t.Helper()
	list := makeList(t, code)
	bag := diag.NewBag(16)
	if !list.CreateLinks(bag) {
		t.Fatalf("CreateLinks(%q) failed: %+v", code, bag.Items())
	}
	return list
}

// tokAt returns the n-th token of the list (0-based).
func tokAt(t *testing.T, list *token.List, n int) *token.Token {
	t.Helper()
	tok := list.Front().TokAt(n)
	if tok == nil {
		t.Fatalf("no token at offset %d", n)
	}
	return tok
}

// findTok returns the first token spelled str.
func findTok(t *testing.T, list *token.List, str string) *token.Token {
	t.Helper()
	tok := token.FindSimpleMatch(list.Front(), str)
	if tok == nil {
		t.Fatalf("no token %q in stream", str)
	}
	return tok
}

// streamString renders the stream as space-separated spellings.
func streamString(list *token.List) string {
	var parts []string
	for tok := list.Front(); tok != nil; tok = tok.Next() {
		parts = append(parts, tok.Str())
	}
	return strings.Join(parts, " ")
}

// expectInternalError runs fn and requires it to panic with an internal
// error carrying the given code.
func expectInternalError(t *testing.T, code diag.Code, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected internal error %s, got no panic", code)
		}
		ie, ok := r.(*diag.InternalError)
		if !ok {
			t.Fatalf("expected *diag.InternalError, got %T (%v)", r, r)
		}
		if ie.Code != code {
			t.Fatalf("expected code %s, got %s (%s)", code, ie.Code, ie.Msg)
		}
	}()
	fn()
}
