package token_test

import (
	"testing"

	"github.com/heshpdx/cppcheck/internal/token"
)

func TestFindClosingBracket(t *testing.T) {
	tests := []struct {
		code    string
		open    int // offset of the < under test
		closing int // offset of the expected >, -1 for none
	}{
		// plain template declaration
		{"Foo < int > x ;", 1, 3},
		// nested template argument
		{"std :: map < int , std :: vector < int > > m ;", 3, 12},
		// comparison, not a template: < follows a number
		{"1 < 2 ;", -1, -1},
		// no closer before ;
		{"a < b ;", 1, -1},
		// call group inside the argument list is skipped
		{"Foo < decltype ( a > b ) > x ;", 1, 8},
		// a closing brace aborts the scan
		{"{ Foo < x } > ;", 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			list := makeLinkedList(t, tt.code)
			var open *token.Token
			if tt.open >= 0 {
				open = tokAt(t, list, tt.open)
			} else {
				open = findTok(t, list, "<")
			}
			got := open.FindClosingBracket()
			if tt.closing < 0 {
				if got != nil {
					t.Fatalf("expected no closer, got %q at %d", got.Str(), got.Index())
				}
				return
			}
			want := tokAt(t, list, tt.closing)
			if got != want {
				t.Fatalf("closer: got %v, want %q at offset %d", got, want.Str(), tt.closing)
			}
		})
	}
}

func TestFindClosingBracketShiftRight(t *testing.T) {
	// in an expression context >> stays a shift operator; the scan walks
	// past it and gives up at ;
	list := makeLinkedList(t, "x = a < b >> c ;")
	open := tokAt(t, list, 3)
	if got := open.FindClosingBracket(); got != nil {
		t.Fatalf("got %q, want nil", got.Str())
	}
}

func TestFindClosingBracketDeclSplitsShiftRight(t *testing.T) {
	// in a declaration >> closes two template levels
	list := makeLinkedList(t, "vector < vector < int >> v ;")
	open := tokAt(t, list, 1)
	got := open.FindClosingBracket()
	if got == nil || got.Str() != ">>" {
		t.Fatalf("got %v, want the >> token", got)
	}
}

func TestFindClosingBracketNotLess(t *testing.T) {
	list := makeList(t, "a > b")
	if tokAt(t, list, 1).FindClosingBracket() != nil {
		t.Fatal("FindClosingBracket on > must return nil")
	}
}

func TestFindOpeningBracket(t *testing.T) {
	list := makeLinkedList(t, "Foo < pair < int , int > > x ;")
	outer := tokAt(t, list, 8)
	got := outer.FindOpeningBracket()
	if got != tokAt(t, list, 1) {
		t.Fatalf("outer opener: got %v", got)
	}
	inner := tokAt(t, list, 7)
	if inner.FindOpeningBracket() != tokAt(t, list, 3) {
		t.Fatal("inner opener wrong")
	}

	list = makeLinkedList(t, "( a > b )")
	if tokAt(t, list, 2).FindOpeningBracket() != nil {
		t.Fatal("comparison > must have no opener")
	}
}

func TestFindTypeEnd(t *testing.T) {
	list := makeLinkedList(t, "const :: std :: vector x ;")
	got := token.FindTypeEnd(tokAt(t, list, 1))
	if got == nil || got.Str() != ";" {
		t.Fatalf("FindTypeEnd: got %v", got)
	}
}

func TestFindLambdaEndScope(t *testing.T) {
	tests := []struct {
		code string
		want string // spelling expected at the end token, "" for nil
		end  int    // offset of the expected end token
	}{
		{"[ x ] ( int y ) { return ; } ;", "}", 10},
		{"[ ] { return ; } ;", "}", 5},
		{"[ = ] ( ) mutable { } ;", "}", 7},
		{"[ a ] = b ;", "", -1},
		{"x + y ;", "", -1},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			list := makeLinkedList(t, tt.code)
			got := token.FindLambdaEndScope(list.Front())
			if tt.want == "" {
				if got != nil {
					t.Fatalf("expected nil, got %q", got.Str())
				}
				return
			}
			if got != tokAt(t, list, tt.end) {
				t.Fatalf("got %v, want offset %d", got, tt.end)
			}
		})
	}
}
