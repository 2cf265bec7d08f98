package lexer_test

import (
	"strings"
	"testing"

	"github.com/heshpdx/cppcheck/internal/diag"
	"github.com/heshpdx/cppcheck/internal/dialect"
	"github.com/heshpdx/cppcheck/internal/lexer"
	"github.com/heshpdx/cppcheck/internal/source"
	"github.com/heshpdx/cppcheck/internal/token"
)

// lexInput tokenizes a source string as a virtual file.
func lexInput(input string) (*token.List, *diag.Bag) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cpp", []byte(input))
	bag := diag.NewBag(32)
	list := lexer.Tokenize(fs.Get(id), dialect.Default(), bag)
	return list, bag
}

func spellings(list *token.List) []string {
	var out []string
	for tok := list.Front(); tok != nil; tok = tok.Next() {
		out = append(out, tok.Str())
	}
	return out
}

// expectTokens checks the token spelling sequence with no findings.
func expectTokens(t *testing.T, input string, expected ...string) {
	t.Helper()
	list, bag := lexInput(input)
	if bag.Len() != 0 {
		t.Fatalf("unexpected findings for %q: %+v", input, bag.Items())
	}
	got := spellings(list)
	if strings.Join(got, "\x00") != strings.Join(expected, "\x00") {
		t.Errorf("input %q:\ngot  %q\nwant %q", input, got, expected)
	}
}

// expectFinding checks that the input produces one finding with the code,
// and still yields the given tokens.
func expectFinding(t *testing.T, input string, code diag.Code, expected ...string) {
	t.Helper()
	list, bag := lexInput(input)
	if bag.Len() != 1 {
		t.Fatalf("input %q: %d findings, want 1: %+v", input, bag.Len(), bag.Items())
	}
	if got := bag.Items()[0].Code; got != code {
		t.Errorf("input %q: finding %s, want %s", input, got, code)
	}
	got := spellings(list)
	if strings.Join(got, "\x00") != strings.Join(expected, "\x00") {
		t.Errorf("input %q:\ngot  %q\nwant %q", input, got, expected)
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []string{"foo", "_bar", "__x", "x123", "camelCase", "UPPER"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectTokens(t, input, input)
		})
	}
}

func TestIdentifierNormalization(t *testing.T) {
	// combining diaeresis composes with the base letter
	expectTokens(t, "a\u0308 = 1 ;", "\u00e4", "=", "1", ";")
}

func TestOperatorsMaximalMunch(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"a+++b", []string{"a", "++", "+", "b"}},
		{"i---j", []string{"i", "--", "-", "j"}},
		{"x<<=1", []string{"x", "<<=", "1"}},
		{"x>>=1", []string{"x", ">>=", "1"}},
		{"a<=>b", []string{"a", "<=>", "b"}},
		{"a->*b", []string{"a", "->*", "b"}},
		{"x.*y", []string{"x", ".*", "y"}},
		{"a::b", []string{"a", "::", "b"}},
		{"f(a,...)", []string{"f", "(", "a", ",", "...", ")"}},
		{"%:%:x", []string{"%:%:", "x"}},
		{"a<b>c", []string{"a", "<", "b", ">", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected...)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123", "123"},
		{"0x1F", "0x1F"},
		{"0b101", "0b101"},
		{"0777", "0777"},
		{"123ul", "123ul"},
		{"3.14", "3.14"},
		{"1.0f", "1.0f"},
		{".5", ".5"},
		{"1e10", "1e10"},
		{"1E+5", "1E+5"},
		{"2.5e-3", "2.5e-3"},
		{"0x1.8p3", "0x1.8p3"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestDigitSeparators(t *testing.T) {
	expectTokens(t, "1'000'000", "1000000")
	expectTokens(t, "0xDEAD'BEEF", "0xDEADBEEF")
	// an apostrophe not followed by a digit starts a char literal
	expectTokens(t, "1'x'", "1", "'x'")
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `"abc"`, `"abc"`},
		{"empty", `""`, `""`},
		{"escaped quote", `"a\"b"`, `"a\"b"`},
		{"escaped backslash", `"a\\"`, `"a\\"`},
		{"utf8 prefix", `u8"hi"`, `u8"hi"`},
		{"wide prefix", `L"hi"`, `L"hi"`},
		{"raw", `R"(a\b)"`, `"a\\b"`},
		{"raw delim", `R"xy(ab)xy"`, `"ab"`},
		{"raw quote", `R"(a"b)"`, `"a\"b"`},
		{"wide raw", `LR"(x)"`, `"x"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestCharLiterals(t *testing.T) {
	expectTokens(t, "'c'", "'c'")
	expectTokens(t, `'\n'`, `'\n'`)
	expectTokens(t, `'\''`, `'\''`)
	expectTokens(t, "L'x'", "L'x'")
	expectTokens(t, "u'x'", "u'x'")
}

func TestComments(t *testing.T) {
	expectTokens(t, "a // rest\nb", "a", "b")
	expectTokens(t, "a /* x */ b", "a", "b")
	expectTokens(t, "a /* x\ny */ b", "a", "b")
	expectTokens(t, "a / b", "a", "/", "b")
}

func TestLineSplice(t *testing.T) {
	expectTokens(t, "x \\\n y", "x", "y")
	expectTokens(t, "x \\\r\n y", "x", "y")
}

func TestUnterminatedString(t *testing.T) {
	expectFinding(t, `"abc`, diag.LexUnterminatedString, `"abc"`)
}

func TestNewlineTerminatesString(t *testing.T) {
	expectFinding(t, "\"ab\nc", diag.LexUnterminatedString, `"ab"`, "c")
}

func TestUnterminatedRawString(t *testing.T) {
	expectFinding(t, `R"(abc`, diag.LexUnterminatedString, `"abc"`)
}

func TestUnterminatedChar(t *testing.T) {
	expectFinding(t, "'a", diag.LexUnterminatedChar, "'a'")
}

func TestUnterminatedComment(t *testing.T) {
	expectFinding(t, "a /* b", diag.LexUnterminatedComment, "a")
}

func TestUnknownChar(t *testing.T) {
	expectFinding(t, "a @ b", diag.LexUnknownChar, "a", "b")
}

func TestPositions(t *testing.T) {
	list, _ := lexInput("int x;\n  y = 1;")
	want := []struct {
		str  string
		line int
		col  int
	}{
		{"int", 1, 1},
		{"x", 1, 5},
		{";", 1, 6},
		{"y", 2, 3},
		{"=", 2, 5},
		{"1", 2, 7},
		{";", 2, 8},
	}
	tok := list.Front()
	for _, w := range want {
		if tok == nil {
			t.Fatalf("stream ended before %q", w.str)
		}
		if tok.Str() != w.str || tok.Line() != w.line || tok.Column() != w.col {
			t.Errorf("token %q at %d:%d, want %q at %d:%d",
				tok.Str(), tok.Line(), tok.Column(), w.str, w.line, w.col)
		}
		tok = tok.Next()
	}
	if tok != nil {
		t.Errorf("extra token %q", tok.Str())
	}
}

func TestClassificationIntegration(t *testing.T) {
	list, bag := lexInput(`if (x >= 10) return "done";`)
	if bag.Len() != 0 {
		t.Fatalf("findings: %+v", bag.Items())
	}
	kinds := []struct {
		str  string
		kind token.Kind
	}{
		{"if", token.Keyword},
		{"(", token.ExtendedOp},
		{"x", token.Name},
		{">=", token.ComparisonOp},
		{"10", token.Number},
		{")", token.ExtendedOp},
		{"return", token.Keyword},
		{`"done"`, token.String},
		{";", token.Other},
	}
	tok := list.Front()
	for _, w := range kinds {
		if tok == nil {
			t.Fatalf("stream ended before %q", w.str)
		}
		if tok.Str() != w.str {
			t.Fatalf("token %q, want %q", tok.Str(), w.str)
		}
		if tok.Kind() != w.kind {
			t.Errorf("token %q: kind %v, want %v", w.str, tok.Kind(), w.kind)
		}
		tok = tok.Next()
	}
}

// Rendering a stream back to text and tokenizing the rendering must yield
// the same spelling sequence.
func TestStringifyRoundTrip(t *testing.T) {
	inputs := []string{
		"int main ( ) { return 0 ; }",
		"for(int i=0;i<n;++i)a[i]+=b[i]*2;",
		`const char *s = "a\tb" ; char c = 'x' ;`,
		"x <<= y >>= z ; a <=> b ; p ->* q ;",
		"f(1'000'000, 0x1.8p3, 1.0f, u8\"hi\");",
		"vector < pair < int , int > > v ;",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			list, bag := lexInput(input)
			if bag.Len() != 0 {
				t.Fatalf("findings for %q: %+v", input, bag.Items())
			}
			rendered := list.Front().StringifyList(token.StringifyOptions{}, nil, nil)
			relexed, bag2 := lexInput(rendered)
			if bag2.Len() != 0 {
				t.Fatalf("findings for rendering %q: %+v", rendered, bag2.Items())
			}
			got := spellings(relexed)
			want := spellings(list)
			if strings.Join(got, "\x00") != strings.Join(want, "\x00") {
				t.Errorf("round trip of %q via %q:\ngot  %q\nwant %q", input, rendered, got, want)
			}
		})
	}
}
