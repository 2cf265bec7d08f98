package token_test

import (
	"testing"

	"github.com/heshpdx/cppcheck/internal/diag"
	"github.com/heshpdx/cppcheck/internal/dialect"
	"github.com/heshpdx/cppcheck/internal/symbols"
	"github.com/heshpdx/cppcheck/internal/token"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		str  string
		kind token.Kind
	}{
		{"if", token.Keyword},
		{"while", token.Keyword},
		{"constexpr", token.Keyword},
		{"namespace", token.Keyword},
		{"asm", token.Keyword},
		{"true", token.Boolean},
		{"false", token.Boolean},
		{"int", token.Type},
		{"char", token.Type},
		{"size_t", token.Type},
		{"wchar_t", token.Type},
		{"foo", token.Name},
		{"_bar", token.Name},
		{"x123", token.Name},
		{"123", token.Number},
		{"0xFF", token.Number},
		{"1.5e-3", token.Number},
		{"0b101", token.Number},
		{"123_km", token.Name},
		{"\"hello\"", token.String},
		{"L\"wide\"", token.String},
		{"u8\"text\"", token.String},
		{"'a'", token.Char},
		{"L'w'", token.Char},
		{"=", token.AssignmentOp},
		{"+=", token.AssignmentOp},
		{"<<=", token.AssignmentOp},
		{">>=", token.AssignmentOp},
		{"+", token.ArithmeticalOp},
		{"%", token.ArithmeticalOp},
		{"<<", token.ArithmeticalOp},
		{">>", token.ArithmeticalOp},
		{"&", token.BitOp},
		{"~", token.BitOp},
		{"&&", token.LogicalOp},
		{"||", token.LogicalOp},
		{"!", token.LogicalOp},
		{"==", token.ComparisonOp},
		{"<", token.ComparisonOp},
		{">=", token.ComparisonOp},
		{"<=>", token.ComparisonOp},
		{"++", token.IncDecOp},
		{"--", token.IncDecOp},
		{",", token.ExtendedOp},
		{"(", token.ExtendedOp},
		{"]", token.ExtendedOp},
		{"?", token.ExtendedOp},
		{"{", token.Bracket},
		{"}", token.Bracket},
		{"...", token.Ellipsis},
		{"::", token.Other},
		{"->", token.Other},
		{";", token.Other},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			list := makeList(t, tt.str)
			if got := list.Front().Kind(); got != tt.kind {
				t.Errorf("kind of %q: got %s, want %s", tt.str, got, tt.kind)
			}
		})
	}
}

func TestClassificationCDialect(t *testing.T) {
	list := token.NewList(dialect.Dialect{Std: dialect.C99})
	list.AddFile("test.c")
	tok := list.Append("class", 0, 1, 1)
	if tok.Kind() != token.Name {
		t.Errorf("class in C99: got %s, want name", tok.Kind())
	}
	tok = list.Append("restrict", 0, 1, 7)
	if tok.Kind() != token.Keyword {
		t.Errorf("restrict in C99: got %s, want keyword", tok.Kind())
	}
}

func TestSetStrReclassifies(t *testing.T) {
	list := makeList(t, "foo")
	tok := list.Front()
	tok.SetStr("123")
	if !tok.IsNumber() {
		t.Fatalf("after SetStr(123): kind %s", tok.Kind())
	}
	tok.SetStr("+")
	if !tok.IsArithmeticalOp() {
		t.Fatalf("after SetStr(+): kind %s", tok.Kind())
	}
	tok.SetStr("")
	if tok.Kind() != token.None {
		t.Fatalf("after SetStr(\"\"): kind %s", tok.Kind())
	}
}

func TestVarIDClassification(t *testing.T) {
	list := makeList(t, "x")
	tok := list.Front()
	tok.SetVarID(7)
	if tok.Kind() != token.Variable {
		t.Fatalf("varID 7: kind %s, want variable", tok.Kind())
	}
	tok.SetVarID(0)
	if tok.Kind() != token.Name {
		t.Fatalf("varID cleared: kind %s, want name", tok.Kind())
	}
}

func TestVarIDOnNonNameThrows(t *testing.T) {
	list := makeList(t, "+")
	expectInternalError(t, diag.InternalVarIDNonVar, func() {
		list.Front().SetVarID(3)
	})
}

func TestVarIDOnBoolLiteralThrows(t *testing.T) {
	list := makeList(t, "true")
	expectInternalError(t, diag.InternalBoolLiteralVar, func() {
		list.Front().SetVarID(3)
	})
}

func TestAngleBracketLinkReclassifies(t *testing.T) {
	list := makeList(t, "foo < int > x")
	lt, gt := tokAt(t, list, 1), tokAt(t, list, 3)
	if lt.Kind() != token.ComparisonOp || gt.Kind() != token.ComparisonOp {
		t.Fatalf("unlinked < >: kinds %s %s", lt.Kind(), gt.Kind())
	}
	token.CreateMutualLinks(lt, gt)
	if lt.Kind() != token.Bracket || gt.Kind() != token.Bracket {
		t.Fatalf("linked < >: kinds %s %s", lt.Kind(), gt.Kind())
	}
	lt.SetLink(nil)
	if lt.Kind() != token.ComparisonOp {
		t.Fatalf("unlinked again: kind %s", lt.Kind())
	}
}

func TestSetFunctionReclassifies(t *testing.T) {
	list := makeList(t, "f")
	tok := list.Front()
	tok.SetFunction(&symbols.Function{Name: "f"})
	if tok.Kind() != token.Function {
		t.Fatalf("with function: kind %s", tok.Kind())
	}
	tok.SetFunction(&symbols.Function{Name: "f", Lambda: true})
	if tok.Kind() != token.Lambda {
		t.Fatalf("with lambda: kind %s", tok.Kind())
	}
	tok.SetFunction(nil)
	if tok.Kind() != token.Name {
		t.Fatalf("detached: kind %s", tok.Kind())
	}
}

func TestSetTypeReclassifies(t *testing.T) {
	list := makeList(t, "MyType")
	tok := list.Front()
	tok.SetType(&symbols.Type{Name: "MyType", Enum: true})
	if tok.Kind() != token.Type {
		t.Fatalf("with type: kind %s", tok.Kind())
	}
	if !tok.IsEnumType() {
		t.Fatal("enum flag not set")
	}
	tok.SetType(nil)
	if tok.Kind() != token.Name {
		t.Fatalf("detached: kind %s", tok.Kind())
	}
}

func TestKindFamilies(t *testing.T) {
	list := makeList(t, "foo if 1 \"s\" 'c' true + == && & = ++ , <=>")
	checks := []struct {
		n    int
		pred func(*token.Token) bool
		name string
		want bool
	}{
		{0, (*token.Token).IsName, "IsName(foo)", true},
		{1, (*token.Token).IsName, "IsName(if)", true},
		{1, (*token.Token).IsControlFlowKeyword, "IsControlFlowKeyword(if)", true},
		{2, (*token.Token).IsNumber, "IsNumber(1)", true},
		{2, (*token.Token).IsLiteral, "IsLiteral(1)", true},
		{3, (*token.Token).IsLiteral, "IsLiteral(str)", true},
		{4, (*token.Token).IsLiteral, "IsLiteral(char)", true},
		{5, (*token.Token).IsBoolean, "IsBoolean(true)", true},
		{5, (*token.Token).IsName, "IsName(true)", true},
		{6, (*token.Token).IsArithmeticalOp, "IsArithmeticalOp(+)", true},
		{6, (*token.Token).IsConstOp, "IsConstOp(+)", true},
		{7, (*token.Token).IsComparisonOp, "IsComparisonOp(==)", true},
		{8, (*token.Token).IsConstOp, "IsConstOp(&&)", true},
		{9, (*token.Token).IsConstOp, "IsConstOp(&)", true},
		{10, (*token.Token).IsAssignmentOp, "IsAssignmentOp(=)", true},
		{10, (*token.Token).IsOp, "IsOp(=)", true},
		{10, (*token.Token).IsConstOp, "IsConstOp(=)", false},
		{11, (*token.Token).IsIncDecOp, "IsIncDecOp(++)", true},
		{11, (*token.Token).IsOp, "IsOp(++)", true},
		{12, (*token.Token).IsExtendedOp, "IsExtendedOp(,)", true},
		{12, (*token.Token).IsOp, "IsOp(,)", false},
		{13, (*token.Token).IsComparisonOp, "IsComparisonOp(<=>)", true},
	}
	for _, c := range checks {
		if got := c.pred(tokAt(t, list, c.n)); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsUpperCaseName(t *testing.T) {
	tests := []struct {
		str  string
		want bool
	}{
		{"FOO", true},
		{"FOO_BAR", true},
		{"F1", true},
		{"Foo", false},
		{"foo", false},
		{"123", false},
	}
	for _, tt := range tests {
		list := makeList(t, tt.str)
		if got := list.Front().IsUpperCaseName(); got != tt.want {
			t.Errorf("IsUpperCaseName(%q): got %v, want %v", tt.str, got, tt.want)
		}
	}
}

func TestTokAtAndStrAt(t *testing.T) {
	list := makeList(t, "a b c d")
	b := tokAt(t, list, 1)
	if b.StrAt(1) != "c" || b.StrAt(-1) != "a" || b.StrAt(0) != "b" {
		t.Fatalf("StrAt: got %q %q %q", b.StrAt(1), b.StrAt(-1), b.StrAt(0))
	}
	if b.StrAt(10) != "" || b.StrAt(-10) != "" {
		t.Fatal("StrAt past the stream must return empty")
	}
	if b.TokAt(2) != list.Back() {
		t.Fatal("TokAt(2) should reach the back")
	}
	if b.TokAt(5) != nil {
		t.Fatal("TokAt past the stream must return nil")
	}
}

func TestUntil(t *testing.T) {
	list := makeList(t, "a b c d")
	end := tokAt(t, list, 3)
	var got []string
	for tok := range list.Front().Until(end) {
		got = append(got, tok.Str())
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("Until: got %v", got)
	}
	n := 0
	for range list.Front().Until(nil) {
		n++
	}
	if n != 4 {
		t.Fatalf("Until(nil): got %d tokens", n)
	}
}

func TestStrValue(t *testing.T) {
	tests := []struct {
		str  string
		want string
	}{
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"t\tr\r"`, "t\tr\r"},
		{`"esc\"q"`, `esc"q`},
		{`"cut\0off"`, "cut"},
		{`L"wide"`, "wide"},
	}
	for _, tt := range tests {
		list := makeList(t, tt.str)
		if got := list.Front().StrValue(); got != tt.want {
			t.Errorf("StrValue(%s): got %q, want %q", tt.str, got, tt.want)
		}
	}
}

func TestStrLengthAndArraySize(t *testing.T) {
	tests := []struct {
		str    string
		length int
		size   int
	}{
		{`"hello"`, 5, 6},
		{`"a\nb"`, 3, 4},
		{`""`, 0, 1},
		{`"cut\0off"`, 3, 8},
	}
	for _, tt := range tests {
		list := makeList(t, tt.str)
		if got := token.GetStrLength(list.Front()); got != tt.length {
			t.Errorf("GetStrLength(%s): got %d, want %d", tt.str, got, tt.length)
		}
		if got := token.GetStrArraySize(list.Front()); got != tt.size {
			t.Errorf("GetStrArraySize(%s): got %d, want %d", tt.str, got, tt.size)
		}
	}
}

func TestConcatStr(t *testing.T) {
	list := makeList(t, `"foo"`)
	tok := list.Front()
	tok.ConcatStr(`"bar"`)
	if tok.Str() != `"foobar"` {
		t.Fatalf("ConcatStr: got %s", tok.Str())
	}
	if !tok.IsLiteral() {
		t.Fatal("concatenated literal lost its kind")
	}

	// a prefixed second part moves its prefix to the front
	list = makeList(t, `"foo"`)
	tok = list.Front()
	tok.ConcatStr(`L"bar"`)
	if tok.Str() != `L"foobar"` {
		t.Fatalf("ConcatStr with prefix: got %s", tok.Str())
	}
}

func TestExprIDUniqueness(t *testing.T) {
	list := makeList(t, "a b")
	a, b := tokAt(t, list, 0), tokAt(t, list, 1)
	a.SetExprID(5)
	if a.IsUniqueExprID() {
		t.Fatal("plain expr id reported unique")
	}
	b.SetUniqueExprID(5)
	if !b.IsUniqueExprID() {
		t.Fatal("unique expr id not reported")
	}
	b.SetExprID(5)
	if b.IsUniqueExprID() {
		t.Fatal("SetExprID must clear the uniqueness sentinel")
	}
}

func TestPos(t *testing.T) {
	list := makeList(t, "a b")
	pos := tokAt(t, list, 1).Pos()
	if pos.File != "test.cpp" || pos.Line != 1 || pos.Column != 3 {
		t.Fatalf("Pos: got %+v", pos)
	}
}
