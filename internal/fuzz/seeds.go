package fuzztests

import "testing"

// corpusSeeds are small but representative C/C++ fragments covering the
// token classes the lexer distinguishes.
var corpusSeeds = []string{
	"int main() { return 0; }",
	"template <class T> struct S { T t; };",
	"a = b >> 2; x < y > z;",
	"const char *s = \"hi\\n\"; char c = '\\x41';",
	"auto s = R\"(raw \" text)\";",
	"x <<= 1; y >>= 2; p ->* q; a <=> b;",
	"double d = 1'000'000.5e-3; unsigned u = 0xFF'FFu;",
	"#define X(a, b) ((a) + (b))\n",
	"void f() { for (int i = 0; i < 10; ++i) {} }",
	"struct A { virtual ~A(); };\nstruct B : A {};",
	"// line comment\n/* block */ int x;",
	"wchar_t w = L'x'; auto u = u8\"text\";",
	"std::vector<std::pair<int, int>> v;",
	"int \xc3\xa4 = 1;",
	"\"unterminated",
	"/* unterminated",
	"'",
	"} ) ] (",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range corpusSeeds {
		f.Add([]byte(seed))
	}
}
