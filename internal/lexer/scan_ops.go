package lexer

import (
	"github.com/heshpdx/cppcheck/internal/diag"
)

// operator tables, longest first; lookup tries 4-, 3-, 2-, then 1-byte
// spellings.
var ops4 = map[string]bool{
	"%:%:": true,
}

var ops3 = map[string]bool{
	"<<=": true, ">>=": true, "...": true, "->*": true, "<=>": true,
}

var ops2 = map[string]bool{
	"<<": true, ">>": true, "<=": true, ">=": true, "==": true, "!=": true,
	"&&": true, "||": true, "++": true, "--": true, "+=": true, "-=": true,
	"*=": true, "/=": true, "%=": true, "&=": true, "|=": true, "^=": true,
	"->": true, "::": true, ".*": true,
}

const ops1 = "+-*/%&|^~!<>=?:;,.(){}[]#"

// scanOperatorOrPunct emits the longest operator spelling at the cursor.
// Bytes no operator starts with are reported and skipped.
func (lx *Lexer) scanOperatorOrPunct() {
	m := lx.cursor.Mark()
	rest := lx.file.Content[lx.cursor.Off:]

	for _, n := range []int{4, 3, 2} {
		if len(rest) < n {
			continue
		}
		s := string(rest[:n])
		ok := false
		switch n {
		case 4:
			ok = ops4[s]
		case 3:
			ok = ops3[s]
		case 2:
			ok = ops2[s]
		}
		if ok {
			for i := 0; i < n; i++ {
				lx.cursor.Bump()
			}
			lx.append(s, m)
			return
		}
	}

	b := lx.cursor.Bump()
	for i := 0; i < len(ops1); i++ {
		if ops1[i] == b {
			lx.append(string(b), m)
			return
		}
	}
	lx.report(diag.LexUnknownChar, m, "unexpected character %q", string(b))
}
