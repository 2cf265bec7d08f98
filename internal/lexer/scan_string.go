package lexer

import (
	"strings"

	"github.com/heshpdx/cppcheck/internal/diag"
)

// scanStringWithPrefix scans a prefixed literal; the cursor stands at the
// start of the prefix.
func (lx *Lexer) scanStringWithPrefix(prefix string) {
	m := lx.cursor.Mark()
	for range prefix {
		lx.cursor.Bump()
	}
	if strings.HasSuffix(prefix, "R") {
		lx.scanRawString(m)
		return
	}
	lx.scanStringTail(m)
}

func (lx *Lexer) scanCharWithPrefix(prefix string) {
	m := lx.cursor.Mark()
	for range prefix {
		lx.cursor.Bump()
	}
	lx.scanCharTail(m)
}

// scanString scans an unprefixed string literal.
func (lx *Lexer) scanString() {
	lx.scanStringTail(lx.cursor.Mark())
}

func (lx *Lexer) scanStringTail(m Mark) {
	lx.cursor.Bump() // "
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
		if b == '"' {
			lx.append(lx.cursor.TextFrom(m), m)
			return
		}
	}
	lx.report(diag.LexUnterminatedString, m, "unterminated string literal")
	lx.append(lx.cursor.TextFrom(m)+`"`, m)
}

// scanRawString scans R"delim( ... )delim" with the prefix already
// consumed up to R.
func (lx *Lexer) scanRawString(m Mark) {
	lx.cursor.Bump() // "
	var delim strings.Builder
	for !lx.cursor.EOF() && lx.cursor.Peek() != '(' {
		delim.WriteByte(lx.cursor.Bump())
	}
	if lx.cursor.EOF() {
		lx.report(diag.LexUnterminatedString, m, "unterminated raw string literal")
		lx.append(lx.cursor.TextFrom(m)+`"`, m)
		return
	}
	lx.cursor.Bump() // (
	closer := ")" + delim.String() + `"`
	contentStart := lx.cursor.Off
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == ')' {
			rest := lx.file.Content[lx.cursor.Off:]
			if len(rest) >= len(closer) && string(rest[:len(closer)]) == closer {
				content := string(lx.file.Content[contentStart:lx.cursor.Off])
				for range closer {
					lx.cursor.Bump()
				}
				// raw literals degrade to plain literals with escapes kept
				lx.append(`"`+escapeRawContent(content)+`"`, m)
				return
			}
		}
		lx.cursor.Bump()
	}
	lx.report(diag.LexUnterminatedString, m, "unterminated raw string literal")
	lx.append(`"`+escapeRawContent(string(lx.file.Content[contentStart:lx.cursor.Off]))+`"`, m)
}

func escapeRawContent(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// scanChar scans an unprefixed character literal.
func (lx *Lexer) scanChar() {
	lx.scanCharTail(lx.cursor.Mark())
}

func (lx *Lexer) scanCharTail(m Mark) {
	lx.cursor.Bump() // '
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
		if b == '\'' {
			lx.append(lx.cursor.TextFrom(m), m)
			return
		}
	}
	lx.report(diag.LexUnterminatedChar, m, "unterminated character literal")
	lx.append(lx.cursor.TextFrom(m)+"'", m)
}
