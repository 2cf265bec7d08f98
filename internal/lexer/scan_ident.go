package lexer

import (
	"golang.org/x/text/unicode/norm"
)

func isIdentStartByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool {
	return '0' <= b && b <= '9'
}

// scanIdentOrLiteralPrefix scans an identifier. When the identifier is a
// literal encoding prefix glued to a quote (u8"...", L'x', R"(..)"), the
// whole literal becomes one token.
func (lx *Lexer) scanIdentOrLiteralPrefix() {
	m := lx.cursor.Mark()
	ascii := true
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			ascii = false
			lx.cursor.Bump()
			continue
		}
		break
	}
	text := lx.cursor.TextFrom(m)
	if !ascii {
		// identifiers compare after NFC normalization
		text = norm.NFC.String(text)
	}

	if isLiteralEncodingPrefix(text) {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Reset(m)
			lx.scanStringWithPrefix(text)
			return
		case '\'':
			lx.cursor.Reset(m)
			lx.scanCharWithPrefix(text)
			return
		}
	}

	lx.append(text, m)
}

// isLiteralEncodingPrefix reports the string/char literal prefixes the
// language defines.
func isLiteralEncodingPrefix(s string) bool {
	switch s {
	case "u8", "u", "U", "L", "R", "u8R", "uR", "UR", "LR":
		return true
	}
	return false
}
