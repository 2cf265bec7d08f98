package lexer

import (
	"fmt"

	"github.com/heshpdx/cppcheck/internal/diag"
	"github.com/heshpdx/cppcheck/internal/dialect"
	"github.com/heshpdx/cppcheck/internal/source"
	"github.com/heshpdx/cppcheck/internal/token"
)

const utf8RuneSelf = 0x80

type Lexer struct {
	file      *source.File
	cursor    Cursor
	dialect   dialect.Dialect
	bag       *diag.Bag
	list      *token.List
	fileIndex int
}

// Tokenize scans the whole file into a fresh token stream. Lexical
// findings go into bag; the returned list is usable regardless.
func Tokenize(file *source.File, d dialect.Dialect, bag *diag.Bag) *token.List {
	list := token.NewList(d)
	lx := &Lexer{
		file:      file,
		cursor:    NewCursor(file),
		dialect:   d,
		bag:       bag,
		list:      list,
		fileIndex: list.AddFile(file.Path),
	}
	lx.run()
	return list
}

func (lx *Lexer) run() {
	for {
		lx.skipTrivia()
		if lx.cursor.EOF() {
			return
		}
		ch := lx.cursor.Peek()
		switch {
		case isIdentStartByte(ch) || ch >= utf8RuneSelf:
			lx.scanIdentOrLiteralPrefix()
		case isDec(ch):
			lx.scanNumber()
		case ch == '.' && isDec(lx.cursor.PeekAt(1)):
			lx.scanNumber()
		case ch == '"':
			lx.scanString()
		case ch == '\'':
			lx.scanChar()
		default:
			lx.scanOperatorOrPunct()
		}
	}
}

// skipTrivia consumes whitespace, line splices, and both comment forms.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			lx.cursor.Bump()
		case '\\':
			// line splice
			if lx.cursor.PeekAt(1) == '\n' || (lx.cursor.PeekAt(1) == '\r' && lx.cursor.PeekAt(2) == '\n') {
				lx.cursor.Bump()
				lx.cursor.Eat('\r')
				lx.cursor.Eat('\n')
				continue
			}
			return
		case '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				lx.skipBlockComment()
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // /
	lx.cursor.Bump() // *
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return
		}
		lx.cursor.Bump()
	}
	lx.report(diag.LexUnterminatedComment, start, "unterminated block comment")
}

// append adds a token whose text started at mark.
func (lx *Lexer) append(text string, m Mark) *token.Token {
	return lx.list.Append(text, lx.fileIndex, m.Line, m.Col)
}

func (lx *Lexer) report(code diag.Code, m Mark, format string, args ...any) {
	if lx.bag == nil {
		return
	}
	lx.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Primary: diag.Pos{
			File:   lx.file.Path,
			Line:   m.Line,
			Column: m.Col,
		},
	})
}
