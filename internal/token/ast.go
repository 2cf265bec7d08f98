package token

import (
	"fmt"
	"strings"

	"github.com/heshpdx/cppcheck/internal/diag"
)

// Binary expression tree overlaid on the stream. Every node is a stream
// token; operands and parent are extra edges, the stream order is never
// disturbed.

func (t *Token) AstOperand1() *Token { return t.astOperand1 }
func (t *Token) AstOperand2() *Token { return t.astOperand2 }
func (t *Token) AstParent() *Token   { return t.astParent }

// AstTop returns the root of the expression tree t belongs to.
func (t *Token) AstTop() *Token {
	top := t
	for top.astParent != nil {
		top = top.astParent
	}
	return top
}

// setAstParent attaches t under parent, detaching it from its old parent
// first. Introducing a cycle is a usage error.
func (t *Token) setAstParent(parent *Token) {
	for p := parent; p != nil; p = p.astParent {
		if p == t {
			diag.Throw(t.Pos(), diag.InternalAstCycle, "cyclic dependency while building expression tree at %q", t.str)
		}
	}
	// clear the old edge so no node is referenced twice
	if old := t.astParent; old != nil {
		if old.astOperand1 == t {
			old.astOperand1 = nil
		}
		if old.astOperand2 == t {
			old.astOperand2 = nil
		}
	}
	t.astParent = parent
}

// SetAstOperand1 makes tok (or the root of its subtree) the first operand
// of t.
func (t *Token) SetAstOperand1(tok *Token) {
	if t.astOperand1 != nil {
		t.astOperand1.setAstParent(nil)
	}
	if tok != nil {
		tok = tok.AstTop()
		tok.setAstParent(t)
	}
	t.astOperand1 = tok
}

// SetAstOperand2 makes tok (or the root of its subtree) the second operand
// of t.
func (t *Token) SetAstOperand2(tok *Token) {
	if t.astOperand2 != nil {
		t.astOperand2.setAstParent(nil)
	}
	if tok != nil {
		tok = tok.AstTop()
		tok.setAstParent(t)
	}
	t.astOperand2 = tok
}

// ClearAst drops all expression-tree edges of t.
func (t *Token) ClearAst() {
	t.astOperand1 = nil
	t.astOperand2 = nil
	t.astParent = nil
}

// Precedes reports whether tok1 comes before tok2 in the stream. Both
// tokens must carry assigned stream indexes.
func Precedes(tok1, tok2 *Token) bool {
	if tok1 == nil || tok2 == nil {
		return false
	}
	return tok1.index < tok2.index
}

// Succeeds reports whether tok1 comes after tok2 in the stream.
func Succeeds(tok1, tok2 *Token) bool {
	if tok1 == nil || tok2 == nil {
		return false
	}
	return tok1.index > tok2.index
}

func goToLeftParenthesis(start, end *Token) *Token {
	// move start to lpar in such expression: '(*it).x'
	par := 0
	for tok := start; tok != nil && tok != end; tok = tok.next {
		if tok.str == "(" {
			par++
		} else if tok.str == ")" {
			if par == 0 {
				start = tok.link
			} else {
				par--
			}
		}
	}
	return start
}

func goToRightParenthesis(start, end *Token) *Token {
	// move end to rpar in such expression: '2>(x+1)'
	par := 0
	for tok := end; tok != nil && tok != start; tok = tok.previous {
		if tok.str == ")" {
			par++
		} else if tok.str == "(" {
			if par == 0 {
				end = tok.link
			} else {
				par--
			}
		}
	}
	return end
}

// FindExpressionStartEnd returns the first and last stream tokens of the
// expression rooted at t. A tree whose operand edges escape the stream
// range of the root is a usage error.
func (t *Token) FindExpressionStartEnd() (*Token, *Token) {
	top := t

	start := top
	for start.astOperand1 != nil && Precedes(start.astOperand1, start) {
		start = start.astOperand1
	}

	end := top
	for end.astOperand1 != nil && (end.astOperand2 != nil || end.IsUnaryPreOp()) {
		if end.str == "[" {
			if lambdaEnd := FindLambdaEndScope(end); lambdaEnd != nil {
				end = lambdaEnd
				break
			}
		}
		if Match(end, "(|[|{") &&
			!(Match(end, "( ::| %type%") && end.astOperand2 == nil) {
			end = end.link
			break
		}
		if end.astOperand2 != nil {
			end = end.astOperand2
		} else {
			end = end.astOperand1
		}
	}

	start = goToLeftParenthesis(start, end)
	end = goToRightParenthesis(start, end)
	if SimpleMatch(end, "{") {
		end = end.link
	}

	if Precedes(top, start) {
		diag.Throw(start.Pos(), diag.InternalExprBoundary, "cannot find start of expression")
	}
	if Succeeds(top, end) {
		diag.Throw(end.Pos(), diag.InternalExprBoundary, "cannot find end of expression")
	}
	return start, end
}

// IsCalculation reports whether t computes a value, as opposed to a
// declaration-like use of * or &.
func (t *Token) IsCalculation() bool {
	if !Match(t, "%cop%|++|--") {
		return false
	}

	if Match(t, "*|&") {
		// dereference or address-of?
		if t.astOperand2 == nil {
			return false
		}
		if t.astOperand2.str == "[" {
			return false
		}

		// type specification?
		operands := []*Token{t}
		for len(operands) > 0 {
			op := operands[len(operands)-1]
			operands = operands[:len(operands)-1]
			if op.IsNumber() || op.varID > 0 {
				return true
			}
			if op.astOperand1 != nil {
				operands = append(operands, op.astOperand1)
			}
			if op.astOperand2 != nil {
				operands = append(operands, op.astOperand2)
			} else if Match(op, "*|&") {
				return false
			}
		}
		return false
	}

	return true
}

// IsUnaryPreOp reports whether t is a prefix unary operator. For ++ and --
// the operand side is decided by walking the nearby stream; past ten
// tokens the answer is a guess.
func (t *Token) IsUnaryPreOp() bool {
	if t.astOperand1 == nil || t.astOperand2 != nil {
		return false
	}
	if t.kind != IncDecOp {
		return true
	}
	tokBefore := t.previous
	tokAfter := t.next
	for distance := 1; distance < 10 && tokBefore != nil; distance++ {
		if tokBefore == t.astOperand1 {
			return false
		}
		if tokAfter == t.astOperand1 {
			return true
		}
		tokBefore = tokBefore.previous
		if tokAfter != nil {
			tokAfter = tokAfter.previous
		}
	}
	return false
}

// ExpressionString renders the source spelling of the expression rooted
// at t.
func (t *Token) ExpressionString() string {
	start, end := t.FindExpressionStartEnd()
	return stringFromTokenRange(start, end)
}

func stringFromTokenRange(start, end *Token) string {
	var sb strings.Builder
	if end != nil {
		end = end.next
	}
	for tok := start; tok != nil && tok != end; tok = tok.next {
		if tok.IsUnsigned() {
			sb.WriteString("unsigned ")
		}
		if tok.IsLong() && !tok.IsLiteral() {
			sb.WriteString("long ")
		}
		switch {
		case tok.kind == String:
			for i := 0; i < len(tok.str); i++ {
				c := tok.str[i]
				switch {
				case c == '\n':
					sb.WriteString("\\n")
				case c == '\r':
					sb.WriteString("\\r")
				case c == '\t':
					sb.WriteString("\\t")
				case c >= ' ' && c <= 126:
					sb.WriteByte(c)
				default:
					fmt.Fprintf(&sb, "\\x%02x", c)
				}
			}
		case tok.originalName == "" || tok.IsUnsigned() || tok.IsLong():
			sb.WriteString(tok.str)
		default:
			sb.WriteString(tok.originalName)
		}
		if Match(tok, "%name%|%num% %name%|%num%") {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
