// Package testkit checks structural invariants of token streams. Tests and
// fuzz harnesses run these after mutating a list.
package testkit

import (
	"fmt"

	"github.com/heshpdx/cppcheck/internal/token"
)

// CheckStreamInvariants runs a minimal set of structural invariants on a
// token list:
// 1) the chain is consistent: front has no previous, back has no next, and
//    every neighbor pair points at each other
// 2) stream indexes strictly increase front to back
// 3) bracket links are symmetric and pair matching bracket characters
// 4) AST edges are consistent: each operand's parent is the operator that
//    holds it
func CheckStreamInvariants(list *token.List) error {
	if list == nil {
		return fmt.Errorf("nil list")
	}
	front, back := list.Front(), list.Back()
	if front == nil {
		if back != nil {
			return fmt.Errorf("nil front with non-nil back %q", back.Str())
		}
		return nil
	}
	if front.Previous() != nil {
		return fmt.Errorf("front %q has a previous token", front.Str())
	}
	if back == nil {
		return fmt.Errorf("non-nil front %q with nil back", front.Str())
	}
	if back.Next() != nil {
		return fmt.Errorf("back %q has a next token", back.Str())
	}

	var last *token.Token
	for tok := front; tok != nil; tok = tok.Next() {
		if tok.Next() != nil && tok.Next().Previous() != tok {
			return fmt.Errorf("broken chain at %q: next's previous is not this token", tok.Str())
		}
		if last != nil && tok.Index() <= last.Index() {
			return fmt.Errorf("index not increasing at %q: %d after %d", tok.Str(), tok.Index(), last.Index())
		}
		if err := checkLink(tok); err != nil {
			return err
		}
		if err := checkAstEdges(tok); err != nil {
			return err
		}
		last = tok
	}
	if last != back {
		return fmt.Errorf("chain ends at %q, back is %q", last.Str(), back.Str())
	}
	return nil
}

func checkLink(tok *token.Token) error {
	link := tok.Link()
	if link == nil {
		return nil
	}
	if link.Link() != tok {
		return fmt.Errorf("asymmetric link at %q", tok.Str())
	}
	open, closing := tok.Str(), link.Str()
	if open > closing {
		open, closing = closing, open
	}
	switch open + closing {
	case "()", "[]", "{}", "<>":
		return nil
	}
	return fmt.Errorf("link pairs %q with %q", tok.Str(), link.Str())
}

func checkAstEdges(tok *token.Token) error {
	for _, operand := range []*token.Token{tok.AstOperand1(), tok.AstOperand2()} {
		if operand == nil {
			continue
		}
		if operand.AstParent() != tok {
			return fmt.Errorf("operand %q of %q has parent %v", operand.Str(), tok.Str(), parentStr(operand))
		}
		if operand == tok {
			return fmt.Errorf("token %q is its own operand", tok.Str())
		}
	}
	return nil
}

func parentStr(tok *token.Token) string {
	if tok.AstParent() == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", tok.AstParent().Str())
}
