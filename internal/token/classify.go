package token

import (
	"strings"

	"github.com/heshpdx/cppcheck/internal/diag"
)

var controlFlowKeywords = map[string]struct{}{
	"goto":     {},
	"do":       {},
	"if":       {},
	"else":     {},
	"for":      {},
	"while":    {},
	"switch":   {},
	"case":     {},
	"break":    {},
	"continue": {},
	"return":   {},
}

// Standard type names recognized independently of the keyword table.
var stdTypes = map[string]struct{}{
	"bool":     {},
	"_Bool":    {},
	"char":     {},
	"double":   {},
	"float":    {},
	"int":      {},
	"long":     {},
	"short":    {},
	"size_t":   {},
	"void":     {},
	"wchar_t":  {},
	"signed":   {},
	"unsigned": {},
}

// IsStandardTypeName reports whether str spells a built-in type name.
func IsStandardTypeName(str string) bool {
	_, ok := stdTypes[str]
	return ok
}

// updateProperties derives kind and the classification flags from the
// token's text, varID, and bracket link. The priority order is load
// bearing: checkers depend on it, so keep it exactly as is.
func (t *Token) updateProperties() {
	t.setFlag(FlagControlFlowKeyword, false)
	t.setFlag(FlagStandardType, false)

	switch {
	case t.str == "":
		t.setKind(None)

	case t.str == "true" || t.str == "false":
		if t.varID != 0 {
			if t.isCPP() {
				diag.Throw(t.Pos(), diag.InternalBoolLiteralVar, "varID set for bool literal")
			}
			t.setKind(Variable)
		} else {
			t.setKind(Boolean)
		}

	case isStringLiteral(t.str):
		t.setKind(String)
		t.setFlag(FlagLong, isPrefixStringCharLiteral(t.str, '"', "L"))

	case isCharLiteral(t.str):
		t.setKind(Char)
		t.setFlag(FlagLong, isPrefixStringCharLiteral(t.str, '\'', "L"))

	case isNameStart(t.str[0]):
		switch {
		case t.varID != 0:
			t.setKind(Variable)
		case t.isKeyword(t.str):
			t.setKind(Keyword)
			t.upgradeStandardType()
			if t.kind != Type { // a type name is never a control-flow keyword
				_, cf := controlFlowKeywords[t.str]
				t.setFlag(FlagControlFlowKeyword, cf)
			}
		case t.str == "asm":
			t.setKind(Keyword)
		default:
			t.setKind(Name)
			// some standard types are not in the keyword table
			t.upgradeStandardType()
		}

	case isNumberLike(t.str):
		if (isInt(t.str) || isFloat(t.str)) && !strings.ContainsRune(t.str, '_') {
			t.setKind(Number)
		} else {
			t.setKind(Name) // assume user-defined literal
		}

	case t.str == "=" || t.str == "<<=" || t.str == ">>=" ||
		(len(t.str) == 2 && t.str[1] == '=' && strings.ContainsRune("+-*/%&^|", rune(t.str[0]))):
		t.setKind(AssignmentOp)

	case len(t.str) == 1 && strings.ContainsRune(",[]()?:", rune(t.str[0])):
		t.setKind(ExtendedOp)

	case t.str == "<<" || t.str == ">>" ||
		(len(t.str) == 1 && strings.ContainsRune("+-*/%", rune(t.str[0]))):
		t.setKind(ArithmeticalOp)

	case len(t.str) == 1 && strings.ContainsRune("&|^~", rune(t.str[0])):
		t.setKind(BitOp)

	case t.str == "&&" || t.str == "||" || t.str == "!":
		t.setKind(LogicalOp)

	case t.link == nil && (t.str == "==" || t.str == "!=" || t.str == "<" ||
		t.str == "<=" || t.str == ">" || t.str == ">="):
		t.setKind(ComparisonOp)

	case t.str == "<=>":
		t.setKind(ComparisonOp)

	case t.str == "++" || t.str == "--":
		t.setKind(IncDecOp)

	case len(t.str) == 1 && (t.str[0] == '{' || t.str[0] == '}' ||
		(t.link != nil && (t.str[0] == '<' || t.str[0] == '>'))):
		t.setKind(Bracket)

	case t.str == "...":
		t.setKind(Ellipsis)

	default:
		t.setKind(Other)
	}

	if t.varID != 0 && t.kind != Variable {
		diag.Throw(t.Pos(), diag.InternalVarIDNonVar, "varID set for non-variable token %q", t.str)
	}
}

// upgradeStandardType promotes 3-7 character standard type spellings to
// kind Type with the standard-type flag.
func (t *Token) upgradeStandardType() {
	if len(t.str) < 3 || len(t.str) > 7 {
		return
	}
	if IsStandardTypeName(t.str) {
		t.setFlag(FlagStandardType, true)
		t.setKind(Type)
	}
}

func (t *Token) isKeyword(s string) bool {
	return t.list != nil && t.list.dialect.IsKeyword(s)
}

func (t *Token) isCPP() bool {
	return t.list != nil && t.list.dialect.IsCPP()
}

func isNameStart(c byte) bool {
	return c == '_' || c == '$' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

var literalPrefixes = []string{"", "u8", "u", "U", "L", "R", "u8R", "uR", "UR", "LR"}

// isStringLiteral reports whether str is a complete (optionally prefixed)
// string literal.
func isStringLiteral(str string) bool {
	for _, p := range literalPrefixes {
		if len(str) > len(p)+1 && strings.HasPrefix(str, p) &&
			str[len(p)] == '"' && str[len(str)-1] == '"' {
			return true
		}
	}
	return false
}

// isCharLiteral reports whether str is a complete (optionally prefixed)
// character literal.
func isCharLiteral(str string) bool {
	for _, p := range literalPrefixes {
		if len(str) > len(p)+1 && strings.HasPrefix(str, p) &&
			str[len(p)] == '\'' && str[len(str)-1] == '\'' {
			return true
		}
	}
	return false
}

// isPrefixStringCharLiteral reports whether str is a literal quoted by q
// and carrying exactly the given prefix.
func isPrefixStringCharLiteral(str string, q byte, prefix string) bool {
	if !strings.HasPrefix(str, prefix) {
		return false
	}
	rest := str[len(prefix):]
	return len(rest) > 1 && rest[0] == q && rest[len(rest)-1] == q
}

// getStringLiteral strips the quotes and any prefix from a string or char
// literal.
func getStringLiteral(str string) string {
	for _, q := range []byte{'"', '\''} {
		for _, p := range literalPrefixes {
			if isPrefixStringCharLiteral(str, q, p) {
				return str[len(p)+1 : len(str)-1]
			}
		}
	}
	return str
}

// isNumberLike mirrors the preprocessor's idea of a number-shaped token:
// a leading digit, or a dot followed by a digit.
func isNumberLike(str string) bool {
	if str == "" {
		return false
	}
	if '0' <= str[0] && str[0] <= '9' {
		return true
	}
	return len(str) > 1 && str[0] == '.' && '0' <= str[1] && str[1] <= '9'
}
