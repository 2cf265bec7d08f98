package token

import (
	"iter"
	"strings"

	"github.com/heshpdx/cppcheck/internal/diag"
	"github.com/heshpdx/cppcheck/internal/symbols"
)

// Token is one lexical unit in the stream. Tokens are created through
// their owning List and never outlive it.
type Token struct {
	list *List

	next     *Token
	previous *Token
	link     *Token

	str   string
	kind  Kind
	flags Flags

	astOperand1 *Token
	astOperand2 *Token
	astParent   *Token

	scopeInfo *Token2Scope
	variable  *symbols.Variable
	function  *symbols.Function
	typ       *symbols.Type
	valueType *symbols.ValueType

	varID      int
	exprID     int
	uniqueExpr bool

	values []Value

	originalName string
	macroName    string

	fileIndex int
	line      int
	column    int
	index     int
	progress  int
}

// Token2Scope aliases the external scope descriptor; tokens store it as a
// weak back-reference and never own it.
type Token2Scope = symbols.ScopeInfo

// Str returns the token's spelling.
func (t *Token) Str() string {
	return t.str
}

// SetStr replaces the spelling and re-derives kind and flags.
func (t *Token) SetStr(s string) {
	t.str = s
	t.updateProperties()
}

func (t *Token) Next() *Token     { return t.next }
func (t *Token) Previous() *Token { return t.previous }

// TokAt returns the token n steps away, forward for positive n and
// backward for negative. Returns nil when the stream ends first.
func (t *Token) TokAt(n int) *Token {
	tok := t
	for n > 0 && tok != nil {
		tok = tok.next
		n--
	}
	for n < 0 && tok != nil {
		tok = tok.previous
		n++
	}
	return tok
}

// StrAt returns the spelling of the token n steps away, or "" past the
// stream end.
func (t *Token) StrAt(n int) string {
	tok := t.TokAt(n)
	if tok == nil {
		return ""
	}
	return tok.str
}

// Link returns the matching bracket token, or nil.
func (t *Token) Link() *Token { return t.link }

// SetLink installs or clears one side of a bracket link. Angle brackets
// classify differently once linked, so < and > re-derive their kind.
func (t *Token) SetLink(link *Token) {
	t.link = link
	if t.str == "<" || t.str == ">" {
		t.updateProperties()
	}
}

// LinkAt returns the bracket link of the token n steps away.
func (t *Token) LinkAt(n int) *Token {
	tok := t.TokAt(n)
	if tok == nil {
		return nil
	}
	return tok.link
}

func (t *Token) Kind() Kind { return t.kind }

func (t *Token) setKind(k Kind) { t.kind = k }

// VarID returns the external variable id, 0 when none.
func (t *Token) VarID() int { return t.varID }

// SetVarID stores the variable id minted by the resolver and re-derives
// the kind (Variable iff nonzero).
func (t *Token) SetVarID(id int) {
	t.varID = id
	t.updateProperties()
}

// ExprID returns the external expression id, 0 when none.
func (t *Token) ExprID() int { return t.exprID }

func (t *Token) SetExprID(id int) {
	t.exprID = id
	t.uniqueExpr = false
}

// SetUniqueExprID marks the expression id as "unique, unnumbered".
func (t *Token) SetUniqueExprID(id int) {
	t.exprID = id
	t.uniqueExpr = true
}

// IsUniqueExprID reports whether the expression id carries the uniqueness
// sentinel.
func (t *Token) IsUniqueExprID() bool { return t.uniqueExpr }

func (t *Token) getFlag(f Flags) bool { return t.flags&f != 0 }

func (t *Token) setFlag(f Flags, b bool) {
	if b {
		t.flags |= f
	} else {
		t.flags &^= f
	}
}

func (t *Token) IsUnsigned() bool      { return t.getFlag(FlagUnsigned) }
func (t *Token) SetUnsigned(b bool)    { t.setFlag(FlagUnsigned, b) }
func (t *Token) IsSigned() bool        { return t.getFlag(FlagSigned) }
func (t *Token) SetSigned(b bool)      { t.setFlag(FlagSigned, b) }
func (t *Token) IsLong() bool          { return t.getFlag(FlagLong) }
func (t *Token) SetLong(b bool)        { t.setFlag(FlagLong, b) }
func (t *Token) IsComplex() bool       { return t.getFlag(FlagComplex) }
func (t *Token) SetComplex(b bool)     { t.setFlag(FlagComplex, b) }
func (t *Token) IsStandardType() bool  { return t.getFlag(FlagStandardType) }
func (t *Token) IsEnumType() bool      { return t.getFlag(FlagEnumType) }
func (t *Token) IsAtAddress() bool     { return t.getFlag(FlagAtAddress) }
func (t *Token) SetAtAddress(b bool)   { t.setFlag(FlagAtAddress, b) }
func (t *Token) IsConstexpr() bool     { return t.getFlag(FlagConstexpr) }
func (t *Token) SetConstexpr(b bool)   { t.setFlag(FlagConstexpr, b) }
func (t *Token) IsExternC() bool       { return t.getFlag(FlagExternC) }
func (t *Token) SetExternC(b bool)     { t.setFlag(FlagExternC, b) }

// IsControlFlowKeyword reports whether the token is goto/do/if/else/for/
// while/switch/case/break/continue/return.
func (t *Token) IsControlFlowKeyword() bool { return t.getFlag(FlagControlFlowKeyword) }

// IsExpandedMacro reports whether the token came out of a macro expansion.
func (t *Token) IsExpandedMacro() bool { return t.macroName != "" }

// IsName reports whether the token belongs to the identifier family.
func (t *Token) IsName() bool {
	switch t.kind {
	case Name, Type, Variable, Function, Lambda, Keyword, Boolean:
		return true
	default:
		return false
	}
}

func (t *Token) IsKeyword() bool { return t.kind == Keyword }
func (t *Token) IsNumber() bool  { return t.kind == Number }
func (t *Token) IsBoolean() bool { return t.kind == Boolean }

// IsLiteral reports whether the token is a boolean, char, number, or
// string literal.
func (t *Token) IsLiteral() bool {
	switch t.kind {
	case Boolean, Char, Number, String:
		return true
	default:
		return false
	}
}

// IsArithmeticalOp reports +, -, *, /, %, <<, >>.
func (t *Token) IsArithmeticalOp() bool { return t.kind == ArithmeticalOp }

// IsConstOp reports operators whose result depends only on the operands.
func (t *Token) IsConstOp() bool {
	switch t.kind {
	case ArithmeticalOp, LogicalOp, ComparisonOp, BitOp:
		return true
	default:
		return false
	}
}

// IsOp reports any operator token including assignments and ++/--.
func (t *Token) IsOp() bool {
	return t.IsConstOp() || t.kind == AssignmentOp || t.kind == IncDecOp
}

// IsExtendedOp reports const operators plus , [ ] ( ) ? :.
func (t *Token) IsExtendedOp() bool {
	return t.IsConstOp() || t.kind == ExtendedOp
}

func (t *Token) IsAssignmentOp() bool { return t.kind == AssignmentOp }
func (t *Token) IsComparisonOp() bool { return t.kind == ComparisonOp }
func (t *Token) IsIncDecOp() bool     { return t.kind == IncDecOp }

// IsUpperCaseName reports whether the token is a name without lowercase
// letters (macro naming convention).
func (t *Token) IsUpperCaseName() bool {
	if !t.IsName() {
		return false
	}
	return !strings.ContainsFunc(t.str, func(r rune) bool {
		return 'a' <= r && r <= 'z'
	})
}

// Variable returns the attached variable descriptor, or nil.
func (t *Token) Variable() *symbols.Variable { return t.variable }

func (t *Token) SetVariable(v *symbols.Variable) { t.variable = v }

// Function returns the attached function descriptor, or nil.
func (t *Token) Function() *symbols.Function { return t.function }

// SetFunction attaches a function descriptor and reclassifies the token as
// Function or Lambda; detaching restores Name.
func (t *Token) SetFunction(f *symbols.Function) {
	t.function = f
	switch {
	case f != nil && f.IsLambda():
		t.setKind(Lambda)
	case f != nil:
		t.setKind(Function)
	case t.kind == Function || t.kind == Lambda:
		t.setKind(Name)
	}
}

// Type returns the attached user-type descriptor, or nil.
func (t *Token) Type() *symbols.Type { return t.typ }

// SetType attaches a type descriptor and reclassifies the token as Type;
// detaching restores Name.
func (t *Token) SetType(typ *symbols.Type) {
	t.typ = typ
	if typ != nil {
		t.setKind(Type)
		t.setFlag(FlagEnumType, typ.IsEnumType())
	} else if t.kind == Type {
		t.setKind(Name)
	}
}

// ValueType returns the computed value-type descriptor, or nil.
func (t *Token) ValueType() *symbols.ValueType { return t.valueType }

func (t *Token) SetValueType(vt *symbols.ValueType) { t.valueType = vt }

// ScopeInfo returns the scope-chain back-reference, or nil.
func (t *Token) ScopeInfo() *Token2Scope { return t.scopeInfo }

func (t *Token) SetScopeInfo(s *Token2Scope) { t.scopeInfo = s }

// OriginalName returns the spelling before simplification, or "".
func (t *Token) OriginalName() string { return t.originalName }

func (t *Token) SetOriginalName(name string) { t.originalName = name }

// MacroName returns the macro this token was expanded from, or "".
func (t *Token) MacroName() string { return t.macroName }

func (t *Token) SetMacroName(name string) { t.macroName = name }

func (t *Token) FileIndex() int { return t.fileIndex }

func (t *Token) SetFileIndex(i int) { t.fileIndex = i }

// Line returns the 1-based source line.
func (t *Token) Line() int { return t.line }

func (t *Token) SetLine(l int) { t.line = l }

// Column returns the 1-based source column.
func (t *Token) Column() int { return t.column }

func (t *Token) SetColumn(c int) { t.column = c }

// Index is the monotonically assigned stream index; see
// (*List).AssignIndexes.
func (t *Token) Index() int { return t.index }

// Progress is the 0-100 position percentage; see
// (*List).AssignProgressValues.
func (t *Token) Progress() int { return t.progress }

// Pos resolves the token's location for diagnostics.
func (t *Token) Pos() diag.Pos {
	p := diag.Pos{Line: t.line, Column: t.column}
	if t.list != nil {
		p.File = t.list.FileName(t.fileIndex)
	}
	return p
}

// List returns the owning arena.
func (t *Token) List() *List { return t.list }

// Until iterates the stream from t up to but not including end. A nil end
// iterates to the back of the list.
func (t *Token) Until(end *Token) iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for tok := t; tok != nil && tok != end; tok = tok.next {
			if !yield(tok) {
				return
			}
		}
	}
}

// StrValue returns the interpreted contents of a string literal with the
// common escapes decoded. An embedded \0 truncates the value.
func (t *Token) StrValue() string {
	if t.kind != String {
		return ""
	}
	ret := []byte(getStringLiteral(t.str))
	out := make([]byte, 0, len(ret))
	for i := 0; i < len(ret); i++ {
		if ret[i] != '\\' || i+1 >= len(ret) {
			out = append(out, ret[i])
			continue
		}
		i++
		switch ret[i] {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case '0':
			return string(out)
		default:
			out = append(out, ret[i])
		}
	}
	return string(out)
}

// ConcatStr merges an adjacent string literal into this one, the way the
// preprocessor concatenates "a" "b".
func (t *Token) ConcatStr(b string) {
	t.str = t.str[:len(t.str)-1] + getStringLiteral(b) + "\""

	if isPrefixStringCharLiteral(t.str, '"', "") && isStringLiteral(b) && b[0] != '"' {
		t.str = b[:strings.IndexByte(b, '"')] + t.str
	}
	t.updateProperties()
}

// GetStrLength returns the length in characters of a string literal's
// value, stopping at an embedded \0.
func GetStrLength(tok *Token) int {
	s := tok.StrValue()
	if i := strings.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}

// GetStrArraySize returns the array size of a string literal including the
// terminating \0; escape sequences count as one element.
func GetStrArraySize(tok *Token) int {
	s := getStringLiteral(tok.Str())
	size := 1
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
		}
		size++
	}
	return size
}
