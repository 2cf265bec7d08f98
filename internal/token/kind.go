package token

// Kind is the lexical category of a token, derived from its text plus the
// varID and keyword oracles. See (*Token).updateProperties for the exact
// priority order; checkers depend on it.
type Kind uint8

const (
	// None marks a token with empty text.
	None Kind = iota
	// Keyword is a reserved word of the active dialect.
	Keyword
	// Name is an identifier that is not a known variable or keyword.
	Name
	// Variable is an identifier with a nonzero varID.
	Variable
	// Function is a name bound to a function descriptor.
	Function
	// Lambda is a name bound to a lambda function descriptor.
	Lambda
	// Type is a standard type name or a name bound to a type descriptor.
	Type
	// Number is an integer or floating literal.
	Number
	// String is a string literal (including prefixed forms).
	String
	// Char is a character literal.
	Char
	// Boolean is the literal true or false.
	Boolean
	// AssignmentOp is = and the compound assignments.
	AssignmentOp
	// ArithmeticalOp is + - * / % << >>.
	ArithmeticalOp
	// BitOp is & | ^ ~.
	BitOp
	// LogicalOp is && || !.
	LogicalOp
	// ComparisonOp is == != < <= > >= <=>.
	ComparisonOp
	// IncDecOp is ++ and --.
	IncDecOp
	// ExtendedOp is , [ ] ( ) ? :.
	ExtendedOp
	// Bracket is { } and bracket-linked < >.
	Bracket
	// Ellipsis is ...
	Ellipsis
	// Other is anything the classifier does not recognize.
	Other
)

var kindNames = [...]string{
	None:           "none",
	Keyword:        "keyword",
	Name:           "name",
	Variable:       "variable",
	Function:       "function",
	Lambda:         "lambda",
	Type:           "type",
	Number:         "number",
	String:         "string",
	Char:           "char",
	Boolean:        "boolean",
	AssignmentOp:   "assignment-op",
	ArithmeticalOp: "arithmetical-op",
	BitOp:          "bit-op",
	LogicalOp:      "logical-op",
	ComparisonOp:   "comparison-op",
	IncDecOp:       "inc-dec-op",
	ExtendedOp:     "extended-op",
	Bracket:        "bracket",
	Ellipsis:       "ellipsis",
	Other:          "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Flags are boolean attributes orthogonal to Kind.
type Flags uint16

const (
	// FlagUnsigned marks an explicit unsigned qualifier.
	FlagUnsigned Flags = 1 << iota
	// FlagSigned marks an explicit signed qualifier.
	FlagSigned
	// FlagLong marks long types and L-prefixed literals.
	FlagLong
	// FlagComplex marks _Complex types.
	FlagComplex
	// FlagStandardType marks spellings like int, size_t, wchar_t.
	FlagStandardType
	// FlagControlFlowKeyword marks if/else/for/while/switch and friends.
	FlagControlFlowKeyword
	// FlagEnumType marks tokens whose type descriptor is an enum.
	FlagEnumType
	// FlagAtAddress marks expressions whose address is observed.
	FlagAtAddress
	// FlagConstexpr marks constexpr declarations.
	FlagConstexpr
	// FlagExternC marks tokens inside an extern "C" block.
	FlagExternC
)
