package token

import (
	"fmt"
	"math"
	"strings"
)

// Value is one flow-analysis fact attached to a token: "this expression
// may/must have this value here". Facts are small and copied by value;
// the token owns its fact list.
type Value struct {
	Type  ValueType
	Kind  ValueKind
	Bound Bound

	// IntVal carries the payload of integer-like facts, and the offset
	// of symbolic facts.
	IntVal   int64
	FloatVal float64

	// TokValue points at a literal or expression token for token-typed,
	// lifetime, and symbolic facts.
	TokValue *Token

	// Condition is the condition token this fact is contingent on, if any.
	Condition *Token

	VarID    int
	Path     int64
	MoveKind MoveKind
	LifeKind LifetimeKind
}

// ValueType discriminates what a fact describes.
type ValueType uint8

const (
	IntValue ValueType = iota
	TokValue
	FloatValue
	MovedValue
	UninitValue
	BufferSizeValue
	ContainerSizeValue
	IteratorStartValue
	IteratorEndValue
	LifetimeValue
	SymbolicValue
)

func (t ValueType) String() string {
	switch t {
	case IntValue:
		return "int"
	case TokValue:
		return "tok"
	case FloatValue:
		return "float"
	case MovedValue:
		return "moved"
	case UninitValue:
		return "uninit"
	case BufferSizeValue:
		return "buffer-size"
	case ContainerSizeValue:
		return "container-size"
	case IteratorStartValue:
		return "iterator-start"
	case IteratorEndValue:
		return "iterator-end"
	case LifetimeValue:
		return "lifetime"
	case SymbolicValue:
		return "symbolic"
	}
	return "unknown"
}

// ValueKind is the certainty of a fact.
type ValueKind uint8

const (
	// Possible: the value is sometimes observed on this path.
	Possible ValueKind = iota
	// Known: the value always holds here.
	Known
	// Inconclusive: the analysis could not prove the value.
	Inconclusive
	// Impossible: the value (or the bounded range) never holds.
	Impossible
)

func (k ValueKind) String() string {
	switch k {
	case Possible:
		return "possible"
	case Known:
		return "always"
	case Inconclusive:
		return "inconclusive"
	case Impossible:
		return "impossible"
	}
	return "unknown"
}

// Bound tells whether an integer fact is a point or a half-range.
type Bound uint8

const (
	BoundPoint Bound = iota
	BoundUpper
	BoundLower
)

// MoveKind refines moved-from facts.
type MoveKind uint8

const (
	NonMovedVariable MoveKind = iota
	MovedVariable
	ForwardedVariable
)

func (m MoveKind) String() string {
	switch m {
	case MovedVariable:
		return "Moved"
	case ForwardedVariable:
		return "Forwarded"
	}
	return "NonMoved"
}

// LifetimeKind refines lifetime facts.
type LifetimeKind uint8

const (
	LifetimeObject LifetimeKind = iota
	LifetimeSubObject
	LifetimeLambda
	LifetimeIterator
	LifetimeAddress
)

func (l LifetimeKind) String() string {
	switch l {
	case LifetimeSubObject:
		return "SubObject"
	case LifetimeLambda:
		return "Lambda"
	case LifetimeIterator:
		return "Iterator"
	case LifetimeAddress:
		return "Address"
	}
	return "Object"
}

func (v *Value) IsIntValue() bool           { return v.Type == IntValue }
func (v *Value) IsTokValue() bool           { return v.Type == TokValue }
func (v *Value) IsFloatValue() bool         { return v.Type == FloatValue }
func (v *Value) IsMovedValue() bool         { return v.Type == MovedValue }
func (v *Value) IsUninitValue() bool        { return v.Type == UninitValue }
func (v *Value) IsBufferSizeValue() bool    { return v.Type == BufferSizeValue }
func (v *Value) IsContainerSizeValue() bool { return v.Type == ContainerSizeValue }
func (v *Value) IsIteratorValue() bool {
	return v.Type == IteratorStartValue || v.Type == IteratorEndValue
}
func (v *Value) IsLifetimeValue() bool { return v.Type == LifetimeValue }
func (v *Value) IsSymbolicValue() bool { return v.Type == SymbolicValue }

func (v *Value) IsKnown() bool        { return v.Kind == Known }
func (v *Value) IsPossible() bool     { return v.Kind == Possible }
func (v *Value) IsInconclusive() bool { return v.Kind == Inconclusive }
func (v *Value) IsImpossible() bool   { return v.Kind == Impossible }

// IsNonValue reports facts that describe a state rather than a value.
func (v *Value) IsNonValue() bool {
	return v.IsMovedValue() || v.IsUninitValue() || v.IsLifetimeValue()
}

// EqualValue reports whether two facts of compatible type carry the same
// payload, certainty aside.
func (v *Value) EqualValue(rhs *Value) bool {
	if v.Type != rhs.Type {
		return false
	}
	switch v.Type {
	case FloatValue:
		return v.FloatVal == rhs.FloatVal
	case TokValue, LifetimeValue:
		return v.TokValue == rhs.TokValue
	default:
		return v.IntVal == rhs.IntVal
	}
}

// LessThan orders the numeric payloads of two facts; integer payloads
// promote to float when either side is a float fact.
func (v *Value) LessThan(rhs *Value) bool {
	if v.IsFloatValue() || rhs.IsFloatValue() {
		lhsF := v.FloatVal
		if !v.IsFloatValue() {
			lhsF = float64(v.IntVal)
		}
		rhsF := rhs.FloatVal
		if !rhs.IsFloatValue() {
			rhsF = float64(rhs.IntVal)
		}
		return lhsF < rhsF
	}
	return v.IntVal < rhs.IntVal
}

// DecreaseRange shrinks a half-range fact by one towards its bound.
func (v *Value) DecreaseRange() {
	switch v.Bound {
	case BoundLower:
		v.IntVal++
	case BoundUpper:
		v.IntVal--
	}
}

// SameToken reports whether two fact tokens denote the same expression.
func SameToken(tok1, tok2 *Token) bool {
	if tok1 == tok2 {
		return true
	}
	if tok1 == nil || tok2 == nil {
		return false
	}
	if tok1.exprID == 0 || tok2.exprID == 0 {
		return false
	}
	return tok1.exprID == tok2.exprID
}

// String renders a fact the way the value-flow dump prints it.
func (v *Value) String() string {
	var sb strings.Builder
	if v.IsImpossible() {
		sb.WriteByte('!')
	}
	switch v.Bound {
	case BoundLower:
		sb.WriteString(">=")
	case BoundUpper:
		sb.WriteString("<=")
	}
	switch v.Type {
	case IntValue:
		fmt.Fprintf(&sb, "%d", v.IntVal)
	case TokValue:
		if v.TokValue != nil {
			sb.WriteString(v.TokValue.str)
		}
	case FloatValue:
		if math.Trunc(v.FloatVal) == v.FloatVal && math.Abs(v.FloatVal) < 1e15 {
			fmt.Fprintf(&sb, "%.1f", v.FloatVal)
		} else {
			fmt.Fprintf(&sb, "%g", v.FloatVal)
		}
	case MovedValue:
		sb.WriteString(v.MoveKind.String())
	case UninitValue:
		sb.WriteString("Uninit")
	case BufferSizeValue, ContainerSizeValue:
		fmt.Fprintf(&sb, "size=%d", v.IntVal)
	case IteratorStartValue:
		fmt.Fprintf(&sb, "start=%d", v.IntVal)
	case IteratorEndValue:
		fmt.Fprintf(&sb, "end=%d", v.IntVal)
	case LifetimeValue:
		sb.WriteString("lifetime[")
		sb.WriteString(v.LifeKind.String())
		sb.WriteString("]=(")
		if v.TokValue != nil {
			sb.WriteString(v.TokValue.ExpressionString())
		}
		sb.WriteByte(')')
	case SymbolicValue:
		sb.WriteString("symbolic=(")
		if v.TokValue != nil {
			sb.WriteString(v.TokValue.ExpressionString())
		}
		if v.IntVal > 0 {
			fmt.Fprintf(&sb, "+%d", v.IntVal)
		} else if v.IntVal < 0 {
			fmt.Fprintf(&sb, "-%d", -v.IntVal)
		}
		sb.WriteByte(')')
	}
	return sb.String()
}
