package token

import (
	"math"
	"sort"
)

// Fact storage on tokens. A token keeps a bounded number of facts, ten
// unless the list overrides the cap; known integer
// facts are kept at the front so the common "is this a known constant"
// probe is O(1). Every insertion re-normalizes the list: exact duplicates
// are dropped, adjacent half-ranges merge, and contradicting facts cancel.

// Values returns the facts attached to t. The slice is owned by the token.
func (t *Token) Values() []Value { return t.values }

func (t *Token) factCap() int {
	if t.list != nil && t.list.maxValues > 0 {
		return t.list.maxValues
	}
	return 10
}

// ClearValues drops all facts of t.
func (t *Token) ClearValues() { t.values = nil }

// RemoveValues drops the facts pred selects.
func (t *Token) RemoveValues(pred func(*Value) bool) {
	out := t.values[:0]
	for i := range t.values {
		if !pred(&t.values[i]) {
			out = append(out, t.values[i])
		}
	}
	t.values = out
}

func sameValueType(x, y *Value) bool {
	if x.Type != y.Type {
		return false
	}
	// symbolic facts are the same type only when they speak about the
	// same expression
	if x.IsSymbolicValue() {
		if x.TokValue == nil || y.TokValue == nil {
			return true
		}
		return x.TokValue.exprID == 0 || x.TokValue.exprID == y.TokValue.exprID
	}
	return true
}

// AddValue attaches a fact to t. It reports whether the fact was stored;
// facts contradicting a known fact of the same type, duplicates, and facts
// beyond the per-token cap are rejected.
func (t *Token) AddValue(value Value) bool {
	if value.IsKnown() && len(t.values) > 0 {
		// a known fact supersedes all other facts of its type
		t.RemoveValues(func(x *Value) bool {
			return sameValueType(x, &value)
		})
	}

	if !value.IsKnown() {
		for i := range t.values {
			x := &t.values[i]
			if x.IsKnown() && sameValueType(x, &value) && !x.EqualValue(&value) {
				return false
			}
		}
	}

	if len(t.values) > 0 {
		if len(t.values) >= t.factCap() {
			return false
		}

		replaced := false
		for i := range t.values {
			it := &t.values[i]
			if it.Type != value.Type {
				continue
			}
			if it.IsImpossible() != value.IsImpossible() {
				continue
			}
			if !it.EqualValue(&value) {
				continue
			}
			if (value.IsTokValue() || value.IsLifetimeValue()) &&
				it.TokValue != value.TokValue &&
				(it.TokValue == nil || value.TokValue == nil || it.TokValue.str != value.TokValue.str) {
				continue
			}

			// same fact, but the stored one is inconclusive: replace it
			if it.IsInconclusive() && !value.IsInconclusive() && !value.IsImpossible() {
				*it = value
				if it.VarID == 0 {
					it.VarID = t.varID
				}
				replaced = true
				break
			}

			// same fact already stored
			return false
		}

		if !replaced {
			v := value
			if v.VarID == 0 {
				v.VarID = t.varID
			}
			if v.IsKnown() && v.IsIntValue() {
				t.values = append([]Value{v}, t.values...)
			} else {
				t.values = append(t.values, v)
			}
		}
	} else {
		v := value
		if v.VarID == 0 {
			v.VarID = t.varID
		}
		t.values = append(t.values, v)
	}

	removeContradictions(&t.values)
	return true
}

func isAdjacent(x, y *Value) bool {
	if x.Bound != BoundPoint && x.Bound == y.Bound {
		return true
	}
	if x.Type == FloatValue {
		return false
	}
	return (y.IntVal != math.MaxInt64 && x.IntVal == y.IntVal+1) ||
		(y.IntVal != math.MinInt64 && x.IntVal == y.IntVal-1)
}

// removePointValue erases a point fact, or shrinks a half-range fact by
// one instead. It reports whether an erasure happened.
func removePointValue(values *[]Value, i int) bool {
	vs := *values
	if vs[i].Bound != BoundPoint {
		vs[i].DecreaseRange()
		return false
	}
	*values = append(vs[:i], vs[i+1:]...)
	return true
}

func eraseValue(values *[]Value, i int) {
	vs := *values
	*values = append(vs[:i], vs[i+1:]...)
}

func removeContradiction(values *[]Value) bool {
	result := false
	for ix := 0; ix < len(*values); ix++ {
		if (*values)[ix].IsNonValue() {
			continue
		}
		for iy := ix + 1; iy < len(*values); iy++ {
			vs := *values
			x, y := &vs[ix], &vs[iy]
			if y.IsNonValue() {
				continue
			}
			if *x == *y {
				continue
			}
			if x.Type != y.Type {
				continue
			}
			if x.IsImpossible() == y.IsImpossible() {
				continue
			}
			if x.IsSymbolicValue() && !SameToken(x.TokValue, y.TokValue) {
				continue
			}
			if !x.EqualValue(y) {
				imax, imin := ix, iy
				if x.LessThan(y) {
					imax, imin = iy, ix
				}
				if vs[imax].IsImpossible() && vs[imax].Bound == BoundUpper {
					eraseValue(values, imin)
					return true
				}
				if vs[imin].IsImpossible() && vs[imin].Bound == BoundLower {
					eraseValue(values, imax)
					return true
				}
				continue
			}

			// a possible and an impossible fact with the same payload:
			// the impossible side wins unless the other side is known
			removex := !x.IsImpossible() || y.IsKnown()
			removey := !y.IsImpossible() || x.IsKnown()
			if x.Bound == y.Bound {
				if removey {
					eraseValue(values, iy)
				}
				if removex {
					eraseValue(values, ix)
				}
				return true
			}
			result = result || removex || removey
			bail := false
			if removey && removePointValue(values, iy) {
				bail = true
			}
			if removex && removePointValue(values, ix) {
				bail = true
			}
			if bail {
				return true
			}
		}
	}
	return result
}

// removeAdjacentValues collapses the chain of facts adjacent to x (given
// as indexes in traversal order) into the last chain element, which takes
// over x's bound. It returns the index to continue scanning from.
func removeAdjacentValues(values *[]Value, xi int, adj []int) int {
	vs := *values
	if !isAdjacent(&vs[xi], &vs[adj[0]]) {
		return xi + 1
	}
	k := 0
	for k+1 < len(adj) && isAdjacent(&vs[adj[k]], &vs[adj[k+1]]) {
		k++
	}
	vs[adj[k]].Bound = vs[xi].Bound

	remove := map[int]bool{xi: true}
	for _, yi := range adj[:k] {
		remove[yi] = true
	}
	out := vs[:0]
	next := len(vs)
	kept := 0
	for i := range vs {
		if remove[i] {
			continue
		}
		if i > xi && kept < next {
			next = kept
		}
		out = append(out, vs[i])
		kept++
	}
	*values = out
	if next > len(out) {
		next = len(out)
	}
	return next
}

func mergeAdjacent(values *[]Value) {
	xi := 0
	for xi < len(*values) {
		vs := *values
		x := &vs[xi]
		if x.IsNonValue() || x.Bound == BoundPoint {
			xi++
			continue
		}
		var adj []int
		for yi := range vs {
			if yi == xi {
				continue
			}
			y := &vs[yi]
			if y.IsNonValue() {
				continue
			}
			if x.Type != y.Type {
				continue
			}
			if x.Kind != y.Kind {
				continue
			}
			if x.IsSymbolicValue() && !SameToken(x.TokValue, y.TokValue) {
				continue
			}
			if x.Bound != y.Bound {
				if y.Bound != BoundPoint && isAdjacent(x, y) {
					adj = adj[:0]
					break
				}
				// no adjacent points for floating point facts
				if x.Type == FloatValue {
					continue
				}
				if y.Bound != BoundPoint {
					continue
				}
			}
			if x.Bound == BoundLower && !y.LessThan(x) {
				continue
			}
			if x.Bound == BoundUpper && !x.LessThan(y) {
				continue
			}
			adj = append(adj, yi)
		}
		if len(adj) == 0 {
			xi++
			continue
		}
		sort.Slice(adj, func(a, b int) bool {
			return vs[adj[a]].LessThan(&vs[adj[b]])
		})
		switch x.Bound {
		case BoundLower:
			for i, j := 0, len(adj)-1; i < j; i, j = i+1, j-1 {
				adj[i], adj[j] = adj[j], adj[i]
			}
			xi = removeAdjacentValues(values, xi, adj)
		case BoundUpper:
			xi = removeAdjacentValues(values, xi, adj)
		default:
			xi++
		}
	}
}

func removeOverlaps(values *[]Value) {
	vs := *values
	out := vs[:0]
	for i := range vs {
		y := &vs[i]
		dup := false
		if !y.IsNonValue() {
			for j := range out {
				x := &out[j]
				if x.IsNonValue() {
					continue
				}
				if x.Type != y.Type || x.Kind != y.Kind || x.Bound != y.Bound {
					continue
				}
				if x.EqualValue(y) {
					dup = true
					break
				}
			}
		}
		if !dup {
			out = append(out, vs[i])
		}
	}
	*values = out
	mergeAdjacent(values)
}

// Removing contradictions exactly is intractable; a bounded number of
// passes catches the cases that occur in practice.
func removeContradictions(values *[]Value) {
	removeOverlaps(values)
	for i := 0; i < 4; i++ {
		if !removeContradiction(values) {
			return
		}
		removeOverlaps(values)
	}
}

// GetValue returns the first possible integer fact with the given value.
func (t *Token) GetValue(val int64) *Value {
	for i := range t.values {
		v := &t.values[i]
		if v.IsIntValue() && !v.IsImpossible() && v.IntVal == val {
			return v
		}
	}
	return nil
}

// GetValueLE returns the first possible integer fact <= val.
func (t *Token) GetValueLE(val int64) *Value {
	for i := range t.values {
		v := &t.values[i]
		if !v.IsImpossible() && v.IsIntValue() && v.IntVal <= val {
			return v
		}
	}
	return nil
}

// GetValueGE returns the first possible integer fact >= val.
func (t *Token) GetValueGE(val int64) *Value {
	for i := range t.values {
		v := &t.values[i]
		if !v.IsImpossible() && v.IsIntValue() && v.IntVal >= val {
			return v
		}
	}
	return nil
}

// GetValueNE returns the first possible integer fact != val.
func (t *Token) GetValueNE(val int64) *Value {
	for i := range t.values {
		v := &t.values[i]
		if v.IsIntValue() && !v.IsImpossible() && v.IntVal != val {
			return v
		}
	}
	return nil
}

// GetKnownValue returns the known fact of the given type, if any. Known
// integer facts are found in O(1) at the front of the list.
func (t *Token) GetKnownValue(typ ValueType) *Value {
	if len(t.values) == 0 {
		return nil
	}
	if typ == IntValue {
		v := &t.values[0]
		if !v.IsKnown() || !v.IsIntValue() {
			return nil
		}
		return v
	}
	for i := range t.values {
		v := &t.values[i]
		if v.IsKnown() && v.Type == typ {
			return v
		}
	}
	return nil
}

// HasKnownIntValue reports whether t carries a known integer fact.
func (t *Token) HasKnownIntValue() bool {
	return t.GetKnownValue(IntValue) != nil
}

// HasKnownValue reports whether t carries a known fact of the given type.
func (t *Token) HasKnownValue(typ ValueType) bool {
	return t.GetKnownValue(typ) != nil
}

// HasKnownSymbolicValue reports whether t is known to equal the
// expression tok denotes.
func (t *Token) HasKnownSymbolicValue(tok *Token) bool {
	if tok == nil || tok.exprID == 0 {
		return false
	}
	for i := range t.values {
		v := &t.values[i]
		if v.IsKnown() && v.IsSymbolicValue() && v.TokValue != nil &&
			v.TokValue.exprID == tok.exprID {
			return true
		}
	}
	return false
}

func (t *Token) getCompareValue(condition bool, path int64, better func(a, b int64) bool) *Value {
	var ret *Value
	for i := range t.values {
		v := &t.values[i]
		if !v.IsIntValue() {
			continue
		}
		if v.IsImpossible() {
			continue
		}
		if path > 0 && v.Path != 0 && v.Path != path {
			continue
		}
		if (ret == nil || better(v.IntVal, ret.IntVal)) && (v.Condition != nil) == condition {
			ret = v
		}
	}
	return ret
}

// GetMaxValue returns the largest possible integer fact, filtered by
// conditionality and path.
func (t *Token) GetMaxValue(condition bool, path int64) *Value {
	return t.getCompareValue(condition, path, func(a, b int64) bool { return a > b })
}

// GetMinValue returns the smallest possible integer fact, filtered by
// conditionality and path.
func (t *Token) GetMinValue(condition bool, path int64) *Value {
	return t.getCompareValue(condition, path, func(a, b int64) bool { return a < b })
}

// GetMovedValue returns the first fact marking t's expression moved-from.
func (t *Token) GetMovedValue() *Value {
	for i := range t.values {
		v := &t.values[i]
		if v.IsMovedValue() && !v.IsImpossible() && v.MoveKind != NonMovedVariable {
			return v
		}
	}
	return nil
}

// GetContainerSizeValue returns the first possible container-size fact
// with the given size.
func (t *Token) GetContainerSizeValue(val int64) *Value {
	for i := range t.values {
		v := &t.values[i]
		if v.IsContainerSizeValue() && !v.IsImpossible() && v.IntVal == val {
			return v
		}
	}
	return nil
}

// GetInvalidValue returns a possible fact rejected by isValid, favoring
// unconditional and conclusive facts when several qualify.
func (t *Token) GetInvalidValue(isValid func(*Value) bool) *Value {
	var ret *Value
	for i := range t.values {
		v := &t.values[i]
		if v.IsImpossible() {
			continue
		}
		if (v.IsIntValue() || v.IsFloatValue()) && !isValid(v) {
			if ret == nil || ret.IsInconclusive() || (ret.Condition != nil && !v.IsInconclusive()) {
				ret = v
			}
			if !ret.IsInconclusive() && ret.Condition == nil {
				break
			}
		}
	}
	return ret
}

// GetValueTokenMaxStrLength returns the string-literal token of t's facts
// with the greatest logical string length.
func (t *Token) GetValueTokenMaxStrLength() *Token {
	var ret *Token
	maxLength := 0
	for i := range t.values {
		v := &t.values[i]
		if v.IsTokValue() && v.TokValue != nil && v.TokValue.kind == String {
			if length := GetStrLength(v.TokValue); ret == nil || length > maxLength {
				maxLength = length
				ret = v.TokValue
			}
		}
	}
	return ret
}

// GetValueTokenMinStrSize returns the string-literal token of t's facts
// with the smallest array size; path, when non-nil, receives the path of
// the winning fact.
func (t *Token) GetValueTokenMinStrSize(path *int64) *Token {
	var ret *Token
	minSize := 0
	for i := range t.values {
		v := &t.values[i]
		if v.IsTokValue() && v.TokValue != nil && v.TokValue.kind == String {
			if size := GetStrArraySize(v.TokValue); ret == nil || size < minSize {
				minSize = size
				ret = v.TokValue
				if path != nil {
					*path = v.Path
				}
			}
		}
	}
	return ret
}
