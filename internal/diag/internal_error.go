package diag

import (
	"fmt"
)

// InternalError reports a violated precondition in a calling analysis pass:
// matching with an unbound variable-id binding, linking a delimiter to
// itself, introducing an AST cycle, and so on. It carries the offending
// token's position so the failure can be reported against the source even
// though the input itself is not at fault.
type InternalError struct {
	Pos  Pos
	Code Code
	Msg  string
}

func (e *InternalError) Error() string {
	if e.Pos.File == "" {
		return fmt.Sprintf("internal error: %s", e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: internal error: %s", e.Pos.File, e.Pos.Line, e.Pos.Column, e.Msg)
}

// Throw panics with an InternalError. The enclosing pass is expected to
// stop; Recover at the pass boundary converts the panic back to an error
// without taking down the process.
func Throw(pos Pos, code Code, format string, args ...any) {
	panic(&InternalError{Pos: pos, Code: code, Msg: fmt.Sprintf(format, args...)})
}

// Recover converts an InternalError panic into an error. Use in a deferred
// call at an analysis-pass boundary:
//
//	defer diag.Recover(&err)
//
// Panics of any other type are re-raised.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	ie, ok := r.(*InternalError)
	if !ok {
		panic(r)
	}
	*errp = ie
}
