package symbols

import (
	"strings"
)

// ScopeInfo is the lightweight scope-chain descriptor tokens point back to
// for qualified-name reconstruction. It is shared: many tokens reference
// the same ScopeInfo, and nested scopes extend the name of their parent.
type ScopeInfo struct {
	Name            string
	BodyEnd         interface{} // opaque; owned by the symbol database
	UsingNamespaces map[string]struct{}
}

// NewScopeInfo creates a scope descriptor, copying the using-namespace set
// of the parent so later additions do not leak upward.
func NewScopeInfo(name string, usingNamespaces map[string]struct{}) *ScopeInfo {
	ns := make(map[string]struct{}, len(usingNamespaces))
	for k := range usingNamespaces {
		ns[k] = struct{}{}
	}
	return &ScopeInfo{Name: name, UsingNamespaces: ns}
}

// AddUsingNamespace records a "using namespace X;" visible in this scope.
func (s *ScopeInfo) AddUsingNamespace(ns string) {
	if s.UsingNamespaces == nil {
		s.UsingNamespaces = make(map[string]struct{})
	}
	s.UsingNamespaces[ns] = struct{}{}
}

// Extend returns the qualified name of a nested scope.
func (s *ScopeInfo) Extend(addition string) string {
	if s.Name == "" {
		return addition
	}
	if addition == "" {
		return s.Name
	}
	return s.Name + " :: " + addition
}

// ValueType is the computed type descriptor the value-flow passes attach to
// expression tokens. The core only renders Str().
type ValueType struct {
	Sign     Sign
	Pointer  int
	TypeName string
}

// Sign is the signedness recorded on a ValueType.
type Sign uint8

const (
	SignUnknown Sign = iota
	Signed
	Unsigned
)

func (vt *ValueType) Str() string {
	if vt == nil {
		return ""
	}
	var sb strings.Builder
	switch vt.Sign {
	case Signed:
		sb.WriteString("signed ")
	case Unsigned:
		sb.WriteString("unsigned ")
	}
	sb.WriteString(vt.TypeName)
	sb.WriteString(strings.Repeat(" *", vt.Pointer))
	return sb.String()
}

// IsUnsigned reports whether the computed type is unsigned.
func (vt *ValueType) IsUnsigned() bool {
	return vt != nil && vt.Sign == Unsigned
}
