// Package symbols holds the descriptors the symbol/type resolver attaches
// to tokens. The token core stores these as opaque back-references: it
// never walks or interprets them beyond the few classification bits noted
// on each type.
package symbols

// Variable describes a resolved variable. Tokens referencing it carry the
// matching declaration id as their varID.
type Variable struct {
	Name          string
	DeclarationID uint32
	Pointer       bool
	Reference     bool
	Static        bool
	Argument      bool
}

// Function describes a resolved function. Lambda affects token
// classification (Function vs Lambda kind).
type Function struct {
	Name    string
	Lambda  bool
	RetType *Type
}

// IsLambda reports whether the function is a lambda expression.
func (f *Function) IsLambda() bool {
	return f != nil && f.Lambda
}

// Type describes a resolved user type. Enum affects the token's enum-type
// flag.
type Type struct {
	Name string
	Enum bool
}

// IsEnumType reports whether the type is an enumeration.
func (t *Type) IsEnumType() bool {
	return t != nil && t.Enum
}
