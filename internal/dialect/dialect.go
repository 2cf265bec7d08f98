// Package dialect identifies the language variant of a translation unit
// (C vs C++ plus a standard revision) and answers keyword-membership
// queries for it. Keyword sets are cumulative: each standard includes every
// keyword of the earlier revisions of the same language.
package dialect

import (
	"fmt"
	"strings"
)

// Language distinguishes the two lexical families the engine analyzes.
type Language uint8

const (
	C Language = iota
	CPP
)

func (l Language) String() string {
	if l == CPP {
		return "c++"
	}
	return "c"
}

// Standard is a language revision. Ordering within one language is
// chronological, so >= comparisons express "at least this revision".
type Standard uint8

const (
	C89 Standard = iota
	C99
	C11
	C17
	C23

	CPP03
	CPP11
	CPP14
	CPP17
	CPP20
	CPP23
	CPP26
)

var standardNames = map[Standard]string{
	C89:   "c89",
	C99:   "c99",
	C11:   "c11",
	C17:   "c17",
	C23:   "c23",
	CPP03: "c++03",
	CPP11: "c++11",
	CPP14: "c++14",
	CPP17: "c++17",
	CPP20: "c++20",
	CPP23: "c++23",
	CPP26: "c++26",
}

func (s Standard) String() string {
	if name, ok := standardNames[s]; ok {
		return name
	}
	return "unknown"
}

// Language returns the language family a standard belongs to.
func (s Standard) Language() Language {
	if s >= CPP03 {
		return CPP
	}
	return C
}

// ParseStandard resolves a standard name such as "c11" or "c++17".
func ParseStandard(name string) (Standard, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for std, n := range standardNames {
		if n == name {
			return std, true
		}
	}
	return C89, false
}

// Dialect is the active language variant for one translation unit.
type Dialect struct {
	Std Standard
}

// Default returns the dialect the engine assumes when nothing is
// configured: latest stable C++.
func Default() Dialect {
	return Dialect{Std: CPP20}
}

func (d Dialect) IsC() bool {
	return d.Std.Language() == C
}

func (d Dialect) IsCPP() bool {
	return d.Std.Language() == CPP
}

func (d Dialect) String() string {
	return fmt.Sprintf("%s (%s)", d.Std.Language(), d.Std)
}

// IsKeyword reports whether ident is a reserved word of this dialect.
func (d Dialect) IsKeyword(ident string) bool {
	var table map[string]Standard
	if d.IsCPP() {
		table = cppKeywords
	} else {
		table = cKeywords
	}
	since, ok := table[ident]
	return ok && d.Std >= since
}
