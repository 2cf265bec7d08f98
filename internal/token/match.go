package token

import (
	"strings"

	"github.com/heshpdx/cppcheck/internal/diag"
)

// Pattern matching against the token stream.
//
// A pattern is a space-separated list of words, each consumed against one
// token. A word is matched literally, as a set of | alternatives (an empty
// alternative consumes no token), as a %command% class, as a [..] set of
// single characters, or as a !!word negation. Matching never allocates.

// Match reports whether the pattern matches starting at tok.
func Match(tok *Token, pattern string) bool {
	return matchImpl(tok, pattern, 0)
}

// MatchVarID is Match with %varid% bound to varid. Using %varid% through
// plain Match (varid 0) is a usage error.
func MatchVarID(tok *Token, pattern string, varid int) bool {
	return matchImpl(tok, pattern, varid)
}

// SimpleMatch reports whether the literal pattern matches starting at tok.
// The pattern must not contain alternatives, classes, or negations.
func SimpleMatch(tok *Token, pattern string) bool {
	if tok == nil {
		return false
	}
	for pattern != "" {
		word := pattern
		if sp := strings.IndexByte(pattern, ' '); sp >= 0 {
			word = pattern[:sp]
			pattern = pattern[sp+1:]
		} else {
			pattern = ""
		}
		if tok == nil || tok.str != word {
			return false
		}
		tok = tok.next
	}
	return true
}

func matchImpl(tok *Token, pattern string, varid int) bool {
	if pattern == "" {
		return true
	}
	i, n := 0, len(pattern)
	for {
		for i < n && pattern[i] == ' ' {
			i++
		}
		if i >= n {
			break
		}

		if tok == nil {
			// a trailing run of !!word patterns matches past the end
			if pattern[i] == '!' && i+2 < n && pattern[i+1] == '!' && pattern[i+2] != ' ' {
				for i < n && pattern[i] != ' ' {
					i++
				}
				continue
			}
			return false
		}

		switch {
		// [..] matches any single-character token listed in the set; a
		// doubled ] puts ] itself in the set.
		case pattern[i] == '[' && indexInFirstWord(pattern[i:], ']') >= 0:
			if len(tok.str) != 1 {
				return false
			}
			found := false
			count := 0
			j := i + 1
			for j < n && pattern[j] != ' ' {
				if pattern[j] == ']' {
					count++
				} else if pattern[j] == tok.str[0] {
					found = true
					break
				}
				j++
			}
			if count > 1 && tok.str[0] == ']' {
				found = true
			}
			if !found {
				return false
			}
			i = j

		// !!word matches any token except word.
		case pattern[i] == '!' && i+2 < n && pattern[i+1] == '!' && pattern[i+2] != ' ':
			i += 2
			if firstWordEquals(pattern[i:], tok.str) {
				return false
			}

		default:
			switch multiCompareImpl(tok, pattern[i:], varid) {
			case 0:
				// empty alternative: consume the word, keep the token
				for i < n && pattern[i] != ' ' {
					i++
				}
				continue
			case -1:
				return false
			}
		}

		sp := strings.IndexByte(pattern[i:], ' ')
		if sp < 0 {
			break
		}
		i += sp
		tok = tok.next
	}
	return true
}

// MultiCompare matches one pattern word of | alternatives against tok.
// It returns 1 on a match, 0 when an empty alternative allows the word to
// consume no token, and -1 on no match.
func MultiCompare(tok *Token, haystack string, varid int) int {
	return multiCompareImpl(tok, haystack, varid)
}

func multiCompareImpl(tok *Token, haystack string, varid int) int {
	needle := tok.str
	ni, hi := 0, 0
	for {
		switch {
		case ni == 0 && byteAt(haystack, hi) == '%' &&
			byteAt(haystack, hi+1) != '|' && byteAt(haystack, hi+1) != 0 && byteAt(haystack, hi+1) != ' ':
			ret, nh := multiComparePercent(tok, haystack, hi, varid)
			hi = nh
			if ret < 2 {
				return ret
			}

		case byteAt(haystack, hi) == '|':
			if ni >= len(needle) {
				return 1
			}
			ni = 0
			hi++

		case byteAt(needle, ni) == byteAt(haystack, hi):
			if ni >= len(needle) {
				return 1
			}
			ni++
			hi++

		case byteAt(haystack, hi) == ' ' || hi >= len(haystack):
			if ni == 0 {
				return 0
			}
			if ni >= len(needle) {
				return 1
			}
			return -1

		default:
			// skip to the next alternative
			ni = 0
			for {
				hi++
				if hi >= len(haystack) || haystack[hi] == ' ' {
					return -1
				}
				if haystack[hi] == '|' {
					break
				}
			}
			hi++
		}
	}
}

// multiComparePercent matches one %command% against tok. It returns the
// match result (1 match, 0xFFFF keep scanning alternatives, -1 fail) and
// the haystack index after the consumed command.
func multiComparePercent(tok *Token, haystack string, hi, varid int) (int, int) {
	hi++ // %
	matched := false
	rest := haystack[hi:]
	switch {
	case strings.HasPrefix(rest, "var%"):
		hi += 4
		matched = tok.varID != 0
	case strings.HasPrefix(rest, "varid%"):
		if varid == 0 {
			diag.Throw(tok.Pos(), diag.InternalVarIDZero, "pattern match with %%varid%% but no variable id bound")
		}
		hi += 6
		matched = tok.varID == varid
	case strings.HasPrefix(rest, "type%"):
		hi += 5
		matched = tok.IsName() && tok.varID == 0
	case strings.HasPrefix(rest, "any%"):
		hi += 4
		matched = true
	case strings.HasPrefix(rest, "assign%"):
		hi += 7
		matched = tok.IsAssignmentOp()
	case strings.HasPrefix(rest, "name%"):
		hi += 5
		matched = tok.IsName()
	case strings.HasPrefix(rest, "num%"):
		hi += 4
		matched = tok.IsNumber()
	case strings.HasPrefix(rest, "char%"):
		hi += 5
		matched = tok.kind == Char
	case strings.HasPrefix(rest, "cop%"):
		hi += 4
		matched = tok.IsConstOp()
	case strings.HasPrefix(rest, "comp%"):
		hi += 5
		matched = tok.IsComparisonOp()
	case strings.HasPrefix(rest, "str%"):
		hi += 4
		matched = tok.kind == String
	case strings.HasPrefix(rest, "bool%"):
		hi += 5
		matched = tok.IsBoolean()
	case strings.HasPrefix(rest, "oror%"):
		hi += 5
		matched = tok.kind == LogicalOp && tok.str == "||"
	case strings.HasPrefix(rest, "or%"):
		hi += 3
		matched = tok.kind == BitOp && tok.str == "|"
	case strings.HasPrefix(rest, "op%"):
		hi += 3
		matched = tok.IsOp()
	default:
		diag.Throw(tok.Pos(), diag.InternalBadPatternCmd, "unexpected pattern command near %q", firstWord(haystack[hi:]))
	}
	if matched {
		return 1, hi
	}
	if byteAt(haystack, hi) == '|' {
		return 0xFFFF, hi + 1
	}
	return -1, hi
}

// FindMatch returns the first token from startTok on that begins a match
// of pattern, or nil.
func FindMatch(startTok *Token, pattern string) *Token {
	for tok := startTok; tok != nil; tok = tok.next {
		if Match(tok, pattern) {
			return tok
		}
	}
	return nil
}

// FindMatchUntil is FindMatch bounded by end (exclusive).
func FindMatchUntil(startTok, end *Token, pattern string) *Token {
	for tok := startTok; tok != nil && tok != end; tok = tok.next {
		if Match(tok, pattern) {
			return tok
		}
	}
	return nil
}

// FindSimpleMatch returns the first token from startTok on that begins a
// literal match of pattern, or nil.
func FindSimpleMatch(startTok *Token, pattern string) *Token {
	for tok := startTok; tok != nil; tok = tok.next {
		if SimpleMatch(tok, pattern) {
			return tok
		}
	}
	return nil
}

// FindSimpleMatchUntil is FindSimpleMatch bounded by end (exclusive).
func FindSimpleMatchUntil(startTok, end *Token, pattern string) *Token {
	for tok := startTok; tok != nil && tok != end; tok = tok.next {
		if SimpleMatch(tok, pattern) {
			return tok
		}
	}
	return nil
}

// NextArgument returns the token after the next top-level comma, skipping
// linked (), {}, [] and <> groups, or nil at the end of the argument list.
func (t *Token) NextArgument() *Token {
	for tok := t; tok != nil; tok = tok.next {
		if tok.str == "," {
			return tok.next
		}
		if tok.link != nil && Match(tok, "(|{|[|<") {
			tok = tok.link
		} else if Match(tok, ")|;") {
			return nil
		}
	}
	return nil
}

// NextArgumentBeforeCreateLinks2 is NextArgument for streams whose angle
// brackets are not linked yet; template groups are skipped heuristically.
func (t *Token) NextArgumentBeforeCreateLinks2() *Token {
	for tok := t; tok != nil; tok = tok.next {
		if tok.str == "," {
			return tok.next
		}
		if tok.link != nil && Match(tok, "(|{|[") {
			tok = tok.link
		} else if tok.str == "<" {
			if temp := tok.FindClosingBracket(); temp != nil {
				tok = temp
			}
		} else if Match(tok, ")|;") {
			return nil
		}
	}
	return nil
}

// NextTemplateArgument returns the token after the next top-level comma of
// a template argument list, or nil at the closing > or at a ;.
func (t *Token) NextTemplateArgument() *Token {
	for tok := t; tok != nil; tok = tok.next {
		if tok.str == "," {
			return tok.next
		}
		if tok.link != nil && Match(tok, "(|{|[|<") {
			tok = tok.link
		} else if Match(tok, ">|;") {
			return nil
		}
	}
	return nil
}

func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// firstWordEquals reports whether word equals the first space-delimited
// word of str.
func firstWordEquals(str, word string) bool {
	wordEnd := strings.IndexByte(str, ' ')
	if wordEnd < 0 {
		return str == word
	}
	return str[:wordEnd] == word
}

// indexInFirstWord returns the index of c within the first word of str,
// or -1.
func indexInFirstWord(str string, c byte) int {
	for i := 0; i < len(str); i++ {
		if str[i] == ' ' {
			return -1
		}
		if str[i] == c {
			return i
		}
	}
	return -1
}

func firstWord(str string) string {
	if sp := strings.IndexByte(str, ' '); sp >= 0 {
		return str[:sp]
	}
	return str
}
