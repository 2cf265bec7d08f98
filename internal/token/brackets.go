package token

// Angle-bracket resolution. < and > are classified as comparison operators
// until a template context is proven, so finding the closing > of a
// template argument list is a heuristic scan, not a link lookup.

// FindClosingBracket returns the > closing the template argument list that
// t opens, or nil when t is not a plausible template opener or the scan
// runs into evidence of a comparison instead.
func (t *Token) FindClosingBracket() *Token {
	if t.str != "<" {
		return nil
	}
	if t.previous == nil {
		return nil
	}

	// a template < follows a name, an operator id, or a ]
	if !(t.previous.IsName() || SimpleMatch(t.previous, "]") ||
		Match(t.previous.previous, "operator %op% <") ||
		Match(t.TokAt(-3), "operator [([] [)]] <")) {
		return nil
	}

	templateParameter := t.StrAt(-1) == "template"
	var templateParameters map[string]struct{}
	if templateParameter {
		templateParameters = make(map[string]struct{})
	}

	// inside a declaration, >> always splits into two closers
	isDecl := true
	for prev := t.previous; prev != nil; prev = prev.previous {
		if prev.str == "=" {
			isDecl = false
		}
		if SimpleMatch(prev, "template <") {
			isDecl = true
		}
		if Match(prev, "[;{}]") {
			break
		}
	}

	depth := 0
	for closing := t; closing != nil; closing = closing.next {
		switch {
		case Match(closing, "{|[|("):
			closing = closing.link
			if closing == nil {
				return nil
			}
		case Match(closing, "}|]|)|;"):
			return nil
		case closing.str == "<" && closing.previous != nil &&
			(closing.previous.IsName() || SimpleMatch(closing.previous, "]") || isOperatorEnd(closing.previous)) &&
			(!templateParameter || !containsName(templateParameters, closing.StrAt(-1))):
			depth++
		case closing.str == ">":
			depth--
			if depth == 0 {
				return closing
			}
		case closing.str == ">>" || closing.str == ">>=":
			if !isDecl && depth == 1 {
				continue
			}
			if depth <= 2 {
				return closing
			}
			depth -= 2
		case templateParameter && depth == 1 && Match(closing, "[,=]") &&
			closing.previous.IsName() && !Match(closing.previous, "class|typename|.") && !Match(closing.TokAt(-2), "=|::"):
			// named template parameter: a later use of this name before <
			// does not open a nested list
			templateParameters[closing.StrAt(-1)] = struct{}{}
		}
	}
	return nil
}

// FindOpeningBracket returns the < opened by this closing >, scanning
// backwards; nil when the context rules out a template.
func (t *Token) FindOpeningBracket() *Token {
	if t.str != ">" {
		return nil
	}
	depth := 0
	for opening := t; opening != nil; opening = opening.previous {
		switch {
		case Match(opening, "}|]|)"):
			opening = opening.link
			if opening == nil {
				return nil
			}
		case Match(opening, "{|(|;"):
			return nil
		case opening.str == ">":
			depth++
		case opening.str == "<":
			depth--
			if depth == 0 {
				return opening
			}
		}
	}
	return nil
}

// isOperatorEnd reports whether tok ends an operator function id.
func isOperatorEnd(tok *Token) bool {
	if tok.link != nil {
		tok = tok.link
	}
	return tok.StrAt(-1) == "operator"
}

func containsName(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}

// FindTypeEnd returns the first token after a type spelling starting at
// tok, skipping qualified names, pointers, references, and template and
// call groups.
func FindTypeEnd(tok *Token) *Token {
	for Match(tok, "%name%|.|::|*|&|&&|<|(|template|decltype|sizeof") {
		if Match(tok, "(|<") {
			tok = tok.link
		}
		if tok == nil {
			return nil
		}
		tok = tok.next
	}
	return tok
}

// FindLambdaEndScope returns the } ending the lambda whose capture list
// starts at tok, or nil when tok does not start a lambda.
func FindLambdaEndScope(tok *Token) *Token {
	if !SimpleMatch(tok, "[") {
		return nil
	}
	tok = tok.link
	if !Match(tok, "] (|{") {
		return nil
	}
	tok = tok.LinkAt(1)
	if SimpleMatch(tok, "}") {
		return tok
	}
	if SimpleMatch(tok, ") {") {
		return tok.LinkAt(1)
	}
	if !SimpleMatch(tok, ")") {
		return nil
	}
	tok = tok.next
	for Match(tok, "mutable|constexpr|consteval|noexcept|.") {
		if SimpleMatch(tok, "noexcept (") {
			tok = tok.LinkAt(1)
		}
		if SimpleMatch(tok, ".") {
			// trailing return type
			tok = FindTypeEnd(tok)
			break
		}
		tok = tok.next
	}
	if SimpleMatch(tok, "{") {
		return tok.link
	}
	return nil
}
