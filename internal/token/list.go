package token

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/heshpdx/cppcheck/internal/diag"
	"github.com/heshpdx/cppcheck/internal/dialect"
	"github.com/heshpdx/cppcheck/internal/symbols"
)

// List is the arena that owns one token stream. All tokens of a stream are
// created through it and share its dialect and file table.
type List struct {
	front     *Token
	back      *Token
	dialect   dialect.Dialect
	files     []string
	maxValues int
}

// NewList creates an empty list for the given dialect.
func NewList(d dialect.Dialect) *List {
	return &List{dialect: d}
}

func (l *List) Front() *Token { return l.front }
func (l *List) Back() *Token  { return l.back }

func (l *List) Dialect() dialect.Dialect { return l.dialect }

// SetMaxValues overrides the per-token fact cap. Zero or negative keeps
// the default of ten.
func (l *List) SetMaxValues(n int) { l.maxValues = n }

// AddFile registers a file path and returns its index for token metadata.
func (l *List) AddFile(path string) int {
	l.files = append(l.files, path)
	return len(l.files) - 1
}

// FileName resolves a file index for diagnostics; unknown indexes render
// as the bare index.
func (l *List) FileName(fileIndex int) string {
	if fileIndex >= 0 && fileIndex < len(l.files) {
		return l.files[fileIndex]
	}
	return fmt.Sprintf("%d", fileIndex)
}

// Files returns the registered file paths in index order.
func (l *List) Files() []string { return l.files }

// IsEmpty reports whether the list has no tokens yet. Once seeded, a list
// never becomes empty again.
func (l *List) IsEmpty() bool { return l.front == nil }

// Append adds a token at the back of the stream.
func (l *List) Append(text string, fileIndex, line, column int) *Token {
	tok := &Token{
		list:      l,
		fileIndex: fileIndex,
		line:      line,
		column:    column,
	}
	tok.SetStr(text)
	if l.back != nil {
		tok.index = l.back.index + 1
		tok.previous = l.back
		l.back.next = tok
		l.back = tok
	} else {
		tok.index = 1
		l.front = tok
		l.back = tok
	}
	return tok
}

// InsertToken inserts a new token after t and returns it. Inserting into
// an empty-text token reuses that token instead of allocating.
func (t *Token) InsertToken(text string) *Token {
	return t.insertToken(text, "", "", false)
}

// InsertTokenBefore inserts a new token before t and returns it.
func (t *Token) InsertTokenBefore(text string) *Token {
	return t.insertToken(text, "", "", true)
}

// InsertTokenWithNames inserts a token carrying original-spelling and
// macro-origin annotations.
func (t *Token) InsertTokenWithNames(text, originalName, macroName string, prepend bool) *Token {
	return t.insertToken(text, originalName, macroName, prepend)
}

func (t *Token) insertToken(text, originalName, macroName string, prepend bool) *Token {
	var newTok *Token
	if t.str == "" {
		newTok = t
	} else {
		newTok = &Token{list: t.list}
	}
	newTok.SetStr(text)
	if originalName != "" {
		newTok.originalName = originalName
	}
	if macroName != "" {
		newTok.macroName = macroName
	}
	if newTok == t {
		return newTok
	}

	newTok.line = t.line
	newTok.fileIndex = t.fileIndex
	newTok.progress = t.progress

	if prepend {
		if t.previous != nil {
			newTok.previous = t.previous
			newTok.previous.next = newTok
		} else if t.list != nil {
			t.list.front = newTok
		}
		t.previous = newTok
		newTok.next = t
	} else {
		if t.next != nil {
			newTok.next = t.next
			newTok.next.previous = newTok
		} else if t.list != nil {
			t.list.back = newTok
		}
		t.next = newTok
		newTok.previous = t
	}

	if t.scopeInfo != nil {
		t.propagateScopeInfo(newTok, prepend)
	}
	return newTok
}

// propagateScopeInfo keeps the scope-chain back-references consistent when
// passes synthesize braces, closers, and statements into a stream that
// already carries scope information.
func (t *Token) propagateScopeInfo(newTok *Token, prepend bool) {
	switch newTok.str {
	case "{":
		var addition string
		// This might be the opening of a member function
		tok1 := newTok
		for Match(tok1.previous, "const|volatile|final|override|&|&&|noexcept") {
			tok1 = tok1.previous
		}
		if tok1.previous != nil && tok1.StrAt(-1) == ")" {
			tok1 = tok1.LinkAt(-1)
			if tok1 != nil && tok1.StrAt(-1) == ">" {
				tok1 = tok1.previous.FindOpeningBracket()
			}
			if tok1 != nil && Match(tok1.TokAt(-3), "%name% :: %name%") {
				tok1 = tok1.TokAt(-2)
				scope := tok1.StrAt(-1)
				for Match(tok1.TokAt(-2), ":: %name%") {
					scope = tok1.StrAt(-3) + " :: " + scope
					tok1 = tok1.TokAt(-2)
				}
				addition += scope
			}
		}

		// Or it might be a namespace/class/struct
		if Match(newTok.previous, "%name%|>") {
			nameTok := newTok.previous
			for nameTok != nil && !Match(nameTok, "namespace|class|struct|union %name% {|::|:|<") {
				nameTok = nameTok.previous
			}
			if nameTok != nil {
				part := ""
				for nameTok = nameTok.next; nameTok != nil && !Match(nameTok, "{|:|<"); nameTok = nameTok.next {
					part += nameTok.str + " "
				}
				if part != "" {
					addition += part[:len(part)-1]
				}
			}
		}

		info := symbols.NewScopeInfo(t.scopeInfo.Extend(addition), t.scopeInfo.UsingNamespaces)
		newTok.scopeInfo = info

	case "}":
		// reuse the scope that was active before the matching brace
		matching := newTok.previous
		depth := 0
		for matching != nil && (depth != 0 || matching.str != "{") {
			if matching.str == "}" {
				depth++
			}
			if matching.str == "{" {
				depth--
			}
			matching = matching.previous
		}
		if matching != nil && matching.previous != nil {
			newTok.scopeInfo = matching.previous.scopeInfo
		}

	default:
		if prepend && newTok.previous != nil {
			newTok.scopeInfo = newTok.previous.scopeInfo
		} else {
			newTok.scopeInfo = t.scopeInfo
		}
		if newTok.str == ";" {
			statementStart := newTok
			for statementStart.previous != nil && !Match(statementStart.previous, ";|{") {
				statementStart = statementStart.previous
			}
			if Match(statementStart, "using namespace %name% ::|;") {
				nameSpace := ""
				for tok1 := statementStart.TokAt(2); tok1 != nil && tok1.str != ";"; tok1 = tok1.next {
					if nameSpace != "" {
						nameSpace += " "
					}
					nameSpace += tok1.str
				}
				t.scopeInfo.AddUsingNamespace(nameSpace)
			}
		}
	}
}

// DeleteNext removes count tokens following t. Bracket links into the
// removed run are cleared on the surviving partner.
func (t *Token) DeleteNext(count int) {
	for t.next != nil && count > 0 {
		n := t.next

		// the partner is about to dangle: break the link from its side
		if n.link != nil && n.link.link == n {
			n.link.SetLink(nil)
		}

		t.next = n.next
		n.invalidate()
		count--
	}

	if t.next != nil {
		t.next.previous = t
	} else if t.list != nil {
		t.list.back = t
	}
}

// DeletePrevious removes count tokens preceding t.
func (t *Token) DeletePrevious(count int) {
	for t.previous != nil && count > 0 {
		p := t.previous

		if p.link != nil && p.link.link == p {
			p.link.SetLink(nil)
		}

		t.previous = p.previous
		p.invalidate()
		count--
	}

	if t.previous != nil {
		t.previous.next = t
	} else if t.list != nil {
		t.list.front = t
	}
}

// DeleteThis removes t from the stream by absorbing a neighbor. The sole
// remaining token of a list is cleared to ";" instead of being removed:
// the stream is never empty.
func (t *Token) DeleteThis() {
	switch {
	case t.next != nil:
		t.takeData(t.next)
		t.next.link = nil // mark as unlinked
		t.DeleteNext(1)
	case t.previous != nil:
		t.takeData(t.previous)
		t.previous.link = nil
		t.DeletePrevious(1)
	default:
		t.SetStr(";")
	}
}

// takeData moves the payload of fromToken into t, keeping t's stream
// position. The bracket partner is rewired to t.
func (t *Token) takeData(fromToken *Token) {
	t.str = fromToken.str
	t.kind = fromToken.kind
	t.flags = fromToken.flags

	t.varID = fromToken.varID
	t.exprID = fromToken.exprID
	t.uniqueExpr = fromToken.uniqueExpr
	t.astOperand1 = fromToken.astOperand1
	t.astOperand2 = fromToken.astOperand2
	t.astParent = fromToken.astParent
	t.scopeInfo = fromToken.scopeInfo
	t.variable = fromToken.variable
	t.function = fromToken.function
	t.typ = fromToken.typ
	t.valueType = fromToken.valueType
	t.values = fromToken.values
	t.originalName = fromToken.originalName
	t.macroName = fromToken.macroName
	t.fileIndex = fromToken.fileIndex
	t.line = fromToken.line
	t.column = fromToken.column
	t.index = fromToken.index
	t.progress = fromToken.progress

	t.link = fromToken.link
	if t.link != nil {
		t.link.SetLink(t)
	}
}

// SwapWithNext exchanges t's payload with its successor, fixing bracket
// partners and re-parenting AST children that point into either payload.
func (t *Token) SwapWithNext() {
	n := t.next
	if n == nil {
		return
	}
	t.str, n.str = n.str, t.str
	t.kind, n.kind = n.kind, t.kind
	t.flags, n.flags = n.flags, t.flags
	t.varID, n.varID = n.varID, t.varID
	t.exprID, n.exprID = n.exprID, t.exprID
	t.uniqueExpr, n.uniqueExpr = n.uniqueExpr, t.uniqueExpr
	t.astOperand1, n.astOperand1 = n.astOperand1, t.astOperand1
	t.astOperand2, n.astOperand2 = n.astOperand2, t.astOperand2
	t.astParent, n.astParent = n.astParent, t.astParent
	t.scopeInfo, n.scopeInfo = n.scopeInfo, t.scopeInfo
	t.variable, n.variable = n.variable, t.variable
	t.function, n.function = n.function, t.function
	t.typ, n.typ = n.typ, t.typ
	t.valueType, n.valueType = n.valueType, t.valueType
	t.values, n.values = n.values, t.values
	t.originalName, n.originalName = n.originalName, t.originalName
	t.macroName, n.macroName = n.macroName, t.macroName
	t.fileIndex, n.fileIndex = n.fileIndex, t.fileIndex
	t.line, n.line = n.line, t.line
	t.column, n.column = n.column, t.column
	t.index, n.index = n.index, t.index
	t.progress, n.progress = n.progress, t.progress

	for _, tok := range []*Token{t, n} {
		other := n
		if tok == n {
			other = t
		}
		if tok.astOperand1 != nil && tok.astOperand1.astParent == other {
			tok.astOperand1.astParent = tok
		}
		if tok.astOperand2 != nil && tok.astOperand2.astParent == other {
			tok.astOperand2.astParent = tok
		}
	}

	if n.link != nil {
		n.link.link = t
	}
	if t.link != nil {
		t.link.link = n
	}
	t.link, n.link = n.link, t.link
}

// invalidate detaches a removed token so stale references fail fast.
func (t *Token) invalidate() {
	t.next = nil
	t.previous = nil
	t.link = nil
	t.list = nil
}

// Replace substitutes replaceThis with the already-linked run start..end,
// which is spliced out of its old location. Position metadata of the new
// run is inherited from the replaced token.
func Replace(replaceThis, start, end *Token) {
	// close the hole at the old location of start..end
	if start.previous != nil {
		start.previous.next = end.next
	}
	if end.next != nil {
		end.next.previous = start.previous
	}

	// move start..end into place
	if replaceThis.previous != nil {
		replaceThis.previous.next = start
	}
	if replaceThis.next != nil {
		replaceThis.next.previous = end
	}
	start.previous = replaceThis.previous
	end.next = replaceThis.next

	if l := replaceThis.list; l != nil {
		if l.front == replaceThis {
			l.front = start
		}
		if l.back == end {
			for end.next != nil {
				end = end.next
			}
			l.back = end
		} else if l.back == replaceThis {
			l.back = end
		}
	}

	for tok := start; tok != end.next; tok = tok.next {
		tok.progress = replaceThis.progress
		tok.fileIndex = replaceThis.fileIndex
		tok.line = replaceThis.line
	}

	replaceThis.invalidate()
}

// Move relocates the run srcStart..srcEnd to follow newLocation. The run
// must not contain newLocation or either stream endpoint.
func Move(srcStart, srcEnd, newLocation *Token) {
	// close the gap the moved run leaves behind
	srcStart.previous.next = srcEnd.next
	srcEnd.next.previous = srcStart.previous

	// splice the run in after newLocation
	srcEnd.next = newLocation.next
	srcStart.previous = newLocation

	newLocation.next.previous = srcEnd
	newLocation.next = srcStart

	for tok := srcStart; tok != srcEnd.next; tok = tok.next {
		tok.progress = newLocation.progress
		tok.fileIndex = newLocation.fileIndex
		tok.line = newLocation.line
	}
}

// EraseTokens deletes the tokens strictly between begin and end.
func EraseTokens(begin, end *Token) {
	if begin == nil || begin == end {
		return
	}
	for begin.next != nil && begin.next != end {
		begin.DeleteNext(1)
	}
}

// CreateMutualLinks pairs two delimiter tokens. Linking a token to itself
// is a usage error.
func CreateMutualLinks(begin, end *Token) {
	if begin == nil || end == nil {
		return
	}
	if begin == end {
		diag.Throw(begin.Pos(), diag.InternalSelfLink, "attempt to link token %q to itself", begin.str)
	}
	begin.SetLink(end)
	end.SetLink(begin)
}

// CreateLinks pairs ( ) { } [ ] across the whole stream. Unmatched
// delimiters are soft findings reported into bag; existing angle-bracket
// links are left alone.
func (l *List) CreateLinks(bag *diag.Bag) bool {
	var stack []*Token
	ok := true
	for tok := l.front; tok != nil; tok = tok.next {
		switch tok.str {
		case "(", "{", "[":
			stack = append(stack, tok)
		case ")", "}", "]":
			if len(stack) == 0 {
				ok = false
				if bag != nil {
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.StreamUnmatchedClose,
						Message:  fmt.Sprintf("unmatched %q", tok.str),
						Primary:  tok.Pos(),
					})
				}
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !matchingPair(open.str, tok.str) {
				ok = false
				if bag != nil {
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.StreamMismatchedBracket,
						Message:  fmt.Sprintf("%q closed by %q", open.str, tok.str),
						Primary:  tok.Pos(),
					})
				}
				continue
			}
			CreateMutualLinks(open, tok)
		}
	}
	for _, open := range stack {
		ok = false
		if bag != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.StreamUnmatchedOpen,
				Message:  fmt.Sprintf("unmatched %q", open.str),
				Primary:  open.Pos(),
			})
		}
	}
	return ok
}

func matchingPair(open, closing string) bool {
	switch open {
	case "(":
		return closing == ")"
	case "{":
		return closing == "}"
	case "[":
		return closing == "]"
	}
	return false
}

// AssignProgressValues recomputes each token's 0-100 progress percentage.
func (l *List) AssignProgressValues() {
	total := 0
	for tok := l.front; tok != nil; tok = tok.next {
		total++
	}
	if total == 0 {
		return
	}
	count := 0
	for tok := l.front; tok != nil; tok = tok.next {
		p, err := safecast.Conv[uint8](count * 100 / total)
		if err != nil {
			diag.Throw(tok.Pos(), diag.InternalInfo, "progress overflow: %v", err)
		}
		tok.progress = int(p)
		count++
	}
}

// AssignIndexes renumbers stream indexes from t to the back of the list,
// continuing from the predecessor's index.
func (t *Token) AssignIndexes() {
	index := 1
	if t.previous != nil {
		index = t.previous.index + 1
	}
	for tok := t; tok != nil; tok = tok.next {
		tok.index = index
		index++
	}
}

// AssignIndexes renumbers the whole stream.
func (l *List) AssignIndexes() {
	if l.front != nil {
		l.front.AssignIndexes()
	}
}
