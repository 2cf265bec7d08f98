package token

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// StringifyOptions selects the annotations rendered by Stringify and
// StringifyList.
type StringifyOptions struct {
	VarID       bool
	ExprID      bool
	IDType      bool // prefix ids with var/expr
	Attributes  bool
	Macro       bool
	LineNumbers bool
	LineBreaks  bool
	Files       bool
}

// ForDebug renders attributes and source layout, without ids.
func ForDebug() StringifyOptions {
	return StringifyOptions{
		Attributes:  true,
		Macro:       true,
		LineNumbers: true,
		LineBreaks:  true,
		Files:       true,
	}
}

// ForDebugVarID is ForDebug plus variable ids.
func ForDebugVarID() StringifyOptions {
	o := ForDebug()
	o.VarID = true
	return o
}

// ForDebugExprID is ForDebug plus expression ids.
func ForDebugExprID() StringifyOptions {
	o := ForDebug()
	o.ExprID = true
	o.IDType = true
	return o
}

// ForPrintOut renders everything.
func ForPrintOut() StringifyOptions {
	o := ForDebug()
	o.VarID = true
	o.ExprID = true
	o.IDType = true
	return o
}

// Stringify renders one token with the selected annotations.
func (t *Token) Stringify(options StringifyOptions) string {
	var sb strings.Builder
	if options.Attributes {
		if t.IsUnsigned() {
			sb.WriteString("unsigned ")
		} else if t.IsSigned() {
			sb.WriteString("signed ")
		}
		if t.IsComplex() {
			sb.WriteString("_Complex ")
		}
		if t.IsLong() && t.kind != String && t.kind != Char {
			sb.WriteString("long ")
		}
	}
	if options.Macro && t.IsExpandedMacro() {
		sb.WriteByte('$')
	}
	switch {
	case t.IsName() && strings.ContainsRune(t.str, ' '):
		for _, c := range t.str {
			if c != ' ' {
				sb.WriteRune(c)
			}
		}
	case len(t.str) == 0 || t.str[0] != '"' || !strings.ContainsRune(t.str, 0):
		sb.WriteString(t.str)
	default:
		for i := 0; i < len(t.str); i++ {
			if t.str[i] == 0 {
				sb.WriteString("\\0")
			} else {
				sb.WriteByte(t.str[i])
			}
		}
	}
	if options.VarID && t.varID != 0 {
		sb.WriteByte('@')
		if options.IDType {
			sb.WriteString("var")
		}
		sb.WriteString(strconv.Itoa(t.varID))
	} else if options.ExprID && t.exprID != 0 {
		sb.WriteByte('@')
		if options.IDType {
			sb.WriteString("expr")
		}
		if t.uniqueExpr {
			sb.WriteString("UNIQUE")
		} else {
			sb.WriteString(strconv.Itoa(t.exprID))
		}
	}
	return sb.String()
}

// StringifyList renders the stream from t up to end (exclusive; nil means
// to the back), with file markers and line layout per options. fileNames
// resolves file indexes for the ##file markers.
func (t *Token) StringifyList(options StringifyOptions, fileNames []string, end *Token) string {
	if t == end {
		return ""
	}
	var sb strings.Builder

	lineNumber := t.line
	if options.LineNumbers {
		lineNumber--
	}
	fileIdx := t.fileIndex
	if options.Files {
		fileIdx = -1
	}
	lineNumbers := map[int]int{}
	for tok := t; tok != end; tok = tok.next {
		if tok == nil {
			return sb.String()
		}
		fileChange := false
		if tok.fileIndex != fileIdx {
			if fileIdx != -1 {
				lineNumbers[fileIdx] = tok.fileIndex
			}
			fileIdx = tok.fileIndex
			if options.Files {
				sb.WriteString("\n\n##file ")
				if len(fileNames) > tok.fileIndex {
					sb.WriteString(fileNames[tok.fileIndex])
				} else {
					sb.WriteString(strconv.Itoa(fileIdx))
				}
				sb.WriteByte('\n')
			}
			lineNumber = lineNumbers[fileIdx]
			fileChange = true
		}

		if options.LineBreaks && (lineNumber != tok.line || fileChange) {
			if lineNumber+4 < tok.line && fileIdx == tok.fileIndex {
				// large gap: elide the blank lines
				sb.WriteByte('\n')
				sb.WriteString(strconv.Itoa(lineNumber + 1))
				sb.WriteString(":\n|\n")
				sb.WriteString(strconv.Itoa(tok.line - 1))
				sb.WriteString(":\n")
				sb.WriteString(strconv.Itoa(tok.line))
				sb.WriteString(": ")
			} else if t == tok && options.LineNumbers {
				sb.WriteString(strconv.Itoa(tok.line))
				sb.WriteString(": ")
			} else if lineNumber > tok.line {
				lineNumber = tok.line
				sb.WriteByte('\n')
				if options.LineNumbers {
					sb.WriteString(strconv.Itoa(lineNumber))
					sb.WriteString(": ")
				}
			} else {
				for lineNumber < tok.line {
					lineNumber++
					sb.WriteByte('\n')
					if options.LineNumbers {
						sb.WriteString(strconv.Itoa(lineNumber))
						sb.WriteByte(':')
						if lineNumber == tok.line {
							sb.WriteByte(' ')
						}
					}
				}
			}
			lineNumber = tok.line
		}

		sb.WriteString(tok.Stringify(options))
		if tok.next != end && (!options.LineBreaks || (tok.next.line == tok.line && tok.next.fileIndex == tok.fileIndex)) {
			sb.WriteByte(' ')
		}
	}
	if options.LineBreaks && (options.Files || options.LineNumbers) {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintOut writes the fully annotated stream for debugging.
func (t *Token) PrintOut(w io.Writer, title string, fileNames []string) {
	if title != "" {
		fmt.Fprintf(w, "\n### %s ###\n", title)
	}
	fmt.Fprintln(w, t.StringifyList(ForPrintOut(), fileNames, nil))
}

// PrintLines writes the next lines of the stream with expression ids.
func (t *Token) PrintLines(w io.Writer, lines int) {
	end := t
	for end != nil && end.line < lines+t.line {
		end = end.next
	}
	fmt.Fprintln(w, t.StringifyList(ForDebugExprID(), nil, end))
}

func indentAst(sb *strings.Builder, indent1, indent2 int) {
	for i := 0; i < indent1; i++ {
		sb.WriteByte(' ')
	}
	for i := indent1; i < indent2; i += 2 {
		sb.WriteString("| ")
	}
}

func (t *Token) astStringVerboseRecursive(sb *strings.Builder, indent1, indent2 int) {
	if t.IsExpandedMacro() {
		sb.WriteByte('$')
	}
	sb.WriteString(t.str)
	if t.valueType != nil {
		sb.WriteString(" '")
		sb.WriteString(t.valueType.Str())
		sb.WriteByte('\'')
	}
	if t.function != nil {
		fmt.Fprintf(sb, " f:%p", t.function)
	}
	sb.WriteByte('\n')

	if t.astOperand1 != nil {
		i1, i2 := indent1, indent2+2
		if indent1 == indent2 && t.astOperand2 == nil {
			i1 += 2
		}
		indentAst(sb, indent1, indent2)
		if t.astOperand2 != nil {
			sb.WriteString("|-")
		} else {
			sb.WriteString("`-")
		}
		t.astOperand1.astStringVerboseRecursive(sb, i1, i2)
	}
	if t.astOperand2 != nil {
		i1, i2 := indent1, indent2+2
		if indent1 == indent2 {
			i1 += 2
		}
		indentAst(sb, indent1, indent2)
		sb.WriteString("`-")
		t.astOperand2.astStringVerboseRecursive(sb, i1, i2)
	}
}

// AstStringVerbose renders the expression tree rooted at t as an indented
// outline.
func (t *Token) AstStringVerbose() string {
	var sb strings.Builder
	t.astStringVerboseRecursive(&sb, 0, 0)
	return sb.String()
}

// AstStringZ3 renders the expression tree rooted at t as s-expressions.
func (t *Token) AstStringZ3() string {
	if t.astOperand1 == nil {
		return t.str
	}
	if t.astOperand2 == nil {
		return "(" + t.str + " " + t.astOperand1.AstStringZ3() + ")"
	}
	return "(" + t.str + " " + t.astOperand1.AstStringZ3() + " " + t.astOperand2.AstStringZ3() + ")"
}

// PrintAst writes every expression tree in the stream from t on, with the
// source position of each root.
func (t *Token) PrintAst(w io.Writer, fileNames []string) {
	fmt.Fprintf(w, "\n\n##AST\n")
	printed := map[*Token]bool{}
	for tok := t; tok != nil; tok = tok.next {
		if tok.astParent == nil && tok.astOperand1 != nil {
			if printed[tok] {
				continue
			}
			printed[tok] = true
			name := strconv.Itoa(tok.fileIndex)
			if tok.fileIndex < len(fileNames) {
				name = fileNames[tok.fileIndex]
			}
			fmt.Fprintf(w, "[%s:%d]\n%s\n", name, tok.line, tok.AstStringVerbose())
			if tok.str == "(" && tok.link != nil {
				tok = tok.link
			}
		}
	}
}

// PrintValueFlow writes every token's facts, grouped by file and line.
func (t *Token) PrintValueFlow(w io.Writer, files []string) {
	var sb strings.Builder
	fileIdx := -1
	line := 0
	sb.WriteString("\n\n##Value flow\n")
	for tok := t; tok != nil; tok = tok.next {
		values := tok.values
		if len(values) == 0 {
			continue
		}
		if fileIdx != tok.fileIndex {
			sb.WriteString("File ")
			if tok.fileIndex < len(files) {
				sb.WriteString(files[tok.fileIndex])
			} else {
				sb.WriteString(strconv.Itoa(tok.fileIndex))
			}
			sb.WriteByte('\n')
			line = 0
		}
		if line != tok.line {
			sb.WriteString("Line ")
			sb.WriteString(strconv.Itoa(tok.line))
			sb.WriteByte('\n')
		}
		fileIdx = tok.fileIndex
		line = tok.line

		kind := values[0].Kind
		same := true
		for i := range values {
			if values[i].Kind != kind {
				same = false
				break
			}
		}
		sb.WriteString("  ")
		sb.WriteString(tok.str)
		sb.WriteByte(' ')
		if same {
			switch kind {
			case Impossible, Known:
				sb.WriteString("always ")
			case Inconclusive:
				sb.WriteString("inconclusive ")
			case Possible:
				sb.WriteString("possible ")
			}
		}
		if len(values) > 1 {
			sb.WriteByte('{')
		}
		for i := range values {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(values[i].String())
		}
		if len(values) > 1 {
			sb.WriteString("}\n")
		} else {
			sb.WriteByte('\n')
		}
	}
	io.WriteString(w, sb.String())
}
