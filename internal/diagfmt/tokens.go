package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/heshpdx/cppcheck/internal/token"
)

type TokenOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	VarID  int    `json:"varId,omitempty"`
	ExprID int    `json:"exprId,omitempty"`
	Link   int    `json:"link,omitempty"`
}

// FormatTokensPretty writes one row per token with its classification and
// position.
func FormatTokensPretty(w io.Writer, list *token.List) error {
	i := 0
	for tok := list.Front(); tok != nil; tok = tok.Next() {
		i++
		fmt.Fprintf(w, "%3d: %-15s %q at %s:%d:%d",
			i, tok.Kind().String(), tok.Str(),
			list.FileName(tok.FileIndex()), tok.Line(), tok.Column())
		if tok.Link() != nil {
			fmt.Fprintf(w, " link=%d", tok.Link().Index())
		}
		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON writes the stream as a JSON array.
func FormatTokensJSON(w io.Writer, list *token.List) error {
	var output []TokenOutput
	for tok := list.Front(); tok != nil; tok = tok.Next() {
		out := TokenOutput{
			Kind:   tok.Kind().String(),
			Text:   tok.Str(),
			File:   list.FileName(tok.FileIndex()),
			Line:   tok.Line(),
			Column: tok.Column(),
			VarID:  tok.VarID(),
			ExprID: tok.ExprID(),
		}
		if tok.Link() != nil {
			out.Link = tok.Link().Index()
		}
		output = append(output, out)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
