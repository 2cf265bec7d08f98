// Package token is the in-memory representation of one parsed translation
// unit: a doubly linked stream of tokens owned by a List, with a binary
// expression tree, bracket links, and per-token value facts layered on top.
//
// Invariants:
//   - The stream is a single doubly linked list per List; front has no
//     previous and back has no next. A List is never empty once seeded:
//     deleting the last token clears it to ";" instead.
//   - Bracket links are symmetric (a.Link() == b iff b.Link() == a) and a
//     token never links to itself. Deleting a token clears its partner's
//     link first.
//   - AST parent/operand consistency: a token is operand1 xor operand2 of
//     its parent, and operand chains never cycle.
//   - A token has kind Variable iff its varID is nonzero; classification
//     re-runs whenever text, varID, or the bracket link changes.
//   - A token's fact list never holds two known facts of the same semantic
//     type with different values.
//
// Usage errors (unbound %varid% binding, self-links, AST cycles, expression
// boundaries that violate stream order) abort the calling pass via
// diag.Throw. Soft failures (no bracket match, pattern mismatch, rejected
// fact) are ordinary return values.
//
// A List must only be mutated from one goroutine; concurrency across
// translation units is one List per goroutine.
package token
