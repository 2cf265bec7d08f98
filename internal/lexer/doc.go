// Package lexer turns preprocessed C/C++ source into a token stream.
//
// The scanner is byte oriented and never backtracks more than one mark.
// Operators are matched maximal-munch, so >>= and <=> come out as single
// tokens; splitting template closers back apart is the stream's job, not
// the lexer's. Comments and whitespace are skipped, they are not tokens.
//
// Lexical problems (stray bytes, unterminated literals) are soft
// findings reported into a diag.Bag; the scanner always produces a
// stream for the rest of the input.
package lexer
