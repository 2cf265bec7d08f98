// Package fuzztests houses Go fuzz harnesses that exercise the tokenization
// pipeline (source -> lexer -> bracket linking). Its goal is to smoke test
// robustness and guard against panics or allocator explosions on arbitrary
// inputs.
package fuzztests
