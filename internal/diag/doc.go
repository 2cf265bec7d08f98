// Package diag carries diagnostics produced while building and mutating
// token streams.
// Invariants:
//   - A Bag never grows past its configured limit; Add reports rejection.
//   - InternalError marks a violated precondition in a calling pass. It is
//     raised with Throw, recovered at the pass boundary, and never used for
//     malformed input.
//   - Soft findings (unmatched delimiters, rejected facts) are ordinary
//     Diagnostics, not InternalErrors.
package diag
