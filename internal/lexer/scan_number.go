package lexer

// scanNumber scans a numeric literal: decimal, octal, hex, and binary
// integers with suffixes, and decimal or hex floats. Digit separators (')
// are consumed and dropped from the token text.
func (lx *Lexer) scanNumber() {
	m := lx.cursor.Mark()
	var out []byte

	hex := false
	if lx.cursor.Peek() == '0' {
		b1 := lx.cursor.PeekAt(1)
		if b1 == 'x' || b1 == 'X' {
			hex = true
			out = append(out, lx.cursor.Bump(), lx.cursor.Bump())
		} else if b1 == 'b' || b1 == 'B' {
			out = append(out, lx.cursor.Bump(), lx.cursor.Bump())
		}
	}

	seenDot := false
	seenExp := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b) || isIdentContinueByte(b):
			// exponent signs belong to the number
			if (!hex && (b == 'e' || b == 'E')) || (hex && (b == 'p' || b == 'P')) {
				seenExp = true
				out = append(out, lx.cursor.Bump())
				if s := lx.cursor.Peek(); s == '+' || s == '-' {
					out = append(out, lx.cursor.Bump())
				}
				continue
			}
			out = append(out, lx.cursor.Bump())
		case b == '.' && !seenDot && !seenExp:
			seenDot = true
			out = append(out, lx.cursor.Bump())
		case b == '\'' && isDigitSeparatorFollower(lx.cursor.PeekAt(1)):
			// digit separator
			lx.cursor.Bump()
		default:
			lx.append(string(out), m)
			return
		}
	}
	lx.append(string(out), m)
}

func isDigitSeparatorFollower(b byte) bool {
	return isDec(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
