package token

import (
	"strings"
)

// Lexical validity checks for C-family numeric literals. They accept the
// spelling only, not the value: overflow is not this layer's business.

func isDigits(s string, lo, hi byte) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < lo || s[i] > hi {
			return false
		}
	}
	return true
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// stripIntSuffix removes a valid integer suffix (u, l, ul, ll, ull, z, ...)
// in any case and order. Reports false for a malformed suffix.
func stripIntSuffix(s string) (string, bool) {
	i := len(s)
	seenU, seenZ := false, false
	ls := 0
	for i > 0 {
		switch s[i-1] {
		case 'u', 'U':
			if seenU {
				return s, false
			}
			seenU = true
		case 'l', 'L':
			ls++
			if ls > 2 {
				return s, false
			}
			// ll must not mix cases
			if ls == 2 && s[i-1] != s[i] {
				return s, false
			}
		case 'z', 'Z':
			if seenZ || ls > 0 {
				return s, false
			}
			seenZ = true
		default:
			return s[:i], true
		}
		i--
	}
	return "", false
}

// isInt reports whether str is a valid integer literal: decimal, octal,
// hex, or binary, with an optional suffix.
func isInt(str string) bool {
	if str == "" {
		return false
	}
	body, ok := stripIntSuffix(str)
	if !ok || body == "" {
		return false
	}
	switch {
	case strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X"):
		return isHexDigits(body[2:])
	case strings.HasPrefix(body, "0b") || strings.HasPrefix(body, "0B"):
		return isDigits(body[2:], '0', '1')
	case body[0] == '0':
		return isDigits(body, '0', '7')
	default:
		return isDigits(body, '0', '9')
	}
}

// isFloat reports whether str is a valid floating literal, including
// exponent forms and hexadecimal floats.
func isFloat(str string) bool {
	if str == "" {
		return false
	}
	// suffix
	switch str[len(str)-1] {
	case 'f', 'F', 'l', 'L':
		str = str[:len(str)-1]
	}
	if str == "" {
		return false
	}

	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		return isHexFloat(str[2:])
	}

	mantissa := str
	exponent := ""
	if i := strings.IndexAny(str, "eE"); i >= 0 {
		mantissa, exponent = str[:i], str[i+1:]
		if !isSignedDigits(exponent) {
			return false
		}
	}

	dot := strings.IndexByte(mantissa, '.')
	if dot < 0 {
		// 1e3 is a float only thanks to its exponent
		return exponent != "" && isDigits(mantissa, '0', '9')
	}
	intPart, fracPart := mantissa[:dot], mantissa[dot+1:]
	if intPart == "" && fracPart == "" {
		return false
	}
	if intPart != "" && !isDigits(intPart, '0', '9') {
		return false
	}
	if fracPart != "" && !isDigits(fracPart, '0', '9') {
		return false
	}
	return true
}

func isSignedDigits(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	return isDigits(s, '0', '9')
}

// isHexFloat validates the part after 0x: hex digits with an optional dot
// and a mandatory p exponent.
func isHexFloat(s string) bool {
	i := strings.IndexAny(s, "pP")
	if i < 0 {
		return false
	}
	mantissa, exponent := s[:i], s[i+1:]
	if !isSignedDigits(exponent) {
		return false
	}
	dot := strings.IndexByte(mantissa, '.')
	if dot < 0 {
		return isHexDigits(mantissa)
	}
	intPart, fracPart := mantissa[:dot], mantissa[dot+1:]
	if intPart == "" && fracPart == "" {
		return false
	}
	if intPart != "" && !isHexDigits(intPart) {
		return false
	}
	if fracPart != "" && !isHexDigits(fracPart) {
		return false
	}
	return true
}
