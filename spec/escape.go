package spec

import (
	"strings"
)

// Escape replaces the escape sequences in s with the characters they denote.
//
//   - \s, \n, \r, \t: a space, a line feed, a carriage return, and a horizontal tab.
//   - \xHH: the character whose code is the hexadecimal number HH. It must be 0x7F or less.
//   - \c where c is any other graphic character: c itself.
//
// A backslash at the end of s, or one followed by a non-graphic character, stands for itself.
// \x not followed by two hexadecimal digits denotes x.
func Escape(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}

		c := s[i+1]
		switch {
		case c == 's':
			b.WriteByte(' ')
		case c == 'n':
			b.WriteByte('\n')
		case c == 'r':
			b.WriteByte('\r')
		case c == 't':
			b.WriteByte('\t')
		case c == 'x':
			if i+3 < len(s) && isHexDigit(s[i+2]) && isHexDigit(s[i+3]) {
				code := hexToNum(s[i+2])<<4 | hexToNum(s[i+3])
				if code > 0x7f {
					return "", synErrNonASCIIEscSeq
				}
				b.WriteByte(code)
				i += 3
				continue
			}
			b.WriteByte(c)
		case isGraphic(c):
			b.WriteByte(c)
		default:
			b.WriteByte('\\')
			continue
		}
		i++
	}
	return b.String(), nil
}

// Unescape is the inverse of Escape for display purposes. It converts a space, a line feed, a
// carriage return, and a horizontal tab into \s, \n, \r, and \t, and any other non-graphic byte into
// \xHH.
func Unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			b.WriteString(`\s`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case !isGraphic(c):
			b.WriteString(`\x`)
			b.WriteByte(numToHex(c >> 4))
			b.WriteByte(numToHex(c & 0x0f))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isGraphic(c byte) bool {
	return c > ' ' && c < 0x7f
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func hexToNum(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return 10 + c - 'a'
	default:
		return 10 + c - 'A'
	}
}

func numToHex(d byte) byte {
	if d < 10 {
		return '0' + d
	}
	return 'A' + d - 10
}
