package token

import (
	"encoding/hex"
	"errors"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	ErrUnterminated   = errors.New("unterminated string")
	ErrBadUTF8        = errors.New("invalid utf8")
	ErrBadUnicode     = errors.New("invalid unicode escape")
	ErrBadEscape      = errors.New("invalid escape")
	ErrUnicodeControl = errors.New("unescaped control character")
)

// Quote renders v as a JSON double-quoted string literal.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// scanQuoted validates a double-quoted JSON string starting at d[0] == '"'
// and returns the number of bytes up to and including the closing quote.
func scanQuoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrString
	}
	escaped := false
	start := 1
	n := len(d)
	for start < n {
		r, sz := utf8.DecodeRune(d[start:])
		start += sz
		switch r {
		case utf8.RuneError:
			return 0, ErrBadUTF8
		case '"':
			if !escaped {
				return start, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if start+4 > n {
					return start, ErrUnterminated
				}
				if !allHex(d[start : start+4]) {
					return start, ErrBadUnicode
				}
			}
			escaped = false
		case '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		case '\\':
			escaped = !escaped
		default:
			if unicode.IsControl(r) {
				return start, ErrUnicodeControl
			}
			if escaped {
				return start, ErrBadEscape
			}
			escaped = false
		}
	}
	return 0, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString unescapes a validated double-quoted JSON string literal,
// including the surrounding quotes.  Surrogate pairs in \u escapes are
// combined.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i := 1
	esc := false
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case '\\':
			if esc {
				b.WriteByte('\\')
			}
			esc = !esc
		case '"':
			if !esc {
				return b.String()
			}
			b.WriteByte('"')
			esc = false
		default:
			if !esc {
				b.WriteRune(r)
				continue
			}
			esc = false
			switch r {
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'f':
				b.WriteByte('\f')
			case 'r':
				b.WriteByte('\r')
			case '/':
				b.WriteByte('/')
			case 'b':
				b.WriteByte('\b')
			case 'u':
				u, adv := decodeUnicodeEscape(d[i:])
				b.WriteRune(u)
				i += adv
			default:
				b.WriteRune(utf8.RuneError)
			}
		}
	}
	return b.String()
}

func decodeUnicodeEscape(d []byte) (rune, int) {
	if len(d) < 4 || !allHex(d[:4]) {
		return utf8.RuneError, 0
	}
	u := hex4(d[:4])
	if !utf16.IsSurrogate(u) {
		return u, 4
	}
	// high surrogate followed by \uXXXX low surrogate
	if len(d) >= 10 && d[4] == '\\' && d[5] == 'u' && allHex(d[6:10]) {
		if c := utf16.DecodeRune(u, hex4(d[6:10])); c != utf8.RuneError {
			return c, 10
		}
	}
	return utf8.RuneError, 4
}

func hex4(d []byte) rune {
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d); err != nil {
		return utf8.RuneError
	}
	return rune(dst[0])<<8 | rune(dst[1])
}
