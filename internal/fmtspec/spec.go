package fmtspec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error reports a malformed format specification.
type Error struct {
	Spec   string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid format spec %q: %s", e.Spec, e.Reason)
}

// Spec is a parsed format specification.
type Spec struct {
	Fill      rune
	Align     byte // 0, '<', '>', '=' or '^'
	Sign      byte // 0, '+', '-' or ' '
	NoNegZero bool // "z": coerce negative zero to positive zero
	Alternate bool // "#"
	Width     int
	Grouping  byte // 0, ',' or '_'
	Precision int  // -1 if absent
	Type      byte // 0 if absent
}

func isAlign(c byte) bool {
	return c == '<' || c == '>' || c == '=' || c == '^'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Parse parses a float format specification.
func Parse(s string) (Spec, error) {
	spec := Spec{Fill: ' ', Precision: -1}
	pos := 0

	// Fill may be any (possibly multi-byte) character, but only counts as
	// fill when followed by an alignment character.
	if r, size := utf8.DecodeRuneInString(s); size > 0 && size < len(s) && isAlign(s[size]) {
		spec.Fill = r
		spec.Align = s[size]
		pos = size + 1
	} else if len(s) > 0 && isAlign(s[0]) {
		spec.Align = s[0]
		pos = 1
	}
	explicitAlign := spec.Align != 0

	if pos < len(s) && (s[pos] == '+' || s[pos] == '-' || s[pos] == ' ') {
		spec.Sign = s[pos]
		pos++
	}
	if pos < len(s) && s[pos] == 'z' {
		spec.NoNegZero = true
		pos++
	}
	if pos < len(s) && s[pos] == '#' {
		spec.Alternate = true
		pos++
	}
	if pos < len(s) && s[pos] == '0' {
		if !explicitAlign {
			spec.Fill = '0'
			spec.Align = '='
		}
		pos++
	}

	width, n, err := parseInt(s, pos)
	if err != nil {
		return Spec{}, err
	}
	if n > 0 {
		spec.Width = width
		pos += n
	}

	if pos < len(s) && (s[pos] == ',' || s[pos] == '_') {
		spec.Grouping = s[pos]
		pos++
	}

	if pos < len(s) && s[pos] == '.' {
		pos++
		prec, n, err := parseInt(s, pos)
		if err != nil {
			return Spec{}, err
		}
		if n == 0 {
			return Spec{}, &Error{Spec: s, Reason: "missing precision"}
		}
		spec.Precision = prec
		pos += n
	}

	switch rest := s[pos:]; len(rest) {
	case 0:
	case 1:
		if !strings.ContainsRune("eEfFgGn%", rune(rest[0])) {
			return Spec{}, &Error{Spec: s, Reason: fmt.Sprintf("unknown format code %q for float", rest)}
		}
		spec.Type = rest[0]
	default:
		return Spec{}, &Error{Spec: s, Reason: "invalid format specifier"}
	}

	if spec.Type == 'n' && spec.Grouping != 0 {
		return Spec{}, &Error{Spec: s, Reason: fmt.Sprintf("cannot specify %q with 'n'", spec.Grouping)}
	}

	return spec, nil
}

func parseInt(s string, pos int) (value, n int, err error) {
	for pos+n < len(s) && isDigit(s[pos+n]) {
		value = value*10 + int(s[pos+n]-'0')
		n++
		if value > 1<<20 {
			return 0, 0, &Error{Spec: s, Reason: "too many decimal digits"}
		}
	}
	return value, n, nil
}

// Float formats v with the given specification string.
func Float(v float64, spec string) (string, error) {
	s, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return s.Float(v), nil
}
