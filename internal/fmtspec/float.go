package fmtspec

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const defaultPrecision = 6

// Float renders v according to the specification.
func (s Spec) Float(v float64) string {
	neg := math.Signbit(v) && !math.IsNaN(v)
	body := s.magnitude(math.Abs(v))

	if neg && s.NoNegZero && !math.IsInf(v, 0) && isZero(body) {
		neg = false
	}

	var sign string
	switch {
	case neg:
		sign = "-"
	case s.Sign == '+':
		sign = "+"
	case s.Sign == ' ':
		sign = " "
	}

	if s.Grouping != 0 {
		body = s.group(sign, body)
	}

	return s.pad(sign, body)
}

// magnitude renders a non-negative value without sign, padding or grouping.
func (s Spec) magnitude(v float64) string {
	upper := s.Type == 'E' || s.Type == 'F' || s.Type == 'G'

	if math.IsInf(v, 0) || math.IsNaN(v) {
		body := "inf"
		if math.IsNaN(v) {
			body = "nan"
		}
		if upper {
			body = strings.ToUpper(body)
		}
		if s.Type == '%' {
			body += "%"
		}
		return body
	}

	prec := s.Precision

	var body string
	switch s.Type {
	case 'f', 'F':
		if prec < 0 {
			prec = defaultPrecision
		}
		body = strconv.FormatFloat(v, 'f', prec, 64)
		if s.Alternate && prec == 0 {
			body += "."
		}
	case '%':
		if prec < 0 {
			prec = defaultPrecision
		}
		body = strconv.FormatFloat(v*100, 'f', prec, 64)
		if s.Alternate && prec == 0 {
			body += "."
		}
		body += "%"
	case 'e', 'E':
		if prec < 0 {
			prec = defaultPrecision
		}
		body = strconv.FormatFloat(v, 'e', prec, 64)
		if s.Alternate && prec == 0 {
			body = strings.Replace(body, "e", ".e", 1)
		}
	case 'g', 'G', 'n':
		if prec < 0 {
			prec = defaultPrecision
		}
		body = general(v, prec, s.Alternate, false)
	default:
		if prec < 0 {
			body = shortest(v)
		} else {
			body = general(v, prec, s.Alternate, true)
		}
	}

	if upper {
		body = strings.ToUpper(body)
	}
	return body
}

// shortest renders the shortest decimal that round-trips to v. Scientific
// notation is used when the decimal exponent is below -4 or at least 16.
func shortest(v float64) string {
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	digits, exp := splitExp(sci)
	if exp < -4 || exp >= 16 {
		return sci
	}
	return fixed(digits, exp)
}

// general implements the "g" presentation with prec significant digits.
// When addDot is set, fixed notation keeps at least one fractional digit,
// so scientific notation starts one exponent earlier: the digits must fit
// in front of the ".0".
func general(v float64, prec int, alt, addDot bool) string {
	if prec == 0 {
		prec = 1
	}
	sci := strconv.FormatFloat(v, 'e', prec-1, 64)
	_, exp := splitExp(sci)

	limit := prec
	if addDot {
		limit = prec - 1
	}
	if exp < -4 || exp >= limit {
		if alt {
			if !strings.Contains(sci, ".") {
				sci = strings.Replace(sci, "e", ".e", 1)
			}
			return sci
		}
		mant, tail, _ := strings.Cut(sci, "e")
		return trimZeros(mant) + "e" + tail
	}

	body := strconv.FormatFloat(v, 'f', prec-1-exp, 64)
	if alt {
		if !strings.Contains(body, ".") {
			body += "."
		}
		return body
	}
	body = trimZeros(body)
	if addDot && !strings.Contains(body, ".") {
		body += ".0"
	}
	return body
}

// splitExp splits a strconv 'e' rendering into its significant digits and
// decimal exponent.
func splitExp(sci string) (string, int) {
	mant, tail, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(tail)
	return strings.Replace(mant, ".", "", 1), exp
}

// fixed lays out significant digits with the given decimal exponent in
// positional notation, always keeping a fractional part.
func fixed(digits string, exp int) string {
	var b strings.Builder
	switch {
	case exp < 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -exp-1))
		b.WriteString(digits)
	case exp+1 >= len(digits):
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", exp+1-len(digits)))
		b.WriteString(".0")
	default:
		b.WriteString(digits[:exp+1])
		b.WriteByte('.')
		b.WriteString(digits[exp+1:])
	}
	return b.String()
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// isZero reports whether a rendered magnitude has no nonzero mantissa digit.
func isZero(body string) bool {
	mant, _, _ := strings.Cut(body, "e")
	for i := 0; i < len(mant); i++ {
		if c := mant[i]; c >= '1' && c <= '9' {
			return false
		}
	}
	return true
}

// group inserts thousands separators into the integer part of body. With
// zero padding the padding digits are grouped too.
func (s Spec) group(sign, body string) string {
	end := strings.IndexAny(body, ".eE%")
	if end < 0 {
		end = len(body)
	}
	intPart, rest := body[:end], body[end:]
	if !isDigits(intPart) {
		return body
	}

	grouped := groupDigits(intPart, s.Grouping)
	if s.Fill == '0' && s.Align == '=' {
		for len(sign)+len(grouped)+len(rest) < s.Width {
			intPart = "0" + intPart
			grouped = groupDigits(intPart, s.Grouping)
		}
	}
	return grouped + rest
}

func groupDigits(digits string, sep byte) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func (s Spec) pad(sign, body string) string {
	n := utf8.RuneCountInString(sign) + utf8.RuneCountInString(body)
	if n >= s.Width {
		return sign + body
	}
	fill := strings.Repeat(string(s.Fill), s.Width-n)

	switch s.Align {
	case '<':
		return sign + body + fill
	case '^':
		left := (s.Width - n) / 2
		right := s.Width - n - left
		return strings.Repeat(string(s.Fill), left) + sign + body + strings.Repeat(string(s.Fill), right)
	case '=':
		return sign + fill + body
	default:
		return fill + sign + body
	}
}
