package hypervec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/hypervec/internal/fmtspec"
)

// reprLimit is the number of components GoString shows before eliding.
const reprLimit = 5

// FormatSpec renders v with a format specification.
//
// A spec ending in "h" renders hyperspherical coordinates as
// <norm, angle1, angle2, ...>; any other spec renders the components as
// (c0, c1, ...). In both cases every value is formatted with the remaining
// spec (see internal/fmtspec for the grammar), so "" renders shortest
// representations and ".3fh" renders three decimals of each coordinate.
func (v Vector) FormatSpec(spec string) (string, error) {
	coords := v.components
	left, right := "(", ")"
	if rest, ok := strings.CutSuffix(spec, "h"); ok {
		spec = rest
		coords = v.Spherical()
		left, right = "<", ">"
	}

	parsed, err := fmtspec.Parse(spec)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(left)
	for i, c := range coords {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(parsed.Float(c))
	}
	b.WriteString(right)
	return b.String(), nil
}

// String renders v as a tuple of shortest representations, e.g. (3.0, 4.0).
// A single component keeps a trailing comma: (3.0,).
func (v Vector) String() string {
	if len(v.components) == 1 {
		return "(" + shortest(v.components[0]) + ",)"
	}
	s, _ := v.FormatSpec("")
	return s
}

// GoString renders v as a constructor call, eliding components after the
// fifth: Vector([0.0, 1.0, 2.0, 3.0, 4.0, ...]).
func (v Vector) GoString() string {
	var b strings.Builder
	// The empty vector keeps the brackets, Vector([]), so the output is
	// always a valid constructor call.
	b.WriteString("Vector([")
	for i, c := range v.components {
		if i == reprLimit {
			b.WriteString(", ...")
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortest(c))
	}
	b.WriteString("])")
	return b.String()
}

func shortest(c float64) string {
	s, _ := fmtspec.Float(c, "")
	return s
}

// Format implements fmt.Formatter.
//
//	%v %s   String
//	%#v     GoString
//	%e %E %f %F %g %G
//	        every component with the given flags, width and precision
//	%h      hyperspherical coordinates; %.3h renders three decimals
func (v Vector) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			_, _ = io.WriteString(f, v.GoString())
			return
		}
		_, _ = io.WriteString(f, v.String())
	case 's':
		_, _ = io.WriteString(f, v.String())
	case 'e', 'E', 'f', 'F', 'g', 'G', 'h':
		s, err := v.FormatSpec(specFromState(f, verb))
		if err != nil {
			_, _ = fmt.Fprintf(f, "%%!%c(%v)", verb, err)
			return
		}
		_, _ = io.WriteString(f, s)
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(hypervec.Vector=%s)", verb, v.String())
	}
}

// specFromState translates printf flags into a format specification.
func specFromState(f fmt.State, verb rune) string {
	var b strings.Builder
	if f.Flag('-') {
		b.WriteByte('<')
	}
	switch {
	case f.Flag('+'):
		b.WriteByte('+')
	case f.Flag(' '):
		b.WriteByte(' ')
	}
	if f.Flag('#') {
		b.WriteByte('#')
	}
	if f.Flag('0') && !f.Flag('-') {
		b.WriteByte('0')
	}
	if w, ok := f.Width(); ok {
		b.WriteString(strconv.Itoa(w))
	}
	prec, hasPrec := f.Precision()
	if hasPrec {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(prec))
	}
	if verb == 'h' {
		if hasPrec {
			b.WriteByte('f')
		}
		b.WriteByte('h')
		return b.String()
	}
	b.WriteRune(verb)
	return b.String()
}
