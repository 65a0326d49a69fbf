package hypervec

import (
	"fmt"
	"maps"
	"strings"
	"unicode"
	"unicode/utf8"
)

// shortcutNames maps single-letter names to component positions.
const shortcutNames = "xyzt"

// X returns the first component.
func (v Vector) X() (float64, error) { return v.shortcut("x") }

// Y returns the second component.
func (v Vector) Y() (float64, error) { return v.shortcut("y") }

// Z returns the third component.
func (v Vector) Z() (float64, error) { return v.shortcut("z") }

// T returns the fourth component.
func (v Vector) T() (float64, error) { return v.shortcut("t") }

func (v Vector) shortcut(name string) (float64, error) {
	if utf8.RuneCountInString(name) == 1 {
		pos := strings.Index(shortcutNames, name)
		if pos >= 0 && pos < len(v.components) {
			return v.components[pos], nil
		}
	}
	return 0, missingAttribute(name)
}

// Attr returns the attribute called name.
//
// User attributes set with WithAttr take precedence. Otherwise the
// single-letter names x, y, z and t read components 0 to 3 when the
// dimension covers them. Every other name fails with an *AttributeError.
func (v Vector) Attr(name string) (any, error) {
	if value, ok := v.attrs[name]; ok {
		return value, nil
	}
	return v.shortcut(name)
}

// WithAttr returns a copy of v carrying the attribute name=value.
//
// The shortcut names x, y, z and t are read-only and the remaining single
// lowercase letters are reserved; assigning either fails with an
// *AttributeError and v is returned unchanged.
func (v Vector) WithAttr(name string, value any) (Vector, error) {
	if err := checkAssignable(name); err != nil {
		return v, err
	}
	attrs := make(map[string]any, len(v.attrs)+1)
	maps.Copy(attrs, v.attrs)
	attrs[name] = value
	return Vector{components: v.components, attrs: attrs}, nil
}

// Attrs returns a copy of the user attributes.
func (v Vector) Attrs() map[string]any {
	return maps.Clone(v.attrs)
}

func checkAssignable(name string) error {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || size != len(name) {
		return nil
	}
	switch {
	case strings.ContainsRune(shortcutNames, r):
		return &AttributeError{Name: name, Reason: fmt.Sprintf("readonly attribute '%s'", name)}
	case unicode.IsLower(r):
		return &AttributeError{Name: name, Reason: fmt.Sprintf("cannot set single lowercase attribute '%s'", name)}
	}
	return nil
}
