package value

import (
	"strconv"

	"github.com/vholub/ippc23/internal/diag"
)

// FromLiteral builds the Value denoted by a literal operand already
// validated by the loader: kind is one of "int", "string", "bool", "nil"
// and text is its (already escape-decoded, for strings) body.
//
// The loader guarantees text is well-formed for kind, so the error return
// only guards against a loader/machine contract violation; it should never
// trigger for a program that passed loading.
func FromLiteral(kind, text string) (Value, error) {
	switch kind {
	case "int":
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, diag.Typef("literal int %q is malformed", text)
		}
		return Int(n), nil
	case "string":
		return Str(text), nil
	case "bool":
		switch text {
		case "true":
			return True, nil
		case "false":
			return False, nil
		}
		return nil, diag.Typef("literal bool %q is malformed", text)
	case "nil":
		return Nil, nil
	}
	return nil, diag.Typef("unrecognized literal kind %q", kind)
}

// ValidIntText reports whether s is a valid decimal representation of a
// signed 64-bit integer, as required of an <arg type="int"> body.
func ValidIntText(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// ValidBoolText reports whether s is "true" or "false", as required of an
// <arg type="bool"> body.
func ValidBoolText(s string) bool { return s == "true" || s == "false" }
