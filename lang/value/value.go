// Package value implements the tagged value model of the IPPcode23
// execution engine: a closed set of four variants (int, string, bool,
// nil) manipulated by the machine.
package value

import (
	"strconv"

	"github.com/vholub/ippc23/internal/diag"
)

// Value is implemented by every runtime value the machine can hold in a
// variable, push on the data stack, or pass as an operand.
type Value interface {
	// String returns the value's canonical textual form, as printed by WRITE.
	String() string
	// Type returns the type name used by the TYPE instruction: "int",
	// "string", "bool" or "nil".
	Type() string
}

// Int is a signed host-width integer.
type Int int64

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Type() string   { return "int" }

// Str is an immutable sequence of Unicode code points.
type Str string

func (s Str) String() string { return string(s) }
func (s Str) Type() string   { return "string" }

// Bool is a boolean value.
type Bool bool

const (
	False Bool = false
	True  Bool = true
)

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Type() string { return "bool" }

// nilType is the type of the singleton Nil value.
type nilType struct{}

func (nilType) String() string { return "" }
func (nilType) Type() string   { return "nil" }

// Nil is the singleton nil value.
var Nil Value = nilType{}

var (
	_ Value = Int(0)
	_ Value = Str("")
	_ Value = False
	_ Value = Nil
)

// IsNil reports whether v is the Nil value.
func IsNil(v Value) bool {
	_, ok := v.(nilType)
	return ok
}

// typeErr builds the *diag.Error (exit 53) returned whenever an operation
// receives an operand whose resolved Value tag does not satisfy the
// operation's precondition.
func typeErr(op string, got Value) error {
	if got == nil {
		return diag.Typef("%s: missing operand", op)
	}
	return diag.Typef("%s: unexpected operand type %s", op, got.Type())
}

// AsInt asserts that v is an Int, returning a type-error (exit 53) otherwise.
func AsInt(op string, v Value) (Int, error) {
	i, ok := v.(Int)
	if !ok {
		return 0, typeErr(op, v)
	}
	return i, nil
}

// AsStr asserts that v is a Str, returning a type-error (exit 53) otherwise.
func AsStr(op string, v Value) (Str, error) {
	s, ok := v.(Str)
	if !ok {
		return "", typeErr(op, v)
	}
	return s, nil
}

// AsBool asserts that v is a Bool, returning a type-error (exit 53) otherwise.
func AsBool(op string, v Value) (Bool, error) {
	b, ok := v.(Bool)
	if !ok {
		return false, typeErr(op, v)
	}
	return b, nil
}
