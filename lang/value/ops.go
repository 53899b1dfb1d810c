package value

import (
	"strings"
	"unicode/utf8"

	"github.com/vholub/ippc23/internal/diag"
)

// Arithmetic on INT. Both operands must already be Int; callers resolve
// and type-check the SYMB operands before calling these.

func Add(x, y Int) Int { return x + y }
func Sub(x, y Int) Int { return x - y }
func Mul(x, y Int) Int { return x * y }

func IDiv(x, y Int) (Int, error) {
	if y == 0 {
		return 0, diag.Operandf("IDIV: division by zero")
	}
	return x / y, nil
}

// Less implements LT: x and y must share the same tag, one of
// {Int, Str, Bool}.
func Less(x, y Value) (Bool, error) {
	switch a := x.(type) {
	case Int:
		b, ok := y.(Int)
		if !ok {
			return false, typeErr("LT", y)
		}
		return Bool(a < b), nil
	case Str:
		b, ok := y.(Str)
		if !ok {
			return false, typeErr("LT", y)
		}
		return Bool(a < b), nil
	case Bool:
		b, ok := y.(Bool)
		if !ok {
			return false, typeErr("LT", y)
		}
		return Bool(!bool(a) && bool(b)), nil
	default:
		return false, typeErr("LT", x)
	}
}

// Greater implements GT, by the same same-tag rule as Less.
func Greater(x, y Value) (Bool, error) {
	lt, err := Less(x, y)
	if err != nil {
		return false, err
	}
	if lt {
		return false, nil
	}
	eq, err := Equal(x, y)
	if err != nil {
		return false, err
	}
	return Bool(!bool(eq)), nil
}

// Equal implements EQ: matching tags compare by value; NIL equals only
// NIL; any other tag mismatch is a type error.
func Equal(x, y Value) (Bool, error) {
	if IsNil(x) || IsNil(y) {
		return Bool(IsNil(x) && IsNil(y)), nil
	}
	switch a := x.(type) {
	case Int:
		b, ok := y.(Int)
		if !ok {
			return false, typeErr("EQ", y)
		}
		return Bool(a == b), nil
	case Str:
		b, ok := y.(Str)
		if !ok {
			return false, typeErr("EQ", y)
		}
		return Bool(a == b), nil
	case Bool:
		b, ok := y.(Bool)
		if !ok {
			return false, typeErr("EQ", y)
		}
		return Bool(a == b), nil
	default:
		return false, typeErr("EQ", x)
	}
}

// Logical operators on BOOL.

func And(x, y Bool) Bool { return x && y }
func Or(x, y Bool) Bool  { return x || y }
func Not(x Bool) Bool    { return !x }

// Int2Char converts a Unicode code point to the single-character string it
// denotes.
func Int2Char(i Int) (Str, error) {
	r := rune(i)
	if i < 0 || i > utf8.MaxRune || !utf8.ValidRune(r) {
		return "", diag.StringBoundaryf("INT2CHAR: value %d is not a valid Unicode code point", i)
	}
	return Str(r), nil
}

// Stri2Int returns the code point of the idx-th character (by Unicode
// scalar value, not byte) of s.
func Stri2Int(s Str, idx Int) (Int, error) {
	runes := []rune(string(s))
	if idx < 0 || int(idx) >= len(runes) {
		return 0, diag.StringBoundaryf("STRI2INT: index %d out of range for string of length %d", idx, len(runes))
	}
	return Int(runes[idx]), nil
}

// Concat concatenates two strings.
func Concat(a, b Str) Str { return a + b }

// Strlen returns the length of s in characters.
func Strlen(s Str) Int { return Int(len([]rune(string(s)))) }

// Getchar returns the idx-th character of s as a one-character string.
func Getchar(s Str, idx Int) (Str, error) {
	runes := []rune(string(s))
	if idx < 0 || int(idx) >= len(runes) {
		return "", diag.StringBoundaryf("GETCHAR: index %d out of range for string of length %d", idx, len(runes))
	}
	return Str(runes[idx]), nil
}

// Setchar returns a copy of base with its idx-th character replaced by the
// first character of repl.
func Setchar(base Str, idx Int, repl Str) (Str, error) {
	runes := []rune(string(base))
	if idx < 0 || int(idx) >= len(runes) {
		return "", diag.StringBoundaryf("SETCHAR: index %d out of range for string of length %d", idx, len(runes))
	}
	replRunes := []rune(string(repl))
	if len(replRunes) == 0 {
		return "", diag.StringBoundaryf("SETCHAR: replacement string is empty")
	}
	runes[idx] = replRunes[0]
	return Str(runes), nil
}

// DecodeEscapes replaces every \ddd (three decimal digits) escape in s with
// the character at that code point. It is applied once, at load time, to
// the body of every <arg type="string"> element.
func DecodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && isDigit(s[i+1]) && isDigit(s[i+2]) && isDigit(s[i+3]) {
			code := int(s[i+1]-'0')*100 + int(s[i+2]-'0')*10 + int(s[i+3]-'0')
			b.WriteRune(rune(code))
			i += 3
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
