package machine

import (
	"strconv"
	"strings"

	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/lang/program"
	"github.com/vholub/ippc23/lang/value"
)

// opInt2Char implements INT2CHAR <var> <symb>.
func (th *Thread) opInt2Char(inst program.Instruction) (int, error) {
	a, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	ai, err := value.AsInt("INT2CHAR", a)
	if err != nil {
		return 0, err
	}
	s, err := value.Int2Char(ai)
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, s); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opInt2CharS implements INT2CHARS.
func (th *Thread) opInt2CharS() (int, error) {
	a, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	ai, err := value.AsInt("INT2CHARS", a)
	if err != nil {
		return 0, err
	}
	s, err := value.Int2Char(ai)
	if err != nil {
		return 0, err
	}
	th.data.push(s)
	return th.pc, nil
}

// opStri2Int implements STRI2INT <var> <symb> <symb>.
func (th *Thread) opStri2Int(inst program.Instruction) (int, error) {
	s, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	idx, err := th.resolveSymb(inst.Args[2])
	if err != nil {
		return 0, err
	}
	ss, err := value.AsStr("STRI2INT", s)
	if err != nil {
		return 0, err
	}
	ii, err := value.AsInt("STRI2INT", idx)
	if err != nil {
		return 0, err
	}
	result, err := value.Stri2Int(ss, ii)
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, result); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opStri2IntS implements STRI2INTS: the index is popped first, then the
// string, mirroring the order PUSHS would have put them on in a
// corresponding STRI2INT-equivalent computation.
func (th *Thread) opStri2IntS() (int, error) {
	idx, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	s, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	ss, err := value.AsStr("STRI2INTS", s)
	if err != nil {
		return 0, err
	}
	ii, err := value.AsInt("STRI2INTS", idx)
	if err != nil {
		return 0, err
	}
	result, err := value.Stri2Int(ss, ii)
	if err != nil {
		return 0, err
	}
	th.data.push(result)
	return th.pc, nil
}

// opRead implements READ <var> <type>: consume the next input line and
// parse it as the requested type. Exhausted input yields NIL for every
// type, and a line that does not parse as an int yields NIL for int; for
// bool, any line other than "true" (case-insensitive) yields false. None
// of these are failures.
func (th *Thread) opRead(inst program.Instruction) (int, error) {
	typeName := inst.Args[1].Text
	line, ok := th.input.Next()

	var val value.Value = value.Nil
	if ok {
		line = strings.TrimSpace(line)
		switch typeName {
		case "int":
			if n, err := strconv.ParseInt(line, 10, 64); err == nil {
				val = value.Int(n)
			}
		case "bool":
			val = value.Bool(strings.EqualFold(line, "true"))
		case "string":
			val = value.Str(line)
		default:
			return 0, diag.Semanticf("READ: unrecognized type %q", typeName)
		}
	}

	if err := th.frames.Set(inst.Args[0].Var, val); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opType implements TYPE <var> <symb>: an unset source variable yields the
// empty string rather than failing (spec §4.7).
func (th *Thread) opType(inst program.Instruction) (int, error) {
	src := inst.Args[1]
	var typeName string
	if src.Kind == program.KindVar {
		var err error
		typeName, err = th.frames.TypeOf(src.Var)
		if err != nil {
			return 0, err
		}
	} else {
		val, err := th.resolveSymb(src)
		if err != nil {
			return 0, err
		}
		typeName = val.Type()
	}
	if err := th.frames.Set(inst.Args[0].Var, value.Str(typeName)); err != nil {
		return 0, err
	}
	return th.pc, nil
}
