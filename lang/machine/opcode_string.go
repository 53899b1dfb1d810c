package machine

import (
	"github.com/vholub/ippc23/lang/program"
	"github.com/vholub/ippc23/lang/value"
)

// opConcat implements CONCAT <var> <symb> <symb>.
func (th *Thread) opConcat(inst program.Instruction) (int, error) {
	a, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	b, err := th.resolveSymb(inst.Args[2])
	if err != nil {
		return 0, err
	}
	as, err := value.AsStr("CONCAT", a)
	if err != nil {
		return 0, err
	}
	bs, err := value.AsStr("CONCAT", b)
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, value.Concat(as, bs)); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opStrlen implements STRLEN <var> <symb>.
func (th *Thread) opStrlen(inst program.Instruction) (int, error) {
	a, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	as, err := value.AsStr("STRLEN", a)
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, value.Strlen(as)); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opGetchar implements GETCHAR <var> <symb> <symb>.
func (th *Thread) opGetchar(inst program.Instruction) (int, error) {
	s, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	idx, err := th.resolveSymb(inst.Args[2])
	if err != nil {
		return 0, err
	}
	ss, err := value.AsStr("GETCHAR", s)
	if err != nil {
		return 0, err
	}
	ii, err := value.AsInt("GETCHAR", idx)
	if err != nil {
		return 0, err
	}
	result, err := value.Getchar(ss, ii)
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, result); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opSetchar implements SETCHAR <var> <symb> <symb>: var is both the base
// string read for the edit and the destination the result is written
// back to.
func (th *Thread) opSetchar(inst program.Instruction) (int, error) {
	current, err := th.frames.Get(inst.Args[0].Var)
	if err != nil {
		return 0, err
	}
	base, err := value.AsStr("SETCHAR", current)
	if err != nil {
		return 0, err
	}
	idx, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	ii, err := value.AsInt("SETCHAR", idx)
	if err != nil {
		return 0, err
	}
	repl, err := th.resolveSymb(inst.Args[2])
	if err != nil {
		return 0, err
	}
	rs, err := value.AsStr("SETCHAR", repl)
	if err != nil {
		return 0, err
	}
	result, err := value.Setchar(base, ii, rs)
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, result); err != nil {
		return 0, err
	}
	return th.pc, nil
}
