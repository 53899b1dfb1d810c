package machine

import (
	"github.com/vholub/ippc23/lang/program"
	"github.com/vholub/ippc23/lang/value"
)

// opArith3 implements the three-operand form of ADD/SUB/MUL: <var> <symb>
// <symb>, both operands resolved and asserted to be INT.
func (th *Thread) opArith3(inst program.Instruction, fn func(value.Int, value.Int) value.Int) (int, error) {
	op := inst.Opcode.String()
	a, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	b, err := th.resolveSymb(inst.Args[2])
	if err != nil {
		return 0, err
	}
	ai, err := value.AsInt(op, a)
	if err != nil {
		return 0, err
	}
	bi, err := value.AsInt(op, b)
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, fn(ai, bi)); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opArithDiv3 implements IDIV <var> <symb> <symb>, separated from opArith3
// because division can itself fail (divide by zero).
func (th *Thread) opArithDiv3(inst program.Instruction) (int, error) {
	a, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	b, err := th.resolveSymb(inst.Args[2])
	if err != nil {
		return 0, err
	}
	ai, err := value.AsInt("IDIV", a)
	if err != nil {
		return 0, err
	}
	bi, err := value.AsInt("IDIV", b)
	if err != nil {
		return 0, err
	}
	result, err := value.IDiv(ai, bi)
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, result); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opArithS implements the stack-suffixed ADDS/SUBS/MULS: pop the right
// operand, then the left, push the result.
func (th *Thread) opArithS(fn func(value.Int, value.Int) value.Int) (int, error) {
	b, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	a, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	ai, err := value.AsInt("arithmetic", a)
	if err != nil {
		return 0, err
	}
	bi, err := value.AsInt("arithmetic", b)
	if err != nil {
		return 0, err
	}
	th.data.push(fn(ai, bi))
	return th.pc, nil
}

// opArithDivS implements IDIVS.
func (th *Thread) opArithDivS() (int, error) {
	b, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	a, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	ai, err := value.AsInt("IDIVS", a)
	if err != nil {
		return 0, err
	}
	bi, err := value.AsInt("IDIVS", b)
	if err != nil {
		return 0, err
	}
	result, err := value.IDiv(ai, bi)
	if err != nil {
		return 0, err
	}
	th.data.push(result)
	return th.pc, nil
}
