package machine

import (
	"github.com/vholub/ippc23/lang/program"
	"github.com/vholub/ippc23/lang/value"
)

// opLogic3 implements the three-operand AND/OR.
func (th *Thread) opLogic3(inst program.Instruction, fn func(value.Bool, value.Bool) value.Bool) (int, error) {
	op := inst.Opcode.String()
	a, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	b, err := th.resolveSymb(inst.Args[2])
	if err != nil {
		return 0, err
	}
	ab, err := value.AsBool(op, a)
	if err != nil {
		return 0, err
	}
	bb, err := value.AsBool(op, b)
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, fn(ab, bb)); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opNot implements NOT <var> <symb>.
func (th *Thread) opNot(inst program.Instruction) (int, error) {
	a, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	ab, err := value.AsBool("NOT", a)
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, value.Not(ab)); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opLogicS implements the stack-suffixed ANDS/ORS.
func (th *Thread) opLogicS(fn func(value.Bool, value.Bool) value.Bool) (int, error) {
	b, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	a, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	ab, err := value.AsBool("logic", a)
	if err != nil {
		return 0, err
	}
	bb, err := value.AsBool("logic", b)
	if err != nil {
		return 0, err
	}
	th.data.push(fn(ab, bb))
	return th.pc, nil
}

// opNotS implements NOTS.
func (th *Thread) opNotS() (int, error) {
	a, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	ab, err := value.AsBool("NOTS", a)
	if err != nil {
		return 0, err
	}
	th.data.push(value.Not(ab))
	return th.pc, nil
}
