package machine

import (
	"github.com/vholub/ippc23/lang/program"
	"github.com/vholub/ippc23/lang/value"
)

// opCompare3 implements the three-operand LT/GT/EQ.
func (th *Thread) opCompare3(inst program.Instruction, fn func(value.Value, value.Value) (value.Bool, error)) (int, error) {
	a, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	b, err := th.resolveSymb(inst.Args[2])
	if err != nil {
		return 0, err
	}
	result, err := fn(a, b)
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, result); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opCompareS implements the stack-suffixed LTS/GTS/EQS.
func (th *Thread) opCompareS(fn func(value.Value, value.Value) (value.Bool, error)) (int, error) {
	b, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	a, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	result, err := fn(a, b)
	if err != nil {
		return 0, err
	}
	th.data.push(result)
	return th.pc, nil
}
