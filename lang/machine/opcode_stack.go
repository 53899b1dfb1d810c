package machine

import "github.com/vholub/ippc23/lang/program"

// opPushs implements PUSHS <symb>: resolve and push onto the data stack.
func (th *Thread) opPushs(inst program.Instruction) (int, error) {
	val, err := th.resolveSymb(inst.Args[0])
	if err != nil {
		return 0, err
	}
	th.data.push(val)
	return th.pc, nil
}

// opPops implements POPS <var>: pop the data stack into a variable.
func (th *Thread) opPops(inst program.Instruction) (int, error) {
	val, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, val); err != nil {
		return 0, err
	}
	return th.pc, nil
}
