package machine

import (
	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/lang/program"
)

// opMove implements MOVE <var> <symb>: copy a resolved operand into a
// variable.
func (th *Thread) opMove(inst program.Instruction) (int, error) {
	val, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	if err := th.frames.Set(inst.Args[0].Var, val); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opDefvar implements DEFVAR <var>: declare a new, unset variable slot.
// The loader defers DEFVAR's operand-kind check to here (spec §4.2): a
// non-var argument is a TYPE error, not a structural one.
func (th *Thread) opDefvar(inst program.Instruction) (int, error) {
	arg := inst.Args[0]
	if arg.Kind != program.KindVar {
		return 0, diag.Typef("DEFVAR requires a var-kind argument, got %s", arg.Kind)
	}
	if err := th.frames.Define(arg.Var); err != nil {
		return 0, err
	}
	return th.pc, nil
}

// opCall implements CALL <label>: push the return address and jump. The
// loader defers CALL's operand-kind check to here (spec §4.2): a
// non-label argument is a TYPE error, not a structural one.
func (th *Thread) opCall(inst program.Instruction) (int, error) {
	arg := inst.Args[0]
	if arg.Kind != program.KindLabel {
		return 0, diag.Typef("CALL requires a label-kind argument, got %s", arg.Kind)
	}
	target, err := th.labelTarget(arg)
	if err != nil {
		return 0, err
	}
	th.calls.push(th.pc)
	return target, nil
}

// opReturn implements RETURN: pop and jump to the saved return address.
func (th *Thread) opReturn() (int, error) {
	target, err := th.calls.pop()
	if err != nil {
		return 0, err
	}
	return target, nil
}
