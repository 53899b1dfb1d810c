package machine

import (
	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/lang/program"
	"github.com/vholub/ippc23/lang/value"
)

// opJump implements JUMP <label>.
func (th *Thread) opJump(inst program.Instruction) (int, error) {
	return th.labelTarget(inst.Args[0])
}

// opJumpIf implements JUMPIFEQ/JUMPIFNEQ <label> <symb> <symb>.
func (th *Thread) opJumpIf(inst program.Instruction, wantEqual bool) (int, error) {
	target, err := th.labelTarget(inst.Args[0])
	if err != nil {
		return 0, err
	}
	a, err := th.resolveSymb(inst.Args[1])
	if err != nil {
		return 0, err
	}
	b, err := th.resolveSymb(inst.Args[2])
	if err != nil {
		return 0, err
	}
	eq, err := value.Equal(a, b)
	if err != nil {
		return 0, err
	}
	if bool(eq) == wantEqual {
		return target, nil
	}
	return th.pc, nil
}

// opJumpIfS implements JUMPIFEQS/JUMPIFNEQS <label>: the two compared
// operands come off the data stack rather than the instruction's own
// argument list.
func (th *Thread) opJumpIfS(inst program.Instruction, wantEqual bool) (int, error) {
	target, err := th.labelTarget(inst.Args[0])
	if err != nil {
		return 0, err
	}
	b, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	a, err := th.data.pop()
	if err != nil {
		return 0, err
	}
	eq, err := value.Equal(a, b)
	if err != nil {
		return 0, err
	}
	if bool(eq) == wantEqual {
		return target, nil
	}
	return th.pc, nil
}

// opExit implements EXIT <symb>: the operand must be an INT in [0,49],
// the range the interpreter's own process is willing to terminate with
// on a program's behalf.
func (th *Thread) opExit(inst program.Instruction) (int, error) {
	a, err := th.resolveSymb(inst.Args[0])
	if err != nil {
		return 0, err
	}
	ai, err := value.AsInt("EXIT", a)
	if err != nil {
		return 0, err
	}
	code := int(ai)
	if code < 0 || code > 49 {
		return 0, diag.Operandf("EXIT: code %d out of range [0,49]", code)
	}
	return 0, &haltError{code: code}
}
