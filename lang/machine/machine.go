// Package machine implements the IPPcode23 execution engine: frames, the
// data and call stacks, the label table, and the instruction dispatcher
// and its ~50 opcode handlers.
package machine

import (
	"fmt"

	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/lang/program"
	"github.com/vholub/ippc23/lang/value"
)

func errStepLimit(max int) error {
	return diag.Operandf("exceeded the configured step limit (%d)", max)
}

// step dispatches a single instruction and returns the index the program
// counter should resume at *before* the dispatcher's own post-increment
// (spec §4.5): ordinary handlers return the instruction's own index,
// jump/call/return handlers return the target index.
func (th *Thread) step(inst program.Instruction) (int, error) {
	switch inst.Opcode {
	case program.MOVE:
		return th.opMove(inst)
	case program.CREATEFRAME:
		th.frames.CreateFrame()
		return th.pc, nil
	case program.PUSHFRAME:
		if err := th.frames.PushFrame(); err != nil {
			return 0, err
		}
		return th.pc, nil
	case program.POPFRAME:
		if err := th.frames.PopFrame(); err != nil {
			return 0, err
		}
		return th.pc, nil
	case program.DEFVAR:
		return th.opDefvar(inst)
	case program.CALL:
		return th.opCall(inst)
	case program.RETURN:
		return th.opReturn()

	case program.PUSHS:
		return th.opPushs(inst)
	case program.POPS:
		return th.opPops(inst)
	case program.CLEARS:
		th.data.clear()
		return th.pc, nil

	case program.ADD:
		return th.opArith3(inst, value.Add)
	case program.SUB:
		return th.opArith3(inst, value.Sub)
	case program.MUL:
		return th.opArith3(inst, value.Mul)
	case program.IDIV:
		return th.opArithDiv3(inst)
	case program.ADDS:
		return th.opArithS(value.Add)
	case program.SUBS:
		return th.opArithS(value.Sub)
	case program.MULS:
		return th.opArithS(value.Mul)
	case program.IDIVS:
		return th.opArithDivS()

	case program.LT:
		return th.opCompare3(inst, value.Less)
	case program.GT:
		return th.opCompare3(inst, value.Greater)
	case program.EQ:
		return th.opCompare3(inst, value.Equal)
	case program.LTS:
		return th.opCompareS(value.Less)
	case program.GTS:
		return th.opCompareS(value.Greater)
	case program.EQS:
		return th.opCompareS(value.Equal)

	case program.AND:
		return th.opLogic3(inst, value.And)
	case program.OR:
		return th.opLogic3(inst, value.Or)
	case program.NOT:
		return th.opNot(inst)
	case program.ANDS:
		return th.opLogicS(value.And)
	case program.ORS:
		return th.opLogicS(value.Or)
	case program.NOTS:
		return th.opNotS()

	case program.INT2CHAR:
		return th.opInt2Char(inst)
	case program.INT2CHARS:
		return th.opInt2CharS()
	case program.STRI2INT:
		return th.opStri2Int(inst)
	case program.STRI2INTS:
		return th.opStri2IntS()

	case program.READ:
		return th.opRead(inst)
	case program.WRITE:
		return th.opWrite(inst)

	case program.CONCAT:
		return th.opConcat(inst)
	case program.STRLEN:
		return th.opStrlen(inst)
	case program.GETCHAR:
		return th.opGetchar(inst)
	case program.SETCHAR:
		return th.opSetchar(inst)

	case program.TYPE:
		return th.opType(inst)

	case program.LABEL:
		return th.pc, nil
	case program.JUMP:
		return th.opJump(inst)
	case program.JUMPIFEQ:
		return th.opJumpIf(inst, true)
	case program.JUMPIFNEQ:
		return th.opJumpIf(inst, false)
	case program.JUMPIFEQS:
		return th.opJumpIfS(inst, true)
	case program.JUMPIFNEQS:
		return th.opJumpIfS(inst, false)
	case program.EXIT:
		return th.opExit(inst)

	case program.DPRINT:
		return th.opDprint(inst)
	case program.BREAK:
		return th.opBreakDump()

	default:
		return 0, fmt.Errorf("internal error: unhandled opcode %s", inst.Opcode)
	}
}

// resolveSymb resolves a single SYMB argument (spec §4.6): VAR operands
// are fetched from their frame, literal operands are built directly from
// their already-validated textual payload.
func (th *Thread) resolveSymb(a program.Arg) (value.Value, error) {
	if a.Kind == program.KindVar {
		return th.frames.Get(a.Var)
	}
	return value.FromLiteral(a.Kind.String(), a.Text)
}

// labelTarget resolves a LABEL argument to its instruction index.
func (th *Thread) labelTarget(a program.Arg) (int, error) {
	idx, ok := th.labels[a.Text]
	if !ok {
		return 0, diag.Semanticf("undefined label %q", a.Text)
	}
	return idx, nil
}
