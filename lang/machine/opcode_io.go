package machine

import (
	"fmt"

	"github.com/vholub/ippc23/lang/program"
	"github.com/vholub/ippc23/lang/value"
)

// opWrite implements WRITE <symb>: print the operand's canonical text,
// with NIL printing as the empty string.
func (th *Thread) opWrite(inst program.Instruction) (int, error) {
	a, err := th.resolveSymb(inst.Args[0])
	if err != nil {
		return 0, err
	}
	fmt.Fprint(th.stdout, renderValue(a))
	return th.pc, nil
}

// opDprint implements DPRINT <symb>: like WRITE, but to stderr and with
// no effect on program semantics.
func (th *Thread) opDprint(inst program.Instruction) (int, error) {
	a, err := th.resolveSymb(inst.Args[0])
	if err != nil {
		return 0, err
	}
	fmt.Fprint(th.stderr, renderValue(a))
	return th.pc, nil
}

func renderValue(v value.Value) string {
	if value.IsNil(v) {
		return ""
	}
	return v.String()
}

// opBreakDump implements BREAK: a diagnostic snapshot of the interpreter's
// state, written to stderr, with no effect on program semantics.
func (th *Thread) opBreakDump() (int, error) {
	fmt.Fprintf(th.stderr, "BREAK at instruction %d, %d instruction(s) executed\n", th.pc, th.steps)
	dump := th.frames.snapshotAll()
	for _, frameName := range []string{"GF", "TF", "LF"} {
		lines, ok := dump[frameName]
		if !ok {
			continue
		}
		fmt.Fprintf(th.stderr, "%s:\n", frameName)
		for _, line := range lines {
			fmt.Fprintf(th.stderr, "  %s\n", line)
		}
	}
	return th.pc, nil
}
