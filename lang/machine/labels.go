package machine

import (
	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/lang/program"
)

// buildLabelTable scans the ordered instruction list once and records the
// index of every LABEL instruction, per spec §4.2. It runs before
// execution starts; a label table is immutable once built. The loader
// defers LABEL's operand-kind check to here: a non-label argument is a
// TYPE error (53), not a structural one (32).
func buildLabelTable(insts []program.Instruction) (map[string]int, error) {
	labels := make(map[string]int)
	for i, inst := range insts {
		if inst.Opcode != program.LABEL {
			continue
		}
		arg := inst.Args[0]
		if arg.Kind != program.KindLabel {
			return nil, diag.Typef("LABEL requires a label-kind argument, got %s", arg.Kind)
		}
		if _, dup := labels[arg.Text]; dup {
			return nil, diag.Semanticf("duplicate label %q", arg.Text)
		}
		labels[arg.Text] = i
	}
	return labels, nil
}
