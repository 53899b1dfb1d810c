package machine

import (
	"io"
	"os"

	"github.com/vholub/ippc23/lang/input"
	"github.com/vholub/ippc23/lang/program"
)

// Thread holds all of a single interpretation's mutable state: frames,
// the two auxiliary stacks, the program counter and the label table. All
// mutation flows through Run; there is no module-level global (spec §9).
type Thread struct {
	// Stdout and Stderr are the destinations for WRITE and for
	// DPRINT/BREAK diagnostics, respectively. If nil, os.Stdout and
	// os.Stderr are used.
	Stdout io.Writer
	Stderr io.Writer

	// Input supplies the lines consumed by READ. If nil, READ always
	// observes end-of-input.
	Input *input.Source

	// MaxSteps bounds the number of instructions executed before the
	// thread aborts as a safety net against runaway programs. A value
	// <= 0 means unlimited, matching the data stack's own unboundedness.
	MaxSteps int

	insts  []program.Instruction
	labels map[string]int

	frames *FrameStore
	data   dataStack
	calls  callStack

	pc    int
	steps int

	stdout io.Writer
	stderr io.Writer
	input  *input.Source
}

// New returns a Thread ready to execute insts, with labels already
// resolved by buildLabelTable.
func New(insts []program.Instruction, labels map[string]int) *Thread {
	return &Thread{
		insts:  insts,
		labels: labels,
		frames: NewFrameStore(),
	}
}

// NewFromProgram validates the label table for insts and returns a
// ready-to-run Thread, or the *diag.Error a duplicate/malformed LABEL
// produces.
func NewFromProgram(insts []program.Instruction) (*Thread, error) {
	labels, err := buildLabelTable(insts)
	if err != nil {
		return nil, err
	}
	return New(insts, labels), nil
}

func (th *Thread) init() {
	if th.Stdout != nil {
		th.stdout = th.Stdout
	} else {
		th.stdout = os.Stdout
	}
	if th.Stderr != nil {
		th.stderr = th.Stderr
	} else {
		th.stderr = os.Stderr
	}
	if th.Input != nil {
		th.input = th.Input
	} else {
		th.input = input.Empty()
	}
}

// haltError is returned by the EXIT handler to unwind Run with an
// explicit, non-error termination code.
type haltError struct{ code int }

func (h *haltError) Error() string { return "exit" }

// Run executes instructions from pc 0 until the program counter runs off
// the end of the instruction list (normal termination, exit 0), an EXIT
// instruction runs (explicit termination with its own code), or an
// opcode handler returns a *diag.Error (failure termination).
func (th *Thread) Run() (int, error) {
	th.init()

	for th.pc < len(th.insts) {
		th.steps++
		if th.MaxSteps > 0 && th.steps > th.MaxSteps {
			return 0, errStepLimit(th.MaxSteps)
		}

		inst := th.insts[th.pc]
		next, err := th.step(inst)
		if err != nil {
			if h, ok := err.(*haltError); ok {
				return h.code, nil
			}
			return 0, err
		}
		th.pc = next + 1
	}
	return 0, nil
}
