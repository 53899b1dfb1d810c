package machine

import (
	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/lang/value"
)

// dataStack is the LIFO of typed values backing PUSHS/POPS and the
// stack-suffixed opcode family.
type dataStack struct {
	items []value.Value
}

func (s *dataStack) push(v value.Value) { s.items = append(s.items, v) }

func (s *dataStack) pop() (value.Value, error) {
	if len(s.items) == 0 {
		return nil, diag.UnsetValuef("data stack is empty")
	}
	n := len(s.items) - 1
	v := s.items[n]
	s.items = s.items[:n]
	return v, nil
}

func (s *dataStack) clear() { s.items = s.items[:0] }

// callStack is the LIFO of return addresses backing CALL/RETURN.
type callStack struct {
	items []int
}

func (s *callStack) push(pc int) { s.items = append(s.items, pc) }

func (s *callStack) pop() (int, error) {
	if s.empty() {
		return 0, diag.UnsetValuef("RETURN without a matching CALL")
	}
	n := len(s.items) - 1
	pc := s.items[n]
	s.items = s.items[:n]
	return pc, nil
}

func (s *callStack) empty() bool { return len(s.items) == 0 }
