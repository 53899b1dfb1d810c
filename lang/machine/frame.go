package machine

import (
	"sort"

	"github.com/dolthub/swiss"

	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/lang/program"
	"github.com/vholub/ippc23/lang/value"
)

// slot is a variable's storage cell. A nil Value means the variable was
// declared (DEFVAR) but never assigned.
type slot struct {
	value value.Value
}

// frame is a single GF/TF/LF scope: a mapping from variable name to slot,
// backed by an open-addressing hash map the way the teacher's machine.Map
// backs user-level map values.
type frame struct {
	vars *swiss.Map[string, *slot]
}

func newFrame() *frame {
	return &frame{vars: swiss.NewMap[string, *slot](8)}
}

func (f *frame) define(name string) error {
	if _, ok := f.vars.Get(name); ok {
		return diag.Semanticf("variable %q already defined in this frame", name)
	}
	f.vars.Put(name, &slot{})
	return nil
}

func (f *frame) set(name string, v value.Value) error {
	s, ok := f.vars.Get(name)
	if !ok {
		return diag.UndefinedVarf("variable %q is not defined", name)
	}
	s.value = v
	return nil
}

func (f *frame) get(name string) (value.Value, error) {
	s, ok := f.vars.Get(name)
	if !ok {
		return nil, diag.UndefinedVarf("variable %q is not defined", name)
	}
	if s.value == nil {
		return nil, diag.UnsetValuef("variable %q was never assigned a value", name)
	}
	return s.value, nil
}

// typeOf implements TYPE's tolerance of an unset (but defined) variable,
// returning the empty string rather than failing.
func (f *frame) typeOf(name string) (string, error) {
	s, ok := f.vars.Get(name)
	if !ok {
		return "", diag.UndefinedVarf("variable %q is not defined", name)
	}
	if s.value == nil {
		return "", nil
	}
	return s.value.Type(), nil
}

// snapshot returns a deterministically ordered "name=value" dump of the
// frame's contents, for BREAK.
func (f *frame) snapshot() []string {
	names := make([]string, 0, f.vars.Count())
	f.vars.Iter(func(k string, _ *slot) bool {
		names = append(names, k)
		return false
	})
	sort.Strings(names)

	out := make([]string, 0, len(names))
	for _, n := range names {
		s, _ := f.vars.Get(n)
		if s.value == nil {
			out = append(out, n+"=<unset>")
		} else {
			out = append(out, n+"="+s.value.String())
		}
	}
	return out
}

// FrameStore implements the GF/TF/LF frame model of spec §4.3: a single
// global frame, an optional temporary frame, and a stack of local frames.
type FrameStore struct {
	gf *frame
	tf *frame // nil means "absent"
	lf []*frame
}

// NewFrameStore returns a store with a fresh, empty global frame and no
// temporary or local frames.
func NewFrameStore() *FrameStore {
	return &FrameStore{gf: newFrame()}
}

func (fs *FrameStore) frameFor(tag string) (*frame, error) {
	switch tag {
	case "GF":
		return fs.gf, nil
	case "TF":
		if fs.tf == nil {
			return nil, diag.FrameMissingf("temporary frame does not exist")
		}
		return fs.tf, nil
	case "LF":
		if len(fs.lf) == 0 {
			return nil, diag.FrameMissingf("local frame stack is empty")
		}
		return fs.lf[len(fs.lf)-1], nil
	default:
		return nil, diag.Semanticf("unknown frame %q", tag)
	}
}

// CreateFrame installs a fresh, empty temporary frame, discarding any
// existing one.
func (fs *FrameStore) CreateFrame() { fs.tf = newFrame() }

// PushFrame moves the temporary frame onto the top of the local frame
// stack, leaving TF absent.
func (fs *FrameStore) PushFrame() error {
	if fs.tf == nil {
		return diag.FrameMissingf("cannot push: temporary frame does not exist")
	}
	fs.lf = append(fs.lf, fs.tf)
	fs.tf = nil
	return nil
}

// PopFrame moves the top local frame into TF, replacing whatever TF held.
func (fs *FrameStore) PopFrame() error {
	if len(fs.lf) == 0 {
		return diag.FrameMissingf("cannot pop: local frame stack is empty")
	}
	n := len(fs.lf) - 1
	fs.tf = fs.lf[n]
	fs.lf = fs.lf[:n]
	return nil
}

// Define creates an unset slot for v in its frame.
func (fs *FrameStore) Define(v program.Var) error {
	f, err := fs.frameFor(v.Frame)
	if err != nil {
		return err
	}
	return f.define(v.Name)
}

// Set overwrites v's slot with val. v must already be defined.
func (fs *FrameStore) Set(v program.Var, val value.Value) error {
	f, err := fs.frameFor(v.Frame)
	if err != nil {
		return err
	}
	return f.set(v.Name, val)
}

// Get reads v's value. v must be defined and assigned.
func (fs *FrameStore) Get(v program.Var) (value.Value, error) {
	f, err := fs.frameFor(v.Frame)
	if err != nil {
		return nil, err
	}
	return f.get(v.Name)
}

// TypeOf returns v's runtime type name, or "" if v is defined but unset.
// Unlike Get, an unset slot is not an error here (spec §4.7 TYPE).
func (fs *FrameStore) TypeOf(v program.Var) (string, error) {
	f, err := fs.frameFor(v.Frame)
	if err != nil {
		return "", err
	}
	return f.typeOf(v.Name)
}

// LocalDepth returns the number of frames on the local frame stack.
func (fs *FrameStore) LocalDepth() int { return len(fs.lf) }

// snapshotAll returns a BREAK-style dump of every frame's contents.
func (fs *FrameStore) snapshotAll() map[string][]string {
	out := map[string][]string{"GF": fs.gf.snapshot()}
	if fs.tf != nil {
		out["TF"] = fs.tf.snapshot()
	}
	if len(fs.lf) > 0 {
		out["LF"] = fs.lf[len(fs.lf)-1].snapshot()
	}
	return out
}
