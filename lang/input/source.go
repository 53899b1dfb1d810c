// Package input implements the READ instruction's line source: all input
// lines are read up front (per spec §5, no blocking I/O during
// execution) and handed out one at a time.
package input

import (
	"bufio"
	"io"
)

// Source yields the lines of the interpreter's input stream, in order,
// to successive READ instructions.
type Source struct {
	lines []string
	pos   int
}

// NewSource reads every line of r eagerly and returns a Source over them.
func NewSource(r io.Reader) (*Source, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Source{lines: lines}, nil
}

// Empty returns a Source with no lines. A machine Thread whose Input is
// nil reads from it, so READ always observes end-of-input.
func Empty() *Source { return &Source{} }

// Next returns the next line and true, or ("", false) at end-of-input.
func (s *Source) Next() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.pos]
	s.pos++
	return line, true
}
