package cliio

import (
	"math/big"
	"os"

	"rsatool/internal/rsa"
)

// Apply stores every pending assignment into s. The 's' tag is routed
// through State.SetString (string_to_num encoding); every other tag is
// parsed as a base-10 integer and routed through State.Set. An
// unparseable integer is silently dropped, matching the "malformed token"
// policy of spec.md §7.
func (c *Container) Apply(s *rsa.State) {
	for _, a := range c.Assignments {
		if a.Tag == 's' {
			s.SetString('s', a.Text)
			continue
		}
		v, ok := new(big.Int).SetString(a.Text, 10)
		if !ok {
			continue
		}
		s.Set(a.Tag, v)
	}
}

// Dispatch honors each output descriptor in order, printing the requested
// tags to its sink. A descriptor whose file cannot be opened is silently
// skipped and the remaining descriptors still run, per spec.md §7.
func Dispatch(outputs []OutputDescriptor, s *rsa.State) {
	for _, out := range outputs {
		if out.Sink.IsStdout() {
			s.Print(out.Attrs, os.Stdout)
			continue
		}

		f, err := os.Create(out.Sink.Path)
		if err != nil {
			continue
		}
		s.Print(out.Attrs, f)
		f.Close()
	}
}
