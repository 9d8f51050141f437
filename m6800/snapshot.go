package m6800

import "github.com/user-none/go-chip-arcade/cpucommon"

// Snapshot is the bit-exact, side-effect-free register dump used for
// debugging and persistence tests.
type Snapshot struct {
	A, B uint8
	CC   uint8
	X    uint16
	SP   uint16
	PC   uint16
}

// Snapshot returns an immutable copy of the current register state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A:  c.reg.A,
		B:  c.reg.B,
		CC: c.reg.CC,
		X:  c.reg.X,
		SP: c.reg.SP,
		PC: c.reg.PC,
	}
}

var _ cpucommon.CPU[Snapshot] = (*CPU)(nil)
