package m6502

import "github.com/user-none/go-chip-arcade/cpucommon"

// Snapshot is the bit-exact, side-effect-free register dump used for
// debugging and persistence tests.
type Snapshot struct {
	A, X, Y uint8
	SP      uint8
	P       uint8
	PC      uint16
}

// Snapshot returns an immutable copy of the current register state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A:  c.reg.A,
		X:  c.reg.X,
		Y:  c.reg.Y,
		SP: c.reg.SP,
		P:  c.reg.P,
		PC: c.reg.PC,
	}
}

var _ cpucommon.CPU[Snapshot] = (*CPU)(nil)
