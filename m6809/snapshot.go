package m6809

import "github.com/user-none/go-chip-arcade/cpucommon"

// Snapshot is the bit-exact, side-effect-free register dump used for
// debugging and persistence tests.
type Snapshot struct {
	A, B, DP, CC   uint8
	X, Y, U, S, PC uint16
}

// Snapshot returns an immutable copy of the current register state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A:  c.reg.A,
		B:  c.reg.B,
		DP: c.reg.DP,
		CC: c.reg.CC,
		X:  c.reg.X,
		Y:  c.reg.Y,
		U:  c.reg.U,
		S:  c.reg.S,
		PC: c.reg.PC,
	}
}

var _ cpucommon.CPU[Snapshot] = (*CPU)(nil)
