package z80

import "github.com/user-none/go-chip-arcade/cpucommon"

// Snapshot is the bit-exact, side-effect-free register dump used for
// debugging and persistence tests. It carries the full extended state
// (shadow registers, index registers, I/R, interrupt mode and flags)
// rather than just the base A,F,B,C,D,E,H,L,SP,PC set, since the
// extended form is a strict superset and callers that only need the
// base registers can read the matching fields directly.
type Snapshot struct {
	A, F           uint8
	B, C           uint8
	D, E           uint8
	H, L           uint8
	A2, F2         uint8
	B2, C2         uint8
	D2, E2         uint8
	H2, L2         uint8
	IX, IY         uint16
	SP, PC         uint16
	I, R           uint8
	IFF1, IFF2     bool
	IM             uint8
	Halted         bool
}

// Snapshot returns an immutable copy of the current register state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.reg.A, F: c.reg.F,
		B: c.reg.B, C: c.reg.C,
		D: c.reg.D, E: c.reg.E,
		H: c.reg.H, L: c.reg.L,
		A2: c.reg.A2, F2: c.reg.F2,
		B2: c.reg.B2, C2: c.reg.C2,
		D2: c.reg.D2, E2: c.reg.E2,
		H2: c.reg.H2, L2: c.reg.L2,
		IX: c.reg.IX, IY: c.reg.IY,
		SP: c.reg.SP, PC: c.reg.PC,
		I: c.reg.I, R: c.reg.R,
		IFF1: c.reg.IFF1, IFF2: c.reg.IFF2,
		IM:     c.reg.IM,
		Halted: c.halted,
	}
}

var _ cpucommon.CPU[Snapshot] = (*CPU)(nil)
