package i8035

import "github.com/user-none/go-chip-arcade/cpucommon"

// Snapshot is the external, bit-exact view of an 8035's programmer-visible
// state: the accumulator, PSW, timer, ROM bank flag, program counter, and
// the currently active register bank's R0-R7.
type Snapshot struct {
	A   uint8
	PSW uint8
	T   uint8
	DBF uint8
	PC  uint16
	R   [8]uint8
}

// Snapshot captures the current state for display or serialization.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A:   c.reg.A,
		PSW: c.reg.PSW,
		T:   c.reg.T,
		DBF: c.reg.DBF,
		PC:  c.reg.PC,
		R:   *c.reg.activeBank(),
	}
}

var _ cpucommon.CPU[Snapshot] = (*CPU)(nil)
