package m6502

import "github.com/user-none/go-chip-arcade/bus"

type opFunc func(c *CPU, b bus.Bus, master bus.Master)

var opcodeTable [256]opFunc

// instr wires one opcode: resolve its addressing mode at decode time, then
// queue `cycles` bus ticks (plus one more if the addressing mode crossed a
// page boundary and extraOnCross is set) with exec running on the last one.
func instr(opcode uint8, mode addrMode, cycles int, extraOnCross bool, exec func(c *CPU, b bus.Bus, master bus.Master, op operand)) {
	opcodeTable[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
		op := c.resolve(b, master, mode)
		n := cycles
		if extraOnCross && op.pageCrossed {
			n++
		}
		c.queue(n, func(c *CPU, b bus.Bus, master bus.Master) {
			exec(c, b, master, op)
		})
	}
}

func init() {
	registerLoadStore()
	registerALU()
	registerShiftRotate()
	registerBranch()
	registerStackAndControl()
}
