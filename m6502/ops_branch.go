package m6502

import "github.com/user-none/go-chip-arcade/bus"

// branch wires a conditional relative branch. Cost is 2 cycles if not
// taken, 3 if taken, 4 if taken across a page boundary; the extra cycles
// are appended to the step queue once the branch outcome (and hence the
// final PC) is known, rather than computed up front.
func branch(opcode uint8, cond func(c *CPU) bool) {
	opcodeTable[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
		offset := int8(c.fetchByte(b, master))
		fallthroughPC := c.reg.PC
		target := uint16(int32(fallthroughPC) + int32(offset))
		taken := cond(c)

		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			if !taken {
				return
			}
			oldPage := fallthroughPC & 0xFF00
			c.reg.PC = target
			extra := 1
			if target&0xFF00 != oldPage {
				extra = 2
			}
			for i := 0; i < extra; i++ {
				c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {})
			}
		})
	}
}

func registerBranch() {
	branch(0x10, func(c *CPU) bool { return c.reg.P&FlagN == 0 })
	branch(0x30, func(c *CPU) bool { return c.reg.P&FlagN != 0 })
	branch(0x50, func(c *CPU) bool { return c.reg.P&FlagV == 0 })
	branch(0x70, func(c *CPU) bool { return c.reg.P&FlagV != 0 })
	branch(0x90, func(c *CPU) bool { return c.reg.P&FlagC == 0 })
	branch(0xB0, func(c *CPU) bool { return c.reg.P&FlagC != 0 })
	branch(0xD0, func(c *CPU) bool { return c.reg.P&FlagZ == 0 })
	branch(0xF0, func(c *CPU) bool { return c.reg.P&FlagZ != 0 })
}
