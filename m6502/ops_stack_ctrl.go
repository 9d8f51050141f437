package m6502

import "github.com/user-none/go-chip-arcade/bus"

func registerStackAndControl() {
	instr(0x4C, modeAbsolute, 3, false, func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.reg.PC = op.addr
	})
	instr(0x6C, modeIndirect, 5, false, func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.reg.PC = op.addr
	})

	opcodeTable[0x20] = func(c *CPU, b bus.Bus, master bus.Master) {
		target := c.fetchWord(b, master)
		ret := c.reg.PC - 1
		c.queue(6, func(c *CPU, b bus.Bus, master bus.Master) {
			c.push(b, master, uint8(ret>>8))
			c.push(b, master, uint8(ret))
			c.reg.PC = target
		})
	}
	opcodeTable[0x60] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.queue(6, func(c *CPU, b bus.Bus, master bus.Master) {
			lo := c.pull(b, master)
			hi := c.pull(b, master)
			c.reg.PC = uint16(hi)<<8 | uint16(lo)
			c.reg.PC++
		})
	}

	opcodeTable[0x00] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.PC++ // BRK carries a padding byte; the pushed return skips it.
		c.serviceInterrupt(b, master, vecIRQ, true)
	}
	opcodeTable[0x40] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.queue(6, func(c *CPU, b bus.Bus, master bus.Master) {
			p := c.pull(b, master)
			lo := c.pull(b, master)
			hi := c.pull(b, master)
			c.reg.P = p | flagUnused
			c.reg.PC = uint16(hi)<<8 | uint16(lo)
		})
	}

	opcodeTable[0x48] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {
			c.push(b, master, c.reg.A)
		})
	}
	opcodeTable[0x08] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {
			c.push(b, master, c.reg.P|FlagB|flagUnused)
		})
	}
	opcodeTable[0x68] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = c.pull(b, master)
			c.setZN(c.reg.A)
		})
	}
	opcodeTable[0x28] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.P = c.pull(b, master) | flagUnused
		})
	}
}
