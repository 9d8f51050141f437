package m6800

import "github.com/user-none/go-chip-arcade/bus"

func registerBranch() {
	branch(0x20, "RA")
	branch(0x26, "NE")
	branch(0x27, "EQ")
	branch(0x24, "CC")
	branch(0x25, "CS")
	branch(0x2A, "PL")
	branch(0x2B, "MI")
	branch(0x28, "VC")
	branch(0x29, "VS")
	branch(0x22, "HI")
	branch(0x23, "LS")
	branch(0x2C, "GE")
	branch(0x2D, "LT")
	branch(0x2E, "GT")
	branch(0x2F, "LE")

	opcodeTable[0x8D] = opBSR
	opcodeTable[0x39] = opRTS
	opcodeTable[0x7E] = opJMPExt
	opcodeTable[0x6E] = opJMPIdx
	opcodeTable[0xBD] = opJSRExt
	opcodeTable[0xAD] = opJSRIdx
}

func branch(opcode uint8, cond string) {
	opcodeTable[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
		disp := int8(c.fetchByte(b, master))
		take := c.testCondition(cond)
		dest := uint16(int32(c.reg.PC) + int32(disp))
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			if take {
				c.reg.PC = dest
			}
		})
	}
}

func opBSR(c *CPU, b bus.Bus, master bus.Master) {
	disp := int8(c.fetchByte(b, master))
	dest := uint16(int32(c.reg.PC) + int32(disp))
	c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) {
		c.pushWord(b, master, c.reg.PC)
		c.reg.PC = dest
	})
}

func opRTS(c *CPU, b bus.Bus, master bus.Master) {
	c.queue(5, func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.PC = c.pullWord(b, master)
	})
}

func opJMPExt(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.extendedAddr(b, master)
	c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.PC = addr
	})
}

func opJMPIdx(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.indexedAddr(b, master)
	c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.PC = addr
	})
}

func opJSRExt(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.extendedAddr(b, master)
	c.queue(9, func(c *CPU, b bus.Bus, master bus.Master) {
		c.pushWord(b, master, c.reg.PC)
		c.reg.PC = addr
	})
}

func opJSRIdx(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.indexedAddr(b, master)
	c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) {
		c.pushWord(b, master, c.reg.PC)
		c.reg.PC = addr
	})
}
