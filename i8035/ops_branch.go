package i8035

import "github.com/user-none/go-chip-arcade/bus"

// branchIf queues a 2-cycle conditional jump: if cond is true the low 8
// bits of PC are replaced by the fetched target. The target is restricted
// to the current 256-byte page - there is no carry into the page bits,
// matching the 8035's direct-branch addressing.
func branchIf(cond func(c *CPU) bool) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		target := c.fetchByte(b, master)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			if cond(c) {
				c.reg.PC = c.reg.PC&0x0F00 | uint16(target)
			}
		})
	}
}

func registerBranch() {
	opcodeTable[0x04] = func(c *CPU, b bus.Bus, master bus.Master) { // JMP addr (page 0)
		lo := c.fetchByte(b, master)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.PC = c.reg.PC&0x0600 | uint16(lo)
		})
	}
	opcodeTable[0x24] = func(c *CPU, b bus.Bus, master bus.Master) { // JMP addr (page 1)
		lo := c.fetchByte(b, master)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.PC = 0x100 | c.reg.PC&0x0600 | uint16(lo)
		})
	}
	opcodeTable[0x14] = func(c *CPU, b bus.Bus, master bus.Master) { // CALL addr (page 0)
		lo := c.fetchByte(b, master)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.pushPC(b, master)
			c.reg.PC = c.reg.PC&0x0600 | uint16(lo)
		})
	}
	opcodeTable[0x34] = func(c *CPU, b bus.Bus, master bus.Master) { // CALL addr (page 1)
		lo := c.fetchByte(b, master)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.pushPC(b, master)
			c.reg.PC = 0x100 | c.reg.PC&0x0600 | uint16(lo)
		})
	}
	opcodeTable[0x83] = func(c *CPU, b bus.Bus, master bus.Master) { // RET
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.popPC(b, master)
		})
	}
	opcodeTable[0x93] = func(c *CPU, b bus.Bus, master bus.Master) { // RETR
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.popPC(b, master)
			c.interruptsEnabled = true
		})
	}

	opcodeTable[0xF6] = branchIf(func(c *CPU) bool { return c.reg.PSW&PswC != 0 }) // JC
	opcodeTable[0xE6] = branchIf(func(c *CPU) bool { return c.reg.PSW&PswC == 0 }) // JNC
	opcodeTable[0xC6] = branchIf(func(c *CPU) bool { return c.reg.A == 0 })        // JZ
	opcodeTable[0x96] = branchIf(func(c *CPU) bool { return c.reg.A != 0 })        // JNZ
	opcodeTable[0x16] = branchIf(func(c *CPU) bool {
		tf := c.tf
		c.tf = false
		return tf
	}) // JTF, clears the latch once tested
	opcodeTable[0xB6] = branchIf(func(c *CPU) bool { return c.reg.PSW&PswF0 != 0 }) // JF0
	opcodeTable[0x76] = branchIf(func(c *CPU) bool { return c.reg.F1 })             // JF1

	for bit := uint8(0); bit < 8; bit++ {
		mask := uint8(1) << bit
		opcodeTable[0x12|bit<<5] = branchIf(func(c *CPU) bool { return c.reg.A&mask != 0 }) // JBb
	}

	for n := uint8(0); n < 8; n++ {
		rn := n
		opcodeTable[0xE8|rn] = func(c *CPU, b bus.Bus, master bus.Master) { // DJNZ Rn,addr
			target := c.fetchByte(b, master)
			c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.setR(rn, c.reg.R(rn)-1)
				if c.reg.R(rn) != 0 {
					c.reg.PC = c.reg.PC&0x0F00 | uint16(target)
				}
			})
		}
	}

	opcodeTable[0xE5] = func(c *CPU, b bus.Bus, master bus.Master) { // SEL MB0
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.DBF = 0 })
	}
	opcodeTable[0xF5] = func(c *CPU, b bus.Bus, master bus.Master) { // SEL MB1
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.DBF = 1 })
	}
	opcodeTable[0xC5] = func(c *CPU, b bus.Bus, master bus.Master) { // SEL RB0
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.PSW &^= PswBS })
	}
	opcodeTable[0xD5] = func(c *CPU, b bus.Bus, master bus.Master) { // SEL RB1
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.PSW |= PswBS })
	}

	opcodeTable[0xB3] = func(c *CPU, b bus.Bus, master bus.Master) { // JMPP @A
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			page := c.reg.PC &^ 0x00FF
			lo := b.Read(master, page|uint16(c.reg.A))
			c.reg.PC = c.reg.PC&0x0F00 | uint16(lo)
		})
	}
}
