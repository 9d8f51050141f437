package z80

import "github.com/user-none/go-chip-arcade/bus"

func registerStackAndControl() {
	opcodeTable[0x00] = func(c *CPU, b bus.Bus, master bus.Master) { // NOP
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {})
	}

	opcodeTable[0xEB] = func(c *CPU, b bus.Bus, master bus.Master) { // EX DE,HL
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.D, c.reg.H = c.reg.H, c.reg.D
			c.reg.E, c.reg.L = c.reg.L, c.reg.E
		})
	}
	opcodeTable[0x08] = func(c *CPU, b bus.Bus, master bus.Master) { // EX AF,AF'
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A, c.reg.A2 = c.reg.A2, c.reg.A
			c.reg.F, c.reg.F2 = c.reg.F2, c.reg.F
		})
	}
	opcodeTable[0xD9] = func(c *CPU, b bus.Bus, master bus.Master) { // EXX
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.B, c.reg.B2 = c.reg.B2, c.reg.B
			c.reg.C, c.reg.C2 = c.reg.C2, c.reg.C
			c.reg.D, c.reg.D2 = c.reg.D2, c.reg.D
			c.reg.E, c.reg.E2 = c.reg.E2, c.reg.E
			c.reg.H, c.reg.H2 = c.reg.H2, c.reg.H
			c.reg.L, c.reg.L2 = c.reg.L2, c.reg.L
		})
	}
	opcodeTable[0xE3] = func(c *CPU, b bus.Bus, master bus.Master) { // EX (SP),HL
		c.queue(19, func(c *CPU, b bus.Bus, master bus.Master) {
			lo := b.Read(master, c.reg.SP)
			hi := b.Read(master, c.reg.SP+1)
			b.Write(master, c.reg.SP, c.reg.L)
			b.Write(master, c.reg.SP+1, c.reg.H)
			c.reg.L, c.reg.H = lo, hi
		})
	}

	opcodeTable[0xF3] = func(c *CPU, b bus.Bus, master bus.Master) { // DI
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.IFF1 = false
			c.reg.IFF2 = false
		})
	}
	opcodeTable[0xFB] = func(c *CPU, b bus.Bus, master bus.Master) { // EI
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.IFF1 = true
			c.reg.IFF2 = true
			c.eiWait = true
		})
	}
	opcodeTableED[0x46] = func(c *CPU, b bus.Bus, master bus.Master) { // IM 0
		c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.IM = 0 })
	}
	opcodeTableED[0x56] = func(c *CPU, b bus.Bus, master bus.Master) { // IM 1
		c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.IM = 1 })
	}
	opcodeTableED[0x5E] = func(c *CPU, b bus.Bus, master bus.Master) { // IM 2
		c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.IM = 2 })
	}

	opcodeTableED[0x47] = func(c *CPU, b bus.Bus, master bus.Master) { // LD I,A
		c.queue(9, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.I = c.reg.A })
	}
	opcodeTableED[0x4F] = func(c *CPU, b bus.Bus, master bus.Master) { // LD R,A
		c.queue(9, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.R = c.reg.A })
	}
	opcodeTableED[0x57] = func(c *CPU, b bus.Bus, master bus.Master) { // LD A,I
		c.queue(9, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = c.reg.I
			c.szFlags(c.reg.A)
			c.setFlag(FlagH, false)
			c.setFlag(FlagN, false)
			c.setFlag(FlagPV, c.reg.IFF2)
		})
	}
	opcodeTableED[0x5F] = func(c *CPU, b bus.Bus, master bus.Master) { // LD A,R
		c.queue(9, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = c.reg.R
			c.szFlags(c.reg.A)
			c.setFlag(FlagH, false)
			c.setFlag(FlagN, false)
			c.setFlag(FlagPV, c.reg.IFF2)
		})
	}

	opcodeTable[0xDB] = func(c *CPU, b bus.Bus, master bus.Master) { // IN A,(n)
		n := c.fetchByte(b, master)
		c.queue(11, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = b.Read(master, uint16(c.reg.A)<<8|uint16(n))
		})
	}
	opcodeTable[0xD3] = func(c *CPU, b bus.Bus, master bus.Master) { // OUT (n),A
		n := c.fetchByte(b, master)
		c.queue(11, func(c *CPU, b bus.Bus, master bus.Master) {
			b.Write(master, uint16(c.reg.A)<<8|uint16(n), c.reg.A)
		})
	}
}
