package z80

import "github.com/user-none/go-chip-arcade/bus"

// registerBlockOps wires LDI/LDD/LDIR/LDDR, CPI/CPD/CPIR/CPDR,
// INI/IND/INIR/INDR and OUTI/OUTD/OTIR/OTDR. Port I/O is modelled over
// the same 16-bit bus as memory (the generic Bus contract has no
// separate I/O address space); BC supplies the port number on the low
// byte for IN/OUT per convention.
func registerBlockOps() {
	opcodeTableED[0xA0] = blockTransfer(1, false) // LDI
	opcodeTableED[0xB0] = blockTransfer(1, true)   // LDIR
	opcodeTableED[0xA8] = blockTransfer(-1, false) // LDD
	opcodeTableED[0xB8] = blockTransfer(-1, true)  // LDDR

	opcodeTableED[0xA1] = blockCompare(1, false)  // CPI
	opcodeTableED[0xB1] = blockCompare(1, true)   // CPIR
	opcodeTableED[0xA9] = blockCompare(-1, false) // CPD
	opcodeTableED[0xB9] = blockCompare(-1, true)  // CPDR

	opcodeTableED[0xA2] = blockIn(1, false) // INI
	opcodeTableED[0xB2] = blockIn(1, true)  // INIR
	opcodeTableED[0xAA] = blockIn(-1, false) // IND
	opcodeTableED[0xBA] = blockIn(-1, true)  // INDR

	opcodeTableED[0xA3] = blockOut(1, false) // OUTI
	opcodeTableED[0xB3] = blockOut(1, true)  // OTIR
	opcodeTableED[0xAB] = blockOut(-1, false) // OUTD
	opcodeTableED[0xBB] = blockOut(-1, true)  // OTDR
}

func blockTransfer(dir int16, repeat bool) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		c.queue(16, func(c *CPU, b bus.Bus, master bus.Master) {
			v := b.Read(master, c.reg.HL())
			b.Write(master, c.reg.DE(), v)
			c.reg.setHL(uint16(int32(c.reg.HL()) + int32(dir)))
			c.reg.setDE(uint16(int32(c.reg.DE()) + int32(dir)))
			bc := c.reg.BC() - 1
			c.reg.setBC(bc)
			c.setFlag(FlagH, false)
			c.setFlag(FlagN, false)
			c.setFlag(FlagPV, bc != 0)
			n := v + c.reg.A
			c.setFlag(FlagY, n&0x02 != 0)
			c.setFlag(FlagX, n&0x08 != 0)
			if repeat && bc != 0 {
				c.reg.PC -= 2
				c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {})
			}
		})
	}
}

func blockCompare(dir int16, repeat bool) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		c.queue(16, func(c *CPU, b bus.Bus, master bus.Master) {
			v := b.Read(master, c.reg.HL())
			c.reg.setHL(uint16(int32(c.reg.HL()) + int32(dir)))
			bc := c.reg.BC() - 1
			c.reg.setBC(bc)
			result := c.reg.A - v
			c.setFlag(FlagS, result&0x80 != 0)
			c.setFlag(FlagZ, result == 0)
			c.setFlag(FlagH, (c.reg.A&0x0F) < (v&0x0F))
			c.setFlag(FlagN, true)
			c.setFlag(FlagPV, bc != 0)
			n := result
			if c.reg.F&FlagH != 0 {
				n--
			}
			c.setFlag(FlagY, n&0x02 != 0)
			c.setFlag(FlagX, n&0x08 != 0)
			if repeat && bc != 0 && result != 0 {
				c.reg.PC -= 2
				c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {})
			}
		})
	}
}

func blockIn(dir int16, repeat bool) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		c.queue(16, func(c *CPU, b bus.Bus, master bus.Master) {
			port := uint16(c.reg.C)
			v := b.Read(master, port)
			b.Write(master, c.reg.HL(), v)
			c.reg.setHL(uint16(int32(c.reg.HL()) + int32(dir)))
			c.reg.B--
			c.setFlag(FlagZ, c.reg.B == 0)
			c.setFlag(FlagN, true)
			if repeat && c.reg.B != 0 {
				c.reg.PC -= 2
				c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {})
			}
		})
	}
}

func blockOut(dir int16, repeat bool) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		c.queue(16, func(c *CPU, b bus.Bus, master bus.Master) {
			v := b.Read(master, c.reg.HL())
			c.reg.setHL(uint16(int32(c.reg.HL()) + int32(dir)))
			c.reg.B--
			port := uint16(c.reg.C)
			b.Write(master, port, v)
			c.setFlag(FlagZ, c.reg.B == 0)
			c.setFlag(FlagN, true)
			if repeat && c.reg.B != 0 {
				c.reg.PC -= 2
				c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {})
			}
		})
	}
}
