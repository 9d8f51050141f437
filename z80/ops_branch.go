package z80

import "github.com/user-none/go-chip-arcade/bus"

// cc evaluates one of the 8 standard Z80 condition codes: NZ,Z,NC,C,PO,PE,P,M.
func (c *CPU) cc(code uint8) bool {
	switch code {
	case 0:
		return c.reg.F&FlagZ == 0
	case 1:
		return c.reg.F&FlagZ != 0
	case 2:
		return c.reg.F&FlagC == 0
	case 3:
		return c.reg.F&FlagC != 0
	case 4:
		return c.reg.F&FlagPV == 0
	case 5:
		return c.reg.F&FlagPV != 0
	case 6:
		return c.reg.F&FlagS == 0
	default:
		return c.reg.F&FlagS != 0
	}
}

func registerBranch() {
	opcodeTable[0xC3] = func(c *CPU, b bus.Bus, master bus.Master) { // JP nn
		addr := c.fetchWord(b, master)
		c.queue(10, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.PC = addr
		})
	}
	opcodeTable[0xE9] = func(c *CPU, b bus.Bus, master bus.Master) { // JP (HL)
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.PC = c.reg.HL()
		})
	}
	for code := uint8(0); code < 8; code++ {
		cond := code
		opcodeTable[0xC2|cond<<3] = func(c *CPU, b bus.Bus, master bus.Master) { // JP cc,nn
			addr := c.fetchWord(b, master)
			c.queue(10, func(c *CPU, b bus.Bus, master bus.Master) {
				if c.cc(cond) {
					c.reg.PC = addr
				}
			})
		}
	}

	opcodeTable[0x18] = func(c *CPU, b bus.Bus, master bus.Master) { // JR d
		d := int8(c.fetchByte(b, master))
		c.queue(12, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.PC = uint16(int32(c.reg.PC) + int32(d))
		})
	}
	jrCC := func(opcode uint8, cond uint8) {
		opcodeTable[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
			d := int8(c.fetchByte(b, master))
			c.queue(7, func(c *CPU, b bus.Bus, master bus.Master) {
				if c.cc(cond) {
					c.reg.PC = uint16(int32(c.reg.PC) + int32(d))
					c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {})
				}
			})
		}
	}
	jrCC(0x20, 0) // JR NZ,d
	jrCC(0x28, 1) // JR Z,d
	jrCC(0x30, 2) // JR NC,d
	jrCC(0x38, 3) // JR C,d

	opcodeTable[0x10] = func(c *CPU, b bus.Bus, master bus.Master) { // DJNZ d
		d := int8(c.fetchByte(b, master))
		c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.B--
			if c.reg.B != 0 {
				c.reg.PC = uint16(int32(c.reg.PC) + int32(d))
				c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {}, func(c *CPU, b bus.Bus, master bus.Master) {})
			}
		})
	}

	opcodeTable[0xCD] = func(c *CPU, b bus.Bus, master bus.Master) { // CALL nn
		addr := c.fetchWord(b, master)
		c.queue(17, func(c *CPU, b bus.Bus, master bus.Master) {
			c.push16(b, master, c.reg.PC)
			c.reg.PC = addr
		})
	}
	for code := uint8(0); code < 8; code++ {
		cond := code
		opcodeTable[0xC4|cond<<3] = func(c *CPU, b bus.Bus, master bus.Master) { // CALL cc,nn
			addr := c.fetchWord(b, master)
			c.queue(10, func(c *CPU, b bus.Bus, master bus.Master) {
				if c.cc(cond) {
					for i := 0; i < 6; i++ {
						c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {})
					}
					c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {
						c.push16(b, master, c.reg.PC)
						c.reg.PC = addr
					})
				}
			})
		}
	}

	opcodeTable[0xC9] = func(c *CPU, b bus.Bus, master bus.Master) { // RET
		c.queue(10, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.PC = c.pop16(b, master)
		})
	}
	for code := uint8(0); code < 8; code++ {
		cond := code
		opcodeTable[0xC0|cond<<3] = func(c *CPU, b bus.Bus, master bus.Master) { // RET cc
			c.queue(5, func(c *CPU, b bus.Bus, master bus.Master) {
				if c.cc(cond) {
					for i := 0; i < 5; i++ {
						c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {})
					}
					c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {
						c.reg.PC = c.pop16(b, master)
					})
				}
			})
		}
	}
	opcodeTableED[0x4D] = func(c *CPU, b bus.Bus, master bus.Master) { // RETI
		c.queue(14, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.PC = c.pop16(b, master)
			c.reg.IFF1 = c.reg.IFF2
		})
	}
	opcodeTableED[0x45] = func(c *CPU, b bus.Bus, master bus.Master) { // RETN
		c.queue(14, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.PC = c.pop16(b, master)
			c.reg.IFF1 = c.reg.IFF2
		})
	}

	for n := uint8(0); n < 8; n++ {
		target := uint16(n) * 8
		opcodeTable[0xC7|n<<3] = func(c *CPU, b bus.Bus, master bus.Master) { // RST n
			c.queue(11, func(c *CPU, b bus.Bus, master bus.Master) {
				c.push16(b, master, c.reg.PC)
				c.reg.PC = target
			})
		}
	}
}
