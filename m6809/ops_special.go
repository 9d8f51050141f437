package m6809

import "github.com/user-none/go-chip-arcade/bus"

func registerSpecial() {
	opcodeTable[0x19] = func(c *CPU, b bus.Bus, master bus.Master) { // DAA
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			a := c.reg.A
			lo := a & 0x0F
			hi := a >> 4
			corrLo, corrHi := uint8(0), uint8(0)
			carry := c.reg.CC&FlagC != 0

			if c.reg.CC&FlagH != 0 || lo > 9 {
				corrLo = 6
			}
			if carry || hi > 9 || (hi >= 9 && lo > 9) {
				corrHi = 6
				carry = true
			}
			result := uint16(a) + uint16(corrHi)<<4 + uint16(corrLo)
			c.reg.A = uint8(result)
			c.setFlag(FlagC, carry || result > 0xFF)
			c.setZN8(c.reg.A)
		})
	}

	opcodeTable[0x1D] = func(c *CPU, b bus.Bus, master bus.Master) { // SEX
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			if c.reg.B&0x80 != 0 {
				c.reg.A = 0xFF
			} else {
				c.reg.A = 0x00
			}
			c.setZN16(c.reg.D())
		})
	}

	opcodeTable[0x3D] = func(c *CPU, b bus.Bus, master bus.Master) { // MUL
		c.queue(11, func(c *CPU, b bus.Bus, master bus.Master) {
			result := uint16(c.reg.A) * uint16(c.reg.B)
			c.reg.setD(result)
			c.setFlag(FlagZ, result == 0)
			c.setFlag(FlagC, result&0x80 != 0)
		})
	}

	opcodeTable[0x3A] = func(c *CPU, b bus.Bus, master bus.Master) { // ABX
		c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.X += uint16(c.reg.B)
		})
	}

	lea := func(opcode uint8, setReg func(c *CPU, v uint16), affectsZ bool) {
		opcodeTable[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
			addr, extra := c.indexedAddr(b, master)
			c.queue(4+extra, func(c *CPU, b bus.Bus, master bus.Master) {
				setReg(c, addr)
				if affectsZ {
					c.setFlag(FlagZ, addr == 0)
				}
			})
		}
	}
	lea(0x30, func(c *CPU, v uint16) { c.reg.X = v }, true)
	lea(0x31, func(c *CPU, v uint16) { c.reg.Y = v }, true)
	lea(0x32, func(c *CPU, v uint16) { c.reg.S = v }, false)
	lea(0x33, func(c *CPU, v uint16) { c.reg.U = v }, false)
}
