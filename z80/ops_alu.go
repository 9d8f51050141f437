package z80

import "github.com/user-none/go-chip-arcade/bus"

// registerALU8 wires the ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,r block
// (0x80-0xBF), their immediate forms (0xC6-0xFE), INC/DEC r (0x04/0x05
// grid) and the standalone accumulator/flag opcodes.
func registerALU8() {
	ops := []func(c *CPU, v uint8){
		func(c *CPU, v uint8) { c.reg.A = c.addFlags8(c.reg.A, v, 0) },
		func(c *CPU, v uint8) { c.reg.A = c.addFlags8(c.reg.A, v, c.reg.F&FlagC) },
		func(c *CPU, v uint8) { c.reg.A = c.subFlags8(c.reg.A, v, 0) },
		func(c *CPU, v uint8) { c.reg.A = c.subFlags8(c.reg.A, v, c.reg.F&FlagC) },
		func(c *CPU, v uint8) { c.reg.A = c.andFlags(c.reg.A & v) },
		func(c *CPU, v uint8) { c.reg.A = c.orXorFlags(c.reg.A ^ v) },
		func(c *CPU, v uint8) { c.reg.A = c.orXorFlags(c.reg.A | v) },
		func(c *CPU, v uint8) { c.cpFlags(c.reg.A, v) },
	}
	for opIdx, fn := range ops {
		op := fn
		for r := uint8(0); r < 8; r++ {
			reg := r
			cycles := 4
			if r == 6 {
				cycles = 7
			}
			opcodeTable[0x80|uint8(opIdx)<<3|reg] = func(c *CPU, b bus.Bus, master bus.Master) {
				c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
					op(c, c.get8(b, master, reg))
				})
			}
		}
		opcodeTable[0xC6|uint8(opIdx)<<3] = func(c *CPU, b bus.Bus, master bus.Master) {
			n := c.fetchByte(b, master)
			c.queue(7, func(c *CPU, b bus.Bus, master bus.Master) { op(c, n) })
		}
	}

	for r := uint8(0); r < 8; r++ {
		reg := r
		cycles := 4
		if r == 6 {
			cycles = 11
		}
		opcodeTable[0x04|reg<<3] = func(c *CPU, b bus.Bus, master bus.Master) { // INC r
			c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
				c.set8(b, master, reg, c.incFlags8(c.get8(b, master, reg)))
			})
		}
		opcodeTable[0x05|reg<<3] = func(c *CPU, b bus.Bus, master bus.Master) { // DEC r
			c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
				c.set8(b, master, reg, c.decFlags8(c.get8(b, master, reg)))
			})
		}
	}

	opcodeTable[0x2F] = func(c *CPU, b bus.Bus, master bus.Master) { // CPL
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = ^c.reg.A
			c.setFlag(FlagH, true)
			c.setFlag(FlagN, true)
			c.setFlag(FlagY, c.reg.A&0x20 != 0)
			c.setFlag(FlagX, c.reg.A&0x08 != 0)
		})
	}
	opcodeTable[0x3F] = func(c *CPU, b bus.Bus, master bus.Master) { // CCF
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			oldC := c.reg.F & FlagC
			c.setFlag(FlagH, oldC != 0)
			c.setFlag(FlagC, oldC == 0)
			c.setFlag(FlagN, false)
			c.setFlag(FlagY, c.reg.A&0x20 != 0)
			c.setFlag(FlagX, c.reg.A&0x08 != 0)
		})
	}
	opcodeTable[0x37] = func(c *CPU, b bus.Bus, master bus.Master) { // SCF
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			c.setFlag(FlagC, true)
			c.setFlag(FlagH, false)
			c.setFlag(FlagN, false)
			c.setFlag(FlagY, c.reg.A&0x20 != 0)
			c.setFlag(FlagX, c.reg.A&0x08 != 0)
		})
	}
	opcodeTable[0x27] = func(c *CPU, b bus.Bus, master bus.Master) { // DAA
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) { c.daa() })
	}

	opcodeTableED[0x44] = func(c *CPU, b bus.Bus, master bus.Master) { // NEG
		c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = c.subFlags8(0, c.reg.A, 0)
		})
	}
}

func (c *CPU) daa() {
	a := c.reg.A
	correction := uint8(0)
	carry := c.reg.F&FlagC != 0
	halfCarry := c.reg.F&FlagH != 0
	subtract := c.reg.F&FlagN != 0

	if halfCarry || a&0x0F > 9 {
		correction |= 0x06
	}
	if carry || a > 0x99 {
		correction |= 0x60
		carry = true
	}
	var result uint8
	if subtract {
		result = a - correction
	} else {
		result = a + correction
	}
	newHalfCarry := false
	if subtract {
		newHalfCarry = halfCarry && a&0x0F < 6
	} else {
		newHalfCarry = a&0x0F+correction&0x0F > 0x0F
	}
	c.reg.A = result
	c.szFlags(result)
	c.setFlag(FlagPV, parity(result))
	c.setFlag(FlagC, carry)
	c.setFlag(FlagH, newHalfCarry)
}

// registerALU16 wires ADD HL,rr / ADD IX,rr / ADD IY,rr and 16-bit
// INC/DEC.
func registerALU16() {
	for code := uint8(0); code < 4; code++ {
		rp := code
		opcodeTable[0x09|rp<<4] = func(c *CPU, b bus.Bus, master bus.Master) { // ADD HL,rr
			c.queue(11, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.setHL(c.addFlags16(c.reg.HL(), c.get16SP(rp)))
			})
		}
		opcodeTable[0x03|rp<<4] = func(c *CPU, b bus.Bus, master bus.Master) { // INC rr
			c.queue(6, func(c *CPU, b bus.Bus, master bus.Master) {
				c.set16SP(rp, c.get16SP(rp)+1)
			})
		}
		opcodeTable[0x0B|rp<<4] = func(c *CPU, b bus.Bus, master bus.Master) { // DEC rr
			c.queue(6, func(c *CPU, b bus.Bus, master bus.Master) {
				c.set16SP(rp, c.get16SP(rp)-1)
			})
		}

		opcodeTableED[0x4A|rp<<4] = func(c *CPU, b bus.Bus, master bus.Master) { // ADC HL,rr
			c.queue(15, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.setHL(c.adcFlags16(c.reg.HL(), c.get16SP(rp), c.reg.F&FlagC))
			})
		}
		opcodeTableED[0x42|rp<<4] = func(c *CPU, b bus.Bus, master bus.Master) { // SBC HL,rr
			c.queue(15, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.setHL(c.sbcFlags16(c.reg.HL(), c.get16SP(rp), c.reg.F&FlagC))
			})
		}
	}
}
