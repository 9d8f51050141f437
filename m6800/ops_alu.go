package m6800

import "github.com/user-none/go-chip-arcade/bus"

func registerALU() {
	// ADDA/ADDB
	opcodeTable[0x8B] = aluReg(regA, modeImm, 2, opAdd, false)
	opcodeTable[0x9B] = aluReg(regA, modeDir, 3, opAdd, false)
	opcodeTable[0xAB] = aluReg(regA, modeIdx, 5, opAdd, false)
	opcodeTable[0xBB] = aluReg(regA, modeExt, 4, opAdd, false)
	opcodeTable[0xCB] = aluReg(regB, modeImm, 2, opAdd, false)
	opcodeTable[0xDB] = aluReg(regB, modeDir, 3, opAdd, false)
	opcodeTable[0xEB] = aluReg(regB, modeIdx, 5, opAdd, false)
	opcodeTable[0xFB] = aluReg(regB, modeExt, 4, opAdd, false)
	// ADCA/ADCB
	opcodeTable[0x89] = aluReg(regA, modeImm, 2, opAdd, true)
	opcodeTable[0x99] = aluReg(regA, modeDir, 3, opAdd, true)
	opcodeTable[0xA9] = aluReg(regA, modeIdx, 5, opAdd, true)
	opcodeTable[0xB9] = aluReg(regA, modeExt, 4, opAdd, true)
	opcodeTable[0xC9] = aluReg(regB, modeImm, 2, opAdd, true)
	opcodeTable[0xD9] = aluReg(regB, modeDir, 3, opAdd, true)
	opcodeTable[0xE9] = aluReg(regB, modeIdx, 5, opAdd, true)
	opcodeTable[0xF9] = aluReg(regB, modeExt, 4, opAdd, true)
	// SUBA/SUBB
	opcodeTable[0x80] = aluReg(regA, modeImm, 2, opSub, false)
	opcodeTable[0x90] = aluReg(regA, modeDir, 3, opSub, false)
	opcodeTable[0xA0] = aluReg(regA, modeIdx, 5, opSub, false)
	opcodeTable[0xB0] = aluReg(regA, modeExt, 4, opSub, false)
	opcodeTable[0xC0] = aluReg(regB, modeImm, 2, opSub, false)
	opcodeTable[0xD0] = aluReg(regB, modeDir, 3, opSub, false)
	opcodeTable[0xE0] = aluReg(regB, modeIdx, 5, opSub, false)
	opcodeTable[0xF0] = aluReg(regB, modeExt, 4, opSub, false)
	// SBCA/SBCB
	opcodeTable[0x82] = aluReg(regA, modeImm, 2, opSub, true)
	opcodeTable[0x92] = aluReg(regA, modeDir, 3, opSub, true)
	opcodeTable[0xA2] = aluReg(regA, modeIdx, 5, opSub, true)
	opcodeTable[0xB2] = aluReg(regA, modeExt, 4, opSub, true)
	opcodeTable[0xC2] = aluReg(regB, modeImm, 2, opSub, true)
	opcodeTable[0xD2] = aluReg(regB, modeDir, 3, opSub, true)
	opcodeTable[0xE2] = aluReg(regB, modeIdx, 5, opSub, true)
	opcodeTable[0xF2] = aluReg(regB, modeExt, 4, opSub, true)
	// ANDA/ANDB
	opcodeTable[0x84] = aluReg(regA, modeImm, 2, opAnd, false)
	opcodeTable[0x94] = aluReg(regA, modeDir, 3, opAnd, false)
	opcodeTable[0xA4] = aluReg(regA, modeIdx, 5, opAnd, false)
	opcodeTable[0xB4] = aluReg(regA, modeExt, 4, opAnd, false)
	opcodeTable[0xC4] = aluReg(regB, modeImm, 2, opAnd, false)
	opcodeTable[0xD4] = aluReg(regB, modeDir, 3, opAnd, false)
	opcodeTable[0xE4] = aluReg(regB, modeIdx, 5, opAnd, false)
	opcodeTable[0xF4] = aluReg(regB, modeExt, 4, opAnd, false)
	// ORAA/ORAB
	opcodeTable[0x8A] = aluReg(regA, modeImm, 2, opOra, false)
	opcodeTable[0x9A] = aluReg(regA, modeDir, 3, opOra, false)
	opcodeTable[0xAA] = aluReg(regA, modeIdx, 5, opOra, false)
	opcodeTable[0xBA] = aluReg(regA, modeExt, 4, opOra, false)
	opcodeTable[0xCA] = aluReg(regB, modeImm, 2, opOra, false)
	opcodeTable[0xDA] = aluReg(regB, modeDir, 3, opOra, false)
	opcodeTable[0xEA] = aluReg(regB, modeIdx, 5, opOra, false)
	opcodeTable[0xFA] = aluReg(regB, modeExt, 4, opOra, false)
	// EORA/EORB
	opcodeTable[0x88] = aluReg(regA, modeImm, 2, opEor, false)
	opcodeTable[0x98] = aluReg(regA, modeDir, 3, opEor, false)
	opcodeTable[0xA8] = aluReg(regA, modeIdx, 5, opEor, false)
	opcodeTable[0xB8] = aluReg(regA, modeExt, 4, opEor, false)
	opcodeTable[0xC8] = aluReg(regB, modeImm, 2, opEor, false)
	opcodeTable[0xD8] = aluReg(regB, modeDir, 3, opEor, false)
	opcodeTable[0xE8] = aluReg(regB, modeIdx, 5, opEor, false)
	opcodeTable[0xF8] = aluReg(regB, modeExt, 4, opEor, false)
	// BITA/BITB (AND, discard result)
	opcodeTable[0x85] = aluReg(regA, modeImm, 2, opBit, false)
	opcodeTable[0x95] = aluReg(regA, modeDir, 3, opBit, false)
	opcodeTable[0xA5] = aluReg(regA, modeIdx, 5, opBit, false)
	opcodeTable[0xB5] = aluReg(regA, modeExt, 4, opBit, false)
	opcodeTable[0xC5] = aluReg(regB, modeImm, 2, opBit, false)
	opcodeTable[0xD5] = aluReg(regB, modeDir, 3, opBit, false)
	opcodeTable[0xE5] = aluReg(regB, modeIdx, 5, opBit, false)
	opcodeTable[0xF5] = aluReg(regB, modeExt, 4, opBit, false)
	// CMPA/CMPB (subtract, discard result)
	opcodeTable[0x81] = aluReg(regA, modeImm, 2, opCmp, false)
	opcodeTable[0x91] = aluReg(regA, modeDir, 3, opCmp, false)
	opcodeTable[0xA1] = aluReg(regA, modeIdx, 5, opCmp, false)
	opcodeTable[0xB1] = aluReg(regA, modeExt, 4, opCmp, false)
	opcodeTable[0xC1] = aluReg(regB, modeImm, 2, opCmp, false)
	opcodeTable[0xD1] = aluReg(regB, modeDir, 3, opCmp, false)
	opcodeTable[0xE1] = aluReg(regB, modeIdx, 5, opCmp, false)
	opcodeTable[0xF1] = aluReg(regB, modeExt, 4, opCmp, false)

	// CBA, SBA, ABA
	opcodeTable[0x11] = opCBA
	opcodeTable[0x10] = opSBA
	opcodeTable[0x1B] = opABA

	// CPX
	opcodeTable[0x8C] = opCPXImm
	opcodeTable[0x9C] = opCPXDir
	opcodeTable[0xAC] = opCPXIdx
	opcodeTable[0xBC] = opCPXExt

	// INX/DEX/INS/DES
	opcodeTable[0x08] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.X++
		c.setZ(c.reg.X == 0)
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {})
	}
	opcodeTable[0x09] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.X--
		c.setZ(c.reg.X == 0)
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {})
	}
	opcodeTable[0x31] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.SP++
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {})
	}
	opcodeTable[0x34] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.SP--
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {})
	}
	// TXS/TSX
	opcodeTable[0x35] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.SP = c.reg.X - 1
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {})
	}
	opcodeTable[0x30] = func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.X = c.reg.SP + 1
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {})
	}

	// Register transfers and flag sets, all inherent 2-cycle.
	opcodeTable[0x16] = simpleInherent(func(c *CPU) { c.reg.B = c.reg.A })            // TAB
	opcodeTable[0x17] = simpleInherent(func(c *CPU) { c.reg.A = c.reg.B })            // TBA
	opcodeTable[0x06] = simpleInherent(func(c *CPU) { c.reg.CC = ccReserved | c.reg.A&0x3F }) // TAP
	opcodeTable[0x07] = simpleInherent(func(c *CPU) { c.reg.A = c.reg.CC })           // TPA
	opcodeTable[0x0C] = simpleInherent(func(c *CPU) { c.setC(false) })                // CLC
	opcodeTable[0x0D] = simpleInherent(func(c *CPU) { c.setC(true) })                 // SEC
	opcodeTable[0x0E] = simpleInherent(func(c *CPU) { c.reg.CC &^= FlagI })           // CLI
	opcodeTable[0x0F] = simpleInherent(func(c *CPU) { c.reg.CC |= FlagI })            // SEI
	opcodeTable[0x0A] = simpleInherent(func(c *CPU) { c.setV(false) })                // CLV
	opcodeTable[0x0B] = simpleInherent(func(c *CPU) { c.setV(true) })                 // SEV

	opcodeTable[0x19] = opDAA
}

type aluFn func(c *CPU, dst, src uint8, carryIn uint8) uint8

func simpleInherent(f func(c *CPU)) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		f(c)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {})
	}
}

func aluReg(r reg8, mode amKind, cycles int, op aluFn, useCarry bool) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		var carry uint8
		exec := func(c *CPU, src uint8) {
			if useCarry && c.reg.CC&FlagC != 0 {
				carry = 1
			}
			dst := c.getReg(r)
			result := op(c, dst, src, carry)
			c.setReg(r, result)
		}
		if mode == modeImm {
			src := c.fetchByte(b, master)
			exec(c, src)
			c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {})
			return
		}
		addr := c.resolveAM(b, master, mode)
		c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
			src := b.Read(master, addr)
			exec(c, src)
		})
	}
}

// opAdd performs dst+src(+carry) and writes back, setting HNZVC. H only
// updates for ADD/ADC per the 1975 data sheet.
func opAdd(c *CPU, dst, src, carry uint8) uint8 {
	result := dst + src + carry
	c.setFlagsAdd(src, dst, result, true)
	c.setC(uint16(dst)+uint16(src)+uint16(carry) > 0xFF)
	return result
}

// opSub performs dst-src(-borrow) and writes back, setting NZVC.
func opSub(c *CPU, dst, src, borrow uint8) uint8 {
	result := dst - src - borrow
	c.setFlagsSub(src, dst, result)
	c.setC(uint16(src)+uint16(borrow) > uint16(dst))
	return result
}

func opAnd(c *CPU, dst, src, _ uint8) uint8 {
	result := dst & src
	c.setFlagsLogical(result)
	return result
}

func opOra(c *CPU, dst, src, _ uint8) uint8 {
	result := dst | src
	c.setFlagsLogical(result)
	return result
}

func opEor(c *CPU, dst, src, _ uint8) uint8 {
	result := dst ^ src
	c.setFlagsLogical(result)
	return result
}

// opBit computes dst&src for flags only and returns dst unchanged, so
// aluReg's write-back leaves the register as it was.
func opBit(c *CPU, dst, src, _ uint8) uint8 {
	c.setFlagsLogical(dst & src)
	return dst
}

// opCmp computes dst-src for flags only, discarding the result.
func opCmp(c *CPU, dst, src, _ uint8) uint8 {
	result := dst - src
	c.setFlagsSub(src, dst, result)
	return dst
}

func opCBA(c *CPU, b bus.Bus, master bus.Master) {
	result := c.reg.A - c.reg.B
	c.setFlagsSub(c.reg.B, c.reg.A, result)
	c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {})
}

func opSBA(c *CPU, b bus.Bus, master bus.Master) {
	result := c.reg.A - c.reg.B
	c.setFlagsSub(c.reg.B, c.reg.A, result)
	c.reg.A = result
	c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {})
}

func opABA(c *CPU, b bus.Bus, master bus.Master) {
	result := c.reg.A + c.reg.B
	c.setFlagsAdd(c.reg.B, c.reg.A, result, true)
	c.reg.A = result
	c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {})
}

func (c *CPU) cpx(addr uint16, b bus.Bus, master bus.Master, cycles int) {
	c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
		hi := b.Read(master, addr)
		lo := b.Read(master, addr+1)
		v := uint16(hi)<<8 | uint16(lo)
		result := c.reg.X - v
		c.reg.CC &^= FlagN | FlagZ | FlagV
		if result == 0 {
			c.reg.CC |= FlagZ
		}
		if result&0x8000 != 0 {
			c.reg.CC |= FlagN
		}
		// Overflow per data sheet: set if sign of X and v differ and
		// result sign differs from X's sign.
		if (c.reg.X^v)&(c.reg.X^result)&0x8000 != 0 {
			c.reg.CC |= FlagV
		}
	})
}

func opCPXImm(c *CPU, b bus.Bus, master bus.Master) {
	hi := c.fetchByte(b, master)
	lo := c.fetchByte(b, master)
	v := uint16(hi)<<8 | uint16(lo)
	result := c.reg.X - v
	c.reg.CC &^= FlagN | FlagZ | FlagV
	if result == 0 {
		c.reg.CC |= FlagZ
	}
	if result&0x8000 != 0 {
		c.reg.CC |= FlagN
	}
	if (c.reg.X^v)&(c.reg.X^result)&0x8000 != 0 {
		c.reg.CC |= FlagV
	}
	c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {})
}

func opCPXDir(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.directAddr(b, master)
	c.cpx(addr, b, master, 4)
}
func opCPXIdx(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.indexedAddr(b, master)
	c.cpx(addr, b, master, 6)
}
func opCPXExt(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.extendedAddr(b, master)
	c.cpx(addr, b, master, 5)
}

// opDAA adjusts A after a BCD addition (ABA/ADD/ADC on packed BCD).
func opDAA(c *CPU, b bus.Bus, master bus.Master) {
	a := c.reg.A
	cf := c.reg.CC&FlagC != 0
	hf := c.reg.CC&FlagH != 0
	lo := a & 0x0F
	hi := a >> 4

	var adjust uint8
	newCarry := cf
	if hf || lo > 9 {
		adjust += 0x06
	}
	if cf || hi > 9 || (hi >= 9 && lo > 9) {
		adjust += 0x60
		newCarry = true
	}
	result := a + adjust
	c.reg.CC &^= FlagN | FlagZ | FlagC
	if newCarry {
		c.reg.CC |= FlagC
	}
	if result&0x80 != 0 {
		c.reg.CC |= FlagN
	}
	if result == 0 {
		c.reg.CC |= FlagZ
	}
	c.reg.A = result
	c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {})
}
