package m6800

import "github.com/user-none/go-chip-arcade/bus"

// unaryFn computes the new value of a single operand and updates flags.
type unaryFn func(c *CPU, v uint8) uint8

func registerShiftRotate() {
	registerUnary(0x43, 0x53, 0x63, 0x73, opCom) // COM
	registerUnary(0x40, 0x50, 0x60, 0x70, opNeg) // NEG
	registerUnary(0x4C, 0x5C, 0x6C, 0x7C, opInc) // INC
	registerUnary(0x4A, 0x5A, 0x6A, 0x7A, opDec) // DEC
	registerUnary(0x4F, 0x5F, 0x6F, 0x7F, opClr) // CLR
	registerUnary(0x4D, 0x5D, 0x6D, 0x7D, opTst) // TST
	registerUnary(0x49, 0x59, 0x69, 0x79, opRol) // ROL
	registerUnary(0x46, 0x56, 0x66, 0x76, opRor) // ROR
	registerUnary(0x48, 0x58, 0x68, 0x78, opAsl) // ASL (== LSL)
	registerUnary(0x47, 0x57, 0x67, 0x77, opAsr) // ASR
	registerUnary(0x44, 0x54, 0x64, 0x74, opLsr) // LSR
}

// registerUnary wires one mnemonic's four opcode forms: inherent-A,
// inherent-B, indexed, extended. M6800 has no direct-page form for these.
func registerUnary(opA, opB, opIdx, opExt uint8, fn unaryFn) {
	opcodeTable[opA] = unaryInherent(regA, fn)
	opcodeTable[opB] = unaryInherent(regB, fn)
	opcodeTable[opIdx] = unaryMemory(modeIdx, 7, fn)
	opcodeTable[opExt] = unaryMemory(modeExt, 6, fn)
}

func unaryInherent(r reg8, fn unaryFn) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		v := fn(c, c.getReg(r))
		c.setReg(r, v)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {})
	}
}

func unaryMemory(mode amKind, cycles int, fn unaryFn) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		addr := c.resolveAM(b, master, mode)
		c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
			v := b.Read(master, addr)
			v = fn(c, v)
			b.Write(master, addr, v)
		})
	}
}

// opCom ones-complements the operand: always sets C, clears V.
func opCom(c *CPU, v uint8) uint8 {
	result := ^v
	c.setFlagsLogical(result)
	c.setC(true)
	return result
}

// opNeg two's-complements the operand.
func opNeg(c *CPU, v uint8) uint8 {
	result := uint8(0) - v
	c.setFlagsLogical(result)
	c.setV(v == 0x80)
	c.setC(result != 0)
	return result
}

func opInc(c *CPU, v uint8) uint8 {
	result := v + 1
	c.setN(result&0x80 != 0)
	c.setZ(result == 0)
	c.setV(v == 0x7F)
	return result
}

func opDec(c *CPU, v uint8) uint8 {
	result := v - 1
	c.setN(result&0x80 != 0)
	c.setZ(result == 0)
	c.setV(v == 0x80)
	return result
}

func opClr(c *CPU, v uint8) uint8 {
	c.reg.CC &^= FlagN | FlagV | FlagC
	c.reg.CC |= FlagZ
	return 0
}

func opTst(c *CPU, v uint8) uint8 {
	c.setFlagsLogical(v)
	c.setC(false)
	return v
}

func opRol(c *CPU, v uint8) uint8 {
	carryIn := uint8(0)
	if c.reg.CC&FlagC != 0 {
		carryIn = 1
	}
	result := (v << 1) | carryIn
	c.setC(v&0x80 != 0)
	c.setN(result&0x80 != 0)
	c.setZ(result == 0)
	// V = N xor C (new sign bit disagrees with the bit shifted into carry)
	c.setV((result&0x80 != 0) != (v&0x80 != 0))
	return result
}

func opRor(c *CPU, v uint8) uint8 {
	carryIn := uint8(0)
	if c.reg.CC&FlagC != 0 {
		carryIn = 0x80
	}
	result := (v >> 1) | carryIn
	c.setC(v&0x01 != 0)
	c.setN(result&0x80 != 0)
	c.setZ(result == 0)
	nFlag := result&0x80 != 0
	cFlag := v&0x01 != 0
	c.setV(nFlag != cFlag)
	return result
}

func opAsl(c *CPU, v uint8) uint8 {
	result := v << 1
	c.setC(v&0x80 != 0)
	c.setN(result&0x80 != 0)
	c.setZ(result == 0)
	nFlag := result&0x80 != 0
	cFlag := v&0x80 != 0
	c.setV(nFlag != cFlag)
	return result
}

func opAsr(c *CPU, v uint8) uint8 {
	result := (v >> 1) | (v & 0x80)
	c.setC(v&0x01 != 0)
	c.setN(result&0x80 != 0)
	c.setZ(result == 0)
	nFlag := result&0x80 != 0
	cFlag := v&0x01 != 0
	c.setV(nFlag != cFlag)
	return result
}

func opLsr(c *CPU, v uint8) uint8 {
	result := v >> 1
	c.setC(v&0x01 != 0)
	c.setN(false)
	c.setZ(result == 0)
	c.setV(result&0x80 != 0 != (v&0x01 != 0))
	return result
}
