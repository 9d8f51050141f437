package m6800

import "github.com/user-none/go-chip-arcade/bus"

func registerLoadStore() {
	// LDAA
	opcodeTable[0x86] = ldReg(regA, modeImm, 2)
	opcodeTable[0x96] = ldReg(regA, modeDir, 3)
	opcodeTable[0xA6] = ldReg(regA, modeIdx, 5)
	opcodeTable[0xB6] = ldReg(regA, modeExt, 4)
	// LDAB
	opcodeTable[0xC6] = ldReg(regB, modeImm, 2)
	opcodeTable[0xD6] = ldReg(regB, modeDir, 3)
	opcodeTable[0xE6] = ldReg(regB, modeIdx, 5)
	opcodeTable[0xF6] = ldReg(regB, modeExt, 4)
	// STAA
	opcodeTable[0x97] = stReg(regA, modeDir, 4)
	opcodeTable[0xA7] = stReg(regA, modeIdx, 6)
	opcodeTable[0xB7] = stReg(regA, modeExt, 5)
	// STAB
	opcodeTable[0xD7] = stReg(regB, modeDir, 4)
	opcodeTable[0xE7] = stReg(regB, modeIdx, 6)
	opcodeTable[0xF7] = stReg(regB, modeExt, 5)

	// LDX
	opcodeTable[0xCE] = opLDXImm
	opcodeTable[0xDE] = opLDXDir
	opcodeTable[0xEE] = opLDXIdx
	opcodeTable[0xFE] = opLDXExt
	// STX
	opcodeTable[0xDF] = opSTXDir
	opcodeTable[0xEF] = opSTXIdx
	opcodeTable[0xFF] = opSTXExt
	// LDS
	opcodeTable[0x8E] = opLDSImm
	opcodeTable[0x9E] = opLDSDir
	opcodeTable[0xAE] = opLDSIdx
	opcodeTable[0xBE] = opLDSExt
	// STS
	opcodeTable[0x9F] = opSTSDir
	opcodeTable[0xAF] = opSTSIdx
	opcodeTable[0xBF] = opSTSExt
}

type amKind int

const (
	modeImm amKind = iota
	modeDir
	modeIdx
	modeExt
)

func (c *CPU) resolveAM(b bus.Bus, master bus.Master, mode amKind) uint16 {
	switch mode {
	case modeDir:
		return c.directAddr(b, master)
	case modeIdx:
		return c.indexedAddr(b, master)
	case modeExt:
		return c.extendedAddr(b, master)
	}
	return 0
}

// reg8 selects one of the 6800's two accumulators for a table-built handler.
type reg8 int

const (
	regA reg8 = iota
	regB
)

func (c *CPU) getReg(r reg8) uint8 {
	if r == regA {
		return c.reg.A
	}
	return c.reg.B
}

func (c *CPU) setReg(r reg8, v uint8) {
	if r == regA {
		c.reg.A = v
	} else {
		c.reg.B = v
	}
}

func ldReg(r reg8, mode amKind, cycles int) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		if mode == modeImm {
			val := c.fetchByte(b, master)
			c.setReg(r, val)
			c.setFlagsLogical(val)
			c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {})
			return
		}
		addr := c.resolveAM(b, master, mode)
		c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
			v := b.Read(master, addr)
			c.setReg(r, v)
			c.setFlagsLogical(v)
		})
	}
}

func stReg(r reg8, mode amKind, cycles int) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		addr := c.resolveAM(b, master, mode)
		c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
			v := c.getReg(r)
			b.Write(master, addr, v)
			c.setFlagsLogical(v)
		})
	}
}

func opLDXImm(c *CPU, b bus.Bus, master bus.Master) {
	v := c.fetchWord(b, master)
	c.reg.X = v
	c.setFlagsLogical16(v)
	c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {})
}

func (c *CPU) ldx(b bus.Bus, master bus.Master, addr uint16, cycles int) {
	c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
		hi := b.Read(master, addr)
		lo := b.Read(master, addr+1)
		v := uint16(hi)<<8 | uint16(lo)
		c.reg.X = v
		c.setFlagsLogical16(v)
	})
}

func opLDXDir(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.directAddr(b, master)
	c.ldx(b, master, addr, 4)
}
func opLDXIdx(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.indexedAddr(b, master)
	c.ldx(b, master, addr, 6)
}
func opLDXExt(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.extendedAddr(b, master)
	c.ldx(b, master, addr, 5)
}

func (c *CPU) stx(b bus.Bus, master bus.Master, addr uint16, cycles int) {
	c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
		b.Write(master, addr, uint8(c.reg.X>>8))
		b.Write(master, addr+1, uint8(c.reg.X))
		c.setFlagsLogical16(c.reg.X)
	})
}

func opSTXDir(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.directAddr(b, master)
	c.stx(b, master, addr, 5)
}
func opSTXIdx(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.indexedAddr(b, master)
	c.stx(b, master, addr, 7)
}
func opSTXExt(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.extendedAddr(b, master)
	c.stx(b, master, addr, 6)
}

func opLDSImm(c *CPU, b bus.Bus, master bus.Master) {
	v := c.fetchWord(b, master)
	c.reg.SP = v
	c.setFlagsLogical16(v)
	c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {})
}

func (c *CPU) lds(b bus.Bus, master bus.Master, addr uint16, cycles int) {
	c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
		hi := b.Read(master, addr)
		lo := b.Read(master, addr+1)
		v := uint16(hi)<<8 | uint16(lo)
		c.reg.SP = v
		c.setFlagsLogical16(v)
	})
}

func opLDSDir(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.directAddr(b, master)
	c.lds(b, master, addr, 4)
}
func opLDSIdx(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.indexedAddr(b, master)
	c.lds(b, master, addr, 6)
}
func opLDSExt(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.extendedAddr(b, master)
	c.lds(b, master, addr, 5)
}

func (c *CPU) sts(b bus.Bus, master bus.Master, addr uint16, cycles int) {
	c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
		b.Write(master, addr, uint8(c.reg.SP>>8))
		b.Write(master, addr+1, uint8(c.reg.SP))
		c.setFlagsLogical16(c.reg.SP)
	})
}

func opSTSDir(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.directAddr(b, master)
	c.sts(b, master, addr, 5)
}
func opSTSIdx(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.indexedAddr(b, master)
	c.sts(b, master, addr, 7)
}
func opSTSExt(c *CPU, b bus.Bus, master bus.Master) {
	addr := c.extendedAddr(b, master)
	c.sts(b, master, addr, 6)
}
