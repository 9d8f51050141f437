package m6502

import "github.com/user-none/go-chip-arcade/bus"

func registerALU() {
	type modeSpec struct {
		opcode       uint8
		mode         addrMode
		cycles       int
		extraOnCross bool
	}
	group := func(imm, zp, zpx, abs, absx, absy, indx, indy uint8) []modeSpec {
		return []modeSpec{
			{imm, modeImmediate, 2, false},
			{zp, modeZeroPage, 3, false},
			{zpx, modeZeroPageX, 4, false},
			{abs, modeAbsolute, 4, false},
			{absx, modeAbsoluteX, 4, true},
			{absy, modeAbsoluteY, 4, true},
			{indx, modeIndexedIndirect, 6, false},
			{indy, modeIndirectIndexed, 5, true},
		}
	}
	wire := func(specs []modeSpec, exec func(c *CPU, b bus.Bus, master bus.Master, op operand)) {
		for _, s := range specs {
			instr(s.opcode, s.mode, s.cycles, s.extraOnCross, exec)
		}
	}

	wire(group(0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71), func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.adc(b.Read(master, op.addr))
	})
	wire(group(0xE9, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1), func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.sbc(b.Read(master, op.addr))
	})
	wire(group(0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31), func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.reg.A &= b.Read(master, op.addr)
		c.setZN(c.reg.A)
	})
	wire(group(0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11), func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.reg.A |= b.Read(master, op.addr)
		c.setZN(c.reg.A)
	})
	wire(group(0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51), func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.reg.A ^= b.Read(master, op.addr)
		c.setZN(c.reg.A)
	})
	wire(group(0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1), func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.compare(c.reg.A, b.Read(master, op.addr))
	})

	instr(0xE0, modeImmediate, 2, false, func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.compare(c.reg.X, b.Read(master, op.addr))
	})
	instr(0xE4, modeZeroPage, 3, false, func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.compare(c.reg.X, b.Read(master, op.addr))
	})
	instr(0xEC, modeAbsolute, 4, false, func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.compare(c.reg.X, b.Read(master, op.addr))
	})
	instr(0xC0, modeImmediate, 2, false, func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.compare(c.reg.Y, b.Read(master, op.addr))
	})
	instr(0xC4, modeZeroPage, 3, false, func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.compare(c.reg.Y, b.Read(master, op.addr))
	})
	instr(0xCC, modeAbsolute, 4, false, func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		c.compare(c.reg.Y, b.Read(master, op.addr))
	})

	bit := func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		v := b.Read(master, op.addr)
		c.setFlag(FlagZ, c.reg.A&v == 0)
		c.setFlag(FlagV, v&0x40 != 0)
		c.setFlag(FlagN, v&0x80 != 0)
	}
	instr(0x24, modeZeroPage, 3, false, bit)
	instr(0x2C, modeAbsolute, 4, false, bit)

	inherent := func(opcode uint8, fn func(c *CPU)) {
		instr(opcode, modeImplied, 2, false, func(c *CPU, b bus.Bus, master bus.Master, op operand) {
			fn(c)
		})
	}
	inherent(0xE8, func(c *CPU) { c.reg.X++; c.setZN(c.reg.X) })
	inherent(0xCA, func(c *CPU) { c.reg.X--; c.setZN(c.reg.X) })
	inherent(0xC8, func(c *CPU) { c.reg.Y++; c.setZN(c.reg.Y) })
	inherent(0x88, func(c *CPU) { c.reg.Y--; c.setZN(c.reg.Y) })
	inherent(0xAA, func(c *CPU) { c.reg.X = c.reg.A; c.setZN(c.reg.X) })
	inherent(0xA8, func(c *CPU) { c.reg.Y = c.reg.A; c.setZN(c.reg.Y) })
	inherent(0x8A, func(c *CPU) { c.reg.A = c.reg.X; c.setZN(c.reg.A) })
	inherent(0x98, func(c *CPU) { c.reg.A = c.reg.Y; c.setZN(c.reg.A) })
	inherent(0xBA, func(c *CPU) { c.reg.X = c.reg.SP; c.setZN(c.reg.X) })
	inherent(0x9A, func(c *CPU) { c.reg.SP = c.reg.X })
	inherent(0x18, func(c *CPU) { c.setFlag(FlagC, false) })
	inherent(0x38, func(c *CPU) { c.setFlag(FlagC, true) })
	inherent(0x58, func(c *CPU) { c.setFlag(FlagI, false) })
	inherent(0x78, func(c *CPU) { c.setFlag(FlagI, true) })
	inherent(0xB8, func(c *CPU) { c.setFlag(FlagV, false) })
	inherent(0xD8, func(c *CPU) { c.setFlag(FlagD, false) })
	inherent(0xF8, func(c *CPU) { c.setFlag(FlagD, true) })
	inherent(0xEA, func(c *CPU) {})
}
