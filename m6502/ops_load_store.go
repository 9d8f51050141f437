package m6502

import "github.com/user-none/go-chip-arcade/bus"

func registerLoadStore() {
	load := func(set func(c *CPU, v uint8)) func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		return func(c *CPU, b bus.Bus, master bus.Master, op operand) {
			v := b.Read(master, op.addr)
			set(c, v)
			c.setZN(v)
		}
	}
	setA := func(c *CPU, v uint8) { c.reg.A = v }
	setX := func(c *CPU, v uint8) { c.reg.X = v }
	setY := func(c *CPU, v uint8) { c.reg.Y = v }

	instr(0xA9, modeImmediate, 2, false, load(setA))
	instr(0xA5, modeZeroPage, 3, false, load(setA))
	instr(0xB5, modeZeroPageX, 4, false, load(setA))
	instr(0xAD, modeAbsolute, 4, false, load(setA))
	instr(0xBD, modeAbsoluteX, 4, true, load(setA))
	instr(0xB9, modeAbsoluteY, 4, true, load(setA))
	instr(0xA1, modeIndexedIndirect, 6, false, load(setA))
	instr(0xB1, modeIndirectIndexed, 5, true, load(setA))

	instr(0xA2, modeImmediate, 2, false, load(setX))
	instr(0xA6, modeZeroPage, 3, false, load(setX))
	instr(0xB6, modeZeroPageY, 4, false, load(setX))
	instr(0xAE, modeAbsolute, 4, false, load(setX))
	instr(0xBE, modeAbsoluteY, 4, true, load(setX))

	instr(0xA0, modeImmediate, 2, false, load(setY))
	instr(0xA4, modeZeroPage, 3, false, load(setY))
	instr(0xB4, modeZeroPageX, 4, false, load(setY))
	instr(0xAC, modeAbsolute, 4, false, load(setY))
	instr(0xBC, modeAbsoluteX, 4, true, load(setY))

	store := func(get func(c *CPU) uint8) func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		return func(c *CPU, b bus.Bus, master bus.Master, op operand) {
			b.Write(master, op.addr, get(c))
		}
	}
	getA := func(c *CPU) uint8 { return c.reg.A }
	getX := func(c *CPU) uint8 { return c.reg.X }
	getY := func(c *CPU) uint8 { return c.reg.Y }

	instr(0x85, modeZeroPage, 3, false, store(getA))
	instr(0x95, modeZeroPageX, 4, false, store(getA))
	instr(0x8D, modeAbsolute, 4, false, store(getA))
	instr(0x9D, modeAbsoluteX, 5, false, store(getA))
	instr(0x99, modeAbsoluteY, 5, false, store(getA))
	instr(0x81, modeIndexedIndirect, 6, false, store(getA))
	instr(0x91, modeIndirectIndexed, 6, false, store(getA))

	instr(0x86, modeZeroPage, 3, false, store(getX))
	instr(0x96, modeZeroPageY, 4, false, store(getX))
	instr(0x8E, modeAbsolute, 4, false, store(getX))

	instr(0x84, modeZeroPage, 3, false, store(getY))
	instr(0x94, modeZeroPageX, 4, false, store(getY))
	instr(0x8C, modeAbsolute, 4, false, store(getY))

	// LAX/SAX: documented-behavior unofficial opcodes, included since they
	// appear in enough commercial ROM disassemblies to be worth modelling
	// deterministically rather than as a bare NOP.
	lax := func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		v := b.Read(master, op.addr)
		c.reg.A = v
		c.reg.X = v
		c.setZN(v)
	}
	instr(0xA7, modeZeroPage, 3, false, lax)
	instr(0xB7, modeZeroPageY, 4, false, lax)
	instr(0xAF, modeAbsolute, 4, false, lax)
	instr(0xBF, modeAbsoluteY, 4, true, lax)
	instr(0xA3, modeIndexedIndirect, 6, false, lax)
	instr(0xB3, modeIndirectIndexed, 5, true, lax)

	sax := func(c *CPU, b bus.Bus, master bus.Master, op operand) {
		b.Write(master, op.addr, c.reg.A&c.reg.X)
	}
	instr(0x87, modeZeroPage, 3, false, sax)
	instr(0x97, modeZeroPageY, 4, false, sax)
	instr(0x8F, modeAbsolute, 4, false, sax)
	instr(0x83, modeIndexedIndirect, 6, false, sax)
}
