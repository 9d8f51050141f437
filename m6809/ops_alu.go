package m6809

import "github.com/user-none/go-chip-arcade/bus"

type modeSpec8 struct {
	opcode uint8
	kind   amKind
	cycles int
}

func group8(imm, dir, idx, ext uint8) []modeSpec8 {
	return []modeSpec8{
		{imm, amImmediate8, 2},
		{dir, amDirect, 4},
		{idx, amIndexed, 4},
		{ext, amExtended, 5},
	}
}

func group16(imm, dir, idx, ext uint8, base int) []modeSpec8 {
	return []modeSpec8{
		{imm, amImmediate16, base},
		{dir, amDirect, base + 2},
		{idx, amIndexed, base + 2},
		{ext, amExtended, base + 3},
	}
}

func wireGroup(table *[256]opFunc, specs []modeSpec8, exec func(c *CPU, b bus.Bus, master bus.Master, am amResult)) {
	for _, s := range specs {
		wire(table, s.opcode, s.kind, s.cycles, exec)
	}
}

func registerALU() {
	acc8 := func(get func(c *CPU) uint8, set func(c *CPU, v uint8), fn func(c *CPU, acc, v uint8) uint8) func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
		return func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
			v := am.read8(b, master)
			set(c, fn(c, get(c), v))
		}
	}
	cmp8 := func(get func(c *CPU) uint8, fn func(c *CPU, acc, v uint8) uint8) func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
		return func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
			v := am.read8(b, master)
			fn(c, get(c), v)
		}
	}

	getA := func(c *CPU) uint8 { return c.reg.A }
	setA := func(c *CPU, v uint8) { c.reg.A = v }
	getB := func(c *CPU) uint8 { return c.reg.B }
	setB := func(c *CPU, v uint8) { c.reg.B = v }

	add := func(c *CPU, acc, v uint8) uint8 { return c.addFlags8(acc, v, 0) }
	adc := func(c *CPU, acc, v uint8) uint8 {
		carry := uint8(0)
		if c.reg.CC&FlagC != 0 {
			carry = 1
		}
		return c.addFlags8(acc, v, carry)
	}
	sub := func(c *CPU, acc, v uint8) uint8 { return c.subFlags8(acc, v, 0) }
	sbc := func(c *CPU, acc, v uint8) uint8 {
		borrow := uint8(0)
		if c.reg.CC&FlagC != 0 {
			borrow = 1
		}
		return c.subFlags8(acc, v, borrow)
	}
	and := func(c *CPU, acc, v uint8) uint8 { return c.logical8(acc & v) }
	or := func(c *CPU, acc, v uint8) uint8 { return c.logical8(acc | v) }
	eor := func(c *CPU, acc, v uint8) uint8 { return c.logical8(acc ^ v) }
	bit := func(c *CPU, acc, v uint8) uint8 { c.logical8(acc & v); return acc }

	wireGroup(&opcodeTable, group8(0x8B, 0x9B, 0xAB, 0xBB), acc8(getA, setA, add))
	wireGroup(&opcodeTable, group8(0xCB, 0xDB, 0xEB, 0xFB), acc8(getB, setB, add))
	wireGroup(&opcodeTable, group8(0x89, 0x99, 0xA9, 0xB9), acc8(getA, setA, adc))
	wireGroup(&opcodeTable, group8(0xC9, 0xD9, 0xE9, 0xF9), acc8(getB, setB, adc))
	wireGroup(&opcodeTable, group8(0x80, 0x90, 0xA0, 0xB0), acc8(getA, setA, sub))
	wireGroup(&opcodeTable, group8(0xC0, 0xD0, 0xE0, 0xF0), acc8(getB, setB, sub))
	wireGroup(&opcodeTable, group8(0x82, 0x92, 0xA2, 0xB2), acc8(getA, setA, sbc))
	wireGroup(&opcodeTable, group8(0xC2, 0xD2, 0xE2, 0xF2), acc8(getB, setB, sbc))
	wireGroup(&opcodeTable, group8(0x84, 0x94, 0xA4, 0xB4), acc8(getA, setA, and))
	wireGroup(&opcodeTable, group8(0xC4, 0xD4, 0xE4, 0xF4), acc8(getB, setB, and))
	wireGroup(&opcodeTable, group8(0x8A, 0x9A, 0xAA, 0xBA), acc8(getA, setA, or))
	wireGroup(&opcodeTable, group8(0xCA, 0xDA, 0xEA, 0xFA), acc8(getB, setB, or))
	wireGroup(&opcodeTable, group8(0x88, 0x98, 0xA8, 0xB8), acc8(getA, setA, eor))
	wireGroup(&opcodeTable, group8(0xC8, 0xD8, 0xE8, 0xF8), acc8(getB, setB, eor))
	wireGroup(&opcodeTable, group8(0x81, 0x91, 0xA1, 0xB1), cmp8(getA, sub))
	wireGroup(&opcodeTable, group8(0xC1, 0xD1, 0xE1, 0xF1), cmp8(getB, sub))
	wireGroup(&opcodeTable, group8(0x85, 0x95, 0xA5, 0xB5), acc8(getA, setA, bit))
	wireGroup(&opcodeTable, group8(0xC5, 0xD5, 0xE5, 0xF5), acc8(getB, setB, bit))

	acc16 := func(get func(c *CPU) uint16, set func(c *CPU, v uint16), fn func(c *CPU, acc, v uint16) uint16) func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
		return func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
			v := am.read16(b, master)
			set(c, fn(c, get(c), v))
		}
	}
	cmp16 := func(get func(c *CPU) uint16, fn func(c *CPU, acc, v uint16) uint16) func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
		return func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
			v := am.read16(b, master)
			fn(c, get(c), v)
		}
	}
	getD := func(c *CPU) uint16 { return c.reg.D() }
	setD := func(c *CPU, v uint16) { c.reg.setD(v) }
	add16 := func(c *CPU, acc, v uint16) uint16 { return c.addFlags16(acc, v) }
	sub16 := func(c *CPU, acc, v uint16) uint16 { return c.subFlags16(acc, v) }

	wireGroup(&opcodeTable, group16(0xC3, 0xD3, 0xE3, 0xF3, 4), acc16(getD, setD, add16))
	wireGroup(&opcodeTable, group16(0x83, 0x93, 0xA3, 0xB3, 4), acc16(getD, setD, sub16))
	wireGroup(&opcodeTable, group16(0x8C, 0x9C, 0xAC, 0xBC, 4), cmp16(func(c *CPU) uint16 { return c.reg.X }, sub16))

	wireGroup(&opcodeTablePage2, group16(0x8C, 0x9C, 0xAC, 0xBC, 5), cmp16(func(c *CPU) uint16 { return c.reg.Y }, sub16))
	wireGroup(&opcodeTablePage3, group16(0x83, 0x93, 0xA3, 0xB3, 5), cmp16(func(c *CPU) uint16 { return c.reg.U }, sub16))
	wireGroup(&opcodeTablePage3, group16(0x8C, 0x9C, 0xAC, 0xBC, 5), cmp16(func(c *CPU) uint16 { return c.reg.S }, sub16))
	wireGroup(&opcodeTablePage2, group16(0x83, 0x93, 0xA3, 0xB3, 5), cmp16(getD, sub16))
}
