package m6809

import "github.com/user-none/go-chip-arcade/bus"

func wire(table *[256]opFunc, opcode uint8, kind amKind, baseCycles int, exec func(c *CPU, b bus.Bus, master bus.Master, am amResult)) {
	table[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
		am := c.resolveAM(b, master, kind)
		c.queue(baseCycles+am.extra, func(c *CPU, b bus.Bus, master bus.Master) {
			exec(c, b, master, am)
		})
	}
}

func registerLoadStore() {
	load8 := func(set func(c *CPU, v uint8)) func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
		return func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
			v := am.read8(b, master)
			set(c, v)
			c.setZN8(v)
			c.setFlag(FlagV, false)
		}
	}
	load16 := func(set func(c *CPU, v uint16)) func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
		return func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
			v := am.read16(b, master)
			set(c, v)
			c.setZN16(v)
			c.setFlag(FlagV, false)
		}
	}
	setA := func(c *CPU, v uint8) { c.reg.A = v }
	setB := func(c *CPU, v uint8) { c.reg.B = v }
	setD := func(c *CPU, v uint16) { c.reg.setD(v) }
	setX := func(c *CPU, v uint16) { c.reg.X = v }
	setY := func(c *CPU, v uint16) { c.reg.Y = v }
	setU := func(c *CPU, v uint16) { c.reg.U = v }
	setS := func(c *CPU, v uint16) { c.reg.S = v }

	wire(&opcodeTable, 0x86, amImmediate8, 2, load8(setA))
	wire(&opcodeTable, 0x96, amDirect, 4, load8(setA))
	wire(&opcodeTable, 0xA6, amIndexed, 4, load8(setA))
	wire(&opcodeTable, 0xB6, amExtended, 5, load8(setA))

	wire(&opcodeTable, 0xC6, amImmediate8, 2, load8(setB))
	wire(&opcodeTable, 0xD6, amDirect, 4, load8(setB))
	wire(&opcodeTable, 0xE6, amIndexed, 4, load8(setB))
	wire(&opcodeTable, 0xF6, amExtended, 5, load8(setB))

	wire(&opcodeTable, 0xCC, amImmediate16, 3, load16(setD))
	wire(&opcodeTable, 0xDC, amDirect, 5, load16(setD))
	wire(&opcodeTable, 0xEC, amIndexed, 5, load16(setD))
	wire(&opcodeTable, 0xFC, amExtended, 6, load16(setD))

	wire(&opcodeTable, 0x8E, amImmediate16, 3, load16(setX))
	wire(&opcodeTable, 0x9E, amDirect, 5, load16(setX))
	wire(&opcodeTable, 0xAE, amIndexed, 5, load16(setX))
	wire(&opcodeTable, 0xBE, amExtended, 6, load16(setX))

	wire(&opcodeTablePage2, 0x8E, amImmediate16, 4, load16(setY))
	wire(&opcodeTablePage2, 0x9E, amDirect, 6, load16(setY))
	wire(&opcodeTablePage2, 0xAE, amIndexed, 6, load16(setY))
	wire(&opcodeTablePage2, 0xBE, amExtended, 7, load16(setY))

	wire(&opcodeTable, 0xDE, amDirect, 5, load16(setU))
	wire(&opcodeTable, 0xEE, amIndexed, 5, load16(setU))
	wire(&opcodeTable, 0xFE, amExtended, 6, load16(setU))

	wire(&opcodeTablePage2, 0xDE, amDirect, 6, load16(setS))
	wire(&opcodeTablePage2, 0xEE, amIndexed, 6, load16(setS))
	wire(&opcodeTablePage2, 0xFE, amExtended, 7, load16(setS))

	store8 := func(get func(c *CPU) uint8) func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
		return func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
			v := get(c)
			am.write8(b, master, v)
			c.setZN8(v)
			c.setFlag(FlagV, false)
		}
	}
	store16 := func(get func(c *CPU) uint16) func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
		return func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
			v := get(c)
			am.write16(b, master, v)
			c.setZN16(v)
			c.setFlag(FlagV, false)
		}
	}
	getA := func(c *CPU) uint8 { return c.reg.A }
	getB := func(c *CPU) uint8 { return c.reg.B }
	getD := func(c *CPU) uint16 { return c.reg.D() }
	getX := func(c *CPU) uint16 { return c.reg.X }
	getY := func(c *CPU) uint16 { return c.reg.Y }
	getU := func(c *CPU) uint16 { return c.reg.U }
	getS := func(c *CPU) uint16 { return c.reg.S }

	wire(&opcodeTable, 0x97, amDirect, 4, store8(getA))
	wire(&opcodeTable, 0xA7, amIndexed, 4, store8(getA))
	wire(&opcodeTable, 0xB7, amExtended, 5, store8(getA))

	wire(&opcodeTable, 0xD7, amDirect, 4, store8(getB))
	wire(&opcodeTable, 0xE7, amIndexed, 4, store8(getB))
	wire(&opcodeTable, 0xF7, amExtended, 5, store8(getB))

	wire(&opcodeTable, 0xDD, amDirect, 5, store16(getD))
	wire(&opcodeTable, 0xED, amIndexed, 5, store16(getD))
	wire(&opcodeTable, 0xFD, amExtended, 6, store16(getD))

	wire(&opcodeTable, 0x9F, amDirect, 5, store16(getX))
	wire(&opcodeTable, 0xAF, amIndexed, 5, store16(getX))
	wire(&opcodeTable, 0xBF, amExtended, 6, store16(getX))

	wire(&opcodeTablePage2, 0x9F, amDirect, 6, store16(getY))
	wire(&opcodeTablePage2, 0xAF, amIndexed, 6, store16(getY))
	wire(&opcodeTablePage2, 0xBF, amExtended, 7, store16(getY))

	wire(&opcodeTable, 0xDF, amDirect, 5, store16(getU))
	wire(&opcodeTable, 0xEF, amIndexed, 5, store16(getU))
	wire(&opcodeTable, 0xFF, amExtended, 6, store16(getU))

	wire(&opcodeTablePage2, 0xDF, amDirect, 6, store16(getS))
	wire(&opcodeTablePage2, 0xEF, amIndexed, 6, store16(getS))
	wire(&opcodeTablePage2, 0xFF, amExtended, 7, store16(getS))
}
