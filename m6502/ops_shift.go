package m6502

import "github.com/user-none/go-chip-arcade/bus"

// rmw reads the operand (accumulator or memory), applies fn, writes it
// back, and sets Z/N on the result.
func (c *CPU) rmw(b bus.Bus, master bus.Master, op operand, fn func(c *CPU, v uint8) uint8) {
	var v uint8
	if op.isAccum {
		v = c.reg.A
	} else {
		v = b.Read(master, op.addr)
	}
	result := fn(c, v)
	if op.isAccum {
		c.reg.A = result
	} else {
		b.Write(master, op.addr, result)
	}
	c.setZN(result)
}

func registerShiftRotate() {
	wireRMW := func(accOp uint8, zp, zpx, abs, absx uint8, fn func(c *CPU, v uint8) uint8) {
		exec := func(c *CPU, b bus.Bus, master bus.Master, op operand) { c.rmw(b, master, op, fn) }
		if accOp != 0 {
			instr(accOp, modeAccumulator, 2, false, exec)
		}
		instr(zp, modeZeroPage, 5, false, exec)
		instr(zpx, modeZeroPageX, 6, false, exec)
		instr(abs, modeAbsolute, 6, false, exec)
		instr(absx, modeAbsoluteX, 7, false, exec)
	}

	wireRMW(0x0A, 0x06, 0x16, 0x0E, 0x1E, func(c *CPU, v uint8) uint8 {
		c.setFlag(FlagC, v&0x80 != 0)
		return v << 1
	})
	wireRMW(0x4A, 0x46, 0x56, 0x4E, 0x5E, func(c *CPU, v uint8) uint8 {
		c.setFlag(FlagC, v&0x01 != 0)
		return v >> 1
	})
	wireRMW(0x2A, 0x26, 0x36, 0x2E, 0x3E, func(c *CPU, v uint8) uint8 {
		oldC := c.reg.P & FlagC
		c.setFlag(FlagC, v&0x80 != 0)
		result := v << 1
		if oldC != 0 {
			result |= 0x01
		}
		return result
	})
	wireRMW(0x6A, 0x66, 0x76, 0x6E, 0x7E, func(c *CPU, v uint8) uint8 {
		oldC := c.reg.P & FlagC
		c.setFlag(FlagC, v&0x01 != 0)
		result := v >> 1
		if oldC != 0 {
			result |= 0x80
		}
		return result
	})
	wireRMW(0, 0xE6, 0xF6, 0xEE, 0xFE, func(c *CPU, v uint8) uint8 { return v + 1 })
	wireRMW(0, 0xC6, 0xD6, 0xCE, 0xDE, func(c *CPU, v uint8) uint8 { return v - 1 })
}
