package m6809

import "github.com/user-none/go-chip-arcade/bus"

func registerShiftRotate() {
	wireInherentA := func(opcode uint8, fn func(c *CPU, v uint8) uint8) {
		opcodeTable[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
			c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A = fn(c, c.reg.A)
			})
		}
	}
	wireInherentB := func(opcode uint8, fn func(c *CPU, v uint8) uint8) {
		opcodeTable[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
			c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.B = fn(c, c.reg.B)
			})
		}
	}
	wireMem := func(dir, idx, ext uint8, fn func(c *CPU, v uint8) uint8) {
		mem := func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
			v := am.read8(b, master)
			am.write8(b, master, fn(c, v))
		}
		wire(&opcodeTable, dir, amDirect, 6, mem)
		wire(&opcodeTable, idx, amIndexed, 6, mem)
		wire(&opcodeTable, ext, amExtended, 7, mem)
	}
	wireTST := func(inhA, inhB, dir, idx, ext uint8) {
		fn := func(c *CPU, v uint8) uint8 { c.setZN8(v); c.setFlag(FlagV, false); return v }
		wireInherentA(inhA, fn)
		wireInherentB(inhB, fn)
		tstMem := func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
			fn(c, am.read8(b, master))
		}
		wire(&opcodeTable, dir, amDirect, 6, tstMem)
		wire(&opcodeTable, idx, amIndexed, 6, tstMem)
		wire(&opcodeTable, ext, amExtended, 7, tstMem)
	}

	com := func(c *CPU, v uint8) uint8 {
		result := ^v
		c.setZN8(result)
		c.setFlag(FlagV, false)
		c.setFlag(FlagC, true)
		return result
	}
	neg := func(c *CPU, v uint8) uint8 {
		result := c.subFlags8(0, v, 0)
		return result
	}
	inc := func(c *CPU, v uint8) uint8 {
		result := v + 1
		c.setZN8(result)
		c.setFlag(FlagV, v == 0x7F)
		return result
	}
	dec := func(c *CPU, v uint8) uint8 {
		result := v - 1
		c.setZN8(result)
		c.setFlag(FlagV, v == 0x80)
		return result
	}
	clr := func(c *CPU, v uint8) uint8 {
		c.setFlag(FlagZ, true)
		c.setFlag(FlagN, false)
		c.setFlag(FlagV, false)
		c.setFlag(FlagC, false)
		return 0
	}
	asl := func(c *CPU, v uint8) uint8 {
		c.setFlag(FlagC, v&0x80 != 0)
		result := v << 1
		c.setFlag(FlagV, (v&0x80 != 0) != (result&0x80 != 0))
		c.setZN8(result)
		return result
	}
	lsr := func(c *CPU, v uint8) uint8 {
		c.setFlag(FlagC, v&0x01 != 0)
		result := v >> 1
		c.setFlag(FlagN, false)
		c.setFlag(FlagZ, result == 0)
		return result
	}
	rol := func(c *CPU, v uint8) uint8 {
		oldC := c.reg.CC & FlagC
		c.setFlag(FlagC, v&0x80 != 0)
		result := v << 1
		if oldC != 0 {
			result |= 0x01
		}
		c.setFlag(FlagV, (v&0x80 != 0) != (result&0x80 != 0))
		c.setZN8(result)
		return result
	}
	ror := func(c *CPU, v uint8) uint8 {
		oldC := c.reg.CC & FlagC
		c.setFlag(FlagC, v&0x01 != 0)
		result := v >> 1
		if oldC != 0 {
			result |= 0x80
		}
		c.setZN8(result)
		return result
	}
	asr := func(c *CPU, v uint8) uint8 {
		c.setFlag(FlagC, v&0x01 != 0)
		result := (v >> 1) | (v & 0x80)
		c.setZN8(result)
		return result
	}

	wireInherentA(0x43, com)
	wireInherentB(0x53, com)
	wireMem(0x03, 0x63, 0x73, com)
	wireInherentA(0x40, neg)
	wireInherentB(0x50, neg)
	wireMem(0x00, 0x60, 0x70, neg)
	wireInherentA(0x4C, inc)
	wireInherentB(0x5C, inc)
	wireMem(0x0C, 0x6C, 0x7C, inc)
	wireInherentA(0x4A, dec)
	wireInherentB(0x5A, dec)
	wireMem(0x0A, 0x6A, 0x7A, dec)
	wireInherentA(0x4F, clr)
	wireInherentB(0x5F, clr)
	wireMem(0x0F, 0x6F, 0x7F, clr)
	wireInherentA(0x48, asl)
	wireInherentB(0x58, asl)
	wireMem(0x08, 0x68, 0x78, asl)
	wireInherentA(0x44, lsr)
	wireInherentB(0x54, lsr)
	wireMem(0x04, 0x64, 0x74, lsr)
	wireInherentA(0x49, rol)
	wireInherentB(0x59, rol)
	wireMem(0x09, 0x69, 0x79, rol)
	wireInherentA(0x46, ror)
	wireInherentB(0x56, ror)
	wireMem(0x06, 0x66, 0x76, ror)
	wireInherentA(0x47, asr)
	wireInherentB(0x57, asr)
	wireMem(0x07, 0x67, 0x77, asr)
	wireTST(0x4D, 0x5D, 0x0D, 0x6D, 0x7D)
}
