package m6502

import "github.com/user-none/go-chip-arcade/bus"

// addrMode identifies one of the 13 addressing modes documented in the
// MOS 6502 datasheet.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndexedIndirect // (zp,X)
	modeIndirectIndexed // (zp),Y
	modeRelative
)

// operand is the outcome of resolving an addressing mode: either a memory
// address to read/write, or (for accumulator/implied modes) nothing.
type operand struct {
	addr        uint16
	isAccum     bool
	pageCrossed bool
}

// resolve consumes any operand bytes for mode from the instruction stream
// and computes the effective address. It must only be called once, at
// decode time, since it advances PC.
func (c *CPU) resolve(b bus.Bus, master bus.Master, mode addrMode) operand {
	switch mode {
	case modeImplied:
		return operand{}
	case modeAccumulator:
		return operand{isAccum: true}
	case modeImmediate:
		addr := c.reg.PC
		c.reg.PC++
		return operand{addr: addr}
	case modeZeroPage:
		return operand{addr: uint16(c.fetchByte(b, master))}
	case modeZeroPageX:
		zp := c.fetchByte(b, master) + c.reg.X
		return operand{addr: uint16(zp)}
	case modeZeroPageY:
		zp := c.fetchByte(b, master) + c.reg.Y
		return operand{addr: uint16(zp)}
	case modeAbsolute:
		return operand{addr: c.fetchWord(b, master)}
	case modeAbsoluteX:
		base := c.fetchWord(b, master)
		addr := base + uint16(c.reg.X)
		return operand{addr: addr, pageCrossed: (base & 0xFF00) != (addr & 0xFF00)}
	case modeAbsoluteY:
		base := c.fetchWord(b, master)
		addr := base + uint16(c.reg.Y)
		return operand{addr: addr, pageCrossed: (base & 0xFF00) != (addr & 0xFF00)}
	case modeIndirect:
		ptr := c.fetchWord(b, master)
		// JMP (indirect) bug: the high byte is fetched from the start of
		// the same page rather than crossing into the next page.
		lo := b.Read(master, ptr)
		var hiAddr uint16
		if ptr&0x00FF == 0x00FF {
			hiAddr = ptr & 0xFF00
		} else {
			hiAddr = ptr + 1
		}
		hi := b.Read(master, hiAddr)
		return operand{addr: uint16(hi)<<8 | uint16(lo)}
	case modeIndexedIndirect:
		zp := c.fetchByte(b, master) + c.reg.X
		lo := b.Read(master, uint16(zp))
		hi := b.Read(master, uint16(zp+1))
		return operand{addr: uint16(hi)<<8 | uint16(lo)}
	case modeIndirectIndexed:
		zp := c.fetchByte(b, master)
		lo := b.Read(master, uint16(zp))
		hi := b.Read(master, uint16(zp+1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.reg.Y)
		return operand{addr: addr, pageCrossed: (base & 0xFF00) != (addr & 0xFF00)}
	case modeRelative:
		off := int8(c.fetchByte(b, master))
		return operand{addr: uint16(int32(c.reg.PC) + int32(off))}
	}
	return operand{}
}
