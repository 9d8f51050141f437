package m6800

import "github.com/user-none/go-chip-arcade/bus"

// opFunc is the handler for one M6800 opcode. It runs at decode time (may
// fetch additional instruction-stream bytes synchronously) and must end by
// calling c.queue with the opcode's documented cycle count.
type opFunc func(c *CPU, b bus.Bus, master bus.Master)

// opcodeTable maps the single opcode byte to its handler. A missing entry
// is an undefined opcode, executed as a 2-cycle NOP.
var opcodeTable = map[uint8]opFunc{}

func init() {
	registerLoadStore()
	registerALU()
	registerShiftRotate()
	registerBranch()
	registerStackAndControl()
}

// fetchByte reads the next instruction-stream byte and advances PC.
func (c *CPU) fetchByte(b bus.Bus, master bus.Master) uint8 {
	v := b.Read(master, c.reg.PC)
	c.reg.PC++
	return v
}

func (c *CPU) fetchWord(b bus.Bus, master bus.Master) uint16 {
	hi := c.fetchByte(b, master)
	lo := c.fetchByte(b, master)
	return uint16(hi)<<8 | uint16(lo)
}

// directAddr resolves a direct-page (zero-page) address.
func (c *CPU) directAddr(b bus.Bus, master bus.Master) uint16 {
	return uint16(c.fetchByte(b, master))
}

// extendedAddr resolves a 16-bit absolute address.
func (c *CPU) extendedAddr(b bus.Bus, master bus.Master) uint16 {
	return c.fetchWord(b, master)
}

// indexedAddr resolves X + unsigned 8-bit offset.
func (c *CPU) indexedAddr(b bus.Bus, master bus.Master) uint16 {
	off := c.fetchByte(b, master)
	return c.reg.X + uint16(off)
}
