package m6809

import "github.com/user-none/go-chip-arcade/bus"

func (c *CPU) indexRegPtr(sel uint8) *uint16 {
	switch sel {
	case 0:
		return &c.reg.X
	case 1:
		return &c.reg.Y
	case 2:
		return &c.reg.U
	default:
		return &c.reg.S
	}
}

func (c *CPU) directAddr(b bus.Bus, master bus.Master) uint16 {
	lo := c.fetchByte(b, master)
	return uint16(c.reg.DP)<<8 | uint16(lo)
}

func (c *CPU) extendedAddr(b bus.Bus, master bus.Master) uint16 {
	return c.fetchWord(b, master)
}

// indexedAddr decodes a 6809 indexed-addressing post-byte, consuming any
// extra displacement bytes, and returns the effective address plus the
// extra cycle cost (beyond the base opcode cost) per the data sheet.
func (c *CPU) indexedAddr(b bus.Bus, master bus.Master) (uint16, int) {
	post := c.fetchByte(b, master)

	if post&0x80 == 0 {
		// 5-bit constant offset, no indirection.
		reg := c.indexRegPtr((post >> 5) & 0x03)
		offset := int8(post<<3) >> 3 // sign-extend low 5 bits
		return *reg + uint16(int16(offset)), 1
	}

	regSel := (post >> 5) & 0x03
	reg := c.indexRegPtr(regSel)
	indirect := post&0x10 != 0
	mode := post & 0x0F

	var addr uint16
	extra := 0
	switch mode {
	case 0x0: // ,R+
		addr = *reg
		*reg++
		extra = 2
	case 0x1: // ,R++
		addr = *reg
		*reg += 2
		extra = 3
		if indirect {
			extra = 6
		}
	case 0x2: // ,-R
		*reg--
		addr = *reg
		extra = 2
	case 0x3: // ,--R
		*reg -= 2
		addr = *reg
		extra = 3
		if indirect {
			extra = 6
		}
	case 0x4: // ,R
		addr = *reg
		extra = 0
		if indirect {
			extra = 3
		}
	case 0x5: // B,R
		addr = *reg + uint16(int16(int8(c.reg.B)))
		extra = 1
		if indirect {
			extra = 4
		}
	case 0x6: // A,R
		addr = *reg + uint16(int16(int8(c.reg.A)))
		extra = 1
		if indirect {
			extra = 4
		}
	case 0x8: // n8,R
		off := int8(c.fetchByte(b, master))
		addr = *reg + uint16(int16(off))
		extra = 1
		if indirect {
			extra = 4
		}
	case 0x9: // n16,R
		off := int16(c.fetchWord(b, master))
		addr = *reg + uint16(off)
		extra = 4
		if indirect {
			extra = 7
		}
	case 0xB: // D,R
		addr = *reg + c.reg.D()
		extra = 4
		if indirect {
			extra = 7
		}
	case 0xC: // n8,PCR
		off := int8(c.fetchByte(b, master))
		addr = c.reg.PC + uint16(int16(off))
		extra = 1
		if indirect {
			extra = 4
		}
	case 0xD: // n16,PCR
		off := int16(c.fetchWord(b, master))
		addr = c.reg.PC + uint16(off)
		extra = 5
		if indirect {
			extra = 8
		}
	case 0xF: // [n16] extended indirect
		addr = c.fetchWord(b, master)
		extra = 5
		indirect = true
	default:
		addr = *reg
	}

	if indirect {
		hi := b.Read(master, addr)
		lo := b.Read(master, addr+1)
		addr = uint16(hi)<<8 | uint16(lo)
	}
	return addr, extra
}
