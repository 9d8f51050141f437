package m6809

import "github.com/user-none/go-chip-arcade/bus"

// shortBranch wires an 8-bit relative branch: fixed 3 cycles whether or
// not taken.
func shortBranch(opcode uint8, mnemonic string) {
	opcodeTable[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
		offset := int8(c.fetchByte(b, master))
		target := uint16(int32(c.reg.PC) + int32(offset))
		taken := c.testCondition(mnemonic)
		c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {
			if taken {
				c.reg.PC = target
			}
		})
	}
}

// longBranch wires a 16-bit relative branch (page-2, 0x10-prefixed):
// 5 cycles if not taken, 6 if taken.
func longBranch(opcode uint8, mnemonic string) {
	opcodeTablePage2[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
		offset := int16(c.fetchWord(b, master))
		target := uint16(int32(c.reg.PC) + int32(offset))
		taken := c.testCondition(mnemonic)
		n := 5
		if taken {
			n = 6
		}
		c.queue(n, func(c *CPU, b bus.Bus, master bus.Master) {
			if taken {
				c.reg.PC = target
			}
		})
	}
}

var branchMnemonics = []string{"RA", "N", "HI", "LS", "HS", "LO", "NE", "EQ", "VC", "VS", "PL", "MI", "GE", "LT", "GT", "LE"}

func registerBranch() {
	for i, m := range branchMnemonics {
		shortBranch(uint8(0x20+i), m)
	}
	for i, m := range branchMnemonics {
		if m == "RA" {
			continue // LBRA lives at 0x16 in page 1, not page 2
		}
		longBranch(uint8(0x20+i), m)
	}

	opcodeTable[0x16] = func(c *CPU, b bus.Bus, master bus.Master) { // LBRA
		offset := int16(c.fetchWord(b, master))
		target := uint16(int32(c.reg.PC) + int32(offset))
		c.queue(5, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.PC = target
		})
	}
	opcodeTable[0x17] = func(c *CPU, b bus.Bus, master bus.Master) { // LBSR
		offset := int16(c.fetchWord(b, master))
		target := uint16(int32(c.reg.PC) + int32(offset))
		ret := c.reg.PC
		c.queue(9, func(c *CPU, b bus.Bus, master bus.Master) {
			c.pushWord(b, master, true, ret)
			c.reg.PC = target
		})
	}
	opcodeTable[0x8D] = func(c *CPU, b bus.Bus, master bus.Master) { // BSR
		offset := int8(c.fetchByte(b, master))
		target := uint16(int32(c.reg.PC) + int32(offset))
		ret := c.reg.PC
		c.queue(7, func(c *CPU, b bus.Bus, master bus.Master) {
			c.pushWord(b, master, true, ret)
			c.reg.PC = target
		})
	}

	jmp := func(c *CPU, b bus.Bus, master bus.Master, am amResult) {
		c.reg.PC = am.addr
	}
	wire(&opcodeTable, 0x0E, amDirect, 3, jmp)
	wire(&opcodeTable, 0x6E, amIndexed, 3, jmp)
	wire(&opcodeTable, 0x7E, amExtended, 4, jmp)

	jsr := func(opcode uint8, kind amKind, base int) {
		opcodeTable[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
			am := c.resolveAM(b, master, kind)
			ret := c.reg.PC
			c.queue(base+am.extra, func(c *CPU, b bus.Bus, master bus.Master) {
				c.pushWord(b, master, true, ret)
				c.reg.PC = am.addr
			})
		}
	}
	jsr(0x9D, amDirect, 7)
	jsr(0xAD, amIndexed, 7)
	jsr(0xBD, amExtended, 8)

	opcodeTable[0x39] = func(c *CPU, b bus.Bus, master bus.Master) { // RTS
		c.queue(5, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.PC = c.pullWord(b, master, true)
		})
	}
}
