package z80

import "github.com/user-none/go-chip-arcade/bus"

// registerLoadStore8 wires the LD r,r' block (0x40-0x7F, excluding
// 0x76=HALT), HALT itself, LD r,n, LD A,(BC)/(DE)/(nn) and
// LD (BC)/(DE)/(nn),A.
func registerLoadStore8() {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 | dst<<3 | src
			if opcode == 0x76 {
				continue // HALT
			}
			d, s := dst, src
			cycles := 4
			if d == 6 || s == 6 {
				cycles = 7
			}
			opcodeTable[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
				c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
					c.set8(b, master, d, c.get8(b, master, s))
				})
			}
		}
	}

	opcodeTable[0x76] = func(c *CPU, b bus.Bus, master bus.Master) { // HALT
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			c.halted = true
		})
	}

	for r := uint8(0); r < 8; r++ {
		reg := r
		cycles := 7
		if r == 6 {
			cycles = 10
		}
		opcodeTable[0x06|reg<<3] = func(c *CPU, b bus.Bus, master bus.Master) { // LD r,n
			n := c.fetchByte(b, master)
			c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
				c.set8(b, master, reg, n)
			})
		}
	}

	opcodeTable[0x0A] = func(c *CPU, b bus.Bus, master bus.Master) { // LD A,(BC)
		c.queue(7, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = b.Read(master, c.reg.BC())
		})
	}
	opcodeTable[0x1A] = func(c *CPU, b bus.Bus, master bus.Master) { // LD A,(DE)
		c.queue(7, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = b.Read(master, c.reg.DE())
		})
	}
	opcodeTable[0x02] = func(c *CPU, b bus.Bus, master bus.Master) { // LD (BC),A
		c.queue(7, func(c *CPU, b bus.Bus, master bus.Master) {
			b.Write(master, c.reg.BC(), c.reg.A)
		})
	}
	opcodeTable[0x12] = func(c *CPU, b bus.Bus, master bus.Master) { // LD (DE),A
		c.queue(7, func(c *CPU, b bus.Bus, master bus.Master) {
			b.Write(master, c.reg.DE(), c.reg.A)
		})
	}
	opcodeTable[0x3A] = func(c *CPU, b bus.Bus, master bus.Master) { // LD A,(nn)
		addr := c.fetchWord(b, master)
		c.queue(13, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = b.Read(master, addr)
		})
	}
	opcodeTable[0x32] = func(c *CPU, b bus.Bus, master bus.Master) { // LD (nn),A
		addr := c.fetchWord(b, master)
		c.queue(13, func(c *CPU, b bus.Bus, master bus.Master) {
			b.Write(master, addr, c.reg.A)
		})
	}
}

func registerLoadStore16() {
	for code := uint8(0); code < 4; code++ {
		reg := code
		opcodeTable[0x01|reg<<4] = func(c *CPU, b bus.Bus, master bus.Master) { // LD rr,nn
			n := c.fetchWord(b, master)
			c.queue(10, func(c *CPU, b bus.Bus, master bus.Master) {
				c.set16SP(reg, n)
			})
		}
	}

	opcodeTable[0x22] = func(c *CPU, b bus.Bus, master bus.Master) { // LD (nn),HL
		addr := c.fetchWord(b, master)
		c.queue(16, func(c *CPU, b bus.Bus, master bus.Master) {
			b.Write(master, addr, c.reg.L)
			b.Write(master, addr+1, c.reg.H)
		})
	}
	opcodeTable[0x2A] = func(c *CPU, b bus.Bus, master bus.Master) { // LD HL,(nn)
		addr := c.fetchWord(b, master)
		c.queue(16, func(c *CPU, b bus.Bus, master bus.Master) {
			lo := b.Read(master, addr)
			hi := b.Read(master, addr+1)
			c.reg.setHL(uint16(hi)<<8 | uint16(lo))
		})
	}
	opcodeTable[0xF9] = func(c *CPU, b bus.Bus, master bus.Master) { // LD SP,HL
		c.queue(6, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.SP = c.reg.HL()
		})
	}

	for code := uint8(0); code < 4; code++ {
		rp := code
		opcodeTable[0xC5|rp<<4] = func(c *CPU, b bus.Bus, master bus.Master) { // PUSH rr
			c.queue(11, func(c *CPU, b bus.Bus, master bus.Master) {
				c.push16(b, master, c.get16AF(rp))
			})
		}
		opcodeTable[0xC1|rp<<4] = func(c *CPU, b bus.Bus, master bus.Master) { // POP rr
			c.queue(10, func(c *CPU, b bus.Bus, master bus.Master) {
				c.set16AF(rp, c.pop16(b, master))
			})
		}
	}

	opcodeTableED[0x43] = ldMemRR(0) // LD (nn),BC
	opcodeTableED[0x53] = ldMemRR(1) // LD (nn),DE
	opcodeTableED[0x63] = ldMemRR(2) // LD (nn),HL
	opcodeTableED[0x73] = ldMemRR(3) // LD (nn),SP
	opcodeTableED[0x4B] = ldRRMem(0) // LD BC,(nn)
	opcodeTableED[0x5B] = ldRRMem(1) // LD DE,(nn)
	opcodeTableED[0x6B] = ldRRMem(2) // LD HL,(nn)
	opcodeTableED[0x7B] = ldRRMem(3) // LD SP,(nn)
}

func ldMemRR(rp uint8) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		addr := c.fetchWord(b, master)
		c.queue(20, func(c *CPU, b bus.Bus, master bus.Master) {
			v := c.get16SP(rp)
			b.Write(master, addr, uint8(v))
			b.Write(master, addr+1, uint8(v>>8))
		})
	}
}

func ldRRMem(rp uint8) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		addr := c.fetchWord(b, master)
		c.queue(20, func(c *CPU, b bus.Bus, master bus.Master) {
			lo := b.Read(master, addr)
			hi := b.Read(master, addr+1)
			c.set16SP(rp, uint16(hi)<<8|uint16(lo))
		})
	}
}
