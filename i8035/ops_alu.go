package i8035

import "github.com/user-none/go-chip-arcade/bus"

func registerALU() {
	for n := uint8(0); n < 8; n++ {
		rn := n
		opcodeTable[0x68|rn] = func(c *CPU, b bus.Bus, master bus.Master) { // ADD A,Rn
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A = c.add(c.reg.R(rn), 0)
			})
		}
		opcodeTable[0x78|rn] = func(c *CPU, b bus.Bus, master bus.Master) { // ADDC A,Rn
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				carry := uint8(0)
				if c.reg.PSW&PswC != 0 {
					carry = 1
				}
				c.reg.A = c.add(c.reg.R(rn), carry)
			})
		}
		opcodeTable[0x58|rn] = func(c *CPU, b bus.Bus, master bus.Master) { // ANL A,Rn
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A &= c.reg.R(rn)
			})
		}
		opcodeTable[0x48|rn] = func(c *CPU, b bus.Bus, master bus.Master) { // ORL A,Rn
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A |= c.reg.R(rn)
			})
		}
		opcodeTable[0xD8|rn] = func(c *CPU, b bus.Bus, master bus.Master) { // XRL A,Rn
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A ^= c.reg.R(rn)
			})
		}
		opcodeTable[0x18|rn] = func(c *CPU, b bus.Bus, master bus.Master) { // INC Rn
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.setR(rn, c.reg.R(rn)+1)
			})
		}
		opcodeTable[0xC8|rn] = func(c *CPU, b bus.Bus, master bus.Master) { // DEC Rn
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.setR(rn, c.reg.R(rn)-1)
			})
		}
	}

	for i := uint8(0); i < 2; i++ {
		ri := i
		opcodeTable[0x60|ri] = func(c *CPU, b bus.Bus, master bus.Master) { // ADD A,@Ri
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A = c.add(c.ram[c.reg.R(ri)&0x3F], 0)
			})
		}
		opcodeTable[0x70|ri] = func(c *CPU, b bus.Bus, master bus.Master) { // ADDC A,@Ri
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				carry := uint8(0)
				if c.reg.PSW&PswC != 0 {
					carry = 1
				}
				c.reg.A = c.add(c.ram[c.reg.R(ri)&0x3F], carry)
			})
		}
		opcodeTable[0x50|ri] = func(c *CPU, b bus.Bus, master bus.Master) { // ANL A,@Ri
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A &= c.ram[c.reg.R(ri)&0x3F]
			})
		}
		opcodeTable[0x40|ri] = func(c *CPU, b bus.Bus, master bus.Master) { // ORL A,@Ri
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A |= c.ram[c.reg.R(ri)&0x3F]
			})
		}
		opcodeTable[0xD0|ri] = func(c *CPU, b bus.Bus, master bus.Master) { // XRL A,@Ri
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A ^= c.ram[c.reg.R(ri)&0x3F]
			})
		}
	}

	opcodeTable[0x03] = func(c *CPU, b bus.Bus, master bus.Master) { // ADD A,#data
		n := c.fetchByte(b, master)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = c.add(n, 0)
		})
	}
	opcodeTable[0x13] = func(c *CPU, b bus.Bus, master bus.Master) { // ADDC A,#data
		n := c.fetchByte(b, master)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			carry := uint8(0)
			if c.reg.PSW&PswC != 0 {
				carry = 1
			}
			c.reg.A = c.add(n, carry)
		})
	}
	opcodeTable[0x53] = func(c *CPU, b bus.Bus, master bus.Master) { // ANL A,#data
		n := c.fetchByte(b, master)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A &= n
		})
	}
	opcodeTable[0x43] = func(c *CPU, b bus.Bus, master bus.Master) { // ORL A,#data
		n := c.fetchByte(b, master)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A |= n
		})
	}
	opcodeTable[0xD3] = func(c *CPU, b bus.Bus, master bus.Master) { // XRL A,#data
		n := c.fetchByte(b, master)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A ^= n
		})
	}

	opcodeTable[0x17] = func(c *CPU, b bus.Bus, master bus.Master) { // INC A
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.A++ })
	}
	opcodeTable[0x07] = func(c *CPU, b bus.Bus, master bus.Master) { // DEC A
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.A-- })
	}
	opcodeTable[0x27] = func(c *CPU, b bus.Bus, master bus.Master) { // CLR A
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.A = 0 })
	}
	opcodeTable[0x37] = func(c *CPU, b bus.Bus, master bus.Master) { // CPL A
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.A = ^c.reg.A })
	}
	opcodeTable[0x47] = func(c *CPU, b bus.Bus, master bus.Master) { // SWAP A
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = c.reg.A<<4 | c.reg.A>>4
		})
	}
	opcodeTable[0xE7] = func(c *CPU, b bus.Bus, master bus.Master) { // RL A
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = c.reg.A<<1 | c.reg.A>>7
		})
	}
	opcodeTable[0xF7] = func(c *CPU, b bus.Bus, master bus.Master) { // RLC A
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
			oldC := c.reg.PSW & PswC
			c.setCarry(c.reg.A&0x80 != 0)
			c.reg.A <<= 1
			if oldC != 0 {
				c.reg.A |= 0x01
			}
		})
	}
	opcodeTable[0x77] = func(c *CPU, b bus.Bus, master bus.Master) { // RR A
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = c.reg.A>>1 | c.reg.A<<7
		})
	}
	opcodeTable[0x67] = func(c *CPU, b bus.Bus, master bus.Master) { // RRC A
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
			oldC := c.reg.PSW & PswC
			c.setCarry(c.reg.A&0x01 != 0)
			c.reg.A >>= 1
			if oldC != 0 {
				c.reg.A |= 0x80
			}
		})
	}
	opcodeTable[0x57] = func(c *CPU, b bus.Bus, master bus.Master) { // DA A
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.daa() })
	}
}
