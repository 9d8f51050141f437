package i8035

import "github.com/user-none/go-chip-arcade/bus"

func registerLoadStore() {
	for n := uint8(0); n < 8; n++ {
		rn := n
		opcodeTable[0xF8|rn] = func(c *CPU, b bus.Bus, master bus.Master) { // MOV A,Rn
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A = c.reg.R(rn)
			})
		}
		opcodeTable[0xA8|rn] = func(c *CPU, b bus.Bus, master bus.Master) { // MOV Rn,A
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.setR(rn, c.reg.A)
			})
		}
		opcodeTable[0xB8|rn] = func(c *CPU, b bus.Bus, master bus.Master) { // MOV Rn,#data
			n := c.fetchByte(b, master)
			c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.setR(rn, n)
			})
		}
	}

	for i := uint8(0); i < 2; i++ {
		ri := i
		opcodeTable[0xF0|ri] = func(c *CPU, b bus.Bus, master bus.Master) { // MOV A,@Ri
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A = c.ram[c.reg.R(ri)&0x3F]
			})
		}
		opcodeTable[0xA0|ri] = func(c *CPU, b bus.Bus, master bus.Master) { // MOV @Ri,A
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
				c.ram[c.reg.R(ri)&0x3F] = c.reg.A
			})
		}
		opcodeTable[0xB0|ri] = func(c *CPU, b bus.Bus, master bus.Master) { // MOV @Ri,#data
			n := c.fetchByte(b, master)
			c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
				c.ram[c.reg.R(ri)&0x3F] = n
			})
		}
		opcodeTable[0x80|ri] = func(c *CPU, b bus.Bus, master bus.Master) { // MOVX A,@Ri
			c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
				c.reg.A = b.Read(master, uint16(c.reg.R(ri)))
			})
		}
		opcodeTable[0x90|ri] = func(c *CPU, b bus.Bus, master bus.Master) { // MOVX @Ri,A
			c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
				b.Write(master, uint16(c.reg.R(ri)), c.reg.A)
			})
		}
	}

	opcodeTable[0x23] = func(c *CPU, b bus.Bus, master bus.Master) { // MOV A,#data
		n := c.fetchByte(b, master)
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = n
		})
	}
	opcodeTable[0xC0] = func(c *CPU, b bus.Bus, master bus.Master) { // MOV PSW,A
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.PSW = c.reg.A
		})
	}
	opcodeTable[0xC1] = func(c *CPU, b bus.Bus, master bus.Master) { // MOV A,PSW
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = c.reg.PSW
		})
	}

	opcodeTable[0xA3] = func(c *CPU, b bus.Bus, master bus.Master) { // MOVP A,@A
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			page := c.reg.PC &^ 0x00FF
			c.reg.A = b.Read(master, page|uint16(c.reg.A))
		})
	}
	opcodeTable[0xE3] = func(c *CPU, b bus.Bus, master bus.Master) { // MOVP3 A,@A
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.A = b.Read(master, 0x300|uint16(c.reg.A))
		})
	}
}
