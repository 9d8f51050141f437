package m6809

import "github.com/user-none/go-chip-arcade/bus"

func (c *CPU) get16ByCode(code uint8) uint16 {
	switch code {
	case 0x0:
		return c.reg.D()
	case 0x1:
		return c.reg.X
	case 0x2:
		return c.reg.Y
	case 0x3:
		return c.reg.U
	case 0x4:
		return c.reg.S
	case 0x5:
		return c.reg.PC
	}
	return 0
}

func (c *CPU) set16ByCode(code uint8, v uint16) {
	switch code {
	case 0x0:
		c.reg.setD(v)
	case 0x1:
		c.reg.X = v
	case 0x2:
		c.reg.Y = v
	case 0x3:
		c.reg.U = v
	case 0x4:
		c.reg.S = v
	case 0x5:
		c.reg.PC = v
	}
}

func (c *CPU) get8ByCode(code uint8) uint8 {
	switch code {
	case 0x8:
		return c.reg.A
	case 0x9:
		return c.reg.B
	case 0xA:
		return c.reg.CC
	case 0xB:
		return c.reg.DP
	}
	return 0
}

func (c *CPU) set8ByCode(code uint8, v uint8) {
	switch code {
	case 0x8:
		c.reg.A = v
	case 0x9:
		c.reg.B = v
	case 0xA:
		c.reg.CC = v
	case 0xB:
		c.reg.DP = v
	}
}

func registerStackAndControl() {
	opcodeTable[0x1F] = func(c *CPU, b bus.Bus, master bus.Master) { // TFR
		post := c.fetchByte(b, master)
		src, dst := post>>4, post&0x0F
		c.queue(6, func(c *CPU, b bus.Bus, master bus.Master) {
			if src < 8 {
				c.set16ByCode(dst, c.get16ByCode(src))
			} else {
				c.set8ByCode(dst, c.get8ByCode(src))
			}
		})
	}
	opcodeTable[0x1E] = func(c *CPU, b bus.Bus, master bus.Master) { // EXG
		post := c.fetchByte(b, master)
		ra, rb := post>>4, post&0x0F
		c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) {
			if ra < 8 {
				va, vb := c.get16ByCode(ra), c.get16ByCode(rb)
				c.set16ByCode(ra, vb)
				c.set16ByCode(rb, va)
			} else {
				va, vb := c.get8ByCode(ra), c.get8ByCode(rb)
				c.set8ByCode(ra, vb)
				c.set8ByCode(rb, va)
			}
		})
	}

	pushPull := func(opcode uint8, push, useS bool) {
		opcodeTable[opcode] = func(c *CPU, b bus.Bus, master bus.Master) {
			mask := c.fetchByte(b, master)
			bytes := 0
			for _, w := range []struct {
				bit   uint8
				width int
			}{{0x80, 2}, {0x40, 2}, {0x20, 2}, {0x10, 2}, {0x08, 1}, {0x04, 1}, {0x02, 1}, {0x01, 1}} {
				if mask&w.bit != 0 {
					bytes += w.width
				}
			}
			c.queue(5+bytes, func(c *CPU, b bus.Bus, master bus.Master) {
				if push {
					if mask&0x80 != 0 {
						c.pushWord(b, master, useS, c.reg.PC)
					}
					if mask&0x40 != 0 {
						if useS {
							c.pushWord(b, master, true, c.reg.U)
						} else {
							c.pushWord(b, master, false, c.reg.S)
						}
					}
					if mask&0x20 != 0 {
						c.pushWord(b, master, useS, c.reg.Y)
					}
					if mask&0x10 != 0 {
						c.pushWord(b, master, useS, c.reg.X)
					}
					if mask&0x08 != 0 {
						c.push(b, master, useS, c.reg.DP)
					}
					if mask&0x04 != 0 {
						c.push(b, master, useS, c.reg.B)
					}
					if mask&0x02 != 0 {
						c.push(b, master, useS, c.reg.A)
					}
					if mask&0x01 != 0 {
						c.push(b, master, useS, c.reg.CC)
					}
					return
				}
				if mask&0x01 != 0 {
					c.reg.CC = c.pull(b, master, useS)
				}
				if mask&0x02 != 0 {
					c.reg.A = c.pull(b, master, useS)
				}
				if mask&0x04 != 0 {
					c.reg.B = c.pull(b, master, useS)
				}
				if mask&0x08 != 0 {
					c.reg.DP = c.pull(b, master, useS)
				}
				if mask&0x10 != 0 {
					c.reg.X = c.pullWord(b, master, useS)
				}
				if mask&0x20 != 0 {
					c.reg.Y = c.pullWord(b, master, useS)
				}
				if mask&0x40 != 0 {
					if useS {
						c.reg.U = c.pullWord(b, master, true)
					} else {
						c.reg.S = c.pullWord(b, master, false)
					}
				}
				if mask&0x80 != 0 {
					c.reg.PC = c.pullWord(b, master, useS)
				}
			})
		}
	}
	pushPull(0x34, true, true)
	pushPull(0x35, false, true)
	pushPull(0x36, true, false)
	pushPull(0x37, false, false)

	opcodeTable[0x1A] = func(c *CPU, b bus.Bus, master bus.Master) { // ORCC
		v := c.fetchByte(b, master)
		c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.CC |= v
		})
	}
	opcodeTable[0x1C] = func(c *CPU, b bus.Bus, master bus.Master) { // ANDCC
		v := c.fetchByte(b, master)
		c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.CC &= v
		})
	}
	opcodeTable[0x12] = func(c *CPU, b bus.Bus, master bus.Master) { // NOP
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {})
	}
	opcodeTable[0x13] = func(c *CPU, b bus.Bus, master bus.Master) { // SYNC
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			c.syncing = true
		})
	}

	opcodeTable[0x3F] = func(c *CPU, b bus.Bus, master bus.Master) { // SWI
		c.enterFullInterrupt(b, master, vecSWI, true)
	}
	opcodeTablePage2[0x3F] = func(c *CPU, b bus.Bus, master bus.Master) { // SWI2
		c.enterFullInterrupt(b, master, vecSWI2, true)
	}
	opcodeTablePage3[0x3F] = func(c *CPU, b bus.Bus, master bus.Master) { // SWI3
		c.enterFullInterrupt(b, master, vecSWI3, true)
	}

	opcodeTable[0x3C] = func(c *CPU, b bus.Bus, master bus.Master) { // CWAI
		mask := c.fetchByte(b, master)
		c.reg.CC |= FlagE
		c.queue(12, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.CC &= mask
			c.reg.CC |= FlagE
			c.pushFullState(b, master)
			c.waiting = true
		})
	}

	opcodeTable[0x3B] = func(c *CPU, b bus.Bus, master bus.Master) { // RTI
		// Total cost depends on the pulled CC's E bit (6 cycles for a
		// fast/FIRQ frame, 15 for a full frame) so the remaining steps
		// are appended once E is known, rather than fixed up front.
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
			c.reg.CC = c.pull(b, master, true)
			remaining := 5
			if c.reg.CC&FlagE != 0 {
				remaining = 14
			}
			for i := 0; i < remaining-1; i++ {
				c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {})
			}
			c.steps = append(c.steps, func(c *CPU, b bus.Bus, master bus.Master) {
				if c.reg.CC&FlagE == 0 {
					c.reg.PC = c.pullWord(b, master, true)
					return
				}
				c.reg.A = c.pull(b, master, true)
				c.reg.B = c.pull(b, master, true)
				c.reg.DP = c.pull(b, master, true)
				c.reg.X = c.pullWord(b, master, true)
				c.reg.Y = c.pullWord(b, master, true)
				c.reg.U = c.pullWord(b, master, true)
				c.reg.PC = c.pullWord(b, master, true)
			})
		})
	}
}
