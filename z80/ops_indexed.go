package z80

import "github.com/user-none/go-chip-arcade/bus"

// registerIndexed wires the IX/IY-specific opcode forms into
// opcodeTableDD/opcodeTableFD (displacement loads/stores, ALU on
// (I[xy]+d), 16-bit load/arith/stack ops on the index register itself)
// and the DDCB/FDCB bit-operation table. Both prefixes share the same
// handler bodies parametrized by a pointer to the CPU's IX or IY field.
func registerIndexed() {
	wireFor := func(table *[256]opFunc, idx func(c *CPU) *uint16) {
		table[0x21] = func(c *CPU, b bus.Bus, master bus.Master) { // LD IX,nn
			n := c.fetchWord(b, master)
			c.queue(14, func(c *CPU, b bus.Bus, master bus.Master) { *idx(c) = n })
		}
		table[0x22] = func(c *CPU, b bus.Bus, master bus.Master) { // LD (nn),IX
			addr := c.fetchWord(b, master)
			c.queue(20, func(c *CPU, b bus.Bus, master bus.Master) {
				v := *idx(c)
				b.Write(master, addr, uint8(v))
				b.Write(master, addr+1, uint8(v>>8))
			})
		}
		table[0x2A] = func(c *CPU, b bus.Bus, master bus.Master) { // LD IX,(nn)
			addr := c.fetchWord(b, master)
			c.queue(20, func(c *CPU, b bus.Bus, master bus.Master) {
				lo := b.Read(master, addr)
				hi := b.Read(master, addr+1)
				*idx(c) = uint16(hi)<<8 | uint16(lo)
			})
		}
		table[0xF9] = func(c *CPU, b bus.Bus, master bus.Master) { // LD SP,IX
			c.queue(10, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.SP = *idx(c) })
		}
		table[0xE5] = func(c *CPU, b bus.Bus, master bus.Master) { // PUSH IX
			c.queue(15, func(c *CPU, b bus.Bus, master bus.Master) { c.push16(b, master, *idx(c)) })
		}
		table[0xE1] = func(c *CPU, b bus.Bus, master bus.Master) { // POP IX
			c.queue(14, func(c *CPU, b bus.Bus, master bus.Master) { *idx(c) = c.pop16(b, master) })
		}
		table[0xE9] = func(c *CPU, b bus.Bus, master bus.Master) { // JP (IX)
			c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.PC = *idx(c) })
		}
		table[0x09] = func(c *CPU, b bus.Bus, master bus.Master) { // ADD IX,BC
			c.queue(15, func(c *CPU, b bus.Bus, master bus.Master) {
				*idx(c) = c.addFlags16(*idx(c), c.reg.BC())
			})
		}
		table[0x19] = func(c *CPU, b bus.Bus, master bus.Master) { // ADD IX,DE
			c.queue(15, func(c *CPU, b bus.Bus, master bus.Master) {
				*idx(c) = c.addFlags16(*idx(c), c.reg.DE())
			})
		}
		table[0x29] = func(c *CPU, b bus.Bus, master bus.Master) { // ADD IX,IX
			c.queue(15, func(c *CPU, b bus.Bus, master bus.Master) {
				*idx(c) = c.addFlags16(*idx(c), *idx(c))
			})
		}
		table[0x39] = func(c *CPU, b bus.Bus, master bus.Master) { // ADD IX,SP
			c.queue(15, func(c *CPU, b bus.Bus, master bus.Master) {
				*idx(c) = c.addFlags16(*idx(c), c.reg.SP)
			})
		}
		table[0x23] = func(c *CPU, b bus.Bus, master bus.Master) { // INC IX
			c.queue(10, func(c *CPU, b bus.Bus, master bus.Master) { *idx(c)++ })
		}
		table[0x2B] = func(c *CPU, b bus.Bus, master bus.Master) { // DEC IX
			c.queue(10, func(c *CPU, b bus.Bus, master bus.Master) { *idx(c)-- })
		}

		// LD r,(I[xy]+d) / LD (I[xy]+d),r for every register slot except 6.
		for code := uint8(0); code < 8; code++ {
			reg := code
			if reg == 6 { // handled below (memory-memory has no index form)
				continue
			}
			table[0x46|reg<<3] = func(c *CPU, b bus.Bus, master bus.Master) {
				d := int8(c.fetchByte(b, master))
				c.queue(19, func(c *CPU, b bus.Bus, master bus.Master) {
					addr := uint16(int32(*idx(c)) + int32(d))
					c.set8(b, master, reg, b.Read(master, addr))
				})
			}
			table[0x70|reg] = func(c *CPU, b bus.Bus, master bus.Master) {
				d := int8(c.fetchByte(b, master))
				c.queue(19, func(c *CPU, b bus.Bus, master bus.Master) {
					addr := uint16(int32(*idx(c)) + int32(d))
					b.Write(master, addr, c.get8(b, master, reg))
				})
			}
		}
		table[0x36] = func(c *CPU, b bus.Bus, master bus.Master) { // LD (I[xy]+d),n
			d := int8(c.fetchByte(b, master))
			n := c.fetchByte(b, master)
			c.queue(19, func(c *CPU, b bus.Bus, master bus.Master) {
				b.Write(master, uint16(int32(*idx(c))+int32(d)), n)
			})
		}

		aluOps := []func(c *CPU, v uint8){
			func(c *CPU, v uint8) { c.reg.A = c.addFlags8(c.reg.A, v, 0) },
			func(c *CPU, v uint8) { c.reg.A = c.addFlags8(c.reg.A, v, c.reg.F&FlagC) },
			func(c *CPU, v uint8) { c.reg.A = c.subFlags8(c.reg.A, v, 0) },
			func(c *CPU, v uint8) { c.reg.A = c.subFlags8(c.reg.A, v, c.reg.F&FlagC) },
			func(c *CPU, v uint8) { c.reg.A = c.andFlags(c.reg.A & v) },
			func(c *CPU, v uint8) { c.reg.A = c.orXorFlags(c.reg.A ^ v) },
			func(c *CPU, v uint8) { c.reg.A = c.orXorFlags(c.reg.A | v) },
			func(c *CPU, v uint8) { c.cpFlags(c.reg.A, v) },
		}
		for i, fn := range aluOps {
			op := fn
			table[0x86|uint8(i)<<3] = func(c *CPU, b bus.Bus, master bus.Master) {
				d := int8(c.fetchByte(b, master))
				c.queue(19, func(c *CPU, b bus.Bus, master bus.Master) {
					op(c, b.Read(master, uint16(int32(*idx(c))+int32(d))))
				})
			}
		}
		table[0x34] = func(c *CPU, b bus.Bus, master bus.Master) { // INC (I[xy]+d)
			d := int8(c.fetchByte(b, master))
			c.queue(23, func(c *CPU, b bus.Bus, master bus.Master) {
				addr := uint16(int32(*idx(c)) + int32(d))
				b.Write(master, addr, c.incFlags8(b.Read(master, addr)))
			})
		}
		table[0x35] = func(c *CPU, b bus.Bus, master bus.Master) { // DEC (I[xy]+d)
			d := int8(c.fetchByte(b, master))
			c.queue(23, func(c *CPU, b bus.Bus, master bus.Master) {
				addr := uint16(int32(*idx(c)) + int32(d))
				b.Write(master, addr, c.decFlags8(b.Read(master, addr)))
			})
		}
	}

	wireFor(&opcodeTableDD, func(c *CPU) *uint16 { return &c.reg.IX })
	wireFor(&opcodeTableFD, func(c *CPU) *uint16 { return &c.reg.IY })

	rotOps := []func(c *CPU, v uint8) uint8{rlc, rrc, rl, rr, sla, sra, sll, srl}
	for opIdx, fn := range rotOps {
		op := fn
		indexedCBTable[uint8(opIdx)<<3] = func(c *CPU, b bus.Bus, master bus.Master, addr uint16) {
			c.queue(23, func(c *CPU, b bus.Bus, master bus.Master) {
				b.Write(master, addr, op(c, b.Read(master, addr)))
			})
		}
	}
	for bitN := uint8(0); bitN < 8; bitN++ {
		n := bitN
		indexedCBTable[0x40|n<<3] = func(c *CPU, b bus.Bus, master bus.Master, addr uint16) {
			c.queue(20, func(c *CPU, b bus.Bus, master bus.Master) {
				v := b.Read(master, addr)
				c.setFlag(FlagZ, v&(1<<n) == 0)
				c.setFlag(FlagPV, v&(1<<n) == 0)
				c.setFlag(FlagH, true)
				c.setFlag(FlagN, false)
			})
		}
		indexedCBTable[0x80|n<<3] = func(c *CPU, b bus.Bus, master bus.Master, addr uint16) {
			c.queue(23, func(c *CPU, b bus.Bus, master bus.Master) {
				b.Write(master, addr, b.Read(master, addr)&^(1<<n))
			})
		}
		indexedCBTable[0xC0|n<<3] = func(c *CPU, b bus.Bus, master bus.Master, addr uint16) {
			c.queue(23, func(c *CPU, b bus.Bus, master bus.Master) {
				b.Write(master, addr, b.Read(master, addr)|(1<<n))
			})
		}
	}
}
