package z80

import "github.com/user-none/go-chip-arcade/bus"

// registerRotateShift wires the CB-prefixed rotate/shift block
// (RLC/RRC/RL/RR/SLA/SRA/SLL/SRL, 0x00-0x3F) plus the unprefixed
// accumulator-only forms (RLCA/RRCA/RLA/RRA).
func registerRotateShift() {
	ops := []func(c *CPU, v uint8) uint8{
		rlc, rrc, rl, rr, sla, sra, sll, srl,
	}
	for opIdx, fn := range ops {
		op := fn
		for r := uint8(0); r < 8; r++ {
			reg := r
			cycles := 8
			if r == 6 {
				cycles = 15
			}
			opcodeTableCB[uint8(opIdx)<<3|reg] = func(c *CPU, b bus.Bus, master bus.Master) {
				c.queue(cycles, func(c *CPU, b bus.Bus, master bus.Master) {
					v := op(c, c.get8(b, master, reg))
					c.set8(b, master, reg, v)
				})
			}
		}
	}

	opcodeTable[0x07] = accumOnly(rlc) // RLCA
	opcodeTable[0x0F] = accumOnly(rrc) // RRCA
	opcodeTable[0x17] = accumOnly(rl)  // RLA
	opcodeTable[0x1F] = accumOnly(rr)  // RRA
}

// accumOnly wraps a rotate for the unprefixed accumulator forms, which
// only touch C/N/H (and the undocumented Y/X from A) — unlike their
// CB-prefixed counterparts, S/Z/P-V are left alone.
func accumOnly(rot func(c *CPU, v uint8) uint8) opFunc {
	return func(c *CPU, b bus.Bus, master bus.Master) {
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
			s, z, pv := c.reg.F&FlagS, c.reg.F&FlagZ, c.reg.F&FlagPV
			c.reg.A = rot(c, c.reg.A)
			c.reg.F = c.reg.F&^(FlagS|FlagZ|FlagPV) | s | z | pv
		})
	}
}

func rlc(c *CPU, v uint8) uint8 {
	carry := v&0x80 != 0
	result := v<<1 | v>>7
	c.setFlag(FlagC, carry)
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.szFlags(result)
	c.setFlag(FlagPV, parity(result))
	return result
}

func rrc(c *CPU, v uint8) uint8 {
	carry := v&0x01 != 0
	result := v>>1 | v<<7
	c.setFlag(FlagC, carry)
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.szFlags(result)
	c.setFlag(FlagPV, parity(result))
	return result
}

func rl(c *CPU, v uint8) uint8 {
	oldC := c.reg.F & FlagC
	carry := v&0x80 != 0
	result := v << 1
	if oldC != 0 {
		result |= 0x01
	}
	c.setFlag(FlagC, carry)
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.szFlags(result)
	c.setFlag(FlagPV, parity(result))
	return result
}

func rr(c *CPU, v uint8) uint8 {
	oldC := c.reg.F & FlagC
	carry := v&0x01 != 0
	result := v >> 1
	if oldC != 0 {
		result |= 0x80
	}
	c.setFlag(FlagC, carry)
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.szFlags(result)
	c.setFlag(FlagPV, parity(result))
	return result
}

func sla(c *CPU, v uint8) uint8 {
	carry := v&0x80 != 0
	result := v << 1
	c.setFlag(FlagC, carry)
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.szFlags(result)
	c.setFlag(FlagPV, parity(result))
	return result
}

func sra(c *CPU, v uint8) uint8 {
	carry := v&0x01 != 0
	result := (v >> 1) | (v & 0x80)
	c.setFlag(FlagC, carry)
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.szFlags(result)
	c.setFlag(FlagPV, parity(result))
	return result
}

// sll is the undocumented "shift left logical" that shifts in a 1 (not
// a 0) at bit 0; must be implemented per spec §7, not treated as a NOP.
func sll(c *CPU, v uint8) uint8 {
	carry := v&0x80 != 0
	result := v<<1 | 0x01
	c.setFlag(FlagC, carry)
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.szFlags(result)
	c.setFlag(FlagPV, parity(result))
	return result
}

func srl(c *CPU, v uint8) uint8 {
	carry := v&0x01 != 0
	result := v >> 1
	c.setFlag(FlagC, carry)
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.szFlags(result)
	c.setFlag(FlagPV, parity(result))
	return result
}

// registerBitOps wires BIT/RES/SET b,r (0x40-0xFF in the CB table).
func registerBitOps() {
	for bitN := uint8(0); bitN < 8; bitN++ {
		n := bitN
		for r := uint8(0); r < 8; r++ {
			reg := r
			bitCycles := 8
			if r == 6 {
				bitCycles = 12
			}
			setResCycles := 8
			if r == 6 {
				setResCycles = 15
			}
			opcodeTableCB[0x40|n<<3|reg] = func(c *CPU, b bus.Bus, master bus.Master) { // BIT
				c.queue(bitCycles, func(c *CPU, b bus.Bus, master bus.Master) {
					v := c.get8(b, master, reg)
					c.setFlag(FlagZ, v&(1<<n) == 0)
					c.setFlag(FlagPV, v&(1<<n) == 0)
					c.setFlag(FlagS, n == 7 && v&0x80 != 0)
					c.setFlag(FlagH, true)
					c.setFlag(FlagN, false)
					c.setFlag(FlagY, v&0x20 != 0)
					c.setFlag(FlagX, v&0x08 != 0)
				})
			}
			opcodeTableCB[0x80|n<<3|reg] = func(c *CPU, b bus.Bus, master bus.Master) { // RES
				c.queue(setResCycles, func(c *CPU, b bus.Bus, master bus.Master) {
					c.set8(b, master, reg, c.get8(b, master, reg)&^(1<<n))
				})
			}
			opcodeTableCB[0xC0|n<<3|reg] = func(c *CPU, b bus.Bus, master bus.Master) { // SET
				c.queue(setResCycles, func(c *CPU, b bus.Bus, master bus.Master) {
					c.set8(b, master, reg, c.get8(b, master, reg)|(1<<n))
				})
			}
		}
	}
}
