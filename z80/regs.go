package z80

import "github.com/user-none/go-chip-arcade/bus"

// get8/set8 implement the standard 3-bit register code used throughout the
// base opcode map: 0=B 1=C 2=D 3=E 4=H 5=L 6=(HL) 7=A.
func (c *CPU) get8(b bus.Bus, master bus.Master, code uint8) uint8 {
	switch code {
	case 0:
		return c.reg.B
	case 1:
		return c.reg.C
	case 2:
		return c.reg.D
	case 3:
		return c.reg.E
	case 4:
		return c.reg.H
	case 5:
		return c.reg.L
	case 6:
		return b.Read(master, c.reg.HL())
	default:
		return c.reg.A
	}
}

func (c *CPU) set8(b bus.Bus, master bus.Master, code uint8, v uint8) {
	switch code {
	case 0:
		c.reg.B = v
	case 1:
		c.reg.C = v
	case 2:
		c.reg.D = v
	case 3:
		c.reg.E = v
	case 4:
		c.reg.H = v
	case 5:
		c.reg.L = v
	case 6:
		b.Write(master, c.reg.HL(), v)
	default:
		c.reg.A = v
	}
}

// get16SP/set16SP implement the 2-bit register-pair code used by 16-bit
// load/arithmetic opcodes where the fourth slot is SP: 0=BC 1=DE 2=HL 3=SP.
func (c *CPU) get16SP(code uint8) uint16 {
	switch code {
	case 0:
		return c.reg.BC()
	case 1:
		return c.reg.DE()
	case 2:
		return c.reg.HL()
	default:
		return c.reg.SP
	}
}

func (c *CPU) set16SP(code uint8, v uint16) {
	switch code {
	case 0:
		c.reg.setBC(v)
	case 1:
		c.reg.setDE(v)
	case 2:
		c.reg.setHL(v)
	default:
		c.reg.SP = v
	}
}

// get16AF/set16AF implement the 2-bit register-pair code used by
// PUSH/POP, where the fourth slot is AF rather than SP.
func (c *CPU) get16AF(code uint8) uint16 {
	switch code {
	case 0:
		return c.reg.BC()
	case 1:
		return c.reg.DE()
	case 2:
		return c.reg.HL()
	default:
		return c.reg.AF()
	}
}

func (c *CPU) set16AF(code uint8, v uint16) {
	switch code {
	case 0:
		c.reg.setBC(v)
	case 1:
		c.reg.setDE(v)
	case 2:
		c.reg.setHL(v)
	default:
		c.reg.setAF(v)
	}
}
