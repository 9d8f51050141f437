// Package z80 implements a Zilog Z80 CPU emulator: the full main/shadow
// register set, prefix-selected opcode tables (base, CB, ED, DD, FD,
// DDCB, FDCB), the R-register M1 refresh counter, and the three
// interrupt modes plus NMI.
package z80

import (
	"github.com/user-none/go-chip-arcade/bus"
	"github.com/user-none/go-chip-arcade/internal/log"
)

var illegalLog = log.For("z80")

// F register flag bits.
const (
	FlagC uint8 = 1 << iota
	FlagN
	FlagPV
	FlagX
	FlagH
	FlagY
	FlagZ
	FlagS
)

// Registers holds the programmer-visible state of the Z80, main and
// shadow sets plus the two index registers.
type Registers struct {
	A, F       uint8
	B, C       uint8
	D, E       uint8
	H, L       uint8
	A2, F2     uint8
	B2, C2     uint8
	D2, E2     uint8
	H2, L2     uint8
	IX, IY     uint16
	SP, PC     uint16
	I, R       uint8
	IFF1, IFF2 bool
	IM         uint8
}

func (r Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }
func (r Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }

func (r *Registers) setBC(v uint16) { r.B, r.C = uint8(v>>8), uint8(v) }
func (r *Registers) setDE(v uint16) { r.D, r.E = uint8(v>>8), uint8(v) }
func (r *Registers) setHL(v uint16) { r.H, r.L = uint8(v>>8), uint8(v) }
func (r *Registers) setAF(v uint16) { r.A, r.F = uint8(v>>8), uint8(v) }

type step func(c *CPU, b bus.Bus, master bus.Master)

// CPU is the Zilog Z80 processor.
type CPU struct {
	reg Registers

	steps  []step
	stepAt int

	halted bool // HALT: repeating NOP until an interrupt arrives
	eiWait bool // one-instruction interrupt-sampling delay after EI

	nmiPrev bool

	signalled bus.InterruptState
}

// New creates a CPU and performs a hardware reset.
func New(b bus.Bus, master bus.Master) *CPU {
	c := &CPU{}
	c.Reset(b, master)
	return c
}

// Reset clears internal state. The Z80 has no reset vector in ROM; PC,
// I, R and IFF1/IFF2 all clear to zero and IM resets to mode 0, per the
// datasheet.
func (c *CPU) Reset(b bus.Bus, master bus.Master) {
	c.reg = Registers{SP: 0xFFFF}
	c.steps = nil
	c.stepAt = 0
	c.halted = false
	c.eiWait = false
	c.nmiPrev = false
	c.signalled = bus.InterruptState{}
}

// SignalInterrupt latches lines directly, OR'd with bus-reported lines.
func (c *CPU) SignalInterrupt(state bus.InterruptState) {
	c.signalled = c.signalled.Merge(state)
}

// IsSleeping reports HALT idle state.
func (c *CPU) IsSleeping() bool {
	return c.halted
}

// Registers returns a copy of the current register state.
func (c *CPU) Registers() Registers {
	return c.reg
}

// TickWithBus executes one T-state and reports whether it was an
// instruction boundary.
func (c *CPU) TickWithBus(b bus.Bus, master bus.Master) bool {
	if b.IsHaltedFor(master) {
		return false
	}

	if len(c.steps) == 0 {
		c.beginInstruction(b, master)
	}
	if len(c.steps) == 0 {
		return false
	}

	s := c.steps[c.stepAt]
	c.stepAt++
	s(c, b, master)

	if c.stepAt >= len(c.steps) {
		c.steps = nil
		c.stepAt = 0
		return true
	}
	return false
}

// incR increments the 7-bit refresh counter; bit 7 (the interrupt/DRAM
// distinction the original silicon overlays) is preserved.
func (c *CPU) incR() {
	c.reg.R = (c.reg.R & 0x80) | ((c.reg.R + 1) & 0x7F)
}

func (c *CPU) sampleInterrupts(b bus.Bus, master bus.Master) bus.InterruptState {
	live := b.CheckInterrupts(master).Merge(c.signalled)
	c.signalled = bus.InterruptState{}
	return live
}

func (c *CPU) beginInstruction(b bus.Bus, master bus.Master) {
	live := c.sampleInterrupts(b, master)

	// NMI is edge-triggered and sampled at every M1 boundary, taking
	// priority over maskable interrupts.
	if live.NMI && !c.nmiPrev {
		c.nmiPrev = true
		c.serviceNMI(b, master)
		return
	}
	c.nmiPrev = live.NMI

	if c.eiWait {
		c.eiWait = false
	} else if live.IRQ && c.reg.IFF1 {
		c.serviceIRQ(b, master, live.Vector)
		return
	}

	if c.halted {
		c.incR()
		c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {})
		return
	}

	c.dispatchM1(b, master)
}

// dispatchM1 fetches and dispatches the next opcode from the base
// table, routing prefix bytes to their own dispatch helpers.
func (c *CPU) dispatchM1(b bus.Bus, master bus.Master) {
	opcode := c.fetchOpcode(b, master)
	switch opcode {
	case 0xCB:
		c.dispatchCB(b, master)
	case 0xED:
		c.dispatchED(b, master)
	case 0xDD:
		c.dispatchIndexed(b, master, &c.reg.IX, false)
	case 0xFD:
		c.dispatchIndexed(b, master, &c.reg.IY, true)
	default:
		if h := opcodeTable[opcode]; h != nil {
			h(c, b, master)
		} else {
			illegalLog.Warn().Uint8("opcode", opcode).Uint16("pc", c.reg.PC-1).Msg("illegal opcode executed as NOP")
			c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {})
		}
	}
}

func (c *CPU) dispatchCB(b bus.Bus, master bus.Master) {
	opcode := c.fetchOpcode(b, master)
	if h := opcodeTableCB[opcode]; h != nil {
		h(c, b, master)
		return
	}
	illegalLog.Warn().Uint8("opcode", opcode).Msg("illegal CB-prefixed opcode executed as NOP")
	c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {})
}

func (c *CPU) dispatchED(b bus.Bus, master bus.Master) {
	opcode := c.fetchOpcode(b, master)
	if h := opcodeTableED[opcode]; h != nil {
		h(c, b, master)
		return
	}
	illegalLog.Warn().Uint8("opcode", opcode).Msg("illegal ED-prefixed opcode executed as NOP")
	c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) {})
}

// dispatchIndexed handles the DD/FD prefix. If the following opcode has
// no IX/IY-specific form, the prefix acts as a 4-T-state NOP and the
// opcode is re-dispatched through the base table (the single-prefix
// discard rule).
func (c *CPU) dispatchIndexed(b bus.Bus, master bus.Master, idx *uint16, isIY bool) {
	opcode := c.fetchOpcode(b, master)
	if opcode == 0xCB {
		c.dispatchIndexedCB(b, master, idx)
		return
	}
	table := opcodeTableDD
	if isIY {
		table = opcodeTableFD
	}
	if h := table[opcode]; h != nil {
		h(c, b, master)
		return
	}
	// Single-prefix discard rule: DD/FD applied to an opcode with no
	// IX/IY-specific form acts as a 4-T-state NOP, then the opcode runs
	// through the base (HL) table unmodified. h populates c.steps itself,
	// so the NOP steps are prepended onto whatever it queued.
	if h := opcodeTable[opcode]; h != nil {
		h(c, b, master)
		nop := make([]step, 4)
		for i := range nop {
			nop[i] = func(c *CPU, b bus.Bus, master bus.Master) {}
		}
		c.steps = append(nop, c.steps...)
		return
	}
	c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) {})
}

func (c *CPU) dispatchIndexedCB(b bus.Bus, master bus.Master, idx *uint16) {
	disp := int8(c.fetchByte(b, master))
	opcode := c.fetchByte(b, master)
	addr := uint16(int32(*idx) + int32(disp))
	if h := indexedCBTable[opcode]; h != nil {
		h(c, b, master, addr)
		return
	}
	c.queue(8, func(c *CPU, b bus.Bus, master bus.Master) {})
}

// serviceNMI unconditionally pushes PC, copies IFF1 into IFF2, clears
// IFF1, and jumps to 0x0066. 11 T-states.
func (c *CPU) serviceNMI(b bus.Bus, master bus.Master) {
	c.incR()
	c.reg.IFF2 = c.reg.IFF1
	c.reg.IFF1 = false
	c.queue(11, func(c *CPU, b bus.Bus, master bus.Master) {
		c.push16(b, master, c.reg.PC)
		c.reg.PC = 0x0066
	})
}

// serviceIRQ handles IM 0/1/2 maskable-interrupt service.
func (c *CPU) serviceIRQ(b bus.Bus, master bus.Master, vector *uint8) {
	c.incR()
	c.reg.IFF1 = false
	c.reg.IFF2 = false
	// PC already sits at HALT+1 (set when the HALT opcode itself was
	// fetched); the halt loop never advances it further, so RETI
	// correctly resumes execution after the HALT once service ends.
	c.halted = false
	switch c.reg.IM {
	case 0:
		var busByte uint8
		if vector != nil {
			busByte = *vector
		}
		c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {
			if h := opcodeTable[busByte]; h != nil {
				h(c, b, master)
			}
		})
	case 1:
		c.queue(13, func(c *CPU, b bus.Bus, master bus.Master) {
			c.push16(b, master, c.reg.PC)
			c.reg.PC = 0x0038
		})
	default: // IM 2
		var lo uint8
		if vector != nil {
			lo = *vector & 0xFE
		}
		c.queue(19, func(c *CPU, b bus.Bus, master bus.Master) {
			c.push16(b, master, c.reg.PC)
			addr := uint16(c.reg.I)<<8 | uint16(lo)
			hi := b.Read(master, addr+1)
			lowv := b.Read(master, addr)
			c.reg.PC = uint16(hi)<<8 | uint16(lowv)
		})
	}
}

func (c *CPU) push16(b bus.Bus, master bus.Master, v uint16) {
	c.reg.SP--
	b.Write(master, c.reg.SP, uint8(v>>8))
	c.reg.SP--
	b.Write(master, c.reg.SP, uint8(v))
}

func (c *CPU) pop16(b bus.Bus, master bus.Master) uint16 {
	lo := b.Read(master, c.reg.SP)
	c.reg.SP++
	hi := b.Read(master, c.reg.SP)
	c.reg.SP++
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) queue(n int, work step) {
	c.steps = make([]step, n)
	for i := 0; i < n-1; i++ {
		c.steps[i] = func(c *CPU, b bus.Bus, master bus.Master) {}
	}
	c.steps[n-1] = work
}

// fetchOpcode fetches and advances PC, additionally incrementing R (the
// M1-cycle refresh counter), which fetchByte does not.
func (c *CPU) fetchOpcode(b bus.Bus, master bus.Master) uint8 {
	v := b.Read(master, c.reg.PC)
	c.reg.PC++
	c.incR()
	return v
}

func (c *CPU) fetchByte(b bus.Bus, master bus.Master) uint8 {
	v := b.Read(master, c.reg.PC)
	c.reg.PC++
	return v
}

func (c *CPU) fetchWord(b bus.Bus, master bus.Master) uint16 {
	lo := c.fetchByte(b, master)
	hi := c.fetchByte(b, master)
	return uint16(hi)<<8 | uint16(lo)
}
