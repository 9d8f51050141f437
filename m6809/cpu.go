// Package m6809 implements a Motorola 6809 CPU emulator: 16-bit index
// registers, rich post-byte-driven indexed addressing, a direct page
// register, and a three-tier interrupt model (FIRQ fast entry, IRQ/NMI/SWI
// full entry, CWAI/SYNC idle states).
package m6809

import (
	"github.com/user-none/go-chip-arcade/bus"
	"github.com/user-none/go-chip-arcade/internal/log"
)

var illegalLog = log.For("m6809")

// CC (condition code) flag bits.
const (
	FlagC uint8 = 1 << iota
	FlagV
	FlagZ
	FlagN
	FlagI
	FlagH
	FlagF
	FlagE
)

// Reset/interrupt vectors.
const (
	vecSWI3  = 0xFFF2
	vecSWI2  = 0xFFF4
	vecFIRQ  = 0xFFF6
	vecIRQ   = 0xFFF8
	vecSWI   = 0xFFFA
	vecNMI   = 0xFFFC
	vecReset = 0xFFFE
)

// Registers holds the programmer-visible state of the 6809.
type Registers struct {
	A, B       uint8
	DP         uint8
	CC         uint8
	X, Y, U, S uint16
	PC         uint16
}

// D returns the 16-bit accumulator pair A:B.
func (r Registers) D() uint16 { return uint16(r.A)<<8 | uint16(r.B) }

func (r *Registers) setD(v uint16) {
	r.A = uint8(v >> 8)
	r.B = uint8(v)
}

type step func(c *CPU, b bus.Bus, master bus.Master)

// CPU is the Motorola 6809 processor.
type CPU struct {
	reg Registers

	steps  []step
	stepAt int

	nmiPrev  bool
	nmiLatch bool
	irqLevel bool
	firqLvl  bool

	waiting  bool // CWAI: state already pushed, waiting for interrupt
	syncing  bool // SYNC: idling until any interrupt line asserts

	signalled bus.InterruptState
}

// New creates a CPU and performs a hardware reset.
func New(b bus.Bus, master bus.Master) *CPU {
	c := &CPU{}
	c.Reset(b, master)
	return c
}

// Reset clears internal state and loads PC from the reset vector.
func (c *CPU) Reset(b bus.Bus, master bus.Master) {
	c.reg = Registers{CC: FlagI | FlagF}
	c.steps = nil
	c.stepAt = 0
	c.nmiPrev = false
	c.nmiLatch = false
	c.irqLevel = false
	c.firqLvl = false
	c.waiting = false
	c.syncing = false
	c.signalled = bus.InterruptState{}
	lo := b.Read(master, vecReset+1)
	hi := b.Read(master, vecReset)
	c.reg.PC = uint16(hi)<<8 | uint16(lo)
}

// SignalInterrupt latches lines directly, OR'd with bus-reported lines.
func (c *CPU) SignalInterrupt(state bus.InterruptState) {
	c.signalled = c.signalled.Merge(state)
}

// IsSleeping reports CWAI/SYNC idle state.
func (c *CPU) IsSleeping() bool {
	return c.waiting || c.syncing
}

// Registers returns a copy of the current register state.
func (c *CPU) Registers() Registers {
	return c.reg
}

// TickWithBus executes one bus cycle and reports whether it was an
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

func (c *CPU) sampleInterrupts(b bus.Bus, master bus.Master) {
	live := b.CheckInterrupts(master).Merge(c.signalled)
	c.signalled = bus.InterruptState{}
	if live.NMI && !c.nmiPrev {
		c.nmiLatch = true
	}
	c.nmiPrev = live.NMI
	c.irqLevel = live.IRQ
	c.firqLvl = live.FIRQ
}

func (c *CPU) beginInstruction(b bus.Bus, master bus.Master) {
	c.sampleInterrupts(b, master)

	firqReady := c.firqLvl && c.reg.CC&FlagF == 0
	anyLine := c.nmiLatch || firqReady || (c.irqLevel && c.reg.CC&FlagI == 0)
	if c.syncing {
		if c.nmiLatch || c.firqLvl || c.irqLevel {
			c.syncing = false
		} else {
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {})
			return
		}
	}
	if c.waiting {
		if !anyLine {
			c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {})
			return
		}
		c.waiting = false
		c.dispatchInterrupt(b, master, true)
		return
	}

	if c.nmiLatch {
		c.nmiLatch = false
		c.enterFullInterrupt(b, master, vecNMI, false)
		return
	}
	if firqReady {
		c.enterFastInterrupt(b, master, vecFIRQ)
		return
	}
	if c.irqLevel && c.reg.CC&FlagI == 0 {
		c.enterFullInterrupt(b, master, vecIRQ, false)
		return
	}

	opcode := c.fetchByte(b, master)
	switch opcode {
	case 0x10:
		c.dispatchPage2(b, master)
	case 0x11:
		c.dispatchPage3(b, master)
	default:
		if h := opcodeTable[opcode]; h != nil {
			h(c, b, master)
		} else {
			illegalLog.Warn().Uint8("opcode", opcode).Uint16("pc", c.reg.PC-1).Msg("illegal opcode executed as NOP")
			c.queue(2, func(c *CPU, b bus.Bus, master bus.Master) {})
		}
	}
}

func (c *CPU) dispatchPage2(b bus.Bus, master bus.Master) {
	opcode := c.fetchByte(b, master)
	if h := opcodeTablePage2[opcode]; h != nil {
		h(c, b, master)
		return
	}
	illegalLog.Warn().Uint8("opcode", opcode).Uint16("pc", c.reg.PC-1).Msg("illegal page-2 opcode executed as NOP")
	c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {})
}

func (c *CPU) dispatchPage3(b bus.Bus, master bus.Master) {
	opcode := c.fetchByte(b, master)
	if h := opcodeTablePage3[opcode]; h != nil {
		h(c, b, master)
		return
	}
	illegalLog.Warn().Uint8("opcode", opcode).Uint16("pc", c.reg.PC-1).Msg("illegal page-3 opcode executed as NOP")
	c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {})
}

// dispatchInterrupt services a post-CWAI wakeup: state was already pushed,
// so only the vector jump + flag update cost remains (3 cycles). The
// postCWAI argument is not consulted.
func (c *CPU) dispatchInterrupt(b bus.Bus, master bus.Master, postCWAI bool) {
	var vector uint16
	switch {
	case c.nmiLatch:
		c.nmiLatch = false
		vector = vecNMI
	case c.firqLvl && c.reg.CC&FlagF == 0:
		vector = vecFIRQ
	default:
		vector = vecIRQ
	}
	c.queue(3, func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.CC |= FlagI | FlagF
		lo := b.Read(master, vector+1)
		hi := b.Read(master, vector)
		c.reg.PC = uint16(hi)<<8 | uint16(lo)
	})
}

// enterFullInterrupt pushes the entire machine state (E=1) and jumps to
// vector: used by NMI, IRQ, SWI/SWI2/SWI3. 19 total cycles, or 20 for
// SWI2/SWI3; the push, flag set and vector load happen on the final step.
// fromSWI is not consulted.
func (c *CPU) enterFullInterrupt(b bus.Bus, master bus.Master, vector uint16, fromSWI bool) {
	c.reg.CC |= FlagE
	n := 19
	if vector == vecSWI2 || vector == vecSWI3 {
		n = 20
	}
	c.queue(n, func(c *CPU, b bus.Bus, master bus.Master) {
		c.pushFullState(b, master)
		c.reg.CC |= FlagI
		c.reg.CC |= FlagF
		lo := b.Read(master, vector+1)
		hi := b.Read(master, vector)
		c.reg.PC = uint16(hi)<<8 | uint16(lo)
	})
}

// enterFastInterrupt pushes only PC and CC (E=0) for FIRQ. 10 cycles.
func (c *CPU) enterFastInterrupt(b bus.Bus, master bus.Master, vector uint16) {
	c.reg.CC &^= FlagE
	c.queue(10, func(c *CPU, b bus.Bus, master bus.Master) {
		c.pushWord(b, master, true, c.reg.PC)
		c.push(b, master, true, c.reg.CC)
		c.reg.CC |= FlagI
		c.reg.CC |= FlagF
		lo := b.Read(master, vector+1)
		hi := b.Read(master, vector)
		c.reg.PC = uint16(hi)<<8 | uint16(lo)
	})
}

// pushFullState pushes PC, U (or S), Y, X, DP, B, A, CC onto the active
// (S) stack — the frame every IRQ/NMI/SWI/CWAI entry uses.
func (c *CPU) pushFullState(b bus.Bus, master bus.Master) {
	c.pushWord(b, master, true, c.reg.PC)
	c.pushWord(b, master, true, c.reg.U)
	c.pushWord(b, master, true, c.reg.Y)
	c.pushWord(b, master, true, c.reg.X)
	c.push(b, master, true, c.reg.DP)
	c.push(b, master, true, c.reg.B)
	c.push(b, master, true, c.reg.A)
	c.push(b, master, true, c.reg.CC)
}

// push writes to the S stack (useS=true) or U stack, pre-decrementing.
func (c *CPU) push(b bus.Bus, master bus.Master, useS bool, v uint8) {
	if useS {
		c.reg.S--
		b.Write(master, c.reg.S, v)
	} else {
		c.reg.U--
		b.Write(master, c.reg.U, v)
	}
}

func (c *CPU) pull(b bus.Bus, master bus.Master, useS bool) uint8 {
	if useS {
		v := b.Read(master, c.reg.S)
		c.reg.S++
		return v
	}
	v := b.Read(master, c.reg.U)
	c.reg.U++
	return v
}

func (c *CPU) pushWord(b bus.Bus, master bus.Master, useS bool, v uint16) {
	c.push(b, master, useS, uint8(v))
	c.push(b, master, useS, uint8(v>>8))
}

func (c *CPU) pullWord(b bus.Bus, master bus.Master, useS bool) uint16 {
	hi := c.pull(b, master, useS)
	lo := c.pull(b, master, useS)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) queue(n int, work step) {
	c.steps = make([]step, n)
	for i := 0; i < n-1; i++ {
		c.steps[i] = func(c *CPU, b bus.Bus, master bus.Master) {}
	}
	c.steps[n-1] = work
}

func (c *CPU) fetchByte(b bus.Bus, master bus.Master) uint8 {
	v := b.Read(master, c.reg.PC)
	c.reg.PC++
	return v
}

func (c *CPU) fetchWord(b bus.Bus, master bus.Master) uint16 {
	hi := c.fetchByte(b, master)
	lo := c.fetchByte(b, master)
	return uint16(hi)<<8 | uint16(lo)
}
