package m6809

import "github.com/user-none/go-chip-arcade/bus"

// testBus is a flat 64KB byte-array bus for testing, with controllable
// interrupt lines and halt state.
type testBus struct {
	mem            [0x10000]byte
	nmi, irq, firq bool
	halted         bool
}

func (b *testBus) Read(_ bus.Master, addr uint16) uint8 {
	return b.mem[addr]
}

func (b *testBus) Write(_ bus.Master, addr uint16, v uint8) {
	b.mem[addr] = v
}

func (b *testBus) IsHaltedFor(_ bus.Master) bool {
	return b.halted
}

func (b *testBus) CheckInterrupts(_ bus.Master) bus.InterruptState {
	return bus.InterruptState{NMI: b.nmi, IRQ: b.irq, FIRQ: b.firq}
}

func (b *testBus) load(addr uint16, data ...uint8) {
	copy(b.mem[addr:], data)
}

func (b *testBus) loadWord(addr uint16, v uint16) {
	b.mem[addr] = uint8(v >> 8)
	b.mem[addr+1] = uint8(v)
}

// run ticks the CPU until it reports an instruction boundary, returning
// the number of cycles consumed.
func run(c *CPU, b *testBus, master bus.Master) int {
	n := 0
	for {
		n++
		if c.TickWithBus(b, master) {
			return n
		}
	}
}
