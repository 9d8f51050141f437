package i8035

import "github.com/user-none/go-chip-arcade/bus"

type testBus struct {
	mem    [0x2000]byte
	irq    bool
	halted bool
}

func (b *testBus) Read(_ bus.Master, addr uint16) uint8 { return b.mem[addr] }

func (b *testBus) Write(_ bus.Master, addr uint16, v uint8) { b.mem[addr] = v }

func (b *testBus) IsHaltedFor(_ bus.Master) bool { return b.halted }

func (b *testBus) CheckInterrupts(_ bus.Master) bus.InterruptState {
	return bus.InterruptState{IRQ: b.irq}
}

func (b *testBus) load(addr uint16, data ...uint8) { copy(b.mem[addr:], data) }

func run(c *CPU, b *testBus, master bus.Master) int {
	n := 0
	for {
		n++
		if c.TickWithBus(b, master) {
			return n
		}
	}
}
