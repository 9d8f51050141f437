package main

import "github.com/user-none/go-chip-arcade/bus"

// flatBus backs the whole address space with one byte array and never
// reports a halt or a pending interrupt; chipbench only exercises raw
// instruction throughput and snapshot output, not interrupt-driven
// scenarios (those live in each engine's own test suite).
type flatBus struct {
	mem [0x10000]byte
}

func newFlatBus(image []byte, origin uint16) *flatBus {
	b := &flatBus{}
	copy(b.mem[origin:], image)
	return b
}

func (b *flatBus) Read(_ bus.Master, addr uint16) uint8 { return b.mem[addr] }

func (b *flatBus) Write(_ bus.Master, addr uint16, v uint8) { b.mem[addr] = v }

func (b *flatBus) IsHaltedFor(_ bus.Master) bool { return false }

func (b *flatBus) CheckInterrupts(_ bus.Master) bus.InterruptState {
	return bus.InterruptState{}
}
