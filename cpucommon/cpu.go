// Package cpucommon defines the capability set shared by every CPU engine
// in this module: reset, cycle-stepping against a bus, interrupt
// signalling, sleep-state query, and state snapshotting. Each concrete CPU
// package (m6800, m6502, m6809, z80, i8035) implements this interface
// independently rather than embedding a shared engine, the same way a host
// machine wires in exactly the CPU it needs.
package cpucommon

import "github.com/user-none/go-chip-arcade/bus"

// CPU is the common capability set a host machine drives. A host clock
// calls TickWithBus once per modelled bus cycle; reset, interrupt
// signalling, sleep query, and snapshot are the only other entry points.
// Snapshot is parametrised per CPU since each architecture's register
// layout differs (§6 of the design: bit-exact per-CPU snapshot layout).
type CPU[Snapshot any] interface {
	// Reset clears internal state and loads the reset vector via bus
	// reads from the CPU's documented reset address(es). Never fails.
	Reset(b bus.Bus, master bus.Master)

	// SignalInterrupt latches interrupt lines directly into the CPU's
	// pending state, for machines that push lines rather than routing
	// them through Bus.CheckInterrupts. Implementations OR this with
	// what the bus reports.
	SignalInterrupt(state bus.InterruptState)

	// IsSleeping reports whether the CPU is halted awaiting an
	// interrupt (WAI/CWAI/SYNC/HALT/STOP, architecture-dependent).
	IsSleeping() bool

	// TickWithBus executes one modelled bus cycle and returns true if
	// this tick was an instruction boundary (the next call will begin
	// fetching a new opcode).
	TickWithBus(b bus.Bus, master bus.Master) bool

	// Snapshot returns an immutable, side-effect-free copy of the
	// programmer-visible register state, for debugging and persistence.
	Snapshot() Snapshot
}
