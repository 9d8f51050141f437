package main

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/user-none/go-chip-arcade/bus"
	"github.com/user-none/go-chip-arcade/i8035"
	"github.com/user-none/go-chip-arcade/m6502"
	"github.com/user-none/go-chip-arcade/m6800"
	"github.com/user-none/go-chip-arcade/m6809"
	"github.com/user-none/go-chip-arcade/z80"
)

var masterID = bus.CPU(0)

// engine erases each CPU package's generic Snapshot type so the harness
// can drive any of the five from one loop.
type engine interface {
	Tick(b bus.Bus) bool
	SnapshotJSON() ([]byte, error)
}

type boundCPU[S any] struct {
	cpu interface {
		TickWithBus(b bus.Bus, master bus.Master) bool
		Snapshot() S
	}
}

func (e boundCPU[S]) Tick(b bus.Bus) bool { return e.cpu.TickWithBus(b, masterID) }

func (e boundCPU[S]) SnapshotJSON() ([]byte, error) {
	return json.Marshal(e.cpu.Snapshot())
}

// newEngine constructs the named CPU over b, already reset per its
// documented power-up state.
func newEngine(name string, b bus.Bus) (engine, error) {
	switch name {
	case "m6800":
		return boundCPU[m6800.Snapshot]{cpu: m6800.New(b, masterID)}, nil
	case "m6502":
		return boundCPU[m6502.Snapshot]{cpu: m6502.New(b, masterID)}, nil
	case "m6809":
		return boundCPU[m6809.Snapshot]{cpu: m6809.New(b, masterID)}, nil
	case "z80":
		return boundCPU[z80.Snapshot]{cpu: z80.New(b, masterID)}, nil
	case "i8035":
		return boundCPU[i8035.Snapshot]{cpu: i8035.New(b, masterID)}, nil
	default:
		return nil, errors.Errorf("unknown cpu %q (want one of m6800, m6502, m6809, z80, i8035)", name)
	}
}
