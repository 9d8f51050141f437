package m6809

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user-none/go-chip-arcade/bus"
)

func TestResetLoadsVector(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	c := New(b, bus.CPU(0))
	require.Equal(t, uint16(0x4000), c.Registers().PC)
	require.Equal(t, FlagI|FlagF, c.Registers().CC)
}

func TestResetIdempotent(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	c := New(b, bus.CPU(0))
	c.reg.A = 0x55
	c.Reset(b, bus.CPU(0))
	require.Equal(t, uint8(0), c.Registers().A)
	require.Equal(t, uint16(0x4000), c.Registers().PC)
}

// PSHS A,B,X then PULS A,B,X round-trips and matches the documented stack
// layout: A at the lowest address, then B, then X with its high byte at
// the lower address.
func TestPSHSPULSRoundTrip(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	c := New(b, bus.CPU(0))
	c.reg.S = 0x1000
	c.reg.A = 0xAA
	c.reg.B = 0xBB
	c.reg.X = 0x1234

	b.load(0x4000, 0x34, 0x16) // PSHS A,B,X (mask bits: X=0x10,B=0x04,A=0x02)
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 9, n) // 5 + 4 bytes (X=2,B=1,A=1)
	require.Equal(t, uint16(0x0FFC), c.Registers().S)
	require.Equal(t, uint8(0xAA), b.mem[0x0FFC])
	require.Equal(t, uint8(0xBB), b.mem[0x0FFD])
	require.Equal(t, uint8(0x12), b.mem[0x0FFE])
	require.Equal(t, uint8(0x34), b.mem[0x0FFF])

	c.reg.A = 0
	c.reg.B = 0
	c.reg.X = 0
	b.load(0x4002, 0x35, 0x16) // PULS A,B,X
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x1000), c.Registers().S)
	require.Equal(t, uint8(0xAA), c.Registers().A)
	require.Equal(t, uint8(0xBB), c.Registers().B)
	require.Equal(t, uint16(0x1234), c.Registers().X)
}

func TestTFRAtoB(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	c := New(b, bus.CPU(0))
	b.load(0x4000, 0x86, 0x42) // LDA #$42
	run(c, b, bus.CPU(0))
	b.load(0x4002, 0x1F, 0x89) // TFR A,B
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x42), c.Registers().B)
	require.Equal(t, uint8(0x42), c.Registers().A)
}

func TestCOMASetsCarrySetsNoOverflow(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	c := New(b, bus.CPU(0))
	b.load(0x4000, 0x86, 0xAA) // LDA #$AA
	run(c, b, bus.CPU(0))
	b.load(0x4002, 0x43) // COMA
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x55), c.Registers().A)
	require.True(t, c.Registers().CC&FlagC != 0)
	require.True(t, c.Registers().CC&FlagV == 0)
	require.True(t, c.Registers().CC&FlagN == 0)
	require.True(t, c.Registers().CC&FlagZ == 0)
}

func TestIRQMaskedByI(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	b.loadWord(vecIRQ, 0x5000)
	c := New(b, bus.CPU(0))
	require.True(t, c.Registers().CC&FlagI != 0)
	b.load(0x4000, 0x12) // NOP
	b.irq = true
	run(c, b, bus.CPU(0)) // I is set after reset, IRQ must not fire
	require.Equal(t, uint16(0x4001), c.Registers().PC)
}

func TestFIRQEntersFastFrame(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	b.loadWord(vecFIRQ, 0x6000)
	c := New(b, bus.CPU(0))
	c.reg.CC &^= FlagF
	c.reg.S = 0x1000
	b.load(0x4000, 0x12) // NOP
	b.firq = true
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x6000), c.Registers().PC)
	require.Equal(t, uint16(0x0FFD), c.Registers().S)
	require.True(t, c.Registers().CC&FlagE == 0)
}

func TestSWIPushesFullStateAndSetsIAndF(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	b.loadWord(vecSWI, 0x7000)
	c := New(b, bus.CPU(0))
	c.reg.CC = 0
	c.reg.S = 0x1000
	b.load(0x4000, 0x3F) // SWI
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x7000), c.Registers().PC)
	require.Equal(t, uint16(0x0FF4), c.Registers().S)
	require.True(t, c.Registers().CC&FlagI != 0)
	require.True(t, c.Registers().CC&FlagF != 0)
	require.True(t, c.Registers().CC&FlagE != 0)
}

func TestRTIFullFrameCosts15Cycles(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	b.loadWord(vecSWI, 0x7000)
	c := New(b, bus.CPU(0))
	c.reg.S = 0x1000
	b.load(0x4000, 0x3F) // SWI
	run(c, b, bus.CPU(0))
	b.load(0x7000, 0x3B) // RTI
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 15, n)
	require.Equal(t, uint16(0x1000), c.Registers().S)
	require.Equal(t, uint16(0x4001), c.Registers().PC)
}

func TestRTIFastFrameCosts6Cycles(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	b.loadWord(vecFIRQ, 0x6000)
	c := New(b, bus.CPU(0))
	c.reg.CC &^= FlagF
	c.reg.S = 0x1000
	b.load(0x4000, 0x12) // NOP
	b.firq = true
	run(c, b, bus.CPU(0))
	b.load(0x6000, 0x3B) // RTI
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 6, n)
	require.Equal(t, uint16(0x1000), c.Registers().S)
}

func TestIndexedAddressingConstantOffset(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	c := New(b, bus.CPU(0))
	c.reg.X = 0x2000
	b.mem[0x2005] = 0x77
	b.load(0x4000, 0xA6, 0x05) // LDA 5,X
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x77), c.Registers().A)
}

func TestHaltedForSkipsFetch(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0x4000)
	c := New(b, bus.CPU(0))
	b.halted = true
	boundary := c.TickWithBus(b, bus.CPU(0))
	require.False(t, boundary)
	require.Equal(t, uint16(0x4000), c.Registers().PC)
}
