package m6502

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user-none/go-chip-arcade/bus"
)

func newTestCPU(b *testBus, pc uint16) *CPU {
	b.loadWord(vecReset, pc)
	return New(b, bus.CPU(0))
}

func TestResetLoadsVector(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecReset, 0xC000)
	c := New(b, bus.CPU(0))
	require.Equal(t, uint16(0xC000), c.Registers().PC)
	require.Equal(t, uint8(0xFD), c.Registers().SP)
}

func TestResetIdempotent(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x4000)
	s1 := c.Snapshot()
	c.Reset(b, bus.CPU(0))
	s2 := c.Snapshot()
	require.Equal(t, s1, s2)
}

func TestLDAImmediate(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	b.load(0x0000, 0xA9, 0x80)
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 2, n)
	require.Equal(t, uint8(0x80), c.Registers().A)
	require.NotZero(t, c.Registers().P&FlagN)
}

func TestAbsoluteXPageCrossAddsCycle(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	b.load(0x0000, 0xBD, 0xFF, 0x20) // LDA $20FF,X
	c.reg.X = 0x01
	b.mem[0x2100] = 0x55
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 5, n) // base 4 + 1 for crossing into page 0x21
	require.Equal(t, uint8(0x55), c.Registers().A)
}

func TestAbsoluteXNoPageCross(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	b.load(0x0000, 0xBD, 0x00, 0x20) // LDA $2000,X
	c.reg.X = 0x01
	b.mem[0x2001] = 0x55
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 4, n)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	c.reg.SP = 0xFF
	b.load(0x0000, 0x20, 0x00, 0x10) // JSR $1000
	b.load(0x1000, 0x60)            // RTS
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 6, n)
	require.Equal(t, uint16(0x1000), c.Registers().PC)
	require.Equal(t, uint8(0x00), b.mem[0x01FF])
	require.Equal(t, uint8(0x02), b.mem[0x01FE])

	n = run(c, b, bus.CPU(0))
	require.Equal(t, 6, n)
	require.Equal(t, uint16(0x0003), c.Registers().PC)
	require.Equal(t, uint8(0xFF), c.Registers().SP)
}

func TestBranchTakenCrossesPage(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x00F0)
	b.load(0x00F0, 0xD0, 0x20) // BNE +32 -> wraps to 0x0112, crossing page
	c.reg.P &^= FlagZ
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 4, n)
	require.Equal(t, uint16(0x0112), c.Registers().PC)
}

func TestBRKPushesPCPlus1AndSetsB(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	c.reg.SP = 0xFF
	b.loadWord(vecIRQ, 0x2000)
	b.load(0x0000, 0x00, 0xEA) // BRK ; (padding byte)
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 7, n)
	require.Equal(t, uint16(0x2000), c.Registers().PC)
	require.Equal(t, uint8(0x00), b.mem[0x01FF])
	require.Equal(t, uint8(0x02), b.mem[0x01FE])
	require.NotZero(t, b.mem[0x01FD]&FlagB)
	require.NotZero(t, c.Registers().P&FlagI)
}

func TestDecimalAdc(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	b.load(0x0000, 0xF8, 0x69, 0x15) // SED ; ADC #$15
	c.reg.A = 0x25
	run(c, b, bus.CPU(0))
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x40), c.Registers().A) // 25 + 15 = 40 in BCD
	require.Zero(t, c.Registers().P&FlagC)
}

func TestIRQMaskedByI(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	c.reg.SP = 0xFF
	c.reg.P |= FlagI
	b.loadWord(vecIRQ, 0x3000)
	b.load(0x0000, 0x58, 0xEA) // CLI ; NOP
	b.irq = true

	run(c, b, bus.CPU(0)) // CLI: IRQ sampled before CLI executes, still masked
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 7, n)
	require.Equal(t, uint16(0x3000), c.Registers().PC)
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	b.load(0x0000, 0x6C, 0xFF, 0x30) // JMP ($30FF)
	b.mem[0x30FF] = 0x40
	b.mem[0x3000] = 0x50 // high byte wrongly fetched from $3000, not $3100
	b.mem[0x3100] = 0x99
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x5040), c.Registers().PC)
}
