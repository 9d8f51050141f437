package m6800

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user-none/go-chip-arcade/bus"
)

func newTestCPU(b *testBus, pc uint16) *CPU {
	b.loadWord(vecRestart, pc)
	return New(b, bus.CPU(0))
}

func TestResetLoadsVector(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecRestart, 0x8000)
	c := New(b, bus.CPU(0))
	require.Equal(t, uint16(0x8000), c.Registers().PC)
	require.Equal(t, FlagI, c.Registers().CC&FlagI)
}

func TestResetIdempotent(t *testing.T) {
	b := &testBus{}
	b.loadWord(vecRestart, 0x4000)
	c := New(b, bus.CPU(0))
	s1 := c.Snapshot()
	c.Reset(b, bus.CPU(0))
	s2 := c.Snapshot()
	require.Equal(t, s1, s2)
}

func TestLDAAImmediate(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	b.load(0x0000, 0x86, 0x42)
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 2, n)
	require.Equal(t, uint8(0x42), c.Registers().A)
	require.Equal(t, uint16(0x0002), c.Registers().PC)
	require.Zero(t, c.Registers().CC&FlagZ)
	require.Zero(t, c.Registers().CC&FlagN)
}

func TestSWIPushesFullStateAndSetsI(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x1000)
	b.load(0x1000, 0x3F) // SWI
	b.loadWord(vecSWI, 0x2000)
	c.reg.SP = 0x00FF
	c.reg.X = 0x1234
	c.reg.A = 0xAA
	c.reg.B = 0xBB

	n := run(c, b, bus.CPU(0))
	require.Equal(t, 12, n)
	require.Equal(t, uint16(0x2000), c.Registers().PC)
	require.NotZero(t, c.Registers().CC&FlagI)

	// Pushed in order PC, X, A, B, CC; stack grows down from 0x00FF and
	// each word goes low byte first, so it reads big-endian from below.
	require.Equal(t, uint8(0x01), b.mem[0x00FF]) // PC lo (0x1001)
	require.Equal(t, uint8(0x10), b.mem[0x00FE]) // PC hi
	require.Equal(t, uint8(0x34), b.mem[0x00FD]) // X lo
	require.Equal(t, uint8(0x12), b.mem[0x00FC]) // X hi
	require.Equal(t, uint8(0xAA), b.mem[0x00FB]) // A
	require.Equal(t, uint8(0xBB), b.mem[0x00FA]) // B
}

func TestCOMASetsCarryClearsOverflow(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	b.load(0x0000, 0x86, 0xAA, 0x43) // LDAA #$AA ; COMA
	run(c, b, bus.CPU(0))
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 2, n)
	require.Equal(t, uint8(0x55), c.Registers().A)
	require.NotZero(t, c.Registers().CC&FlagC)
	require.Zero(t, c.Registers().CC&FlagV)
	require.Zero(t, c.Registers().CC&FlagN)
	require.Zero(t, c.Registers().CC&FlagZ)
}

func TestPSHAPULARoundTrip(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	c.reg.SP = 0x00FF
	b.load(0x0000, 0x86, 0x7E, 0x36, 0x4F, 0x32) // LDAA #$7E ; PSHA ; CLRA ; PULA
	run(c, b, bus.CPU(0))
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x7E), b.mem[0x00FF])
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0), c.Registers().A)
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x7E), c.Registers().A)
	require.Equal(t, uint16(0x00FF), c.Registers().SP)
}

func TestIRQMaskedByI(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	c.reg.SP = 0x00FF
	b.loadWord(vecIRQ, 0x3000)
	b.load(0x0000, 0x0E, 0x01) // CLI ; NOP
	b.irq = true

	run(c, b, bus.CPU(0)) // CLI clears I; IRQ was sampled before CLI executed
	run(c, b, bus.CPU(0)) // next boundary samples IRQ, should now service it
	require.Equal(t, uint16(0x3000), c.Registers().PC)
}

func TestHaltedForSkipsFetch(t *testing.T) {
	b := &testBus{}
	c := newTestCPU(b, 0x0000)
	b.load(0x0000, 0x01) // NOP
	b.halted = true
	boundary := c.TickWithBus(b, bus.CPU(0))
	require.False(t, boundary)
	require.Equal(t, uint16(0x0000), c.Registers().PC)
	b.halted = false
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x0001), c.Registers().PC)
}
