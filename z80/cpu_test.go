package z80

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user-none/go-chip-arcade/bus"
)

func TestResetClearsState(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	require.Equal(t, uint16(0), c.Registers().PC)
	require.Equal(t, uint16(0xFFFF), c.Registers().SP)
	require.False(t, c.Registers().IFF1)
}

func TestResetIdempotent(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	c.reg.A = 0x55
	c.Reset(b, bus.CPU(0))
	require.Equal(t, uint8(0), c.Registers().A)
}

// LD A,n: [0x3E, 0x42] at PC=0; after full instruction A=0x42, PC=2,
// 7 T-states elapsed.
func TestLDAImmediate(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	b.load(0, 0x3E, 0x42)
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 7, n)
	require.Equal(t, uint8(0x42), c.Registers().A)
	require.Equal(t, uint16(2), c.Registers().PC)
}

func TestRRegisterIncrementsModulo128(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	r0 := c.Registers().R
	b.load(0, 0x00, 0x00, 0x00, 0x00, 0x00)
	for i := 0; i < 5; i++ {
		run(c, b, bus.CPU(0))
	}
	require.Equal(t, (r0+5)&0x7F, c.Registers().R&0x7F)
}

func TestPushPopRoundTrip(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	c.reg.SP = 0x2000
	c.reg.B, c.reg.C = 0x12, 0x34
	b.load(0, 0xC5, 0xC1) // PUSH BC; POP BC
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x1FFE), c.Registers().SP)
	c.reg.B, c.reg.C = 0, 0
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x2000), c.Registers().SP)
	require.Equal(t, uint8(0x12), c.Registers().B)
	require.Equal(t, uint8(0x34), c.Registers().C)
}

func TestJSRRTSEquivalentCallRet(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	c.reg.SP = 0x2000
	b.load(0, 0xCD, 0x10, 0x00) // CALL 0x0010
	b.load(0x10, 0xC9)          // RET
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x10), c.Registers().PC)
	require.Equal(t, uint16(0x1FFE), c.Registers().SP)
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(3), c.Registers().PC)
	require.Equal(t, uint16(0x2000), c.Registers().SP)
}

func TestIRQMaskedByIFF1(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	b.load(0, 0x00) // NOP
	b.irq = true
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(1), c.Registers().PC) // IFF1 clear after reset, IRQ ignored
}

func TestEIDelaysInterruptSampling(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	c.reg.SP = 0x2000
	v := uint8(0)
	b.vector = &v
	c.reg.IM = 1
	b.load(0, 0xFB, 0x00, 0x00) // EI; NOP; NOP
	b.irq = true
	run(c, b, bus.CPU(0)) // EI executes, IFF1 set
	require.Equal(t, uint16(1), c.Registers().PC)
	run(c, b, bus.CPU(0)) // boundary right after EI: sampling suppressed, NOP runs normally
	require.Equal(t, uint16(2), c.Registers().PC)
	run(c, b, bus.CPU(0)) // next boundary: sampling resumes, interrupt taken instead of 2nd NOP
	require.Equal(t, uint16(0x0038), c.Registers().PC)
}

func TestNMIPushesPCAndJumpsTo0066(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	c.reg.SP = 0x2000
	c.reg.IFF1 = true
	c.reg.IFF2 = true
	b.load(0, 0x00) // NOP
	b.nmi = true
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x0066), c.Registers().PC)
	require.False(t, c.Registers().IFF1)
	require.True(t, c.Registers().IFF2)
}

func TestHaltRepeatsUntilInterrupt(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	c.reg.SP = 0x2000
	c.reg.IM = 1
	c.reg.IFF1 = true
	c.reg.IFF2 = true
	b.load(0, 0x76) // HALT
	run(c, b, bus.CPU(0))
	require.True(t, c.IsSleeping())
	require.Equal(t, uint16(1), c.Registers().PC)
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 4, n)
	require.Equal(t, uint16(1), c.Registers().PC)
	b.irq = true
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x0038), c.Registers().PC)
	require.False(t, c.IsSleeping())
}

func TestSLLUndocumentedShiftsInOne(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	c.reg.B = 0x01
	b.load(0, 0xCB, 0x30) // SLL B
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x03), c.Registers().B)
}

func TestSinglePrefixDiscardRule(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	c.reg.B = 0x07
	b.load(0, 0xDD, 0x04) // DD prefix (discarded) + INC B (no IX form)
	n := run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x08), c.Registers().B)
	require.Equal(t, 4+4, n)
}

func TestLDIXDisplacementLoad(t *testing.T) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	c.reg.IX = 0x3000
	b.mem[0x3005] = 0x99
	b.load(0, 0xDD, 0x7E, 0x05) // LD A,(IX+5)
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x99), c.Registers().A)
}
