package i8035

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user-none/go-chip-arcade/bus"
)

func newTestCPU() (*CPU, *testBus) {
	b := &testBus{}
	c := New(b, bus.CPU(0))
	return c, b
}

func TestResetStartsAtBank0PC0(t *testing.T) {
	c, _ := newTestCPU()
	require.Equal(t, uint16(0), c.Registers().PC)
	require.Equal(t, uint8(0), c.Registers().DBF)
}

func TestMovImmediateThenToRegister(t *testing.T) {
	c, b := newTestCPU()
	b.load(0, 0x23, 0x42, 0xA8) // MOV A,#0x42 ; MOV R0,A
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 2, n)
	require.Equal(t, uint8(0x42), c.Registers().A)
	n = run(c, b, bus.CPU(0))
	require.Equal(t, 1, n)
	require.Equal(t, uint8(0x42), c.reg.R(0))
}

func TestAddSetsCarryAndAuxCarry(t *testing.T) {
	c, b := newTestCPU()
	c.reg.A = 0xFF
	b.load(0, 0x03, 0x01) // ADD A,#1
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x00), c.Registers().A)
	require.NotZero(t, c.Registers().PSW&PswC)
	require.NotZero(t, c.Registers().PSW&PswAC)
}

func TestDecimalAdjustCorrectsBCDAddition(t *testing.T) {
	c, b := newTestCPU()
	c.reg.A = 0x09
	b.load(0, 0x03, 0x01, 0x57) // ADD A,#1 ; DA A
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x0A), c.Registers().A)
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x10), c.Registers().A)
}

func TestTimerFreeRunsAfterStart(t *testing.T) {
	c, b := newTestCPU()
	b.load(0, 0x55) // STRT T
	for i := 1; i < 32; i++ {
		b.mem[i] = 0x00 // NOP
	}
	for i := 0; i < 32; i++ {
		run(c, b, bus.CPU(0))
	}
	require.Equal(t, uint8(1), c.reg.T)
}

func TestInterruptVectorsTo0x003AndPushesPC(t *testing.T) {
	c, b := newTestCPU()
	b.load(0, 0x05) // EN I
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(1), c.Registers().PC)

	b.irq = true
	n := run(c, b, bus.CPU(0))
	require.Equal(t, 2, n)
	require.Equal(t, uint16(0x003), c.Registers().PC)
	require.False(t, c.interruptsEnabled)
	require.Equal(t, uint8(1), c.ram[0x08])
}

func TestDJNZBranchesWhileNonzero(t *testing.T) {
	c, b := newTestCPU()
	b.load(0, 0xE8, 0x10) // DJNZ R0,0x10
	c.reg.setR(0, 2)
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(1), c.reg.R(0))
	require.Equal(t, uint16(0x10), c.Registers().PC)
}

func TestDJNZFallsThroughAtZero(t *testing.T) {
	c, b := newTestCPU()
	b.load(0, 0xE8, 0x10) // DJNZ R0,0x10
	c.reg.setR(0, 1)
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0), c.reg.R(0))
	require.Equal(t, uint16(2), c.Registers().PC)
}

func TestJB0BranchesOnAccumulatorBit(t *testing.T) {
	c, b := newTestCPU()
	b.load(0, 0x12, 0x05) // JB0 0x05
	c.reg.A = 0x01
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x05), c.Registers().PC)
}

func TestJB0FallsThroughWhenBitClear(t *testing.T) {
	c, b := newTestCPU()
	b.load(0, 0x12, 0x05) // JB0 0x05
	c.reg.A = 0x00
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(2), c.Registers().PC)
}

func TestJTFClearsLatchOnceTested(t *testing.T) {
	c, b := newTestCPU()
	b.load(0, 0x16, 0x20) // JTF 0x20
	c.tf = true
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x20), c.Registers().PC)
	require.False(t, c.tf)
}

func TestSwapANibbles(t *testing.T) {
	c, b := newTestCPU()
	c.reg.A = 0x12
	b.load(0, 0x47) // SWAP A
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x21), c.Registers().A)
}

func TestCallRetRoundTrip(t *testing.T) {
	c, b := newTestCPU()
	b.load(0, 0x14, 0x10) // CALL 0x10
	b.load(0x10, 0x83)    // RET
	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(0x10), c.Registers().PC)
	require.Equal(t, uint8(2), c.ram[0x08])

	run(c, b, bus.CPU(0))
	require.Equal(t, uint16(2), c.Registers().PC)
}

func TestRegisterBankSelectIsolatesRnWrites(t *testing.T) {
	c, b := newTestCPU()
	c.reg.setR(0, 0xAA) // bank 0's R0
	b.load(0, 0xD5, 0xB8, 0x55) // SEL RB1 ; MOV R0,#0x55
	run(c, b, bus.CPU(0))
	require.NotZero(t, c.Registers().PSW&PswBS)
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x55), c.reg.banks[1][0])
	require.Equal(t, uint8(0xAA), c.reg.banks[0][0])
}

func TestMovpReadsCurrentPage(t *testing.T) {
	c, b := newTestCPU()
	b.load(0, 0xA3) // MOVP A,@A
	c.reg.A = 0x05
	b.mem[0x05] = 0x99
	run(c, b, bus.CPU(0))
	require.Equal(t, uint8(0x99), c.Registers().A)
}

func TestHaltedForSkipsFetch(t *testing.T) {
	c, b := newTestCPU()
	b.load(0, 0x00) // NOP
	b.halted = true
	boundary := c.TickWithBus(b, bus.CPU(0))
	require.False(t, boundary)
	require.Equal(t, uint16(0), c.Registers().PC)
}
