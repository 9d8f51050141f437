package m6800

import "github.com/user-none/go-chip-arcade/bus"

const (
	vecSWITable = vecSWI
)

func registerStackAndControl() {
	opcodeTable[0x01] = simpleInherent(func(c *CPU) {}) // NOP
	opcodeTable[0x36] = opPSHA
	opcodeTable[0x37] = opPSHB
	opcodeTable[0x32] = opPULA
	opcodeTable[0x33] = opPULB
	opcodeTable[0x3F] = opSWI
	opcodeTable[0x3B] = opRTI
	opcodeTable[0x3E] = opWAI
}

func opPSHA(c *CPU, b bus.Bus, master bus.Master) {
	c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
		c.push(b, master, c.reg.A)
	})
}

func opPSHB(c *CPU, b bus.Bus, master bus.Master) {
	c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
		c.push(b, master, c.reg.B)
	})
}

func opPULA(c *CPU, b bus.Bus, master bus.Master) {
	c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.A = c.pull(b, master)
	})
}

func opPULB(c *CPU, b bus.Bus, master bus.Master) {
	c.queue(4, func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.B = c.pull(b, master)
	})
}

// opSWI pushes PC, X, A, B, CC, sets I, and loads PC from the SWI vector.
// 12 cycles total.
func opSWI(c *CPU, b bus.Bus, master bus.Master) {
	c.queue(12, func(c *CPU, b bus.Bus, master bus.Master) {
		c.pushFullState(b, master)
		c.reg.CC |= FlagI
		hi := b.Read(master, vecSWITable)
		lo := b.Read(master, vecSWITable+1)
		c.reg.PC = uint16(hi)<<8 | uint16(lo)
	})
}

// opRTI pulls CC, B, A, X, PC. 10 cycles total.
func opRTI(c *CPU, b bus.Bus, master bus.Master) {
	c.queue(10, func(c *CPU, b bus.Bus, master bus.Master) {
		c.reg.CC = c.pull(b, master) | ccReserved
		c.reg.B = c.pull(b, master)
		c.reg.A = c.pull(b, master)
		c.reg.X = c.pullWord(b, master)
		c.reg.PC = c.pullWord(b, master)
	})
}

// opWAI pushes the full machine state, then clears I so that any
// interrupt wakes it (the subsequent interrupt service sets I again), and
// idles. 9 cycles total before the CPU starts waiting.
func opWAI(c *CPU, b bus.Bus, master bus.Master) {
	c.queue(9, func(c *CPU, b bus.Bus, master bus.Master) {
		c.pushFullState(b, master)
		c.reg.CC &^= FlagI
		c.waiting = true
	})
}
