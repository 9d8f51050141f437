package i8035

import "github.com/user-none/go-chip-arcade/bus"

func registerControl() {
	opcodeTable[0x00] = func(c *CPU, b bus.Bus, master bus.Master) { // NOP
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {})
	}

	opcodeTable[0x05] = func(c *CPU, b bus.Bus, master bus.Master) { // EN I
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.interruptsEnabled = true })
	}
	opcodeTable[0x15] = func(c *CPU, b bus.Bus, master bus.Master) { // DIS I
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.interruptsEnabled = false })
	}

	opcodeTable[0x55] = func(c *CPU, b bus.Bus, master bus.Master) { // STRT T
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
			c.timerRunning = true
			c.timerDiv = 0
		})
	}
	opcodeTable[0x45] = func(c *CPU, b bus.Bus, master bus.Master) { // STRT CNT
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {
			c.timerRunning = true
			c.timerDiv = 0
		})
	}
	opcodeTable[0x65] = func(c *CPU, b bus.Bus, master bus.Master) { // STOP TCNT
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.timerRunning = false })
	}

	opcodeTable[0x25] = func(c *CPU, b bus.Bus, master bus.Master) { // EN TCNTI
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {})
	}
	opcodeTable[0x35] = func(c *CPU, b bus.Bus, master bus.Master) { // DIS TCNTI
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) {})
	}

	opcodeTable[0x95] = func(c *CPU, b bus.Bus, master bus.Master) { // CLR C
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.setCarry(false) })
	}
	opcodeTable[0xA5] = func(c *CPU, b bus.Bus, master bus.Master) { // CPL C
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.setCarry(c.reg.PSW&PswC == 0) })
	}
	opcodeTable[0x85] = func(c *CPU, b bus.Bus, master bus.Master) { // CLR F0
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.PSW &^= PswF0 })
	}
	opcodeTable[0x75] = func(c *CPU, b bus.Bus, master bus.Master) { // CPL F0
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.PSW ^= PswF0 })
	}
	opcodeTable[0xA4] = func(c *CPU, b bus.Bus, master bus.Master) { // CLR F1
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.F1 = false })
	}
	opcodeTable[0xB4] = func(c *CPU, b bus.Bus, master bus.Master) { // CPL F1
		c.queue(1, func(c *CPU, b bus.Bus, master bus.Master) { c.reg.F1 = !c.reg.F1 })
	}
}
