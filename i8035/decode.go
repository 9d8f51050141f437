package i8035

import "github.com/user-none/go-chip-arcade/bus"

type opFunc func(c *CPU, b bus.Bus, master bus.Master)

var opcodeTable map[uint8]opFunc

func init() {
	opcodeTable = make(map[uint8]opFunc, 128)
	registerLoadStore()
	registerALU()
	registerBranch()
	registerControl()
}
