package z80

import "github.com/user-none/go-chip-arcade/bus"

type opFunc func(c *CPU, b bus.Bus, master bus.Master)
type indexedCBFunc func(c *CPU, b bus.Bus, master bus.Master, addr uint16)

var opcodeTable [256]opFunc
var opcodeTableCB [256]opFunc
var opcodeTableED [256]opFunc

// opcodeTableDD/FD hold IX/FD-specific forms only (HL-using opcodes
// re-pointed at IX/IY); anything absent falls back through dispatchIndexed
// to the base table with the single-prefix-discard NOP penalty.
var opcodeTableDD [256]opFunc
var opcodeTableFD [256]opFunc

var indexedCBTable [256]indexedCBFunc

func init() {
	registerLoadStore8()
	registerLoadStore16()
	registerALU8()
	registerALU16()
	registerBitOps()
	registerRotateShift()
	registerBlockOps()
	registerBranch()
	registerStackAndControl()
	registerIndexed()
}
