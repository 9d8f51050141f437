package m6809

import (
	"encoding/binary"
	"errors"
)

const serializeVersion = 1
const serializeSize = 1 + 4 + 10 + 3

// SerializeSize reports the exact byte length Serialize produces.
func SerializeSize() int { return serializeSize }

// Serialize writes a versioned, fixed-layout snapshot of the CPU's
// registers, NMI edge/latch state and CWAI wait flag to buf. The SYNC
// state, the sampled IRQ/FIRQ levels and the micro-step queue are not
// included.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < serializeSize {
		return errors.New("m6809: buffer too small")
	}
	buf[0] = serializeVersion
	buf[1] = c.reg.A
	buf[2] = c.reg.B
	buf[3] = c.reg.DP
	buf[4] = c.reg.CC
	binary.BigEndian.PutUint16(buf[5:7], c.reg.X)
	binary.BigEndian.PutUint16(buf[7:9], c.reg.Y)
	binary.BigEndian.PutUint16(buf[9:11], c.reg.U)
	binary.BigEndian.PutUint16(buf[11:13], c.reg.S)
	binary.BigEndian.PutUint16(buf[13:15], c.reg.PC)
	buf[15] = boolByte(c.nmiPrev)
	buf[16] = boolByte(c.nmiLatch)
	buf[17] = boolByte(c.waiting)
	return nil
}

// Deserialize restores CPU state previously written by Serialize. Any
// in-flight micro-step queue is discarded.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < serializeSize {
		return errors.New("m6809: buffer too small")
	}
	if buf[0] != serializeVersion {
		return errors.New("m6809: unsupported serialize version")
	}
	c.reg.A = buf[1]
	c.reg.B = buf[2]
	c.reg.DP = buf[3]
	c.reg.CC = buf[4]
	c.reg.X = binary.BigEndian.Uint16(buf[5:7])
	c.reg.Y = binary.BigEndian.Uint16(buf[7:9])
	c.reg.U = binary.BigEndian.Uint16(buf[9:11])
	c.reg.S = binary.BigEndian.Uint16(buf[11:13])
	c.reg.PC = binary.BigEndian.Uint16(buf[13:15])
	c.nmiPrev = buf[15] != 0
	c.nmiLatch = buf[16] != 0
	c.waiting = buf[17] != 0
	c.steps = nil
	c.stepAt = 0
	return nil
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
