package i8035

import (
	"encoding/binary"
	"errors"
)

const serializeVersion = 1

// serializeSize is version(1) + A,PSW,T,DBF(4) + PC(2) + R0..R7(8) = 15.
const serializeSize = 1 + 4 + 2 + 8

// SerializeSize reports the exact byte length Serialize produces.
func SerializeSize() int { return serializeSize }

// Serialize writes a versioned, fixed-layout snapshot of the active
// register bank and other programmer-visible state to buf.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < serializeSize {
		return errors.New("i8035: buffer too small")
	}
	buf[0] = serializeVersion
	buf[1] = c.reg.A
	buf[2] = c.reg.PSW
	buf[3] = c.reg.T
	buf[4] = c.reg.DBF
	binary.BigEndian.PutUint16(buf[5:7], c.reg.PC)
	copy(buf[7:15], c.reg.activeBank()[:])
	return nil
}

// Deserialize restores state previously written by Serialize. The bank
// selected by the restored PSW.BS becomes active; the other bank is left
// zeroed, since the snapshot format records only the active bank's R0-R7.
// Any in-flight micro-step queue is discarded.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < serializeSize {
		return errors.New("i8035: buffer too small")
	}
	if buf[0] != serializeVersion {
		return errors.New("i8035: unsupported serialize version")
	}
	c.reg.A = buf[1]
	c.reg.PSW = buf[2]
	c.reg.T = buf[3]
	c.reg.DBF = buf[4]
	c.reg.PC = binary.BigEndian.Uint16(buf[5:7])
	c.reg.banks = [2][8]uint8{}
	copy(c.reg.activeBank()[:], buf[7:15])
	c.steps = nil
	c.stepAt = 0
	return nil
}
