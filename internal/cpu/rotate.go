package cpu

import "math/bits"

// Rotates and shifts. Each one sets Z from the result, clears N and H, and
// loads C with the bit shifted out.

// shifted commits the flags for a rotate or shift and returns result.
func (c *CPU) shifted(result, out uint8) uint8 {
	c.Registers.SetFlags(Flags{Zero: result == 0, Carry: out&1 == 1})
	return result
}

// rlc rotates left; bit 7 goes to both bit 0 and C.
func (c *CPU) rlc(value uint8) uint8 {
	return c.shifted(bits.RotateLeft8(value, 1), value>>7)
}

// rl rotates left through C.
func (c *CPU) rl(value uint8) uint8 {
	return c.shifted(value<<1|c.carryIn(true), value>>7)
}

// rrc rotates right; bit 0 goes to both bit 7 and C.
func (c *CPU) rrc(value uint8) uint8 {
	return c.shifted(bits.RotateLeft8(value, -1), value)
}

// rr rotates right through C.
func (c *CPU) rr(value uint8) uint8 {
	return c.shifted(value>>1|c.carryIn(true)<<7, value)
}

func (c *CPU) sla(value uint8) uint8 {
	return c.shifted(value<<1, value>>7)
}

// sra keeps the sign bit.
func (c *CPU) sra(value uint8) uint8 {
	return c.shifted(value>>1|value&0x80, value)
}

func (c *CPU) srl(value uint8) uint8 {
	return c.shifted(value>>1, value)
}

// swap exchanges the nibbles. C is always cleared.
func (c *CPU) swap(value uint8) uint8 {
	return c.shifted(bits.RotateLeft8(value, 4), 0)
}

// rotateA applies a rotate to the accumulator. The A-only forms (RLCA, RRCA,
// RLA, RRA) always clear Z, even when the result is zero.
func (c *CPU) rotateA(rot func(c *CPU, value uint8) uint8) {
	c.Registers.A = rot(c, c.Registers.A)

	f := c.Registers.Flags()
	f.Zero = false
	c.Registers.SetFlags(f)
}

// Bit operations. The index is masked to 0-7.

// bit sets Z when the selected bit is clear. C is kept.
func (c *CPU) bit(value uint8, bit uint8) {
	f := c.Registers.Flags()
	f.Zero = value&(1<<(bit&0x07)) == 0
	f.Subtract = false
	f.HalfCarry = true
	c.Registers.SetFlags(f)
}

// setBit returns value with the bit set. Flags are not affected.
func setBit(value uint8, bit uint8) uint8 {
	return value | (1 << (bit & 0x07))
}

// resetBit returns value with the bit cleared. Flags are not affected.
func resetBit(value uint8, bit uint8) uint8 {
	return value &^ (1 << (bit & 0x07))
}
