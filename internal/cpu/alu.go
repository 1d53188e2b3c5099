package cpu

// Arithmetic and logic. Every helper computes its flags into a Flags value
// and commits it with a single SetFlags call. Helpers that leave some flags
// alone start from the current Flags.

// carryIn returns 1 when withCarry is requested and C is set.
func (c *CPU) carryIn(withCarry bool) uint8 {
	if withCarry && c.Registers.CarryFlag() {
		return 1
	}
	return 0
}

// add8 returns a+b, plus the carry for ADC.
func (c *CPU) add8(a, b uint8, withCarry bool) uint8 {
	cin := c.carryIn(withCarry)
	sum := uint16(a) + uint16(b) + uint16(cin)
	result := uint8(sum) //nolint:gosec // truncation to 8 bits is the point

	c.Registers.SetFlags(Flags{
		Zero:      result == 0,
		HalfCarry: a&0x0F+b&0x0F+cin > 0x0F,
		Carry:     sum > 0xFF,
	})
	return result
}

// sub8 returns a-b, minus the carry for SBC. CP uses it and drops the result.
func (c *CPU) sub8(a, b uint8, withCarry bool) uint8 {
	cin := c.carryIn(withCarry)

	c.Registers.SetFlags(Flags{
		Zero:      a-b-cin == 0,
		Subtract:  true,
		HalfCarry: int(a&0x0F)-int(b&0x0F)-int(cin) < 0,
		Carry:     int(a)-int(b)-int(cin) < 0,
	})
	return a - b - cin
}

// add16 returns a+b for ADD HL,rr. Z is kept; H is the carry out of bit 11.
func (c *CPU) add16(a, b uint16) uint16 {
	f := c.Registers.Flags()
	f.Subtract = false
	f.HalfCarry = a&0x0FFF+b&0x0FFF > 0x0FFF
	f.Carry = uint32(a)+uint32(b) > 0xFFFF
	c.Registers.SetFlags(f)

	return a + b
}

func (c *CPU) and(value uint8) uint8 {
	result := c.Registers.A & value
	c.Registers.SetFlags(Flags{Zero: result == 0, HalfCarry: true})
	return result
}

func (c *CPU) or(value uint8) uint8 {
	result := c.Registers.A | value
	c.Registers.SetFlags(Flags{Zero: result == 0})
	return result
}

func (c *CPU) xor(value uint8) uint8 {
	result := c.Registers.A ^ value
	c.Registers.SetFlags(Flags{Zero: result == 0})
	return result
}

// inc8 and dec8 keep C. H reports the borrow across the nibble boundary.
func (c *CPU) inc8(value uint8) uint8 {
	f := c.Registers.Flags()
	f.Zero = value == 0xFF
	f.Subtract = false
	f.HalfCarry = value&0x0F == 0x0F
	c.Registers.SetFlags(f)

	return value + 1
}

func (c *CPU) dec8(value uint8) uint8 {
	f := c.Registers.Flags()
	f.Zero = value == 0x01
	f.Subtract = true
	f.HalfCarry = value&0x0F == 0x00
	c.Registers.SetFlags(f)

	return value - 1
}

// Flag-only operations. Zero is never touched.

// ccf complements the carry flag.
func (c *CPU) ccf() {
	f := c.Registers.Flags()
	f.Subtract, f.HalfCarry = false, false
	f.Carry = !f.Carry
	c.Registers.SetFlags(f)
}

// scf sets the carry flag.
func (c *CPU) scf() {
	f := c.Registers.Flags()
	f.Subtract, f.HalfCarry = false, false
	f.Carry = true
	c.Registers.SetFlags(f)
}

// cpl complements A. Z and C are preserved.
func (c *CPU) cpl() {
	c.Registers.A = ^c.Registers.A

	f := c.Registers.Flags()
	f.Subtract, f.HalfCarry = true, true
	c.Registers.SetFlags(f)
}
