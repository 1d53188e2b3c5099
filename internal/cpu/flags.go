package cpu

// Flag register bit masks. Bits 3-0 of F are unused and always read as 0.
const (
	FlagZ uint8 = 0b10000000 // Zero flag (bit 7)
	FlagN uint8 = 0b01000000 // Subtraction flag (bit 6)
	FlagH uint8 = 0b00100000 // Half-carry flag (bit 5)
	FlagC uint8 = 0b00010000 // Carry flag (bit 4)

	flagMask = FlagZ | FlagN | FlagH | FlagC
)

// Flags is the unpacked form of the F register.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// DecodeFlags unpacks a flags byte. The low nibble is discarded.
func DecodeFlags(value uint8) Flags {
	return Flags{
		Zero:      value&FlagZ != 0,
		Subtract:  value&FlagN != 0,
		HalfCarry: value&FlagH != 0,
		Carry:     value&FlagC != 0,
	}
}

// Byte packs the flags into an F register value with the low nibble cleared.
func (f Flags) Byte() uint8 {
	var value uint8
	if f.Zero {
		value |= FlagZ
	}
	if f.Subtract {
		value |= FlagN
	}
	if f.HalfCarry {
		value |= FlagH
	}
	if f.Carry {
		value |= FlagC
	}
	return value
}

// String renders set flags as letters and clear flags as '-', e.g. "Z-H-".
func (f Flags) String() string {
	out := []byte("----")
	if f.Zero {
		out[0] = 'Z'
	}
	if f.Subtract {
		out[1] = 'N'
	}
	if f.HalfCarry {
		out[2] = 'H'
	}
	if f.Carry {
		out[3] = 'C'
	}
	return string(out)
}
