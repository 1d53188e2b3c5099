package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateShift(t *testing.T) {
	tests := []struct {
		name  string
		op    Op
		value uint8
		flags uint8
		want  uint8
		wantF uint8
	}{
		{"RL through carry", OpRL, 0b10000000, FlagC, 0b00000001, FlagC},
		{"RL to zero", OpRL, 0b10000000, 0, 0, FlagZ | FlagC},
		{"RR through carry", OpRR, 0b00000001, FlagC, 0b10000000, FlagC},
		{"RR to zero", OpRR, 0b00000001, 0, 0, FlagZ | FlagC},
		{"RLC circular", OpRLC, 0b10000001, 0, 0b00000011, FlagC},
		{"RLC ignores carry in", OpRLC, 0b00000001, FlagC, 0b00000010, 0},
		{"RLC zero", OpRLC, 0, FlagN | FlagH, 0, FlagZ},
		{"RRC circular", OpRRC, 0b00000001, 0, 0b10000000, FlagC},
		{"RRC ignores carry in", OpRRC, 0b10000000, FlagC, 0b01000000, 0},
		{"SLA", OpSLA, 0b01000000, 0, 0b10000000, 0},
		{"SLA carry out", OpSLA, 0b10000000, 0, 0, FlagZ | FlagC},
		{"SRA keeps sign", OpSRA, 0b10000001, 0, 0b11000000, FlagC},
		{"SRA positive", OpSRA, 0b00000010, FlagC, 0b00000001, 0},
		{"SRL", OpSRL, 0b00000011, 0, 0b00000001, FlagC},
		{"SRL clears bit 7", OpSRL, 0b10000000, 0, 0b01000000, 0},
		{"SRL to zero", OpSRL, 0b00000001, 0, 0, FlagZ | FlagC},
		{"SWAP", OpSWAP, 0b10110001, FlagC, 0b00011011, 0},
		{"SWAP zero", OpSWAP, 0, FlagN | FlagH | FlagC, 0, FlagZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := setupCPU()
			cpu.Registers.B = tt.value
			cpu.Registers.F = tt.flags

			cpu.Execute(NewInstruction(tt.op, RegB))

			assert.Equal(t, tt.want, cpu.Registers.B, "B = %08b", cpu.Registers.B)
			assert.Equal(t, tt.wantF, cpu.Registers.F, "F = %s", cpu.Registers.Flags())
		})
	}
}

func TestRotateA(t *testing.T) {
	tests := []struct {
		name  string
		op    Op
		value uint8
		flags uint8
		want  uint8
		wantF uint8
	}{
		{"RLA", OpRLA, 0b10000000, FlagC, 0b00000001, FlagC},
		{"RRA", OpRRA, 0b00000001, FlagC, 0b10000000, FlagC},
		{"RLCA", OpRLCA, 0b10000001, 0, 0b00000011, FlagC},
		{"RRCA", OpRRCA, 0b00000001, 0, 0b10000000, FlagC},

		// The accumulator forms clear Z even for a zero result.
		{"RLA zero result", OpRLA, 0b10000000, FlagZ, 0, FlagC},
		{"RRA zero result", OpRRA, 0b00000001, FlagZ | FlagN | FlagH, 0, FlagC},
		{"RLCA zero", OpRLCA, 0, FlagZ, 0, 0},
		{"RRCA zero", OpRRCA, 0, FlagZ | FlagC, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := setupCPU()
			cpu.Registers.A = tt.value
			cpu.Registers.F = tt.flags

			cpu.Execute(NewImplied(tt.op))

			assert.Equal(t, tt.want, cpu.Registers.A, "A = %08b", cpu.Registers.A)
			assert.Equal(t, tt.wantF, cpu.Registers.F, "F = %s", cpu.Registers.Flags())
		})
	}
}

func TestBIT(t *testing.T) {
	cpu := setupCPU()
	cpu.Registers.B = 0b00010000

	cpu.Execute(NewBitInstruction(OpBIT, 4, RegB))
	assert.False(t, cpu.Registers.ZeroFlag(), "Zero flag should not be set (bit 4 is 1)")

	cpu.Execute(NewBitInstruction(OpBIT, 5, RegB))
	assert.True(t, cpu.Registers.ZeroFlag(), "Zero flag should be set (bit 5 is 0)")
}

func TestBITFlags(t *testing.T) {
	cpu := setupCPU()

	for v := 0; v <= 0xFF; v++ {
		for bit := uint8(0); bit < 8; bit++ {
			for _, carry := range []bool{false, true} {
				cpu.Registers.C = uint8(v)
				cpu.Registers.SetFlags(Flags{Subtract: true, Carry: carry})

				cpu.Execute(NewBitInstruction(OpBIT, bit, RegC))

				want := Flags{Zero: v&(1<<bit) == 0, HalfCarry: true, Carry: carry}
				if cpu.Registers.C != uint8(v) || cpu.Registers.Flags() != want {
					t.Fatalf("BIT %d,%02X: C=%02X F=%s, want F=%s",
						bit, v, cpu.Registers.C, cpu.Registers.Flags(), want)
				}
			}
		}
	}
}

func TestSETRES(t *testing.T) {
	cpu := setupCPU()

	cpu.Registers.B = 0b00000000
	cpu.Execute(NewBitInstruction(OpSET, 3, RegB))
	assert.Equal(t, uint8(0b00001000), cpu.Registers.B)

	cpu.Registers.B = 0b00001111
	cpu.Execute(NewBitInstruction(OpRES, 2, RegB))
	assert.Equal(t, uint8(0b00001011), cpu.Registers.B)
}

func TestSETRESLeaveFlags(t *testing.T) {
	for f := 0; f <= 0xF0; f += 0x10 {
		cpu := setupCPU()
		cpu.Registers.F = uint8(f)
		cpu.Registers.D = 0x5A

		cpu.Execute(NewBitInstruction(OpSET, 0, RegD))
		cpu.Execute(NewBitInstruction(OpRES, 6, RegD))

		assert.Equal(t, uint8(0x1B), cpu.Registers.D)
		assert.Equal(t, uint8(f), cpu.Registers.F)
	}
}

func TestBitIndexMasked(t *testing.T) {
	cpu := setupCPU()

	// 12 & 7 == 4
	cpu.Execute(NewBitInstruction(OpSET, 12, RegH))
	assert.Equal(t, uint8(0b00010000), cpu.Registers.H)

	cpu.Execute(NewBitInstruction(OpBIT, 0xFC, RegH))
	assert.False(t, cpu.Registers.ZeroFlag())

	cpu.Execute(NewBitInstruction(OpRES, 0x0C, RegH))
	assert.Equal(t, uint8(0), cpu.Registers.H)
}
