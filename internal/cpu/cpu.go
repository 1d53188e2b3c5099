// Package cpu implements the arithmetic, logic and bit manipulation core of the
// Sharp SM83 CPU used in the Game Boy.
//
// Instructions arrive already decoded; Execute applies one to the register file
// and recomputes the flags exactly as the hardware does. Opcode fetch, memory
// operands and timing live outside this package.
package cpu

// CPU represents the execution unit of the Sharp SM83 CPU.
type CPU struct {
	Registers *Registers
}

// New creates a new CPU instance with post-boot register values.
func New() *CPU {
	return NewWithRegisters(NewRegisters())
}

// NewWithRegisters creates a CPU that operates on regs.
func NewWithRegisters(regs *Registers) *CPU {
	return &CPU{Registers: regs}
}

// handler applies a single operation to the CPU.
type handler func(c *CPU, in Instruction)

// handlers maps every operation to its implementation. An operation without an
// entry is executed as a no-op.
var handlers = [opCount]handler{
	OpADD: func(c *CPU, in Instruction) {
		c.Registers.A = c.add8(c.Registers.A, c.Registers.Get(in.Target), false)
	},
	OpADDHL: func(c *CPU, in Instruction) {
		c.Registers.SetHL(c.add16(c.Registers.HL(), c.Registers.Pair(in.Pair)))
	},
	OpADC: func(c *CPU, in Instruction) {
		c.Registers.A = c.add8(c.Registers.A, c.Registers.Get(in.Target), true)
	},
	OpSUB: func(c *CPU, in Instruction) {
		c.Registers.A = c.sub8(c.Registers.A, c.Registers.Get(in.Target), false)
	},
	OpSBC: func(c *CPU, in Instruction) {
		c.Registers.A = c.sub8(c.Registers.A, c.Registers.Get(in.Target), true)
	},
	OpAND: func(c *CPU, in Instruction) {
		c.Registers.A = c.and(c.Registers.Get(in.Target))
	},
	OpOR: func(c *CPU, in Instruction) {
		c.Registers.A = c.or(c.Registers.Get(in.Target))
	},
	OpXOR: func(c *CPU, in Instruction) {
		c.Registers.A = c.xor(c.Registers.Get(in.Target))
	},
	OpCP: func(c *CPU, in Instruction) {
		c.sub8(c.Registers.A, c.Registers.Get(in.Target), false)
	},
	OpINC: modify((*CPU).inc8),
	OpDEC: modify((*CPU).dec8),
	OpCCF: func(c *CPU, _ Instruction) { c.ccf() },
	OpSCF: func(c *CPU, _ Instruction) { c.scf() },
	OpCPL: func(c *CPU, _ Instruction) { c.cpl() },

	OpRLA:  func(c *CPU, _ Instruction) { c.rotateA((*CPU).rl) },
	OpRRA:  func(c *CPU, _ Instruction) { c.rotateA((*CPU).rr) },
	OpRLCA: func(c *CPU, _ Instruction) { c.rotateA((*CPU).rlc) },
	OpRRCA: func(c *CPU, _ Instruction) { c.rotateA((*CPU).rrc) },

	OpRLC:  modify((*CPU).rlc),
	OpRRC:  modify((*CPU).rrc),
	OpRL:   modify((*CPU).rl),
	OpRR:   modify((*CPU).rr),
	OpSLA:  modify((*CPU).sla),
	OpSRA:  modify((*CPU).sra),
	OpSWAP: modify((*CPU).swap),
	OpSRL:  modify((*CPU).srl),

	OpBIT: func(c *CPU, in Instruction) {
		c.bit(c.Registers.Get(in.Target), in.Bit)
	},
	OpSET: func(c *CPU, in Instruction) {
		c.Registers.Set(in.Target, setBit(c.Registers.Get(in.Target), in.Bit))
	},
	OpRES: func(c *CPU, in Instruction) {
		c.Registers.Set(in.Target, resetBit(c.Registers.Get(in.Target), in.Bit))
	},
}

// modify builds a read-modify-write handler for the instruction's target register.
func modify(op func(c *CPU, value uint8) uint8) handler {
	return func(c *CPU, in Instruction) {
		c.Registers.Set(in.Target, op(c, c.Registers.Get(in.Target)))
	}
}

// Execute applies in to the register file.
//
// Operations without a handler, including OpInvalid and values outside the
// Op enumeration, leave every register untouched. So does an operand the
// operation reads that names no register: a Target past RegL for register and
// bit operations, or a Pair past PairSP for ADD HL,rr. Bit indices are masked
// to their low 3 bits, the width of the field in a real opcode.
func (c *CPU) Execute(in Instruction) {
	if in.Op >= opCount || !operandInRange(in) {
		return
	}
	if h := handlers[in.Op]; h != nil {
		h(c, in)
	}
}

// operandInRange reports whether the operand in.Op reads selects a register.
func operandInRange(in Instruction) bool {
	switch in.Op.Class() {
	case ClassRegister, ClassBit:
		return in.Target <= RegL
	case ClassPair:
		return in.Pair <= PairSP
	default:
		return true
	}
}

// ExecuteAll applies each instruction in order.
func (c *CPU) ExecuteAll(program ...Instruction) {
	for _, in := range program {
		c.Execute(in)
	}
}

// Supported reports whether op has a handler.
func Supported(op Op) bool {
	return op < opCount && handlers[op] != nil
}
