package cpu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownOp indicates a mnemonic that does not name an operation.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrUnknownRegister indicates a name that does not select a register.
	ErrUnknownRegister = errors.New("unknown register")
)

// Op identifies an arithmetic, logic, rotate, shift or bit operation.
type Op uint8

// Operations understood by the execution engine. OpInvalid is the zero value
// and is never dispatched to a handler.
const (
	OpInvalid Op = iota
	OpADD
	OpADDHL
	OpADC
	OpSUB
	OpSBC
	OpAND
	OpOR
	OpXOR
	OpCP
	OpINC
	OpDEC
	OpCCF
	OpSCF
	OpRLA
	OpRRA
	OpRLCA
	OpRRCA
	OpCPL
	OpBIT
	OpSET
	OpRES
	OpSRL
	OpRL
	OpRR
	OpRLC
	OpRRC
	OpSLA
	OpSRA
	OpSWAP

	opCount
)

var opNames = [opCount]string{
	OpInvalid: "INVALID",
	OpADD:     "ADD",
	OpADDHL:   "ADDHL",
	OpADC:     "ADC",
	OpSUB:     "SUB",
	OpSBC:     "SBC",
	OpAND:     "AND",
	OpOR:      "OR",
	OpXOR:     "XOR",
	OpCP:      "CP",
	OpINC:     "INC",
	OpDEC:     "DEC",
	OpCCF:     "CCF",
	OpSCF:     "SCF",
	OpRLA:     "RLA",
	OpRRA:     "RRA",
	OpRLCA:    "RLCA",
	OpRRCA:    "RRCA",
	OpCPL:     "CPL",
	OpBIT:     "BIT",
	OpSET:     "SET",
	OpRES:     "RES",
	OpSRL:     "SRL",
	OpRL:      "RL",
	OpRR:      "RR",
	OpRLC:     "RLC",
	OpRRC:     "RRC",
	OpSLA:     "SLA",
	OpSRA:     "SRA",
	OpSWAP:    "SWAP",
}

// String returns the mnemonic of the operation.
func (op Op) String() string {
	if op < opCount {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Ops returns every valid operation in declaration order.
func Ops() []Op {
	ops := make([]Op, 0, opCount-1)
	for op := OpInvalid + 1; op < opCount; op++ {
		ops = append(ops, op)
	}
	return ops
}

// ParseOp looks up an operation by mnemonic, ignoring case.
func ParseOp(name string) (Op, error) {
	upper := strings.ToUpper(name)
	for op := OpInvalid + 1; op < opCount; op++ {
		if opNames[op] == upper {
			return op, nil
		}
	}
	return OpInvalid, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// Class groups operations by the operands they consume.
type Class uint8

// Operand classes.
const (
	ClassImplied  Class = iota // no operand (CCF, SCF, RLA, CPL, ...)
	ClassRegister              // 8-bit register operand
	ClassPair                  // 16-bit register pair operand (ADDHL)
	ClassBit                   // bit index and 8-bit register operand
)

// Class reports which operands op reads.
func (op Op) Class() Class {
	if op == OpInvalid || op >= opCount {
		return ClassImplied
	}

	switch op {
	case OpADDHL:
		return ClassPair
	case OpBIT, OpSET, OpRES:
		return ClassBit
	case OpCCF, OpSCF, OpRLA, OpRRA, OpRLCA, OpRRCA, OpCPL:
		return ClassImplied
	default:
		return ClassRegister
	}
}

// Register selects one of the seven general purpose 8-bit registers.
type Register uint8

// Operand registers.
const (
	RegA Register = iota
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

var registerNames = [...]string{"A", "B", "C", "D", "E", "H", "L"}

// String returns the register name.
func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(%d)", uint8(r))
}

// ParseRegister looks up an 8-bit register by name, ignoring case.
func ParseRegister(name string) (Register, error) {
	upper := strings.ToUpper(name)
	for i, n := range registerNames {
		if n == upper {
			return Register(i), nil //nolint:gosec // G115: index bounded by registerNames
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegister, name)
}

// RegisterPair selects a 16-bit register pair.
type RegisterPair uint8

// Register pairs usable as the ADD HL source.
const (
	PairBC RegisterPair = iota
	PairDE
	PairHL
	PairSP
)

var pairNames = [...]string{"BC", "DE", "HL", "SP"}

// String returns the register pair name.
func (p RegisterPair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("RegisterPair(%d)", uint8(p))
}

// ParseRegisterPair looks up a register pair by name, ignoring case.
func ParseRegisterPair(name string) (RegisterPair, error) {
	upper := strings.ToUpper(name)
	for i, n := range pairNames {
		if n == upper {
			return RegisterPair(i), nil //nolint:gosec // G115: index bounded by pairNames
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegister, name)
}

// Instruction is a decoded operation together with its operands. Fields that
// the operation's Class does not use are ignored by Execute.
type Instruction struct {
	Op     Op
	Target Register     // 8-bit operand for ClassRegister and ClassBit
	Pair   RegisterPair // 16-bit operand for ClassPair
	Bit    uint8        // bit index for ClassBit, masked to 0-7 on execution
}

// NewInstruction creates an instruction operating on an 8-bit register.
func NewInstruction(op Op, target Register) Instruction {
	return Instruction{Op: op, Target: target}
}

// NewBitInstruction creates a BIT, SET or RES instruction.
func NewBitInstruction(op Op, bit uint8, target Register) Instruction {
	return Instruction{Op: op, Target: target, Bit: bit}
}

// NewPairInstruction creates an instruction operating on a register pair.
func NewPairInstruction(op Op, pair RegisterPair) Instruction {
	return Instruction{Op: op, Pair: pair}
}

// NewImplied creates an instruction with no operand.
func NewImplied(op Op) Instruction {
	return Instruction{Op: op}
}

// String renders the instruction in assembler syntax, e.g. "ADD A,B",
// "ADD HL,BC" or "BIT 4,B".
func (i Instruction) String() string {
	switch i.Op {
	case OpADD, OpADC, OpSBC:
		return fmt.Sprintf("%s A,%s", i.Op, i.Target)
	case OpADDHL:
		return fmt.Sprintf("ADD HL,%s", i.Pair)
	}

	switch i.Op.Class() {
	case ClassRegister:
		return fmt.Sprintf("%s %s", i.Op, i.Target)
	case ClassBit:
		return fmt.Sprintf("%s %d,%s", i.Op, i.Bit&0x07, i.Target)
	default:
		return i.Op.String()
	}
}
