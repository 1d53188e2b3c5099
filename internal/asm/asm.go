// Package asm parses SM83 assembler text such as "ADD A,B" or "BIT 4,H" into
// cpu.Instruction values.
package asm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/richardwooding/sm83core/internal/cpu"
)

var (
	// ErrEmpty indicates a line with no mnemonic.
	ErrEmpty = errors.New("empty instruction")

	// ErrOperandCount indicates the wrong number of operands for the mnemonic.
	ErrOperandCount = errors.New("wrong number of operands")

	// ErrOperand indicates an operand that is not valid in its position.
	ErrOperand = errors.New("invalid operand")

	// ErrBitRange indicates a bit index outside 0-7.
	ErrBitRange = errors.New("bit index out of range")
)

// SyntaxError reports a parse failure on a specific line of a program.
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse parses a single instruction. Anything after ';' is a comment.
//
// The accumulator may be written explicitly or left out ("ADD A,B" and
// "ADD B" are equivalent), "ADD HL,rr" selects the 16-bit add, and bit
// operations accept both "BIT 4,B" and "BIT B,4".
func Parse(line string) (cpu.Instruction, error) {
	mnemonic, operands := split(line)
	if mnemonic == "" {
		return cpu.Instruction{}, ErrEmpty
	}

	op, err := cpu.ParseOp(mnemonic)
	if err != nil {
		return cpu.Instruction{}, err
	}

	switch op {
	case cpu.OpADD:
		if len(operands) == 2 && strings.EqualFold(operands[0], "HL") {
			return parsePair(cpu.OpADDHL, operands[1:])
		}
		return parseRegister(op, stripAccumulator(operands))
	case cpu.OpADC, cpu.OpSUB, cpu.OpSBC, cpu.OpAND, cpu.OpOR, cpu.OpXOR, cpu.OpCP:
		return parseRegister(op, stripAccumulator(operands))
	case cpu.OpADDHL:
		if len(operands) == 2 && strings.EqualFold(operands[0], "HL") {
			operands = operands[1:]
		}
		return parsePair(op, operands)
	}

	switch op.Class() {
	case cpu.ClassImplied:
		if len(operands) != 0 {
			return cpu.Instruction{}, fmt.Errorf("%w: %s takes none, got %d", ErrOperandCount, op, len(operands))
		}
		return cpu.NewImplied(op), nil
	case cpu.ClassBit:
		return parseBit(op, operands)
	default:
		return parseRegister(op, operands)
	}
}

// ParseProgram parses one instruction per line. Blank and comment-only lines
// are skipped.
func ParseProgram(r io.Reader) ([]cpu.Instruction, error) {
	var program []cpu.Instruction

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := scanner.Text()

		in, err := Parse(text)
		if errors.Is(err, ErrEmpty) {
			continue
		}
		if err != nil {
			return nil, &SyntaxError{Line: lineno, Text: strings.TrimSpace(text), Err: err}
		}
		program = append(program, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}

	return program, nil
}

// split separates the mnemonic from its comma separated operands.
func split(line string) (string, []string) {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}

	mnemonic := strings.Fields(line)[0]
	rest := strings.TrimSpace(line[len(mnemonic):])
	if rest == "" {
		return mnemonic, nil
	}

	operands := strings.Split(rest, ",")
	for i := range operands {
		operands[i] = strings.TrimSpace(operands[i])
	}
	return mnemonic, operands
}

// stripAccumulator drops a leading explicit "A" destination.
func stripAccumulator(operands []string) []string {
	if len(operands) == 2 && strings.EqualFold(operands[0], "A") {
		return operands[1:]
	}
	return operands
}

func parseRegister(op cpu.Op, operands []string) (cpu.Instruction, error) {
	if len(operands) != 1 {
		return cpu.Instruction{}, fmt.Errorf("%w: %s takes 1, got %d", ErrOperandCount, op, len(operands))
	}

	reg, err := cpu.ParseRegister(operands[0])
	if err != nil {
		return cpu.Instruction{}, fmt.Errorf("%w: %w", ErrOperand, err)
	}
	return cpu.NewInstruction(op, reg), nil
}

func parsePair(op cpu.Op, operands []string) (cpu.Instruction, error) {
	if len(operands) != 1 {
		return cpu.Instruction{}, fmt.Errorf("%w: %s takes 1, got %d", ErrOperandCount, op, len(operands))
	}

	pair, err := cpu.ParseRegisterPair(operands[0])
	if err != nil {
		return cpu.Instruction{}, fmt.Errorf("%w: %w", ErrOperand, err)
	}
	return cpu.NewPairInstruction(op, pair), nil
}

func parseBit(op cpu.Op, operands []string) (cpu.Instruction, error) {
	if len(operands) != 2 {
		return cpu.Instruction{}, fmt.Errorf("%w: %s takes 2, got %d", ErrOperandCount, op, len(operands))
	}

	bitText, regText := operands[0], operands[1]
	if _, err := cpu.ParseRegister(bitText); err == nil {
		bitText, regText = regText, bitText
	}

	bit, err := parseBitIndex(bitText)
	if err != nil {
		return cpu.Instruction{}, err
	}

	reg, err := cpu.ParseRegister(regText)
	if err != nil {
		return cpu.Instruction{}, fmt.Errorf("%w: %w", ErrOperand, err)
	}
	return cpu.NewBitInstruction(op, bit, reg), nil
}

func parseBitIndex(text string) (uint8, error) {
	n, err := strconv.ParseUint(text, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrOperand, text)
	}
	if n > 7 {
		return 0, fmt.Errorf("%w: %d", ErrBitRange, n)
	}
	return uint8(n), nil
}
