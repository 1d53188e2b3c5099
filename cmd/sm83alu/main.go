// Package main provides the sm83alu CLI, a harness for running SM83 ALU
// instructions against a register file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/richardwooding/sm83core/internal/asm"
	"github.com/richardwooding/sm83core/internal/cpu"
)

var (
	// ErrNoInstructions indicates neither arguments nor a program file were given.
	ErrNoInstructions = errors.New("no instructions given")
)

// CLI represents the command-line interface structure.
type CLI struct {
	Exec ExecCmd `cmd:"" help:"Execute instructions against a register file."`
	Ops  OpsCmd  `cmd:"" help:"List supported operations."`
}

// ExecCmd seeds a register file, executes instructions and prints the result.
type ExecCmd struct {
	Instructions []string `arg:"" optional:"" sep:"none" help:"Instructions to execute, e.g. \"ADD A,B\" \"BIT 4,B\"."`
	File         string   `short:"p" type:"existingfile" help:"Read instructions from a file, one per line."`
	Boot         bool     `help:"Start from DMG post-boot register values instead of zero."`
	Trace        bool     `short:"t" help:"Print the register file after every instruction."`

	A     Byte `help:"Initial A register."`
	B     Byte `help:"Initial B register."`
	C     Byte `help:"Initial C register."`
	D     Byte `help:"Initial D register."`
	E     Byte `help:"Initial E register."`
	H     Byte `help:"Initial H register."`
	L     Byte `help:"Initial L register."`
	Flags Byte `name:"f" help:"Initial F register (low nibble is discarded)."`
	SP    Word `name:"sp" help:"Initial stack pointer."`
	PC    Word `name:"pc" help:"Initial program counter."`
}

// Run executes the exec command.
func (c *ExecCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *ExecCmd) run(w io.Writer) error {
	program, err := c.program()
	if err != nil {
		return err
	}

	core := cpu.NewWithRegisters(c.registers())

	if err := printState(w, "", core.Registers); err != nil {
		return err
	}
	for _, in := range program {
		core.Execute(in)
		if !c.Trace {
			continue
		}
		if err := printState(w, in, core.Registers); err != nil {
			return err
		}
	}
	if !c.Trace {
		return printState(w, "", core.Registers)
	}

	return nil
}

// printState writes one line of output: label, then the register file.
func printState(w io.Writer, label any, regs *cpu.Registers) error {
	if _, err := fmt.Fprintf(w, "%-12s %s\n", label, regs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// program collects instructions from the file and then the arguments.
func (c *ExecCmd) program() ([]cpu.Instruction, error) {
	var program []cpu.Instruction

	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open program: %w", err)
		}
		defer f.Close()

		program, err = asm.ParseProgram(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", c.File, err)
		}
	}

	args, err := asm.ParseProgram(strings.NewReader(strings.Join(c.Instructions, "\n")))
	if err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}
	program = append(program, args...)

	if len(program) == 0 {
		return nil, ErrNoInstructions
	}

	return program, nil
}

// registers builds the initial register file from the seed flags.
func (c *ExecCmd) registers() *cpu.Registers {
	regs := &cpu.Registers{}
	if c.Boot {
		regs = cpu.NewRegisters()
	}

	c.A.apply(&regs.A)
	c.B.apply(&regs.B)
	c.C.apply(&regs.C)
	c.D.apply(&regs.D)
	c.E.apply(&regs.E)
	c.H.apply(&regs.H)
	c.L.apply(&regs.L)
	c.SP.apply(&regs.SP)
	c.PC.apply(&regs.PC)
	if c.Flags.Set {
		regs.F = cpu.DecodeFlags(c.Flags.Value).Byte()
	}

	return regs
}

// OpsCmd lists the operations the execution engine supports.
type OpsCmd struct{}

// Run executes the ops command.
func (c *OpsCmd) Run() error {
	return listOps(os.Stdout)
}

func listOps(w io.Writer) error {
	for _, op := range cpu.Ops() {
		if !cpu.Supported(op) {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-6s %s\n", op, example(op)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// example renders a representative instruction for op.
func example(op cpu.Op) string {
	switch op.Class() {
	case cpu.ClassPair:
		return cpu.NewPairInstruction(op, cpu.PairBC).String()
	case cpu.ClassBit:
		return cpu.NewBitInstruction(op, 0, cpu.RegB).String()
	case cpu.ClassRegister:
		return cpu.NewInstruction(op, cpu.RegB).String()
	default:
		return cpu.NewImplied(op).String()
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("sm83alu"),
		kong.Description("Execute Game Boy (SM83) ALU instructions against a register file."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
