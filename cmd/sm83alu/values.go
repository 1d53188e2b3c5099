package main

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/kong"
)

// Byte is an optional 8-bit flag value accepting decimal, 0x hex or 0b binary.
type Byte struct {
	Value uint8
	Set   bool
}

// Decode implements kong.MapperValue.
func (b *Byte) Decode(ctx *kong.DecodeContext) error {
	var text string
	if err := ctx.Scan.PopValueInto("byte", &text); err != nil {
		return err
	}

	v, err := strconv.ParseUint(text, 0, 8)
	if err != nil {
		return fmt.Errorf("invalid byte %q: %w", text, err)
	}

	b.Value, b.Set = uint8(v), true
	return nil
}

func (b Byte) apply(dst *uint8) {
	if b.Set {
		*dst = b.Value
	}
}

// Word is an optional 16-bit flag value accepting decimal, 0x hex or 0b binary.
type Word struct {
	Value uint16
	Set   bool
}

// Decode implements kong.MapperValue.
func (w *Word) Decode(ctx *kong.DecodeContext) error {
	var text string
	if err := ctx.Scan.PopValueInto("word", &text); err != nil {
		return err
	}

	v, err := strconv.ParseUint(text, 0, 16)
	if err != nil {
		return fmt.Errorf("invalid word %q: %w", text, err)
	}

	w.Value, w.Set = uint16(v), true
	return nil
}

func (w Word) apply(dst *uint16) {
	if w.Set {
		*dst = w.Value
	}
}
