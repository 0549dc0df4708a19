// Package disasm defines the instruction record produced by the normalizer
// and a small AArch64 listing generator used to feed it.
package disasm

import "fmt"

// Column widths of a normalized line.
const (
	OpcodeWidth   = 14
	MnemonicWidth = 16
)

// UnknownMnemonic replaces the mnemonic of lines the disassembler could not decode.
const UnknownMnemonic = "<unknown>"

// Inst is one normalized instruction line.
type Inst struct {
	Opcode   string // opcode token as printed by the disassembler
	Mnemonic string // lowercase mnemonic, possibly an alias
	Operands string // canonical operand text, empty when none
}

// String renders the fixed-column form. Fields are padded, never truncated;
// operands follow without padding.
func (i Inst) String() string {
	return fmt.Sprintf("%-*s%-*s%s", OpcodeWidth, i.Opcode, MnemonicWidth, i.Mnemonic, i.Operands)
}

// Stream is a sequence of normalized instructions in listing order.
type Stream []Inst

// Lines renders every instruction of the stream.
func (s Stream) Lines() []string {
	out := make([]string, len(s))
	for n, inst := range s {
		out[n] = inst.String()
	}
	return out
}
