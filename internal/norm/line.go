package norm

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"disnorm/internal/disasm"
)

const (
	commentMarker = "//"
	// symbolMarker starts the symbol annotation some disassemblers append.
	symbolMarker = "<_binary"
)

var unknownMarkers = []string{"<unknown>", "<undefined>", ".inst"}

// Clean strips comments and symbol annotations, trims and lowercases a line.
func Clean(raw string) string {
	line, _, _ := strings.Cut(raw, commentMarker)
	line, _, _ = strings.Cut(line, symbolMarker)
	return strings.ToLower(strings.TrimSpace(line))
}

// Line normalizes one raw listing line. ok is false for lines that are not
// instruction lines (labels, headers, blanks, bad opcodes); those produce
// no output.
func Line(raw string) (inst disasm.Inst, ok bool) {
	line := Clean(raw)
	tokens := strings.Fields(line)

	if isUnknown(line) {
		if len(tokens) < 2 || !validOpcode(tokens[1]) {
			return disasm.Inst{}, false
		}
		return disasm.Inst{Opcode: tokens[1], Mnemonic: disasm.UnknownMnemonic}, true
	}

	if len(tokens) < 3 || !strings.HasSuffix(tokens[0], ":") {
		return disasm.Inst{}, false
	}
	if !validOpcode(tokens[1]) {
		return disasm.Inst{}, false
	}

	inst = disasm.Inst{Opcode: tokens[1], Mnemonic: tokens[2]}
	if mnemonic, operands, folded := FoldMove(tokens[2:]); folded {
		inst.Mnemonic, inst.Operands = mnemonic, operands
	} else {
		inst.Operands = operandText(tokens[3:])
	}

	if rewritten, ok := Rewrite(inst, tokens); ok {
		return rewritten, true
	}
	inst.Operands = Shorthand(inst.Operands)
	return inst, true
}

// Format normalizes one raw line into its output text.
func Format(raw string) (string, bool) {
	inst, ok := Line(raw)
	if !ok {
		return "", false
	}
	return inst.String(), true
}

func operandText(tokens []string) string {
	ops := strings.Join(lo.Map(tokens, func(tok string, _ int) string {
		return TryHex(tok)
	}), " ")
	ops = strings.ReplaceAll(ops, "{ ", "{")
	return strings.ReplaceAll(ops, " }", "}")
}

func isUnknown(line string) bool {
	return lo.SomeBy(unknownMarkers, func(m string) bool {
		return strings.Contains(line, m)
	})
}

func validOpcode(tok string) bool {
	_, err := strconv.ParseUint(tok, 16, 32)
	return err == nil
}
