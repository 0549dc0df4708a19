package norm

import (
	"fmt"
	"strings"
)

// FoldMove folds a wide-move instruction with an explicit shift,
//
//	movz|movk|movn <rd>, #<imm>, lsl #<shift>
//
// into a single immediate. tokens start at the mnemonic. It returns the
// mnemonic to print (`movk` stays `movk`, the others become `mov`) and the
// folded operands. ok is false when the line does not have that shape or an
// immediate does not parse.
func FoldMove(tokens []string) (mnemonic, operands string, ok bool) {
	if len(tokens) < 5 {
		return "", "", false
	}
	op := tokens[0]
	if op != "movk" && op != "movz" && op != "movn" {
		return "", "", false
	}

	shift, ok := moveImm(tokens[4][1:])
	if !ok {
		return "", "", false
	}
	if len(tokens[2]) < 2 {
		return "", "", false
	}
	immTok := strings.TrimSuffix(tokens[2], ",")
	imm, ok := moveImm(immTok[1:])
	if !ok {
		return "", "", false
	}

	if len(tokens) != 5 || tokens[3] != "lsl" {
		return "", "", false
	}
	rd := tokens[1]
	value := imm << (shift % 64)

	switch op {
	case "movk":
		if shift != 0 {
			return "", "", false
		}
		return "movk", rd + " " + immTok, true
	case "movz":
		return "mov", fmt.Sprintf("%s #%#x", rd, value), true
	default:
		if strings.HasPrefix(rd, "w") {
			return "mov", fmt.Sprintf("%s #%#x", rd, ^uint32(value)), true
		}
		return "mov", fmt.Sprintf("%s #%#x", rd, ^value), true
	}
}

// moveImm parses a `0x` hex or decimal move immediate.
func moveImm(s string) (uint64, bool) {
	if strings.HasPrefix(s, "0x") {
		return parseUnsigned(s[2:], 16)
	}
	return parseUnsigned(s, 10)
}
