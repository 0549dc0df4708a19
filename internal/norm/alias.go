package norm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"disnorm/internal/disasm"
)

// rewriteFunc rewrites an instruction into its preferred alias. tokens is
// the whole tokenized line (address, opcode, mnemonic, operands...). A
// false result means the rule does not apply and generic formatting runs.
type rewriteFunc func(inst disasm.Inst, tokens []string) (disasm.Inst, bool)

// Rule is one entry of the alias table.
type Rule struct {
	Name        string
	Mnemonic    string // exact mnemonic, or prefix when Prefix is set
	Prefix      bool
	Description string

	rewrite rewriteFunc
}

var (
	exactRules = map[string]Rule{}
	// prefixRules are tried in order after the exact lookup misses.
	prefixRules []Rule
)

func register(r Rule) {
	if r.Prefix {
		prefixRules = append(prefixRules, r)
		return
	}
	exactRules[r.Mnemonic] = r
}

func init() {
	register(Rule{
		Name:        "bitfield-move",
		Mnemonic:    "sbfm",
		Description: "sbfm as sbfiz, asr, sxtb, sxth or sxtw",
		rewrite:     rewriteSbfm,
	})
	register(Rule{
		Name:        "rotate",
		Mnemonic:    "extr",
		Description: "extr with equal sources as ror",
		rewrite:     rewriteExtr,
	})
	register(Rule{
		Name:        "return",
		Mnemonic:    "ret",
		Description: "ret x30 as ret",
		rewrite:     rewriteRet,
	})
	register(Rule{
		Name:        "zero-register-store",
		Mnemonic:    "ld",
		Prefix:      true,
		Description: "ld* through the zero register as st*",
		rewrite:     zeroRegister("ld", "st"),
	})
	register(Rule{
		Name:        "negate-with-carry",
		Mnemonic:    "sbc",
		Prefix:      true,
		Description: "sbc* from the zero register as ngc*",
		rewrite:     zeroRegister("sbc", "ngc"),
	})
	register(Rule{
		Name:        "debug-state",
		Mnemonic:    "dcps",
		Prefix:      true,
		Description: "dcps* without operands",
		rewrite:     dropOperands,
	})
}

// Rules returns the alias table: exact rules sorted by mnemonic, then
// prefix rules in match order.
func Rules() []Rule {
	out := make([]Rule, 0, len(exactRules)+len(prefixRules))
	for _, r := range exactRules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Mnemonic < out[j].Mnemonic
	})
	return append(out, prefixRules...)
}

// lookupRule finds the rule for a mnemonic.
func lookupRule(mnemonic string) (Rule, bool) {
	if r, ok := exactRules[mnemonic]; ok {
		return r, true
	}
	for _, r := range prefixRules {
		if strings.HasPrefix(mnemonic, r.Mnemonic) {
			return r, true
		}
	}
	return Rule{}, false
}

// Rewrite applies the alias rule registered for inst's mnemonic. The
// returned instruction is final: no further operand passes run on it.
func Rewrite(inst disasm.Inst, tokens []string) (disasm.Inst, bool) {
	r, ok := lookupRule(inst.Mnemonic)
	if !ok {
		return inst, false
	}
	return r.rewrite(inst, tokens)
}

var zeroRegs = []string{", wzr, ", ", xzr, "}

func zeroRegister(from, to string) rewriteFunc {
	return func(inst disasm.Inst, _ []string) (disasm.Inst, bool) {
		for _, zr := range zeroRegs {
			if strings.Contains(inst.Operands, zr) {
				inst.Mnemonic = strings.ReplaceAll(inst.Mnemonic, from, to)
				inst.Operands = strings.ReplaceAll(inst.Operands, zr, ", ")
				return inst, true
			}
		}
		return inst, false
	}
}

func dropOperands(inst disasm.Inst, _ []string) (disasm.Inst, bool) {
	inst.Operands = ""
	return inst, true
}

func rewriteRet(inst disasm.Inst, _ []string) (disasm.Inst, bool) {
	if inst.Operands != "x30" {
		return inst, false
	}
	inst.Operands = ""
	return inst, true
}

// rewriteExtr turns `extr rd, rn, rn, #lsb` into `ror rd, rn, #lsb`.
// Lines with different sources keep the extr form.
func rewriteExtr(inst disasm.Inst, tokens []string) (disasm.Inst, bool) {
	if len(tokens) < 6 || tokens[4] != tokens[5] {
		return inst, false
	}
	ops := strings.Fields(inst.Operands)
	if len(ops) < 3 {
		return inst, false
	}
	inst.Mnemonic = "ror"
	inst.Operands = strings.Join(append(ops[:2:2], ops[3:]...), " ")
	return inst, true
}

// rewriteSbfm picks the preferred alias of `sbfm rd, rn, #immr, #imms`.
func rewriteSbfm(inst disasm.Inst, _ []string) (disasm.Inst, bool) {
	ops := strings.Fields(inst.Operands)
	if len(ops) != 4 {
		return inst, false
	}
	rd := strings.TrimSuffix(ops[0], ",")
	rn := strings.TrimSuffix(ops[1], ",")
	immr, ok := bitfieldImm(ops[2])
	if !ok {
		return inst, false
	}
	imms, ok := bitfieldImm(ops[3])
	if !ok {
		return inst, false
	}

	width, top := uint64(64), uint64(0x3f)
	if strings.HasPrefix(rd, "w") {
		width, top = 32, 0x1f
	}

	switch {
	case imms < immr:
		inst.Mnemonic = "sbfiz"
		inst.Operands = fmt.Sprintf("%s, %s, #%#x, #%#x", rd, rn, width-immr, imms+1)
	case imms == top:
		inst.Mnemonic = "asr"
		inst.Operands = fmt.Sprintf("%s, %s, #%#x", rd, rn, immr)
	case immr == 0 && imms == 0b111:
		inst.Mnemonic = "sxtb"
		inst.Operands = rd + ", " + narrowReg(rn)
	case immr == 0 && imms == 0b1111:
		inst.Mnemonic = "sxth"
		inst.Operands = rd + ", " + narrowReg(rn)
	case immr == 0 && imms == 0b11111:
		inst.Mnemonic = "sxtw"
		inst.Operands = rd + ", " + narrowReg(rn)
	default:
		return inst, false
	}
	return inst, true
}

// bitfieldImm parses `#<n>` or `#0x<n>`, with an optional trailing comma.
func bitfieldImm(tok string) (uint64, bool) {
	tok = strings.TrimSuffix(tok, ",")
	if !strings.HasPrefix(tok, "#") {
		return 0, false
	}
	num := tok[1:]
	base := 10
	if strings.HasPrefix(num, "0x") {
		num, base = num[2:], 16
	}
	v, err := strconv.ParseUint(num, base, 64)
	return v, err == nil
}

// narrowReg names the 32-bit view of a 64-bit general register.
func narrowReg(reg string) string {
	if strings.HasPrefix(reg, "x") {
		return "w" + reg[1:]
	}
	return reg
}
