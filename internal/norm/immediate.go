// Package norm canonicalizes disassembler output lines so that listings of
// identical code produced by different disassemblers can be diffed.
//
// Every function in this package is pure and works on one line at a time.
// Anything that fails to parse is returned unchanged rather than reported.
package norm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// immSuffixes are the punctuation marks an immediate token may end with,
// in match order.
var immSuffixes = []string{",", ")", "]", "]!"}

// TryHex re-renders an immediate operand token (`#...`) as `#0x<hex>`,
// keeping any trailing punctuation. Negative values become their 32-bit
// two's complement pattern when the magnitude fits in 32 bits, 64-bit
// otherwise; the instruction width is not known here. Fractional floats
// stay decimal. Tokens that are not immediates or do not parse are
// returned as is.
func TryHex(tok string) string {
	if !strings.HasPrefix(tok, "#") {
		return tok
	}

	suffix := ""
	for _, s := range immSuffixes {
		if strings.HasSuffix(tok, s) {
			suffix = s
			break
		}
	}
	num := tok[1 : len(tok)-len(suffix)]

	switch {
	case strings.HasPrefix(num, "0x"):
		if v, ok := parseUnsigned(num[2:], 16); ok {
			return hexImm(v, suffix)
		}
	case strings.HasPrefix(num, "-0x"):
		if v, ok := parseNegated(num[3:], 16); ok {
			return hexImm(v, suffix)
		}
	case strings.Contains(num, ".") || strings.Contains(num, "e+") || strings.Contains(num, "e-"):
		f, err := strconv.ParseFloat(num, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return tok
		}
		if _, frac := math.Modf(f); frac != 0 {
			return "#" + strconv.FormatFloat(f, 'f', -1, 64) + suffix
		}
		return hexImm(uint64(uint32(saturateInt32(f))), suffix)
	case strings.HasPrefix(num, "-"):
		if v, ok := parseNegated(num[1:], 10); ok {
			return hexImm(v, suffix)
		}
	default:
		if v, ok := parseUnsigned(num, 10); ok {
			return hexImm(v, suffix)
		}
	}

	return tok
}

func hexImm(v uint64, suffix string) string {
	return fmt.Sprintf("#%#x%s", v, suffix)
}

// parseUnsigned parses s as a 32-bit unsigned value, falling back to 64 bits.
func parseUnsigned(s string, base int) (uint64, bool) {
	if v, err := strconv.ParseUint(s, base, 32); err == nil {
		return v, true
	}
	if v, err := strconv.ParseUint(s, base, 64); err == nil {
		return v, true
	}
	return 0, false
}

// parseNegated parses the magnitude s and returns the two's complement of
// its negation, at 32 bits when the magnitude fits and 64 bits otherwise.
func parseNegated(s string, base int) (uint64, bool) {
	if v, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint64(^uint32(v) + 1), true
	}
	if v, err := strconv.ParseUint(s, base, 64); err == nil {
		return ^v + 1, true
	}
	return 0, false
}

func saturateInt32(f float64) int32 {
	switch {
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}
