package norm

import "strings"

// Shorthand compacts an explicit register list `{z0.b, z1.b, z2.b}` into
// the range form `{z0.b-z2.b}`. Operands that already contain a range only
// get their ` - ` spacing tightened. Single-entry lists are left alone.
func Shorthand(operands string) string {
	begin := strings.IndexByte(operands, '{')
	if begin < 0 {
		return operands
	}
	if strings.Contains(operands, "-") {
		return strings.ReplaceAll(operands, " - ", "-")
	}
	end := strings.IndexByte(operands, '}')
	if end < begin {
		return operands
	}

	// list keeps the opening brace so it survives the replacement.
	list := operands[begin:end]
	parts := strings.Split(list, ",")
	if len(parts) < 2 {
		return operands
	}
	first := strings.TrimSpace(parts[0])
	last := strings.TrimSpace(parts[len(parts)-1])
	return strings.ReplaceAll(operands, list, first+"-"+last)
}
