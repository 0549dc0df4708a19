package listing

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"disnorm/internal/disasm"
)

// unhandledOperand matches the `:kind:` placeholders a disassembler prints
// for operand kinds it cannot format.
var unhandledOperand = regexp.MustCompile(`:\w+:`)

// Stats summarizes one listing.
type Stats struct {
	Path string
	Counts
	Unhandled []string // operand kinds, sorted, without colons
}

// Summarize normalizes r and collects its statistics.
func Summarize(r io.Reader) (Stats, error) {
	var found []string
	c, err := Walk(r, func(inst disasm.Inst) error {
		for _, m := range unhandledOperand.FindAllString(inst.Operands, -1) {
			found = append(found, strings.Trim(m, ":"))
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	found = lo.Uniq(found)
	sort.Strings(found)
	return Stats{Counts: c, Unhandled: found}, nil
}

// SummarizeFile collects the statistics of the listing at path.
func SummarizeFile(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer f.Close()

	s, err := Summarize(f)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// StatsTable renders statistics as a markdown table.
func StatsTable(stats []Stats) string {
	var b strings.Builder
	b.WriteString("| Listing | Lines | Retained | Unknown | Unhandled operands |\n")
	b.WriteString("|---------|------:|---------:|--------:|--------------------|\n")
	for _, s := range stats {
		unhandled := ""
		if len(s.Unhandled) > 0 {
			unhandled = "`" + strings.Join(s.Unhandled, "`, `") + "`"
		}
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %s |\n", s.Path, s.Lines, s.Retained, s.Unknown, unhandled)
	}
	return b.String()
}
