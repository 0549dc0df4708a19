package listing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const disarmListing = `   0: 4e61d800    frecpe    v0.2d, :simd_reg:
   4: 0e20d800    frecpe    v0.2s, v0.2s
   8: 05a03800    mov       :sve_reg:, :imm_x:
   c: 0e61d800    frecpe    v0.2d, :simd_reg:
  10: 00000000    <undefined>
garbage
`

func TestSummarize(t *testing.T) {
	s, err := Summarize(strings.NewReader(disarmListing))
	require.NoError(t, err)
	assert.Equal(t, Counts{Lines: 6, Retained: 5, Unknown: 1}, s.Counts)
	assert.Equal(t, []string{"imm_x", "simd_reg", "sve_reg"}, s.Unhandled)
}

func TestSummarizeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sve-disarm64.lst")
	require.NoError(t, os.WriteFile(path, []byte(disarmListing), 0o644))

	s, err := SummarizeFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path)
	assert.Equal(t, 5, s.Retained)
}

func TestStatsTable(t *testing.T) {
	table := StatsTable([]Stats{
		{Path: "a.lst", Counts: Counts{Lines: 10, Retained: 8, Unknown: 1}, Unhandled: []string{"imm_x", "sve_reg"}},
		{Path: "b.lst", Counts: Counts{Lines: 3, Retained: 3}},
	})

	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "| `a.lst` | 10 | 8 | 1 | `imm_x`, `sve_reg` |", lines[2])
	assert.Equal(t, "| `b.lst` | 3 | 3 | 0 |  |", lines[3])
}
