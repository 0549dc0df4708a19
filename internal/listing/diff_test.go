package listing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	a := []string{"d503201f      nop             ", "8b020020      add             x0, x1, x2"}

	tests := []struct {
		name        string
		b           []string
		opts        DiffOptions
		wantRemoved int
		wantAdded   int
		wantText    string
	}{
		{
			name: "equal",
			b:    a,
		},
		{
			name:        "changed line",
			b:           []string{"d503201f      nop             ", "8b020020      add             x0, x1, x3"},
			opts:        DiffOptions{FromName: "a", ToName: "b"},
			wantRemoved: 1,
			wantAdded:   1,
			wantText: "--- a\n+++ b\n@@ -2 +2 @@\n" +
				"-8b020020      add             x0, x1, x2\n" +
				"+8b020020      add             x0, x1, x3\n",
		},
		{
			name:        "extra line",
			b:           append([]string{"d503201f      nop             "}, a...),
			wantAdded:   1,
			wantText:    "@@ -0,0 +1 @@\n+d503201f      nop             \n",
		},
		{
			name: "whitespace squashed",
			b:    []string{"d503201f nop", "8b020020 add x0, x1, x2"},
			opts: DiffOptions{Squash: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Diff(a, tt.b, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, res.Removed)
			assert.Equal(t, tt.wantAdded, res.Added)
			assert.Equal(t, tt.wantRemoved == 0 && tt.wantAdded == 0, res.Equal())
			assert.Equal(t, tt.wantText, res.Text)
		})
	}
}

func TestDiffFiles(t *testing.T) {
	dir := t.TempDir()
	binutils := filepath.Join(dir, "x-binutils.lst")
	llvm := filepath.Join(dir, "x-llvm.lst")
	require.NoError(t, os.WriteFile(binutils, []byte(objdumpListing), 0o644))
	require.NoError(t, os.WriteFile(llvm, []byte(llvmListing), 0o644))

	res, err := DiffFiles(llvm, binutils, DiffOptions{})
	require.NoError(t, err)
	assert.True(t, res.Equal(), res.Text)
	assert.Empty(t, res.Text)

	_, err = DiffFiles(llvm, filepath.Join(dir, "missing.lst"), DiffOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
