package listing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "test/classes/movewide/movewide-llvm.lst", want: "test/classes/movewide/movewide-llvm.norm.lst"},
		{in: "dump.txt", want: "dump.txt.norm"},
		{in: "lst", want: "lst.norm"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormPath(tt.in))
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 5; i++ {
		p := filepath.Join(dir, fmt.Sprintf("cat%d-binutils.lst", i))
		require.NoError(t, os.WriteFile(p, []byte(objdumpListing), 0o644))
		paths = append(paths, p)
	}

	results, err := NormalizeAll(context.Background(), paths, 2)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, res := range results {
		assert.Equal(t, paths[i], res.Input)
		assert.Equal(t, strings.TrimSuffix(paths[i], ".lst")+".norm.lst", res.Output)
		assert.Equal(t, 4, res.Counts.Retained)

		data, err := os.ReadFile(res.Output)
		require.NoError(t, err)
		assert.Equal(t, strings.Join(wantNormalized, "\n")+"\n", string(data))
	}
}

func TestNormalizeAllMissingInput(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.lst")
	require.NoError(t, os.WriteFile(good, []byte(objdumpListing), 0o644))

	_, err := NormalizeAll(context.Background(), []string{good, filepath.Join(dir, "missing.lst")}, 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
