package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disnorm.log")

	require.NoError(t, Setup(path, false))
	assert.True(t, Initialized())

	slog.Info("Normalized", "file", "a.lst")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Normalized"`)
	assert.Contains(t, string(data), `"file":"a.lst"`)
}

func TestRecoverPanic(t *testing.T) {
	called := false
	func() {
		defer RecoverPanic("test", func() { called = true })
		panic("boom")
	}()
	assert.True(t, called)
}
