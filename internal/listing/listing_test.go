package listing

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disnorm/internal/disasm"
)

const objdumpListing = `
addsub_imm.elf:     file format elf64-littleaarch64


Disassembly of section .text:

0000000000000000 <_binary_addsub_imm_bin_start>:
   0:	d2a00200 	mov	x0, #0x100000              	// #1048576
   4:	d65f03c0 	ret
   8:	00000000 	.inst	0x00000000 ; undefined
   c:	b8616800 	ldr	x0, wzr, x1
`

const llvmListing = `
addsub_imm.elf:	file format elf64-littleaarch64

Disassembly of section .text:

0000000000000000 <_binary_addsub_imm_bin_start>:
       0: d2a00200     	movz	x0, #0x10, lsl #16
       4: d65f03c0     	ret	x30
       8: 00000000     	<unknown>
       c: b8616800     	str	x0, x1
`

var wantNormalized = []string{
	"d2a00200      mov             x0, #0x100000",
	"d65f03c0      ret             ",
	"00000000      <unknown>       ",
	"b8616800      str             x0, x1",
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		listing string
	}{
		{name: "binutils", listing: objdumpListing},
		{name: "llvm", listing: llvmListing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c, err := Normalize(strings.NewReader(tt.listing), &out)
			require.NoError(t, err)

			assert.Equal(t, strings.Join(wantNormalized, "\n")+"\n", out.String())
			assert.Equal(t, 4, c.Retained)
			assert.Equal(t, 1, c.Unknown)
			assert.Equal(t, strings.Count(tt.listing, "\n"), c.Lines)
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	var out bytes.Buffer
	c, err := Normalize(strings.NewReader("   ; comment only\n\n"), &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Equal(t, Counts{Lines: 2}, c)
}

func TestWalkStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	seen := 0
	_, err := Walk(strings.NewReader(objdumpListing), func(disasm.Inst) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seen)
}

func TestNormalizeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.lst")
	require.NoError(t, os.WriteFile(path, []byte(objdumpListing), 0o644))

	var out bytes.Buffer
	_, err := NormalizeFile(path, &out)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(wantNormalized, "\n")+"\n", out.String())

	_, err = NormalizeFile(filepath.Join(dir, "missing.lst"), &out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCollect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.lst")
	require.NoError(t, os.WriteFile(path, []byte(llvmListing), 0o644))

	s, c, err := Collect(path)
	require.NoError(t, err)
	assert.Equal(t, wantNormalized, s.Lines())
	assert.Equal(t, 4, c.Retained)
	assert.Equal(t, disasm.Inst{Opcode: "d65f03c0", Mnemonic: "ret"}, s[1])
}
