package disasm

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/arch/arm64/arm64asm"
)

// Dump writes an objdump-style listing of little-endian AArch64 code:
//
//	<addr>:	<opcode> 	<mnemonic operands>
//
// Words the decoder rejects are written as `.inst` lines so that the
// normalizer reports them as unknown. A trailing partial word is ignored.
func Dump(w io.Writer, code []byte, base uint64) error {
	bw := bufio.NewWriter(w)
	for off := 0; off+4 <= len(code); off += 4 {
		word := binary.LittleEndian.Uint32(code[off:])
		if _, err := fmt.Fprintf(bw, "%8x:\t%08x \t%s\n", base+uint64(off), word, decodeText(code[off:off+4], word)); err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
	}
	return bw.Flush()
}

func decodeText(raw []byte, word uint32) string {
	inst, err := arm64asm.Decode(raw)
	if err != nil {
		return fmt.Sprintf(".inst\t0x%08x ; undefined", word)
	}
	return arm64asm.GNUSyntax(inst)
}
