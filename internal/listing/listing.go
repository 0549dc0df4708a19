// Package listing runs the line normalizer over whole disassembly listings:
// files, growing files, pairs of files and batches of files.
package listing

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"disnorm/internal/disasm"
	"disnorm/internal/norm"
)

// maxLineSize bounds a single listing line.
const maxLineSize = 1 << 20

// Counts tallies what happened to the lines of one listing.
type Counts struct {
	Lines    int // input lines read
	Retained int // lines that produced output
	Unknown  int // retained lines reported as <unknown>
}

// Walk normalizes every line of r in order and hands each retained
// instruction to fn. A read error or an error from fn stops the walk.
func Walk(r io.Reader, fn func(inst disasm.Inst) error) (Counts, error) {
	var c Counts
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		c.Lines++
		inst, ok := norm.Line(sc.Text())
		if !ok {
			continue
		}
		c.Retained++
		if inst.Mnemonic == disasm.UnknownMnemonic {
			c.Unknown++
		}
		if err := fn(inst); err != nil {
			return c, err
		}
	}
	if err := sc.Err(); err != nil {
		return c, fmt.Errorf("read listing: %w", err)
	}
	return c, nil
}

// Normalize writes the normalized form of every instruction line of r to w,
// one per line, in input order.
func Normalize(r io.Reader, w io.Writer) (Counts, error) {
	bw := bufio.NewWriter(w)
	c, err := Walk(r, func(inst disasm.Inst) error {
		_, err := fmt.Fprintln(bw, inst.String())
		return err
	})
	if err != nil {
		return c, err
	}
	if err := bw.Flush(); err != nil {
		return c, fmt.Errorf("write output: %w", err)
	}
	return c, nil
}

// NormalizeFile normalizes the listing at path into w.
func NormalizeFile(path string, w io.Writer) (Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return Counts{}, err
	}
	defer f.Close()

	c, err := Normalize(f, w)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("Normalized listing", "file", path, "lines", c.Lines, "retained", c.Retained, "unknown", c.Unknown)
	return c, nil
}

// Collect normalizes the listing at path into memory.
func Collect(path string) (disasm.Stream, Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Counts{}, err
	}
	defer f.Close()

	var s disasm.Stream
	c, err := Walk(f, func(inst disasm.Inst) error {
		s = append(s, inst)
		return nil
	})
	if err != nil {
		return nil, c, fmt.Errorf("%s: %w", path, err)
	}
	return s, c, nil
}
