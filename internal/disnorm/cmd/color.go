package cmd

import (
	"bytes"
	"io"

	"disnorm/internal/ui/colorize"
)

// colorWriter highlights each complete line written through it.
type colorWriter struct {
	w       io.Writer
	pending []byte
}

func (c *colorWriter) Write(p []byte) (int, error) {
	c.pending = append(c.pending, p...)
	for {
		i := bytes.IndexByte(c.pending, '\n')
		if i < 0 {
			return len(p), nil
		}
		line := colorize.Line(string(c.pending[:i])) + "\n"
		c.pending = c.pending[i+1:]
		if _, err := io.WriteString(c.w, line); err != nil {
			return len(p), err
		}
	}
}
