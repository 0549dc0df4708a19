package listing

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nxadm/tail"

	"disnorm/internal/norm"
)

// Follow normalizes the listing at path and keeps normalizing lines as they
// are appended, like `tail -F`, until ctx is cancelled. Each output line is
// written as soon as it is produced.
func Follow(ctx context.Context, path string, w io.Writer) error {
	t, err := tail.TailFile(path, tail.Config{
		Follow:        true,
		ReOpen:        true,
		MustExist:     true,
		Poll:          true,
		CompleteLines: true,
		Logger:        tail.DiscardingLogger,
	})
	if err != nil {
		return fmt.Errorf("follow %s: %w", path, err)
	}
	defer t.Cleanup()

	slog.Debug("Following listing", "file", path)
	for {
		select {
		case <-ctx.Done():
			_ = t.Stop()
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return t.Wait()
			}
			if line.Err != nil {
				return fmt.Errorf("follow %s: %w", path, line.Err)
			}
			out, ok := norm.Format(line.Text)
			if !ok {
				continue
			}
			if _, err := fmt.Fprintln(w, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
}
