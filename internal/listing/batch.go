package listing

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// NormPath names the normalized output for a listing: `x.lst` becomes
// `x.norm.lst`, any other name gets `.norm` appended.
func NormPath(path string) string {
	if base, ok := strings.CutSuffix(path, ".lst"); ok {
		return base + ".norm.lst"
	}
	return path + ".norm"
}

// BatchResult reports one file of a batch.
type BatchResult struct {
	Input  string
	Output string
	Counts Counts
}

// NormalizeAll normalizes every listing next to itself (see NormPath),
// running at most jobs files at a time. Lines within a file keep their
// order. The first failure cancels the files not yet started.
func NormalizeAll(ctx context.Context, paths []string, jobs int) ([]BatchResult, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]BatchResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := normalizeTo(path, NormPath(path))
			if err != nil {
				return err
			}
			results[i] = res
			slog.Info("Normalized", "file", path, "output", res.Output, "retained", res.Counts.Retained)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func normalizeTo(in, out string) (BatchResult, error) {
	src, err := os.Open(in)
	if err != nil {
		return BatchResult{}, err
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create %s: %w", out, err)
	}
	c, err := Normalize(src, dst)
	if cerr := dst.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", out, cerr)
	}
	if err != nil {
		return BatchResult{}, fmt.Errorf("%s: %w", in, err)
	}
	return BatchResult{Input: in, Output: out, Counts: c}, nil
}
