package listing

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/samber/lo"
)

// DiffOptions controls how two normalized listings are compared.
type DiffOptions struct {
	FromName string
	ToName   string
	Context  int  // unchanged lines around each hunk
	Squash   bool // compare with runs of whitespace collapsed, like `diff -w`
}

// DiffResult is a unified diff between two normalized listings.
type DiffResult struct {
	Text    string
	Removed int // lines only in the first listing
	Added   int // lines only in the second listing
}

// Equal reports whether the listings matched.
func (d DiffResult) Equal() bool {
	return d.Removed == 0 && d.Added == 0
}

// Diff compares two sequences of normalized lines.
func Diff(a, b []string, opts DiffOptions) (DiffResult, error) {
	a, b = diffLines(a, opts.Squash), diffLines(b, opts.Squash)

	var res DiffResult
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'r':
			res.Removed += op.I2 - op.I1
			res.Added += op.J2 - op.J1
		case 'd':
			res.Removed += op.I2 - op.I1
		case 'i':
			res.Added += op.J2 - op.J1
		}
	}
	if res.Equal() {
		return res, nil
	}

	var buf bytes.Buffer
	err := difflib.WriteUnifiedDiff(&buf, difflib.UnifiedDiff{
		A:        a,
		B:        b,
		FromFile: opts.FromName,
		ToFile:   opts.ToName,
		Context:  opts.Context,
	})
	if err != nil {
		return res, fmt.Errorf("render diff: %w", err)
	}
	res.Text = buf.String()
	return res, nil
}

// DiffFiles normalizes two listings and compares them.
func DiffFiles(fromPath, toPath string, opts DiffOptions) (DiffResult, error) {
	from, _, err := Collect(fromPath)
	if err != nil {
		return DiffResult{}, err
	}
	to, _, err := Collect(toPath)
	if err != nil {
		return DiffResult{}, err
	}
	if opts.FromName == "" {
		opts.FromName = fromPath
	}
	if opts.ToName == "" {
		opts.ToName = toPath
	}
	return Diff(from.Lines(), to.Lines(), opts)
}

// diffLines terminates each line for difflib, optionally squashing spaces.
func diffLines(lines []string, squash bool) []string {
	return lo.Map(lines, func(l string, _ int) string {
		if squash {
			l = strings.Join(strings.Fields(l), " ")
		}
		return l + "\n"
	})
}
