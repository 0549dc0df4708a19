package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"disnorm/internal/disnorm/styles"
	"disnorm/internal/listing"
)

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Diff two listings after normalizing both",
	Example: `
# Compare GNU and LLVM disassembly of the same object
disnorm diff gnu.lst llvm.lst

# Ignore column spacing
disnorm diff --squash -C 0 gnu.lst llvm.lst
  `,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		squash, _ := cmd.Flags().GetBool("squash")

		res, err := listing.DiffFiles(args[0], args[1], listing.DiffOptions{
			FromName: args[0],
			ToName:   args[1],
			Context:  cfg.Context,
			Squash:   squash,
		})
		if err != nil {
			return err
		}
		slog.Debug("Compared listings", "removed", res.Removed, "added", res.Added)
		return writeDiff(cmd.OutOrStdout(), res, cfg.Color)
	},
}

func writeDiff(w io.Writer, res listing.DiffResult, color bool) error {
	if res.Equal() {
		return nil
	}
	text := res.Text
	if color && isTerminal(w) {
		text = styles.ColorizeDiff(text)
	}
	if _, err := io.WriteString(w, text); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d removed, %d added\n", res.Removed, res.Added)
	return err
}

func init() {
	diffCmd.Flags().IntP("context", "C", 0, "Unchanged lines shown around each change")
	diffCmd.Flags().Bool("squash", false, "Collapse runs of spaces before comparing")
	bindFlag("context", diffCmd.Flags(), "context")

	rootCmd.AddCommand(diffCmd)
}
