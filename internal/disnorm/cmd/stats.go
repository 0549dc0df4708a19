package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"disnorm/internal/disnorm/styles"
	"disnorm/internal/listing"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>...",
	Short: "Summarize how much of each listing normalizes",
	Long: `Report, per listing, how many lines were read, how many survived
normalization, how many were unknown instructions, and which operand
annotations no rule handles yet.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var all []listing.Stats
		for _, path := range args {
			s, err := listing.SummarizeFile(path)
			if err != nil {
				return err
			}
			all = append(all, s)
		}

		table := listing.StatsTable(all)
		out := cmd.OutOrStdout()
		if !isTerminal(out) {
			_, err := fmt.Fprint(out, table)
			return err
		}

		renderer, err := styles.GetMarkdownRenderer(120)
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
		rendered, err := renderer.Render(table)
		if err != nil {
			return fmt.Errorf("render stats: %w", err)
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
