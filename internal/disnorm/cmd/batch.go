package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"disnorm/internal/listing"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Normalize many listings in parallel",
	Long: `Normalize every listing into a sibling file: foo.lst becomes foo.norm.lst,
any other name gets a .norm suffix.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		results, err := listing.NormalizeAll(cmd.Context(), args, cfg.Jobs)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d of %d lines)\n",
				r.Input, r.Output, r.Counts.Retained, r.Counts.Lines)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "Listings normalized at once")
	bindFlag("jobs", batchCmd.Flags(), "jobs")

	rootCmd.AddCommand(batchCmd)
}
