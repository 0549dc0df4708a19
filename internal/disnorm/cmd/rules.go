package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"disnorm/internal/norm"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the alias rewrite rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), rulesTree(norm.Rules()).String())
		return err
	},
}

func rulesTree(rules []norm.Rule) treeprint.Tree {
	tree := treeprint.NewWithRoot("rules")
	exact := tree.AddBranch("mnemonic")
	prefix := tree.AddBranch("prefix")
	for _, r := range rules {
		branch := exact
		if r.Prefix {
			branch = prefix
		}
		branch.AddMetaNode(r.Mnemonic, fmt.Sprintf("%s: %s", r.Name, r.Description))
	}
	return tree
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
