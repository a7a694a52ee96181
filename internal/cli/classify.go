package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// classifyCommand creates the classify command, which shows which paid
// product an entry would be matched to.
func (c *CLI) classifyCommand() *cobra.Command {
	var rules string
	var explain bool

	cmd := &cobra.Command{
		Use:   "classify <name> [description] [category]",
		Short: "Print the paid alternative an entry is matched to",
		Example: `  altlist classify Mattermost "Team chat" Communication
  altlist classify --rules my-rules.toml Gitea "Git hosting"`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := newClassifier(rules)
			if err != nil {
				return err
			}
			for len(args) < 3 {
				args = append(args, "")
			}

			label := classifier.Classify(args[0], args[1], args[2])
			fmt.Fprintln(cmd.OutOrStdout(), label)

			if explain {
				for _, m := range classifier.Explain(args[0], args[1], args[2]) {
					fmt.Fprintf(cmd.OutOrStdout(), "  rule %d %s: %q\n", m.Rule+1, m.Label, m.Keyword)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rules, "rules", "", "classifier rules file (default: built-in rules)")
	cmd.Flags().BoolVar(&explain, "explain", false, "list every rule keyword found in the input")
	return cmd
}
