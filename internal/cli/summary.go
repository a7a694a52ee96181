package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/altlist/pkg/config"
	pkgio "github.com/matzehuels/altlist/pkg/io"
)

// summaryCommand creates the summary command.
func (c *CLI) summaryCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "summary [items.json]",
		Short: "Print the category summary of an existing artifact",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultOutputPath
			if len(args) == 1 {
				path = args[0]
			}
			tools, err := pkgio.ImportJSON(path)
			if err != nil {
				return err
			}
			c.Logger.Debug("read artifact", "path", path, "records", len(tools))
			printSummary(tools, top)
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "number of categories to show (0 for all)")
	return cmd
}
