package todo

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Short:   "Delete a todo",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client()
		if err != nil {
			return err
		}

		if err := c.Delete(cmd.Context(), args[0]); err != nil {
			return describe("delete todo", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Todo deleted: %s\n", args[0])
		return nil
	},
}
