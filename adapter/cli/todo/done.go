package todo

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:     "done <id>",
	Short:   "Mark a todo as completed",
	Aliases: []string{"complete"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompleted(cmd, args[0], true)
	},
}

var undoCmd = &cobra.Command{
	Use:     "undo <id>",
	Short:   "Mark a todo as not completed",
	Aliases: []string{"reopen"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompleted(cmd, args[0], false)
	},
}

func setCompleted(cmd *cobra.Command, id string, completed bool) error {
	c, err := client()
	if err != nil {
		return err
	}

	updated, err := c.SetCompleted(cmd.Context(), id, completed)
	if err != nil {
		return describe("update todo", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", checkbox(updated.Completed), updated.Task)
	return nil
}
