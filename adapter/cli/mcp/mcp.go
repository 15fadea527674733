// Package mcp holds the "todolist mcp" commands.
package mcp

import "github.com/spf13/cobra"

// Cmd is the MCP command group.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose todos to MCP clients",
	Long: `Run an MCP server whose tools list, create, complete and delete
todos in the configured store.`,
}

func init() {
	Cmd.AddCommand(serveCmd)
}
