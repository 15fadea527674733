package mcp

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"
)

// RegisterPrompts registers prompt templates for working with todos.
func RegisterPrompts(srv *mcp.Server) error {
	if srv == nil {
		return fmt.Errorf("server is required")
	}

	srv.Prompt("todo_cleanup").
		Description("Review open todos and tidy up the list.").
		Argument("focus", "Optional theme to prioritize", false).
		Handler(func(ctx context.Context, args map[string]string) (*mcp.PromptResult, error) {
			focus := args["focus"]
			if focus == "" {
				focus = "anything that looks stale or already done"
			}

			return &mcp.PromptResult{
				Description: "Todo Cleanup",
				Messages: []mcp.PromptMessage{
					{
						Role: string(mcp.RoleUser),
						Content: mcp.TextContent{
							Type: "text",
							Text: fmt.Sprintf(`Help me clean up my todo list. Focus on %s.

1. Use todo.list to read every page.
2. Suggest which todos to mark done with todo.set_completed.
3. Suggest duplicates or obsolete items to remove with todo.delete.

Ask before changing anything.`, focus),
						},
					},
				},
			}, nil
		})

	return nil
}
