package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/todolist/adapter/tui"
	"github.com/felixgeelhaar/todolist/internal/shared/infrastructure/security"
	"github.com/felixgeelhaar/todolist/pkg/observability"
)

var uiLogFile string

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the terminal client",
	Long: `Open an interactive client for the todo API.

Keys: a add, space toggle, d delete, left/right change page, q quit.
Client errors are written to the log file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}

		out, closeLog, err := openUILog(uiLogFile)
		if err != nil {
			return err
		}
		defer closeLog()

		cfg := app.Config
		log := observability.NewLogger(observability.LogConfigFor(cfg.AppEnv, cfg.LogLevel, cfg.LogFormat, out))
		return tui.Run(cmd.Context(), app.Client, log)
	},
}

// openUILog opens path for appending. The alternate screen owns the
// terminal, so logs never go to stderr while the UI runs.
func openUILog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := security.OpenAppend(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func defaultUILogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".todolist", "ui.log")
}

func init() {
	uiCmd.Flags().StringVar(&uiLogFile, "log-file", defaultUILogPath(), "client log file (empty disables logging)")
	rootCmd.AddCommand(uiCmd)
}
