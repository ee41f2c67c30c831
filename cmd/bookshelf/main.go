// Bookshelf is a terminal catalog manager for book records.
//
// It keeps an in-memory catalog of ebooks and printed books, renders it as an
// aligned table, and is driven by arrow-key menus instead of typed commands.
//
// Usage:
//
//	bookshelf [command] [flags]
//
// Running without arguments starts the interactive shell.
// See 'bookshelf --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/bookshelf/internal/logging"
	"github.com/muurk/bookshelf/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error("Command failed", zap.Error(err))
		logging.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bookshelf",
	Short: "Terminal catalog manager for books",
	Long: `An interactive catalog manager for ebooks and printed books.

Navigate with the arrow keys and press Enter to choose an action:
display the catalog, add, delete or search books by title.

The catalog lives in memory only. Books can be preloaded from the
configuration file; nothing is written back.`,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
	RunE: runShell,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bookshelf %s\n", version.Full())
	},
}
