package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/bookshelf/internal/app"
	"github.com/muurk/bookshelf/internal/browse"
	"github.com/muurk/bookshelf/internal/catalog"
	"github.com/muurk/bookshelf/internal/config"
	"github.com/muurk/bookshelf/internal/keys"
	"github.com/muurk/bookshelf/internal/logging"
	"github.com/muurk/bookshelf/internal/menu"
	"github.com/muurk/bookshelf/internal/prompt"
	"github.com/muurk/bookshelf/internal/style"
	"github.com/muurk/bookshelf/internal/table"
	"github.com/muurk/bookshelf/internal/ui"
	"github.com/muurk/bookshelf/internal/version"
)

// Global flags
var (
	configPath string
	noSamples  bool
	logLevel   string
)

// Loaded in setup
var (
	cfg *config.Config
	cat *catalog.Catalog
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: OS config dir)")
	rootCmd.PersistentFlags().BoolVar(&noSamples, "no-samples", false, "Do not preload the sample books")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: silent)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(browseCmd)
}

// setup loads configuration, starts logging and seeds the catalog.
func setup() error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	level := logLevel
	if level == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		level = cfg.Preferences.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}

	if noSamples {
		cfg.Preferences.SeedSamples = false
	}

	records, err := cfg.SeedRecords()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cat = catalog.New()
	for _, r := range records {
		cat.Add(r)
	}

	logging.Info("Catalog ready",
		zap.Int("books", cat.Len()),
		zap.String("version", version.Full()),
	)
	return nil
}

func teardown() {
	logging.Sync()
}

// listCmd prints the catalog table
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog as a table",
	Example: `  # Show the sample catalog
  bookshelf list

  # Only the books from a config file
  bookshelf list --config books.yaml --no-samples`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		table.Render(cmd.OutOrStdout(), cat.List())
	},
}

// searchCmd prints the books whose title matches a query
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search books by title (case-insensitive)",
	Example: `  bookshelf search design
  bookshelf search "pragmatic programmer"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "" {
			return fmt.Errorf("search query must not be empty")
		}
		results := cat.SearchByTitle(args[0])
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Notice("No books found matching that title."))
			return nil
		}
		table.Render(cmd.OutOrStdout(), results)
		return nil
	},
}

// browseCmd opens the full-screen browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog full-screen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkConsoleLogging(term.IsTerminal(int(os.Stderr.Fd()))); err != nil {
			return err
		}
		records := cat.List()
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), table.EmptyMessage)
			return nil
		}
		return browse.Run(records)
	},
}

// runShell starts the interactive arrow-key shell
func runShell(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("interactive mode needs a terminal on stdin; try 'bookshelf list'")
	}
	if err := checkConsoleLogging(term.IsTerminal(int(os.Stderr.Fd()))); err != nil {
		return err
	}

	out := os.Stdout

	saved, err := term.GetState(fd)
	if err != nil {
		return fmt.Errorf("failed to read terminal state: %w", err)
	}

	// Raw mode delivers Ctrl-C as a key. Signals that arrive while a prompt
	// is reading in cooked mode, or from outside, end the process here.
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigs)
		close(done)
	}()
	go watchSignals(sigs, done, func(sig os.Signal) {
		if err := restoreTerminal(out, fd, saved); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		logging.Info("Interrupted", zap.String("signal", sig.String()))
		teardown()
		os.Exit(130)
	})

	in := bufio.NewReader(os.Stdin)
	shell := app.New(
		cat,
		menu.New(out, keys.NewTerminalReader(os.Stdin, in)),
		prompt.New(in, out),
		out,
	)

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.NewBanner("Library Management System", version.Full()).Render())
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.UsageHint(runtime.GOOS))

	return shell.Run(cmd.Context())
}

// checkConsoleLogging refuses log output to a terminal that is also showing
// redrawn or full-screen output.
func checkConsoleLogging(stderrIsTerminal bool) error {
	if logging.ToConsole() && stderrIsTerminal {
		return fmt.Errorf("logging to the terminal would corrupt the display; set %s to a file path", logging.LogFileEnvVar)
	}
	return nil
}

// watchSignals calls onSignal for the first signal received, or returns once
// done is closed.
func watchSignals(sigs <-chan os.Signal, done <-chan struct{}, onSignal func(os.Signal)) {
	select {
	case sig := <-sigs:
		onSignal(sig)
	case <-done:
	}
}

// restoreTerminal puts fd back into the saved mode and shows the cursor.
// A key read interrupted by a signal never gets to run its own restore.
func restoreTerminal(out io.Writer, fd int, saved *term.State) error {
	fmt.Fprintln(out, style.ShowCursor+style.Reset)
	if err := term.Restore(fd, saved); err != nil {
		return fmt.Errorf("%w: %w", keys.ErrRestore, err)
	}
	return nil
}
