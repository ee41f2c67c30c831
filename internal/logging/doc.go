// Package logging provides structured logging for bookshelf.
//
// This package wraps a zap logger with a few convenience functions. Logging is
// silent unless a level is requested, because the interactive menu redraws
// stdout in place and stray log lines would break the frame.
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize(logLevel); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// An empty level falls back to BOOKSHELF_LOG_LEVEL. Output goes to stderr,
// or to the file named by BOOKSHELF_LOG_FILE:
//
//	BOOKSHELF_LOG_LEVEL=debug BOOKSHELF_LOG_FILE=/tmp/bookshelf.log bookshelf
//
// # Specialized Logging
//
//	logging.LogAction("delete")
//	logging.LogKey("down", 0, 2)
//	logging.LogCatalogChange("add", "Clean Code", 5)
package logging
