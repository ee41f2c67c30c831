// Package config loads the optional bookshelf configuration file.
//
// The file is YAML and is only ever read; the catalog itself lives in memory
// and is discarded on exit.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/bookshelf/config.yaml or $HOME/.config/bookshelf/config.yaml
//   - macOS: $HOME/.config/bookshelf/config.yaml
//   - Windows: %LOCALAPPDATA%\bookshelf\config.yaml
//
// The --config flag points at a different file.
//
// # Example
//
//	version: 1
//	preferences:
//	  seed_samples: false
//	  log_level: info
//	books:
//	  - type: ebook
//	    title: Refactoring
//	    author: Martin Fowler
//	    year: 2018
//	    size_mb: 6.1
//	  - type: print
//	    title: The Go Programming Language
//	    author: Donovan & Kernighan
//	    year: 2015
//	    pages: 380
package config
