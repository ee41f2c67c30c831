package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/muurk/bookshelf/internal/book"
	"github.com/muurk/bookshelf/internal/catalog"
	"github.com/muurk/bookshelf/internal/logging"
	"github.com/muurk/bookshelf/internal/menu"
	"github.com/muurk/bookshelf/internal/prompt"
	"github.com/muurk/bookshelf/internal/style"
	"github.com/muurk/bookshelf/internal/table"
	"github.com/muurk/bookshelf/internal/ui"
)

// Chooser presents a list of options and returns the chosen index.
type Chooser interface {
	Run(title string, options []string) (int, error)
}

// Main menu entries, in display order.
const (
	actionDisplay = iota
	actionAdd
	actionDelete
	actionSearch
	actionHints
	actionExit
)

var mainOptions = []string{
	"📚  Display all books",
	"➕  Add a book",
	"🗑️  Delete a book",
	"🔍  Search by title",
	"💡  Hints / How it works",
	"🚪  Exit",
}

var actionNames = []string{"display", "add", "delete", "search", "hints", "exit"}

const backOption = "↩️  Back"

// App is the interactive catalog shell.
type App struct {
	cat    *catalog.Catalog
	menu   Chooser
	prompt *prompt.Prompter
	out    io.Writer
}

// New creates a shell over cat. Menus and prompts must share the same input.
func New(cat *catalog.Catalog, chooser Chooser, p *prompt.Prompter, out io.Writer) *App {
	return &App{cat: cat, menu: chooser, prompt: p, out: out}
}

// Run loops over the main menu until the operator exits, presses Ctrl-C or
// input ends. ctx is checked between actions; a blocked key read is not
// interrupted.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := a.menu.Run(style.Wrap("  Choose an action:", style.Bold, style.Green), mainOptions)
		if err == nil {
			logging.LogAction(actionNames[choice])
			if choice == actionExit {
				a.goodbye()
				return nil
			}
			err = a.dispatch(choice)
		}

		switch {
		case err == nil:
		case errors.Is(err, menu.ErrInterrupted), errors.Is(err, io.EOF):
			a.goodbye()
			return nil
		default:
			return err
		}
	}
}

func (a *App) dispatch(choice int) error {
	switch choice {
	case actionDisplay:
		table.Render(a.out, a.cat.List())
		return nil
	case actionAdd:
		return a.addBook()
	case actionDelete:
		return a.deleteBook()
	case actionSearch:
		return a.search()
	case actionHints:
		fmt.Fprintln(a.out, ui.Hints())
		return nil
	}
	return fmt.Errorf("unknown action %d", choice)
}

func (a *App) addBook() error {
	fmt.Fprintln(a.out, style.Dim+"  Use ↑/↓ and Enter. Select Back to return."+style.Reset)
	kind, err := a.menu.Run(
		style.Wrap("\n  Select book type:", style.Bold, style.Magenta),
		[]string{"📱  EBook", "📕  Printed Book", backOption},
	)
	if err != nil {
		return err
	}
	if kind == 2 {
		a.back()
		return nil
	}

	marker := style.Wrap("  ▸ ", style.Green)
	title, err := a.prompt.Line(marker + "Title : ")
	if err != nil {
		return err
	}
	author, err := a.prompt.Line(marker + "Author: ")
	if err != nil {
		return err
	}
	year, err := a.prompt.Int(marker + "Year  : ")
	if err != nil {
		return err
	}

	var rec book.Record
	if kind == 0 {
		size, err := a.prompt.Float(marker + "File size (MB): ")
		if err != nil {
			return err
		}
		rec, err = book.NewDigital(title, author, year, size)
		if err != nil {
			return a.rejected(err)
		}
	} else {
		pages, err := a.prompt.Int(marker + "Number of pages: ")
		if err != nil {
			return err
		}
		rec, err = book.NewPhysical(title, author, year, pages)
		if err != nil {
			return a.rejected(err)
		}
	}

	a.cat.Add(rec)
	logging.LogCatalogChange("add", rec.Title(), a.cat.Len())
	fmt.Fprintln(a.out, ui.Success(`"`+rec.Title()+`" added successfully.`))
	return nil
}

// rejected reports a validation failure without ending the shell.
func (a *App) rejected(err error) error {
	var verr *book.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	logging.Warn("Book rejected", zap.String("field", verr.Field), zap.String("reason", verr.Reason))
	fmt.Fprintln(a.out, ui.Failure("Book not added: "+verr.Error()))
	return nil
}

func (a *App) deleteBook() error {
	books := a.cat.List()
	if len(books) == 0 {
		fmt.Fprintln(a.out, ui.Notice("\n  No books to delete. The library is empty.\n"))
		return nil
	}

	fmt.Fprintln(a.out, style.Dim+"  Use ↑/↓ and Enter. Select Back to return."+style.Reset)
	options := make([]string, 0, len(books)+1)
	for _, b := range books {
		options = append(options, fmt.Sprintf("%s — %s (%d)", b.Title(), b.Author(), b.Year()))
	}
	options = append(options, backOption)

	selected, err := a.menu.Run(style.Wrap("\n  Select a book to delete:", style.Bold, style.Red), options)
	if err != nil {
		return err
	}
	if selected == len(options)-1 {
		a.back()
		return nil
	}

	removed, err := a.cat.DeleteAt(selected)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	logging.LogCatalogChange("delete", removed.Title(), a.cat.Len())
	fmt.Fprintln(a.out, ui.Success(`Deleted "`+removed.Title()+`" by `+removed.Author()+".\n"))
	return nil
}

func (a *App) search() error {
	fmt.Fprintln(a.out, style.Dim+"  Press Enter on empty input to go back."+style.Reset)
	query, err := a.prompt.Line(style.Wrap("\n  🔍 ", style.Cyan) + "Enter title to search (or press Enter to go back): ")
	if err != nil {
		return err
	}
	// an empty query would match every record
	if query == "" {
		a.back()
		return nil
	}

	results := a.cat.SearchByTitle(query)
	if len(results) == 0 {
		fmt.Fprintln(a.out, ui.Notice("No books found matching that title."))
		fmt.Fprintln(a.out)
		return nil
	}
	table.Render(a.out, results)
	return nil
}

func (a *App) back() {
	fmt.Fprintln(a.out, ui.Notice("Back to main menu.\n"))
}

func (a *App) goodbye() {
	fmt.Fprintln(a.out, style.Wrap("\n  👋 Goodbye!\n", style.Magenta, style.Bold))
}
