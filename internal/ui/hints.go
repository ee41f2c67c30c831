package ui

import "strings"

var overview = []string{
	"Store books as EBook or Printed Book records",
	"Use arrow keys (↑/↓) to move through menu options",
	"Press Enter to select an option",
	"Add, view, search, and delete books from the library",
	"Use 'Back' in submenus to return safely",
}

var features = []string{
	"Display all books in a formatted table",
	"Search by title (case-insensitive)",
	"Delete a selected book from the collection",
	"Browse the catalog full-screen with 'bookshelf browse'",
}

// Hints renders the "System Hints" overview.
func Hints() string {
	var b strings.Builder

	b.WriteString("\n" + TitleStyle.Render("  💡 System Hints") + "\n")
	b.WriteString(Muted("Overview:") + "\n")
	for _, line := range overview {
		b.WriteString("    • " + line + "\n")
	}

	b.WriteString("\n" + Muted("Features:") + "\n")
	for _, line := range features {
		b.WriteString("    • " + line + "\n")
	}

	return b.String()
}
