package icons

import "sort"

// ID names an icon by its Lucide name.
type ID string

// Icons referenced by the stories.
const (
	ArrowRight ID = "arrow-right"
	AtSign     ID = "at-sign"
	Copy       ID = "copy"
	Download   ID = "download"
	Eye        ID = "eye"
	Mail       ID = "mail"
	Plus       ID = "plus"
	Search     ID = "search"
	Send       ID = "send"
	Trash      ID = "trash-2"
	X          ID = "x"
)

// Definition describes a catalog entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: ArrowRight, Name: "Arrow right", Description: "Continue or next step."},
	{ID: AtSign, Name: "At sign", Description: "Handles and email prefixes."},
	{ID: Copy, Name: "Copy", Description: "Copy a value to the clipboard."},
	{ID: Download, Name: "Download", Description: "Export or download."},
	{ID: Eye, Name: "Eye", Description: "Reveal a hidden value."},
	{ID: Mail, Name: "Mail", Description: "Email addresses and messages."},
	{ID: Plus, Name: "Plus", Description: "Create or add."},
	{ID: Search, Name: "Search", Description: "Search fields."},
	{ID: Send, Name: "Send", Description: "Submit a message."},
	{ID: Trash, Name: "Trash", Description: "Destructive removal."},
	{ID: X, Name: "Close", Description: "Dismiss or clear."},
}

// Catalog returns a copy of the icon definitions sorted by id.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
