// Package templates renders the documentation harness chrome.
package templates

// Theme values understood by the layout.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Links resolves harness URLs. The server and the static export use
// different URL shapes for the same pages.
type Links struct {
	Index string
	Story func(component, story string) string
	Asset func(name string) string
	// Toggle is nil when the page cannot post interactions.
	Toggle func(component, story string) string
	// Switch returns the current page with one query parameter replaced;
	// nil hides the theme and language switchers.
	Switch func(name, value string) string
}

// NavItem is one story link in the sidebar.
type NavItem struct {
	Slug string
	Name string
}

// NavGroup is one component in the sidebar.
type NavGroup struct {
	Slug    string
	Title   string
	Stories []NavItem
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang      string
	Theme     string
	Title     string
	AppName   string
	Version   string
	Loc       Localizer
	Links     Links
	Nav       []NavGroup
	Languages []string
	// Static marks exported pages, which show control values read-only.
	Static bool
	// Nonce is applied to inline scripts.
	Nonce           string
	ActiveComponent string
	ActiveStory     string
}

func (p PageContext) dark() bool {
	return p.Theme == ThemeDark
}
