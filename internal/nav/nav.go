package nav

// Entry is one link of the navigation shell.
type Entry struct {
	Label string
	Path  string
	Icon  string
}

// entries is the fixed, ordered navigation list. Profile has no page yet and
// links to "#".
var entries = []Entry{
	{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
	{Label: "Insights", Path: "/insights", Icon: "chart-bar"},
	{Label: "Maps", Path: "/map", Icon: "map"},
	{Label: "Chatbot", Path: "/chatbot", Icon: "chat-bubble"},
	{Label: "About", Path: "/about", Icon: "information-circle"},
	{Label: "Profile", Path: "#", Icon: "user"},
}

// Link is an Entry as rendered for a particular current path.
type Link struct {
	Entry
	Active bool
}

// Shell is the navigation sidebar for one request.
type Shell struct {
	Brand    string
	Tagline  string
	Links    []Link
	Coverage int // percent, 0-100
}

// Entries returns the navigation list in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// NewShell builds the sidebar for the given current path. An entry is active
// only when its path equals current exactly.
func NewShell(current, brand, tagline string, coverage int) Shell {
	links := make([]Link, len(entries))
	for i, e := range entries {
		links[i] = Link{Entry: e, Active: e.Path == current}
	}
	return Shell{
		Brand:    brand,
		Tagline:  tagline,
		Links:    links,
		Coverage: clampPercent(coverage),
	}
}

// ActiveLabel returns the label of the highlighted entry, or "" if none.
func (s Shell) ActiveLabel() string {
	for _, l := range s.Links {
		if l.Active {
			return l.Label
		}
	}
	return ""
}

func clampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
