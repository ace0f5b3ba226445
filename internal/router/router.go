// Package router maps request paths to page views. Resolution is a pure
// function of the path: there is no shared navigation state, and anything
// that needs to know the current screen (the navigation shell, templates)
// reads it from the resolved Route.
package router

// View identifies one of the application's pages.
type View string

const (
	ViewLanding   View = "landing"
	ViewDashboard View = "dashboard"
	ViewInsights  View = "insights"
	ViewMap       View = "map"
	ViewChatbot   View = "chatbot"
	ViewAbout     View = "about"
	ViewLogin     View = "login"
	ViewRegister  View = "register"
)

// Route describes how a path is rendered.
type Route struct {
	Path    string `json:"path"`
	View    View   `json:"view"`
	Title   string `json:"title"`
	Shell   bool   `json:"shell"`   // rendered inside the navigation shell
	Bubbles bool   `json:"bubbles"` // floating bubble backdrop
	Wave    bool   `json:"wave"`    // animated gradient wave
}

var routes = []Route{
	{Path: "/", View: ViewLanding, Title: "OceanIQ", Bubbles: true, Wave: true},
	{Path: "/dashboard", View: ViewDashboard, Title: "Ocean Dashboard", Shell: true, Wave: true},
	{Path: "/insights", View: ViewInsights, Title: "Ocean Data Insights", Shell: true},
	{Path: "/map", View: ViewMap, Title: "ARGO Float Locations", Shell: true},
	{Path: "/chatbot", View: ViewChatbot, Title: "OceanIQ AI Assistant", Shell: true, Bubbles: true},
	{Path: "/about", View: ViewAbout, Title: "About OceanIQ", Shell: true, Wave: true},
	{Path: "/login", View: ViewLogin, Title: "Welcome Back", Bubbles: true, Wave: true},
	{Path: "/register", View: ViewRegister, Title: "Join OceanIQ", Bubbles: true, Wave: true},
}

// Routes returns every defined route in declaration order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Resolve returns the route whose path equals p exactly. No prefix
// matching, trailing-slash folding or redirects are performed.
func Resolve(p string) (Route, bool) {
	for _, r := range routes {
		if r.Path == p {
			return r, true
		}
	}
	return Route{}, false
}

// PathOf returns the path bound to a view.
func PathOf(v View) (string, bool) {
	for _, r := range routes {
		if r.View == v {
			return r.Path, true
		}
	}
	return "", false
}
