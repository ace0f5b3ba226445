package web

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/oceaniq/oceaniq/internal/account"
	"github.com/oceaniq/oceaniq/internal/chat"
	"github.com/oceaniq/oceaniq/internal/effects"
	"github.com/oceaniq/oceaniq/internal/insights"
	"github.com/oceaniq/oceaniq/internal/nav"
	"github.com/oceaniq/oceaniq/internal/ocean"
	"github.com/oceaniq/oceaniq/internal/router"
)

// page is the data every template receives. Static marks a page written by
// Export: its scripts work without the server's form and API handlers.
type page struct {
	Route   router.Route
	Brand   string
	Static  bool
	Shell   nav.Shell
	Bubbles []effects.Bubble
	Wave    *effects.Wave
	Data    any
}

type landingData struct {
	Stats    []ocean.Stat
	Features []ocean.Feature
}

type dashboardData struct {
	KPIs     []ocean.KPI
	Activity []ocean.Activity
}

type insightsData struct {
	Filter     insights.Filter
	Default    insights.Filter
	Parameters []insights.Option
	TimeRanges []insights.Option
	Locations  []insights.Option
	Chart      insights.Presentation
	ChartSrc   string
	Views      []chartView
	Stats      []ocean.Stat
	Unapplied  []string
	Exported   string
}

// chartView is what the insights script needs to show a parameter's chart
// without reloading the page.
type chartView struct {
	Parameter string `json:"parameter"`
	Src       string `json:"src"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
}

type floatRow struct {
	ocean.ArgoFloat
	Pos      ocean.Point
	Selected bool
}

type mapData struct {
	Floats   []floatRow
	Records  []floatResponse
	Selected *ocean.ArgoFloat
	Statuses []ocean.Status
}

type chatbotData struct {
	Greeting  chat.Message
	Questions []string
}

type aboutData struct {
	Mission  template.HTML
	Features []ocean.Feature
	Timeline []ocean.Milestone
	Team     []ocean.TeamMember
	Stats    []ocean.Stat
}

type loginData struct {
	Form  account.LoginForm
	Alert string
}

type registerData struct {
	Form     account.RegistrationForm
	Strength account.Strength
	Alert    string
}

// Render writes the page for route to w. q carries the page's interaction
// state: the insights filter and the selected map float.
func (s *Site) Render(w io.Writer, route router.Route, q url.Values) error {
	return s.render(w, route, q, false)
}

func (s *Site) render(w io.Writer, route router.Route, q url.Values, static bool) error {
	var data any
	switch route.View {
	case router.ViewLanding:
		data = landingData{Stats: ocean.HeroStats(), Features: ocean.LandingFeatures()}
	case router.ViewDashboard:
		data = dashboardData{KPIs: ocean.KPIs(), Activity: ocean.RecentActivity()}
	case router.ViewInsights:
		data = s.insightsData(q)
	case router.ViewMap:
		data = mapPageData(q.Get("float"))
	case router.ViewChatbot:
		data = chatbotData{
			Greeting:  chat.Message{ID: 1, Text: chat.Greeting, FromBot: true},
			Questions: chat.SampleQuestions,
		}
	case router.ViewAbout:
		data = aboutData{
			Mission:  s.mission,
			Features: ocean.AboutFeatures(),
			Timeline: ocean.Timeline(),
			Team:     ocean.Team(),
			Stats:    ocean.PlatformStats(),
		}
	case router.ViewLogin:
		data = loginData{}
	case router.ViewRegister:
		data = registerData{Strength: account.Evaluate("")}
	default:
		return fmt.Errorf("no page for view %q", route.View)
	}
	return s.execute(w, route, data, static)
}

func (s *Site) execute(w io.Writer, route router.Route, data any, static bool) error {
	t, ok := s.pages[route.View]
	if !ok {
		return fmt.Errorf("no template for view %q", route.View)
	}
	p := page{
		Route:  route,
		Brand:  s.cfg.Brand,
		Static: static,
		Data:   data,
	}
	if route.Shell {
		p.Shell = nav.NewShell(route.Path, s.cfg.Brand, s.cfg.Tagline, s.cfg.Coverage)
	}
	if route.Bubbles {
		p.Bubbles = effects.Bubbles(effects.DefaultBubbleCount, s.newRand())
	}
	if route.Wave {
		wave := effects.DefaultWave()
		p.Wave = &wave
	}
	return t.ExecuteTemplate(w, "layout", p)
}

func (s *Site) insightsData(q url.Values) insightsData {
	f := insights.ParseFilter(q)
	d := insights.Select(f)
	exported := ""
	if ef, err := insights.ParseExportFormat(q.Get("exported")); err == nil {
		exported = strings.ToUpper(string(ef))
		if ef == insights.FormatNetCDF {
			exported = "NetCDF"
		}
	}
	return insightsData{
		Filter:     f,
		Default:    insights.DefaultFilter(),
		Parameters: insights.ParameterOptions,
		TimeRanges: insights.TimeRangeOptions,
		Locations:  insights.LocationOptions,
		Chart:      insights.Present(d),
		ChartSrc:   chartSrc(d.Name()),
		Views:      chartViews(),
		Stats:      ocean.ProfileStats(),
		Unapplied:  f.Unapplied(),
		Exported:   exported,
	}
}

func chartSrc(name insights.ParameterName) string {
	return "/charts/insights/" + string(name) + ".svg"
}

func chartViews() []chartView {
	views := make([]chartView, 0, len(insights.ParameterOptions))
	for _, opt := range insights.ParameterOptions {
		d := insights.Select(insights.Filter{Parameter: insights.ParameterName(opt.Value)})
		p := insights.Present(d)
		views = append(views, chartView{
			Parameter: string(d.Name()),
			Src:       chartSrc(d.Name()),
			Kind:      string(p.Kind),
			Title:     p.Title,
		})
	}
	return views
}

// mapPageData lists every float with its plane position. An unknown id
// leaves the details panel empty.
func mapPageData(selected string) mapData {
	all := ocean.Floats()
	rows := make([]floatRow, len(all))
	records := make([]floatResponse, len(all))
	var sel *ocean.ArgoFloat
	for i, f := range all {
		rows[i] = floatRow{ArgoFloat: f, Pos: f.Position(), Selected: f.ID == selected}
		records[i] = floatResponse{ArgoFloat: f, Position: rows[i].Pos}
		if rows[i].Selected {
			sel = &all[i]
		}
	}
	return mapData{
		Floats:   rows,
		Records:  records,
		Selected: sel,
		Statuses: []ocean.Status{ocean.StatusActive, ocean.StatusDiving, ocean.StatusSurfaced},
	}
}
