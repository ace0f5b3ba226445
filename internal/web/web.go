// Package web renders the OceanIQ pages and the small JSON and SVG
// endpoints they depend on. Templates, stylesheets and scripts are embedded
// into the binary.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"math/rand/v2"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"

	"github.com/oceaniq/oceaniq/internal/config"
	"github.com/oceaniq/oceaniq/internal/insights"
	"github.com/oceaniq/oceaniq/internal/router"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

//go:embed content/mission.md
var missionMarkdown []byte

// Site holds the parsed page templates and the per-process state the pages
// share.
type Site struct {
	cfg     config.SiteConfig
	logger  *zap.Logger
	pages   map[router.View]*template.Template
	mission template.HTML
	exports *insights.ExportLog
	newRand func() *rand.Rand
}

// Option configures a Site.
type Option func(*Site)

// WithRand overrides the source of randomness for the decorative bubbles.
func WithRand(fn func() *rand.Rand) Option {
	return func(s *Site) { s.newRand = fn }
}

// WithExportLog shares an export log with the caller.
func WithExportLog(l *insights.ExportLog) Option {
	return func(s *Site) { s.exports = l }
}

// New parses the embedded templates and renders the about page Markdown.
func New(cfg config.SiteConfig, logger *zap.Logger, opts ...Option) (*Site, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Site{
		cfg:    cfg,
		logger: logger,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.exports == nil {
		s.exports = insights.NewExportLog(0)
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	s.pages = pages

	md := goldmark.New(goldmark.WithExtensions(extension.Typographer))
	var buf bytes.Buffer
	if err := md.Convert(missionMarkdown, &buf); err != nil {
		return nil, fmt.Errorf("rendering mission: %w", err)
	}
	s.mission = template.HTML(buf.String())

	return s, nil
}

// Exports returns the log of requested insights exports.
func (s *Site) Exports() *insights.ExportLog { return s.exports }

// Static returns the embedded stylesheet and script tree, rooted so that
// "site.css" is at the top level.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var glyphs = map[string]string{
	"home":               "🏠",
	"chart-bar":          "📊",
	"map":                "🗺️",
	"chat-bubble":        "💬",
	"information-circle": "ℹ️",
	"user":               "👤",
	"beaker":             "🧪",
	"globe":              "🌍",
	"chart":              "📈",
	"users":              "👥",
}

var funcs = template.FuncMap{
	"num":   func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"fixed": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"glyph": func(name string) string {
		if g, ok := glyphs[name]; ok {
			return g
		}
		return name
	},
}

// parsePages builds one template set per view: the shared layout and
// partials plus that view's page file, which defines "content".
func parsePages() (map[router.View]*template.Template, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(templateFS,
		"templates/layout.html",
		"templates/shell.html",
		"templates/effects.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	pages := make(map[router.View]*template.Template)
	for _, rt := range router.Routes() {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", rt.View, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+string(rt.View)+".html"); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", rt.View, err)
		}
		pages[rt.View] = t
	}
	return pages, nil
}
