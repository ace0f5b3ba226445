package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oceaniq/oceaniq/internal/account"
	"github.com/oceaniq/oceaniq/internal/insights"
	"github.com/oceaniq/oceaniq/internal/ocean"
	"github.com/oceaniq/oceaniq/internal/router"
)

// RegisterRoutes mounts the eight pages, the form posts, the chart SVGs, the
// JSON helpers and the static assets. Paths outside the route table get an
// empty 404.
func (s *Site) RegisterRoutes(r chi.Router) {
	for _, rt := range router.Routes() {
		r.Get(rt.Path, s.handlePage)
	}
	r.Post("/login", s.handleLogin)
	r.Post("/register", s.handleRegister)
	r.Post("/insights/export", s.handleExport)

	r.Get("/charts/*", s.handleChart)

	r.Route("/api", func(r chi.Router) {
		r.Get("/floats", handleFloats)
		r.Get("/floats/{id}", handleFloat)
		r.Post("/password-strength", handlePasswordStrength)
		r.Get("/insights/exports", s.handleExports)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(Static()))))

	r.NotFound(NotFound)
}

// NotFound answers unmatched paths with a bare 404 and no page markup.
func NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

func (s *Site) handlePage(w http.ResponseWriter, r *http.Request) {
	rt, ok := router.Resolve(r.URL.Path)
	if !ok {
		NotFound(w, r)
		return
	}
	var buf bytes.Buffer
	if err := s.Render(&buf, rt, r.URL.Query()); err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (s *Site) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := account.ParseLogin(r.PostForm)
	if err := form.Validate(); err != nil {
		form.Password = ""
		s.renderForm(w, r, router.ViewLogin, loginData{Form: form, Alert: account.Alert(err)})
		return
	}
	s.logger.Debug("login accepted", zap.String("email", form.Email))
	redirectTo(w, r, router.ViewDashboard)
}

func (s *Site) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := account.ParseRegistration(r.PostForm)
	if err := form.Validate(); err != nil {
		data := registerData{
			Form:     form,
			Strength: account.Evaluate(form.Password),
			Alert:    account.Alert(err),
		}
		data.Form.Password, data.Form.ConfirmPassword = "", ""
		s.renderForm(w, r, router.ViewRegister, data)
		return
	}
	s.logger.Debug("registration accepted", zap.String("email", form.Email))
	redirectTo(w, r, router.ViewDashboard)
}

// renderForm re-renders a rejected form with its alert. The browser stays on
// the form.
func (s *Site) renderForm(w http.ResponseWriter, r *http.Request, v router.View, data any) {
	path, _ := router.PathOf(v)
	rt, _ := router.Resolve(path)
	var buf bytes.Buffer
	if err := s.execute(&buf, rt, data, false); err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, http.StatusUnprocessableEntity, buf.Bytes())
}

func (s *Site) handleExport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	f := insights.ParseFilter(r.PostForm)
	req, err := s.exports.Record(r.PostForm.Get("format"), f)
	if err != nil {
		if errors.Is(err, insights.ErrUnknownExportFormat) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.fail(w, r, err)
		return
	}
	s.logger.Info("export requested",
		zap.String("id", req.ID),
		zap.String("format", string(req.Format)),
		zap.String("parameter", req.Parameter))

	q := f.Query()
	q.Set("exported", string(req.Format))
	http.Redirect(w, r, pageURL(router.ViewInsights, q), http.StatusSeeOther)
}

func (s *Site) handleExports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.exports.Recent())
}

func (s *Site) handleChart(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.RenderChart(&buf, r.URL.Path); err != nil {
		if errors.Is(err, ErrUnknownChart) {
			NotFound(w, r)
			return
		}
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(buf.Bytes())
}

type floatResponse struct {
	ocean.ArgoFloat
	Position ocean.Point `json:"position"`
}

func handleFloats(w http.ResponseWriter, r *http.Request) {
	all := ocean.Floats()
	out := make([]floatResponse, len(all))
	for i, f := range all {
		out[i] = floatResponse{ArgoFloat: f, Position: f.Position()}
	}
	writeJSON(w, http.StatusOK, out)
}

func handleFloat(w http.ResponseWriter, r *http.Request) {
	f, err := ocean.FloatByID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, floatResponse{ArgoFloat: f, Position: f.Position()})
}

type strengthResponse struct {
	account.Strength
	Percent int `json:"percent"`
}

// handlePasswordStrength scores the password in the form body. It is never
// read from the query string.
func handlePasswordStrength(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form"})
		return
	}
	st := account.Evaluate(r.PostForm.Get("password"))
	writeJSON(w, http.StatusOK, strengthResponse{Strength: st, Percent: st.Percent()})
}

func (s *Site) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("rendering failed", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func redirectTo(w http.ResponseWriter, r *http.Request, v router.View) {
	path, _ := router.PathOf(v)
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// pageURL builds a link to a view with query parameters.
func pageURL(v router.View, q url.Values) string {
	path, _ := router.PathOf(v)
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
