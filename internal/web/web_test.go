package web

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceaniq/oceaniq/internal/config"
	"github.com/oceaniq/oceaniq/internal/router"
)

func setupSite(t *testing.T) (*Site, chi.Router) {
	t.Helper()
	site, err := New(config.DefaultConfig().Site, nil, WithRand(func() *rand.Rand {
		return rand.New(rand.NewPCG(1, 2))
	}))
	require.NoError(t, err)

	r := chi.NewRouter()
	site.RegisterRoutes(r)
	return site, r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func postForm(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestEveryRouteRendersExactlyOnePage(t *testing.T) {
	_, r := setupSite(t)

	for _, rt := range router.Routes() {
		t.Run(string(rt.View), func(t *testing.T) {
			w := get(t, r, rt.Path)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

			body := w.Body.String()
			assert.Equal(t, 1, strings.Count(body, "data-page="), "page markers")
			assert.Contains(t, body, `data-page="`+string(rt.View)+`"`)
		})
	}
}

func TestUnknownPathIsBare404(t *testing.T) {
	_, r := setupSite(t)

	for _, p := range []string{"/unknown", "/dashboard/", "/map/ARGO_5904623"} {
		w := get(t, r, p)
		assert.Equal(t, http.StatusNotFound, w.Code, p)
		assert.Empty(t, w.Body.String(), p)
	}
}

func TestShellHighlightsOnlyCurrentRoute(t *testing.T) {
	_, r := setupSite(t)

	body := get(t, r, "/insights").Body.String()
	assert.Equal(t, 1, strings.Count(body, `class="nav-link active"`))
	assert.Regexp(t, `href="/insights" class="nav-link active"`, body)
	assert.Contains(t, body, "78%")

	landing := get(t, r, "/").Body.String()
	assert.NotContains(t, landing, `class="sidebar"`)
}

func TestBubblesFollowRouteFlags(t *testing.T) {
	_, r := setupSite(t)

	assert.Equal(t, 20, strings.Count(get(t, r, "/").Body.String(), `class="bubble"`))
	assert.Equal(t, 20, strings.Count(get(t, r, "/chatbot").Body.String(), `class="bubble"`))
	assert.Zero(t, strings.Count(get(t, r, "/dashboard").Body.String(), `class="bubble"`))
}

func TestMapSelectionShowsFloatDetails(t *testing.T) {
	_, r := setupSite(t)

	body := get(t, r, "/map?float=ARGO_5904623").Body.String()
	assert.Contains(t, body, `<div class="details-id">ARGO_5904623</div>`)
	assert.Contains(t, body, `data-field="lat">35.2°</dd>`)
	assert.Contains(t, body, `data-field="lng">-42.1°</dd>`)
	assert.Contains(t, body, `data-field="temperature">16.3°C</dd>`)
	assert.Contains(t, body, `data-field="salinity">35.2 PSU</dd>`)
}

func TestMapWithoutSelectionShowsPlaceholder(t *testing.T) {
	_, r := setupSite(t)

	for _, target := range []string{"/map", "/map?float=ARGO_0000000"} {
		w := get(t, r, target)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Click on a float marker to view details")
		assert.NotContains(t, w.Body.String(), `class="details-id"`)
	}
}

func TestMapMarkersUseProjection(t *testing.T) {
	_, r := setupSite(t)

	// lat 35.2, lng -42.1 -> x = 137.9/360, y = 54.8/180
	body := get(t, r, "/map").Body.String()
	assert.Contains(t, body, "left: 38.31%; top: 30.44%")
}

var chartTag = regexp.MustCompile(`<img id="chart" src="/charts/insights/[^"]+" alt="[^"]*" data-chart-kind="[^"]+">`)

func TestInsightsParameterSwitchesChartKind(t *testing.T) {
	_, r := setupSite(t)

	temp := chartTag.FindString(get(t, r, "/insights?parameter=temperature").Body.String())
	sal := chartTag.FindString(get(t, r, "/insights?parameter=salinity").Body.String())

	assert.Contains(t, temp, `data-chart-kind="line"`)
	assert.Contains(t, sal, `data-chart-kind="scatter"`)
	assert.Contains(t, sal, "/charts/insights/salinity.svg")
}

func TestInsightsRangeAndLocationLeaveDataUnchanged(t *testing.T) {
	_, r := setupSite(t)

	base := get(t, r, "/insights").Body.String()
	for _, q := range []string{"range=1m", "location=pacific", "range=1y&location=indian"} {
		body := get(t, r, "/insights?"+q).Body.String()
		assert.Equal(t, chartTag.FindString(base), chartTag.FindString(body), q)
		assert.Contains(t, body, `<p class="notice muted" id="unapplied">`, q)
	}
	assert.Contains(t, base, `<p class="notice muted" id="unapplied" hidden>`)
}

// jsonIsland decodes the JSON a page embeds for its scripts.
func jsonIsland(t *testing.T, body, id string, v any) {
	t.Helper()
	re := regexp.MustCompile(`(?s)<script type="application/json" id="` + id + `">(.*?)</script>`)
	m := re.FindStringSubmatch(body)
	require.NotNil(t, m, "no %s data in page", id)
	require.NoError(t, json.Unmarshal([]byte(m[1]), v))
}

func TestInsightsEmbedsChartForEveryParameter(t *testing.T) {
	_, r := setupSite(t)

	var views []chartView
	jsonIsland(t, get(t, r, "/insights").Body.String(), "chart-views", &views)

	want := []chartView{
		{Parameter: "temperature", Src: "/charts/insights/temperature.svg", Kind: "line", Title: "Temperature vs Depth Profile"},
		{Parameter: "salinity", Src: "/charts/insights/salinity.svg", Kind: "scatter", Title: "Salinity vs Depth Profile"},
		{Parameter: "pressure", Src: "/charts/insights/pressure.svg", Kind: "line", Title: "Pressure vs Depth Profile"},
	}
	assert.Equal(t, want, views)
	for _, v := range views {
		assert.Equal(t, http.StatusOK, get(t, r, v.Src).Code, v.Src)
	}
}

func TestMapEmbedsFloatRecords(t *testing.T) {
	_, r := setupSite(t)

	var records []floatResponse
	jsonIsland(t, get(t, r, "/map").Body.String(), "float-data", &records)
	require.Len(t, records, 5)
	assert.Equal(t, "ARGO_5904623", records[0].ID)
	assert.Equal(t, 35.2, records[0].Lat)
	assert.Equal(t, 16.3, records[0].Temperature)
}

func TestLivePagesAreNotStatic(t *testing.T) {
	_, r := setupSite(t)

	for _, rt := range router.Routes() {
		assert.NotContains(t, get(t, r, rt.Path).Body.String(), "data-static", rt.Path)
	}
	body := get(t, r, "/chatbot").Body.String()
	assert.NotContains(t, body, "unavailable in this copy")
	assert.NotContains(t, get(t, r, "/insights").Body.String(), "Exports need the OceanIQ server")
}

func TestInsightsExportRecordsRequest(t *testing.T) {
	site, r := setupSite(t)

	w := postForm(t, r, "/insights/export", url.Values{
		"format":    {"netcdf"},
		"parameter": {"pressure"},
		"range":     {"1m"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/insights", loc.Path)
	assert.Equal(t, "netcdf", loc.Query().Get("exported"))
	assert.Equal(t, "pressure", loc.Query().Get("parameter"))

	recent := site.Exports().Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, "pressure", recent[0].Parameter)

	page := get(t, r, loc.String()).Body.String()
	assert.Contains(t, page, "Export requested: NetCDF")

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(get(t, r, "/api/insights/exports").Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestInsightsExportRejectsUnknownFormat(t *testing.T) {
	site, r := setupSite(t)

	w := postForm(t, r, "/insights/export", url.Values{"format": {"pdf"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, site.Exports().Recent())
}

func TestLoginNavigatesToDashboard(t *testing.T) {
	_, r := setupSite(t)

	w := postForm(t, r, "/login", url.Values{"email": {"a@b.c"}, "password": {"x"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestLoginRequiresCredentials(t *testing.T) {
	_, r := setupSite(t)

	blank := get(t, r, "/login").Body.String()
	assert.Contains(t, blank, `<div class="alert" role="alert" id="form-alert" hidden></div>`)

	w := postForm(t, r, "/login", url.Values{"email": {"a@b.c"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), "Please enter your email and password")
	assert.Contains(t, w.Body.String(), `value="a@b.c"`)
}

func validRegistration() url.Values {
	return url.Values{
		"firstName":       {"Ada"},
		"lastName":        {"Lovelace"},
		"email":           {"ada@example.org"},
		"password":        {"Secret1!"},
		"confirmPassword": {"Secret1!"},
		"agreeToTerms":    {"on"},
	}
}

func TestRegisterNavigatesToDashboard(t *testing.T) {
	_, r := setupSite(t)

	w := postForm(t, r, "/register", validRegistration())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestRegisterMismatchStaysOnForm(t *testing.T) {
	_, r := setupSite(t)

	variants := []func(url.Values){
		func(v url.Values) {},
		func(v url.Values) { v.Del("agreeToTerms") },
		func(v url.Values) { v.Set("organization", "NOAA") },
	}
	for _, mutate := range variants {
		form := validRegistration()
		form.Set("confirmPassword", "Different1!")
		mutate(form)

		w := postForm(t, r, "/register", form)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Empty(t, w.Header().Get("Location"))
		body := w.Body.String()
		assert.Contains(t, body, `data-page="register"`)
		assert.Contains(t, body, "Passwords do not match")
		assert.NotContains(t, body, "Secret1!")
	}
}

func TestRegisterTermsRequired(t *testing.T) {
	_, r := setupSite(t)

	form := validRegistration()
	form.Del("agreeToTerms")
	w := postForm(t, r, "/register", form)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please agree to the terms and conditions")
}

func TestPasswordStrengthEndpoint(t *testing.T) {
	_, r := setupSite(t)

	tests := []struct {
		password string
		score    int
		label    string
	}{
		{"", 0, "Weak"},
		{"abcdefgh", 1, "Weak"},
		{"Abcdefgh", 2, "Fair"},
		{"Abcdefg1", 3, "Good"},
		{"Abcdef1!", 4, "Strong"},
	}
	for _, tt := range tests {
		w := postForm(t, r, "/api/password-strength", url.Values{"password": {tt.password}})
		require.Equal(t, http.StatusOK, w.Code)

		var got strengthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, tt.score, got.Score, tt.password)
		assert.Equal(t, tt.label, got.Label, tt.password)
		assert.Equal(t, tt.score*25, got.Percent, tt.password)
	}

	w := get(t, r, "/api/password-strength?password=Abcdef1!")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestFloatsAPI(t *testing.T) {
	_, r := setupSite(t)

	w := get(t, r, "/api/floats")
	require.Equal(t, http.StatusOK, w.Code)
	var all []floatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 5)

	w = get(t, r, "/api/floats/ARGO_5904623")
	require.Equal(t, http.StatusOK, w.Code)
	var one floatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &one))
	assert.Equal(t, 35.2, one.Lat)
	assert.Equal(t, -42.1, one.Lng)
	assert.Equal(t, 16.3, one.Temperature)
	assert.Equal(t, 35.2, one.Salinity)

	w = get(t, r, "/api/floats/ARGO_0000000")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "float not found")
}

func TestChartEndpoints(t *testing.T) {
	_, r := setupSite(t)

	for _, p := range ChartPaths() {
		w := get(t, r, p)
		require.Equal(t, http.StatusOK, w.Code, p)
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"), p)
		assert.Contains(t, w.Body.String(), "<svg", p)
	}

	for _, p := range []string{"/charts/insights/oxygen.svg", "/charts/dashboard/pressure.svg", "/charts/insights/salinity"} {
		assert.Equal(t, http.StatusNotFound, get(t, r, p).Code, p)
	}
}

func TestAboutRendersMission(t *testing.T) {
	_, r := setupSite(t)

	body := get(t, r, "/about").Body.String()
	assert.Contains(t, body, "<h2>Our Mission</h2>")
	assert.Contains(t, body, "Dr. Sarah Ocean")
}

func TestChatbotPageShowsGreetingAndChips(t *testing.T) {
	_, r := setupSite(t)

	body := get(t, r, "/chatbot").Body.String()
	assert.Contains(t, body, "I&#39;m OceanIQ AI")
	assert.Contains(t, body, `class="chip"`)
	assert.Contains(t, body, "/static/chat.js")
}

func TestStaticAssets(t *testing.T) {
	_, r := setupSite(t)

	for _, p := range []string{"/static/site.css", "/static/chat.js", "/static/forms.js", "/static/map.js", "/static/insights.js"} {
		assert.Equal(t, http.StatusOK, get(t, r, p).Code, p)
	}
}
