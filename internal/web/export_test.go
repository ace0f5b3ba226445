package web

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceaniq/oceaniq/internal/progress"
)

func TestPageFile(t *testing.T) {
	assert.Equal(t, "index.html", pageFile("/"))
	assert.Equal(t, "dashboard/index.html", pageFile("/dashboard"))
}

func TestExportWritesSite(t *testing.T) {
	site, _ := setupSite(t)
	dir := t.TempDir()
	var log bytes.Buffer

	n, err := site.Export(dir, &progress.CIReporter{Out: &log, Description: "Exporting"})
	require.NoError(t, err)
	// 8 pages, 5 charts, 5 static assets.
	assert.Equal(t, 18, n)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `data-page="landing"`)

	mapPage, err := os.ReadFile(filepath.Join(dir, "map", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(mapPage), `data-page="map"`)

	svg, err := os.ReadFile(filepath.Join(dir, "charts", "insights", "salinity.svg"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(svg), "<svg"))

	_, err = os.Stat(filepath.Join(dir, "static", "site.css"))
	assert.NoError(t, err)

	assert.Contains(t, log.String(), "[18/18]")
	assert.True(t, strings.HasSuffix(log.String(), "Exporting: done\n"))
}

func TestExportedSiteWorksFromFileServer(t *testing.T) {
	site, _ := setupSite(t)
	dir := t.TempDir()
	_, err := site.Export(dir, &progress.CIReporter{Out: &bytes.Buffer{}, Description: "Exporting"})
	require.NoError(t, err)

	fs := http.FileServer(http.Dir(dir))
	page := func(t *testing.T, p string) string {
		t.Helper()
		w := get(t, fs, p)
		require.Equal(t, http.StatusOK, w.Code, p)
		return w.Body.String()
	}

	t.Run("insights", func(t *testing.T) {
		body := page(t, "/insights/")
		assert.Contains(t, body, "data-static")

		var views []chartView
		jsonIsland(t, body, "chart-views", &views)
		require.Len(t, views, 3)
		sal := views[1]
		assert.Equal(t, "salinity", sal.Parameter)
		assert.Equal(t, "scatter", sal.Kind)

		svg := page(t, sal.Src)
		assert.Contains(t, svg, "<svg")

		assert.Equal(t, 2, strings.Count(body, "disabled title=\"Exports need the OceanIQ server\""))
	})

	t.Run("map", func(t *testing.T) {
		var records []floatResponse
		jsonIsland(t, page(t, "/map/"), "float-data", &records)
		require.NotEmpty(t, records)
		assert.Equal(t, "ARGO_5904623", records[0].ID)
		assert.Equal(t, 35.2, records[0].Salinity)
	})

	t.Run("forms", func(t *testing.T) {
		for _, p := range []string{"/login/", "/register/"} {
			body := page(t, p)
			assert.Contains(t, body, "data-static", p)
			assert.Contains(t, body, `id="form-alert" hidden`, p)
		}
		assert.Contains(t, page(t, "/dashboard/"), `data-page="dashboard"`)

		script := page(t, "/static/forms.js")
		assert.Contains(t, script, "location.href = '/dashboard/'")
		assert.NotContains(t, script, "/api/")
	})

	t.Run("chatbot", func(t *testing.T) {
		body := page(t, "/chatbot/")
		assert.Contains(t, body, "unavailable in this copy")
		assert.NotContains(t, body, "/static/chat.js")
	})
}
