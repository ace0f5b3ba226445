package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellHighlightsExactPath(t *testing.T) {
	s := NewShell("/map", "OceanIQ", "AI-Powered Ocean Data", 78)
	active := 0
	for _, l := range s.Links {
		if l.Active {
			active++
			assert.Equal(t, "Maps", l.Label)
		}
	}
	assert.Equal(t, 1, active)
	assert.Equal(t, "Maps", s.ActiveLabel())
}

func TestShellNoPrefixMatch(t *testing.T) {
	for _, p := range []string{"/map/details", "/dashboard/", "/", "/login", "/nowhere"} {
		s := NewShell(p, "OceanIQ", "", 78)
		assert.Empty(t, s.ActiveLabel(), "path %q must not highlight anything", p)
	}
}

func TestShellOrder(t *testing.T) {
	want := []string{"Dashboard", "Insights", "Maps", "Chatbot", "About", "Profile"}
	got := make([]string, 0, len(want))
	for _, e := range Entries() {
		got = append(got, e.Label)
	}
	assert.Equal(t, want, got)
}

func TestCoverageClamped(t *testing.T) {
	assert.Equal(t, 100, NewShell("/", "", "", 140).Coverage)
	assert.Equal(t, 0, NewShell("/", "", "", -3).Coverage)
	assert.Equal(t, 78, NewShell("/", "", "", 78).Coverage)
}
