package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T) *PageShell {
	t.Helper()
	shell, err := NewPageShell(nil)
	require.NoError(t, err)
	return shell
}

func TestRenderPageDocument(t *testing.T) {
	shell := newTestShell(t)
	page := &Page{
		Tab:    TabSales,
		Title:  "Sales Analysis",
		Anchor: "trend",
		Nodes:  []Node{Text{Content: "trend body"}},
	}
	tabs := []TabDefinition{
		{Code: TabOverview, Name: "Overview", Description: "Quick actions"},
		{Code: TabSales, Name: "Sales Analysis", Description: "Monthly trend"},
	}

	html, err := shell.RenderPage(page, ThemeDark, tabs)
	require.NoError(t, err)

	assert.Contains(t, html, `data-theme="dark"`)
	assert.Contains(t, html, "<title>Sales Analysis</title>")
	assert.Contains(t, html, `data-anchor="trend"`)
	assert.Contains(t, html, "trend body")
	assert.Contains(t, html, `data-action="theme-toggle"`)
	assert.Contains(t, html, `data-action="logout"`)
	// the active class lands on the rendered tab only
	assert.Contains(t, html, `class="tab active" data-action="navigate" data-target="sales"`)
	assert.Contains(t, html, `class="tab" data-action="navigate" data-target="overview"`)
	// dark theme tokens flow into the stylesheet
	assert.Contains(t, html, "--bg-primary: #1e1e2e;")
}

func TestRenderPageNilPage(t *testing.T) {
	shell := newTestShell(t)
	_, err := shell.RenderPage(nil, ThemeLight, nil)
	assert.Error(t, err)
}

func TestRenderErrorDocument(t *testing.T) {
	shell := newTestShell(t)

	html, err := shell.RenderError(TabAlerts, ThemeLight, errors.New("backend unreachable"))
	require.NoError(t, err)

	assert.Contains(t, html, "Unable to load alerts")
	assert.Contains(t, html, "backend unreachable")
	assert.Contains(t, html, `data-target="alerts"`)
	assert.Contains(t, html, `data-target="overview"`)
}

func TestThemeCSSDeterministic(t *testing.T) {
	first := themeCSS(ThemeLight)
	second := themeCSS(ThemeLight)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "--bg-primary: #ffffff;")
	assert.Contains(t, first, "--text-primary: #1a1a1a;")
}
