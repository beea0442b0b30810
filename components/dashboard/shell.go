package dashboard

import (
	"fmt"
	"sort"
	"strings"
)

// PageShell wraps rendered tab bodies in the full HTML document: navigation,
// theme tokens, and the top bar controls.
type PageShell struct {
	renderer Renderer
}

// NewPageShell builds a shell over a template renderer. A nil renderer falls
// back to the embedded templates.
func NewPageShell(renderer Renderer) (*PageShell, error) {
	if renderer == nil {
		var err error
		renderer, err = NewTemplateRenderer()
		if err != nil {
			return nil, err
		}
	}
	return &PageShell{renderer: renderer}, nil
}

// RenderPage produces the complete document for a committed page.
func (s *PageShell) RenderPage(page *Page, theme Theme, tabs []TabDefinition) (string, error) {
	if page == nil {
		return "", fmt.Errorf("dashboard: no page to render")
	}
	navTabs := make([]map[string]any, len(tabs))
	for i, tab := range tabs {
		navTabs[i] = map[string]any{
			"code":        string(tab.Code),
			"name":        tab.Name,
			"description": tab.Description,
			"active":      tab.Code == page.Tab,
		}
	}
	return s.renderer.Render("layout", map[string]any{
		"title":     page.Title,
		"theme":     string(theme),
		"theme_css": themeCSS(theme),
		"tabs":      navTabs,
		"anchor":    page.Anchor,
		"content":   PageHTML(page),
	})
}

// RenderError produces the retry-affordance error document for a failed
// navigation.
func (s *PageShell) RenderError(tab Tab, theme Theme, err error) (string, error) {
	return s.renderer.Render("error", map[string]any{
		"tab":     string(tab),
		"theme":   string(theme),
		"message": err.Error(),
	})
}

// themeCSS flattens the theme token map into a deterministic declaration
// block.
func themeCSS(theme Theme) string {
	tokens := theme.Tokens()
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s; ", name, tokens[name])
	}
	return strings.TrimSpace(b.String())
}
