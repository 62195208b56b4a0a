package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// renderHeader renders the title bar with the match count.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("roster", styles.Logo),
		bg.Render("Employee Directory", styles.Text),
	}
	switch m.screen.phase {
	case phaseLoading:
		parts = append(parts, bg.Render("Loading users...", styles.WarningText))
	case phaseFailed:
		parts = append(parts, bg.Render("Offline", styles.DangerText))
	case phaseLoaded:
		parts = append(parts, bg.Render(m.countLabel(), styles.MutedText))
	}
	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// countLabel reports "12 employees" or "3 of 12 employees".
func (m Model) countLabel() string {
	shown := len(m.screen.list)
	total := m.ctrl.Total()
	if shown == total {
		return fmt.Sprintf("%d employees", total)
	}
	return fmt.Sprintf("%d of %d employees", shown, total)
}

// renderSearchBar shows the search box once records are available.
func (m Model) renderSearchBar() string {
	if m.screen.phase != phaseLoaded {
		return ""
	}
	if m.searching || m.search.Value() != "" {
		return m.search.View()
	}
	styles := m.theme.Styles()
	return styles.FaintText.Render(m.search.Prompt + m.search.Placeholder)
}

// renderFooter shows the status message, or key hints when there is none.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.status != "" {
		style := styles.SuccessText
		if m.statusErr {
			style = styles.DangerText
		}
		return styles.Footer.Width(m.width).Render(bg.Render(m.status, style))
	}

	bindings := m.keys.ShortHelp()
	if m.searching {
		bindings = []key.Binding{m.keys.LeaveBox, m.keys.Quit}
	}
	return styles.Footer.Width(m.width).Render(m.renderHints(bindings, styles, bg))
}

func (m Model) renderHints(bindings []key.Binding, styles Styles, bg BgStyle) string {
	compact := m.width > 0 && m.width < LayoutCompactWidth
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hint := bg.Render(h.Key, styles.WarningText)
		if !compact {
			hint += bg.Spaces(1) + bg.Render(strings.ToLower(h.Desc), styles.MutedText)
		}
		parts = append(parts, hint)
	}
	return bg.Join(parts, "  ")
}
