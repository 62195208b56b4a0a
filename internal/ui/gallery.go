package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/directory"
)

// handleGalleryKey moves the highlight across the card grid and opens the
// highlighted card.
func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.screen.list)
	if count == 0 {
		return m, nil
	}
	cols := galleryColumns(m.width)

	switch {
	case key.Matches(msg, m.keys.Left):
		m.highlight--
	case key.Matches(msg, m.keys.Right):
		m.highlight++
	case key.Matches(msg, m.keys.Up):
		if m.highlight-cols >= 0 {
			m.highlight -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.highlight+cols < count {
			m.highlight += cols
		}
	case key.Matches(msg, m.keys.Top):
		m.highlight = 0
	case key.Matches(msg, m.keys.Bottom):
		m.highlight = count - 1
	case key.Matches(msg, m.keys.Open):
		m.ctrl.OnCardSelected(m.highlight)
		m.status = ""
		return m, nil
	}
	m.clampHighlight()
	return m, nil
}

// clampHighlight keeps the highlight on a card after the view changes.
func (m *Model) clampHighlight() {
	count := len(m.screen.list)
	switch {
	case count == 0:
		m.highlight = 0
	case m.highlight >= count:
		m.highlight = count - 1
	case m.highlight < 0:
		m.highlight = 0
	}
}

// renderMain renders header, search bar, gallery body, and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) bodyHeight() int {
	return max(m.height-chromeLines, cardHeight)
}

// renderBody renders the state-dependent middle section.
func (m Model) renderBody() string {
	styles := m.theme.Styles()
	height := m.bodyHeight()
	place := func(content string) string {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
	}

	switch m.screen.phase {
	case phaseLoading:
		return place(styles.MutedText.Render("Loading users..."))
	case phaseFailed:
		return place(styles.DangerText.Render("Failed to load users."))
	}
	if len(m.screen.list) == 0 {
		return place(styles.MutedText.Render("No employees match."))
	}
	return m.renderGallery(height)
}

// renderGallery lays the visible records out in rows and scrolls so the
// highlighted card stays on screen.
func (m Model) renderGallery(height int) string {
	cols := galleryColumns(m.width)
	list := m.screen.list

	rows := make([]string, 0, (len(list)+cols-1)/cols)
	for start := 0; start < len(list); start += cols {
		end := min(start+cols, len(list))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(list[i], i == m.highlight))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	vp := viewport.New(m.width, height)
	vp.SetContent(strings.Join(rows, "\n"))
	visible := galleryRows(height)
	if row := m.highlight / cols; row >= visible {
		vp.SetYOffset((row - visible + 1) * cardHeight)
	}
	return vp.View()
}

// renderCard renders one summary card: name, email, and locality.
func (m Model) renderCard(rec directory.Record, focused bool) string {
	styles := m.theme.Styles()
	inner := cardWidth - 4

	nameStyle := styles.Text.Bold(true)
	box := styles.Card
	if focused {
		nameStyle = styles.AccentText.Bold(true)
		box = styles.CardFocus
	}

	lines := []string{
		nameStyle.Render(truncate(displayName(rec.FirstName, rec.LastName), inner)),
		styles.MutedText.Render(truncate(rec.Email, inner)),
		styles.FaintText.Render(truncate(rec.Locality(), inner)),
	}
	return box.Width(cardWidth - 2).Render(strings.Join(lines, "\n"))
}
