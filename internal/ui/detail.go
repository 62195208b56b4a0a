package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDetail renders the open record as a centered modal over the page.
func (m Model) renderDetail() string {
	rec := *m.screen.detail
	styles := m.theme.Styles()
	inner := modalWidth - 6

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(displayName(rec.FirstName, rec.LastName)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", inner)))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Email", rec.Email},
		{"City", rec.City},
		{"Phone", rec.Phone},
		{"Mobile", rec.Mobile},
		{"Address", rec.AddressLine()},
		{"Birthday", rec.Birthday()},
		{"Photo", rec.PictureURL},
	}
	labelStyle := styles.MutedText.Width(10)
	for _, row := range rows {
		if strings.TrimSpace(row.value) == "" {
			continue
		}
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(styles.Text.Render(truncate(row.value, inner-10)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderDetailFooter())

	modal := styles.Modal.Width(modalWidth).Render(b.String())
	body := lipgloss.Place(
		m.width,
		max(m.height-1, lipgloss.Height(modal)),
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
	return body + "\n" + m.renderFooter()
}

// renderDetailFooter shows the cursor position and modal key hints.
func (m Model) renderDetailFooter() string {
	styles := m.theme.Styles()
	pos, _ := m.ctrl.Cursor()
	position := styles.WarningText.Render(fmt.Sprintf("%d of %d", pos+1, len(m.screen.list)))

	hints := make([]string, 0, 4)
	for _, b := range m.keys.DetailHelp() {
		h := b.Help()
		hints = append(hints, styles.AccentText.Render(h.Key)+" "+styles.MutedText.Render(strings.ToLower(h.Desc)))
	}
	return position + "  " + strings.Join(hints, "  ")
}
