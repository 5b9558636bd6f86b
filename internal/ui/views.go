package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	tabs := []string{"1 Locations", "2 Announcements", "3 Contact"}
	parts := make([]string, 0, len(tabs)+2)
	parts = append(parts, m.styles.Logo.Render("ecopoint"))

	for i, tab := range tabs {
		if View(i) == m.view {
			parts = append(parts, m.styles.TabActive.Render(tab))
		} else {
			parts = append(parts, m.styles.Tab.Render(tab))
		}
	}

	if m.admin {
		parts = append(parts, m.styles.AdminBadge.Render("ADMIN"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderContent() string {
	switch m.mode {
	case modeLogin:
		return m.renderLogin()
	case modeLocationForm:
		return m.renderLocationForm()
	case modeContactForm:
		return m.renderContactForm()
	case modeAnnouncements:
		return m.renderAnnouncementsEdit()
	case modeConfirmDelete:
		return m.renderConfirmDelete()
	}

	switch m.view {
	case ViewAnnouncements:
		return m.renderAnnouncements()
	case ViewContact:
		return m.renderContact()
	default:
		return m.renderLocations()
	}
}

func (m Model) renderLocations() string {
	locs := m.snapshot.Locations
	if len(locs) == 0 {
		return m.styles.Muted.Render("  No drop-off locations published yet.")
	}

	var list strings.Builder
	for i, loc := range locs {
		line := padRight(truncate(loc.Label, 24), 24) + " " + truncate(loc.Address, 40)
		if i == m.selected {
			list.WriteString(m.styles.Selected.Render("▸ " + line))
		} else {
			list.WriteString(m.styles.Text.Render("  " + line))
		}
		if i < len(locs)-1 {
			list.WriteString("\n")
		}
	}

	detail := ""
	if loc := m.selectedLocation(); loc != nil {
		lines := []string{
			m.styles.Accent.Render(loc.Label),
			m.styles.Text.Render(loc.Address),
			m.styles.Muted.Render(formatCoords(loc.Lat, loc.Lng)),
		}
		if loc.Schedule != "" {
			lines = append(lines, m.styles.Text.Render("Open: "+loc.Schedule))
		}
		detail = m.styles.Panel.Render(strings.Join(lines, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, list.String(), "", detail)
}

func (m Model) renderAnnouncements() string {
	text := m.snapshot.Announcements
	if strings.TrimSpace(text) == "" {
		return m.styles.Muted.Render("  No announcements.")
	}
	return m.styles.Panel.Render(m.styles.Text.Render(text))
}

func (m Model) renderContact() string {
	info := m.snapshot.ContactInfo
	rows := []string{
		m.styles.FieldLabel.Render("Email") + m.styles.Text.Render(orDash(info.Email)),
		m.styles.FieldLabel.Render("Phone") + m.styles.Text.Render(orDash(info.Phone)),
		m.styles.FieldLabel.Render("Office") + m.styles.Text.Render(orDash(info.Office)),
	}
	return m.styles.Panel.Render(strings.Join(rows, "\n"))
}

func (m Model) renderLogin() string {
	lines := []string{
		m.styles.Accent.Render("Administrator login"),
		"",
		m.login.View(),
	}
	if m.loginErr != "" {
		lines = append(lines, "", m.styles.Danger.Render(m.loginErr))
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderLocationForm() string {
	title := "New location"
	if m.form.editingID != "" {
		title = "Edit location"
	}

	lines := []string{m.styles.Accent.Render(title), ""}
	for i, input := range m.form.inputs {
		lines = append(lines, m.styles.FieldLabel.Render(locationFieldNames[i])+input.View())
	}
	if m.form.errMsg != "" {
		lines = append(lines, "", m.styles.Danger.Render(m.form.errMsg))
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderContactForm() string {
	lines := []string{m.styles.Accent.Render("Edit contact info"), ""}
	for i, input := range m.contact.inputs {
		lines = append(lines, m.styles.FieldLabel.Render(contactFieldNames[i])+input.View())
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderAnnouncementsEdit() string {
	lines := []string{
		m.styles.Accent.Render("Edit announcements"),
		"",
		m.announce.View(),
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderConfirmDelete() string {
	lines := []string{
		m.styles.Danger.Render("Delete location?"),
		"",
		m.styles.Text.Render(m.deleteLabel),
		"",
		m.styles.Muted.Render("y confirm  •  n cancel"),
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	if m.status != "" {
		if m.statusErr {
			return m.styles.Danger.Render(m.status)
		}
		return m.styles.Success.Render(m.status)
	}

	hints := m.footerHints()
	return m.styles.Muted.Render(strings.Join(hints, "  •  "))
}

func (m Model) footerHints() []string {
	switch m.mode {
	case modeLogin:
		return []string{"enter submit", "esc cancel"}
	case modeLocationForm, modeContactForm:
		return []string{"tab next field", "ctrl+s save", "esc cancel"}
	case modeAnnouncements:
		return []string{"ctrl+s save", "esc cancel"}
	case modeConfirmDelete:
		return []string{"y confirm", "n cancel"}
	}

	hints := []string{"1-3 views", "j/k move"}
	if m.admin {
		switch m.view {
		case ViewLocations:
			hints = append(hints, "n new", "e edit", "d delete")
		case ViewAnnouncements, ViewContact:
			hints = append(hints, "e edit")
		}
		hints = append(hints, "a logout")
	} else {
		hints = append(hints, "a admin")
	}
	return append(hints, "h help", "q quit")
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"1 / 2 / 3", "switch between locations, announcements, contact"},
		{"tab / shift+tab", "cycle views"},
		{"j / k, up / down", "move selection"},
		{"g / G", "jump to first / last location"},
		{"a", "enter or leave admin mode"},
		{"n", "add a location (admin)"},
		{"e", "edit the selected item (admin)"},
		{"d", "delete the selected location (admin)"},
		{"T", "cycle color theme"},
		{"q, ctrl+c", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.Accent.Render("ecopoint keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(m.styles.Text.Render(fmt.Sprintf("  %-18s", row[0])))
		b.WriteString(m.styles.Muted.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("press any key to close"))
	return b.String()
}

func formatCoords(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + ", " + strconv.FormatFloat(lng, 'f', -1, 64)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func truncate(value string, limit int) string {
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

func padRight(value string, width int) string {
	n := utf8.RuneCountInString(value)
	if n >= width {
		return value
	}
	return value + strings.Repeat(" ", width-n)
}
