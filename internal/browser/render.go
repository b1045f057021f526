package browser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/ticket-browser/internal/view"
)

const detailWidth = 72

// View implements tea.Model.
func (model Model) View() string {
	if model.loading {
		return model.renderCentered(lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("Loading tickets..."))
	}
	if model.err != nil {
		return model.renderError()
	}
	if model.focus == FocusDetail {
		if ticket, ok := model.engine.Selected(); ok {
			return model.renderDetail(view.DetailOf(ticket))
		}
	}

	sections := []string{
		model.renderHeader(),
		model.renderSearch(),
	}
	if model.focus == FocusFacets {
		sections = append(sections, model.renderFacets())
	}
	sections = append(sections,
		model.renderToolbar(),
		model.renderList(),
		model.renderPagination(),
	)
	if model.status != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(model.theme.Accent).Render(model.status))
	}
	sections = append(sections, model.help.View(model.keys))
	return strings.Join(sections, "\n")
}

func (model Model) renderCentered(content string) string {
	return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center, content)
}

func (model Model) renderError() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.ErrorText).
		Padding(1, 2).
		Width(min(detailWidth, max(model.width-4, 20)))
	title := lipgloss.NewStyle().Foreground(model.theme.ErrorText).Bold(true).Render("Error loading tickets")
	hint := lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("Press q to quit.")
	return model.renderCentered(box.Render(title + "\n\n" + model.err.Error() + "\n\n" + hint))
}

func (model Model) renderHeader() string {
	summary := model.engine.Summary()
	title := lipgloss.NewStyle().Bold(true).Foreground(model.theme.NormalText).Render("Support Tickets")
	counters := strings.Join([]string{
		fmt.Sprintf("Total %d", summary.Total),
		lipgloss.NewStyle().Foreground(model.theme.PriorityHigh).Render(fmt.Sprintf("High %d", summary.High)),
		lipgloss.NewStyle().Foreground(model.theme.PriorityMedium).Render(fmt.Sprintf("Medium %d", summary.Medium)),
		lipgloss.NewStyle().Foreground(model.theme.PriorityLow).Render(fmt.Sprintf("Low %d", summary.Low)),
	}, "  ")
	return title + "  " + counters
}

func (model Model) renderSearch() string {
	query := model.engine.Query()
	if model.focus == FocusSearch {
		cursor := lipgloss.NewStyle().Foreground(model.theme.Accent).Bold(true).Render("▎")
		return " / " + query + cursor
	}
	if query == "" {
		return lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(" / search title or description")
	}
	return lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(" search: " + query)
}

func (model Model) renderFacets() string {
	var lines []string
	current := view.Facet(-1)
	for i, entry := range model.facetEntries() {
		if entry.facet != current {
			current = entry.facet
			lines = append(lines, lipgloss.NewStyle().Bold(true).Render(strings.ToUpper(current.String())))
		}
		check := "[ ]"
		if entry.value.Selected {
			check = "[x]"
		}
		line := fmt.Sprintf("  %s %s (%d)", check, entry.value.Value, entry.value.Count)
		if i == model.facetCursor {
			line = lipgloss.NewStyle().Foreground(model.theme.Accent).Render(">" + line[1:])
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, "no facet values")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(model.theme.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (model Model) renderToolbar() string {
	v := model.engine.View()
	order := model.engine.Order()
	arrow := "↓"
	if order.Direction == view.Ascending {
		arrow = "↑"
	}
	showing := fmt.Sprintf("Showing %d-%d of %d tickets", v.Start, v.End, v.Filtered)
	if v.Filtered == 0 {
		showing = "Showing 0 of 0 tickets"
	}
	parts := []string{
		showing,
		fmt.Sprintf("sort: %s %s", order.Key, arrow),
		fmt.Sprintf("per page: %d", v.PageSize),
	}
	if model.engine.HasFilters() {
		parts = append(parts, "filters active (c to clear)")
	}
	return lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(strings.Join(parts, " · "))
}

func (model Model) renderList() string {
	v := model.engine.View()
	if len(v.Items) == 0 {
		return lipgloss.Place(model.width, 5, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("No tickets found"))
	}

	titleWidth := max(model.width-40, 16)
	rows := make([]string, 0, len(v.Items))
	for i, ticket := range v.Items {
		title := truncate(ticket.DisplayTitle(), titleWidth)
		row := fmt.Sprintf("%-7s %-*s", "#"+strconv.FormatInt(ticket.ID, 10), titleWidth, title)
		if ticket.Status != "" {
			row += " " + lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(ticket.Status)
		}
		if ticket.Priority != "" {
			row += " " + model.theme.badge(ticket.Priority, model.theme.PriorityColor(ticket.Priority))
		}
		prefix := "  "
		if i == model.cursor {
			prefix = lipgloss.NewStyle().Foreground(model.theme.Accent).Bold(true).Render("▶ ")
		}
		rows = append(rows, prefix+row)
	}
	return strings.Join(rows, "\n")
}

func (model Model) renderPagination() string {
	v := model.engine.View()
	if v.TotalPages <= 1 {
		return ""
	}
	pages := make([]string, 0, len(v.Window))
	for _, page := range v.Window {
		label := strconv.Itoa(page)
		if page == v.Page {
			label = lipgloss.NewStyle().Background(model.theme.Accent).Foreground(lipgloss.Color("#ffffff")).Render(" " + label + " ")
		}
		pages = append(pages, label)
	}
	return fmt.Sprintf("‹ %s ›  page %d of %d", strings.Join(pages, " "), v.Page, v.TotalPages)
}

func (model Model) renderDetail(detail view.Detail) string {
	width := min(detailWidth, max(model.width-4, 20))
	title := lipgloss.NewStyle().Bold(true).Width(width - 4).Render(detail.Title)

	var badges []string
	if detail.Status != "" {
		badges = append(badges, model.theme.badge(detail.Status, model.theme.BorderColor))
	}
	if detail.Priority != "" {
		badges = append(badges, model.theme.badge(detail.Priority, model.theme.PriorityColor(detail.Priority)))
	}

	var meta []string
	for _, field := range detail.Metadata {
		meta = append(meta, lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(field.Label+": ")+field.Value)
	}

	body := []string{title}
	if len(badges) > 0 {
		body = append(body, strings.Join(badges, " "))
	}
	body = append(body,
		"",
		lipgloss.NewStyle().Width(width-4).Render(detail.Description),
		"",
		strings.Join(meta, "\n"),
		"",
		lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("esc close"),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.Accent).
		Padding(1, 2).
		Width(width).
		Render(strings.Join(body, "\n"))
	return model.renderCentered(box)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
