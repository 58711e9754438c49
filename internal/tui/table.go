package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/model"
)

// Fixed-column tables with a selection marker on the highlighted row. Column
// alignment goes through the visible-width helpers so styled cells line up.

const (
	colStatusW   = 12
	colPriorityW = 8
	colDueW      = 10
	colRefW      = 14
	colColorW    = 9
)

func statusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusDone:
		return lipgloss.NewStyle().Foreground(colorSuccessFg)
	case model.StatusInProgress:
		return lipgloss.NewStyle().Foreground(colorInfoFg)
	}
	return lipgloss.NewStyle().Foreground(colorSurfaceFg)
}

func priorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(colorErrorFg)
	case model.PriorityLow:
		return styleMuted()
	}
	return lipgloss.NewStyle().Foreground(colorWarnFg)
}

func colorSwatch(hex string) string {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return styleMuted().Render("-")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■ " + hex)
}

func renderTaskTable(tasks []model.Task, projects []model.Project, tags []model.Tag, ls listState, width, height int) string {
	if len(tasks) == 0 {
		return styleMuted().Render("No tasks. Press a to add one.")
	}

	projectNames := map[int64]string{}
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}
	tagNames := map[int64]string{}
	for _, t := range tags {
		tagNames[t.ID] = t.Name
	}

	titleW := width - 2 - colStatusW - colPriorityW - colDueW - 2*colRefW - 5*2
	if titleW < 16 {
		titleW = 16
	}

	var b strings.Builder
	head := "  " + cell("Title", titleW) + "  " + cell("Status", colStatusW) + "  " +
		cell("Pri", colPriorityW) + "  " + cell("Due", colDueW) + "  " +
		cell("Project", colRefW) + "  " + cell("Tag", colRefW)
	b.WriteString(styleMuted().Render(truncateToWidth(head, width)))
	b.WriteString("\n")

	ls.scrollTo(height)
	end := ls.off + height
	if end > len(tasks) {
		end = len(tasks)
	}
	for i := ls.off; i < end; i++ {
		t := tasks[i]
		ref := func(id *int64, names map[int64]string) string {
			if id == nil {
				return "-"
			}
			if n, ok := names[*id]; ok {
				return n
			}
			return "#" + strconv.FormatInt(*id, 10)
		}
		due := t.Due
		if due == "" {
			due = "-"
		}

		selected := i+1 == ls.idx
		marker := "  "
		if selected {
			marker = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("▌ ")
		}

		row := marker + cell(t.Title, titleW) + "  " +
			statusStyle(t.Status).Render(cell(t.Status.Label(), colStatusW)) + "  " +
			priorityStyle(t.Priority).Render(cell(t.Priority.Label(), colPriorityW)) + "  " +
			cell(due, colDueW) + "  " +
			cell(ref(t.ProjectID, projectNames), colRefW) + "  " +
			cell(ref(t.TagID, tagNames), colRefW)
		if selected {
			row = styleSelected().Render(truncateToWidth(row, width))
		} else {
			row = truncateToWidth(row, width)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderNameTable serves the project and tag list screens (name + color
// columns plus a usage count).
func renderNameTable(names []string, colors []string, counts []int, ls listState, width, height int, emptyHint string) string {
	if len(names) == 0 {
		return styleMuted().Render(emptyHint)
	}

	nameW := width - 2 - colColorW - 7 - 2*2
	if nameW < 12 {
		nameW = 12
	}

	var b strings.Builder
	head := "  " + cell("Name", nameW) + "  " + cell("Color", colColorW) + "  " + cell("Tasks", 7)
	b.WriteString(styleMuted().Render(truncateToWidth(head, width)))
	b.WriteString("\n")

	ls.scrollTo(height)
	end := ls.off + height
	if end > len(names) {
		end = len(names)
	}
	for i := ls.off; i < end; i++ {
		selected := i+1 == ls.idx
		marker := "  "
		if selected {
			marker = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("▌ ")
		}
		row := marker + cell(names[i], nameW) + "  " +
			cell(colorSwatch(colors[i]), colColorW) + "  " +
			cell(strconv.Itoa(counts[i]), 7)
		if selected {
			row = styleSelected().Render(truncateToWidth(row, width))
		} else {
			row = truncateToWidth(row, width)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderMenu draws a simple one-column option list with the selection marker.
func renderMenu(options []string, ls listState, width int) string {
	var b strings.Builder
	for i, opt := range options {
		selected := i+1 == ls.idx
		marker := "  "
		line := marker + opt
		if selected {
			line = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("▌ ") +
				styleSelected().Render(" "+opt+" ")
		}
		b.WriteString(truncateToWidth(line, width))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
